package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Omit("Assignees.*", "Project").Create(task).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrProjectNotFound
	}
	return err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Assignees", membersByID).First(&task, id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrTaskNotFound)
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignees", membersByID).
		Where("project_id = ?", projectID).
		Order("start_date asc, id asc").
		Find(&tasks).Error
	return tasks, err
}

// Update writes title, dates and status. The owning project never changes.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":      task.Title,
			"start_date": task.StartDate,
			"end_date":   task.EndDate,
			"status":     task.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint, status constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) ReplaceAssignees(ctx context.Context, task *model.Task, assignees []model.User) error {
	if err := r.db.WithContext(ctx).Model(task).Association("Assignees").Replace(assignees); err != nil {
		return err
	}
	task.Assignees = assignees
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Task{}, id).Error; err != nil {
			return notFound(err, apperrors.ErrTaskNotFound)
		}
		if err := tx.Exec("DELETE FROM "+taskAssigneesTable+" WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
}
