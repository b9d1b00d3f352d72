package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

const (
	projectMembersTable = "project_team_members"
	taskAssigneesTable  = "task_assignees"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func membersByID(db *gorm.DB) *gorm.DB {
	return db.Order("users.id")
}

// Create derives the room id and link, then inserts the project and its
// team membership rows. Users themselves are never written.
func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	model.EnsureRoomAndLink(project)
	return roomConflict(r.db.WithContext(ctx).Omit("TeamMembers.*").Create(project).Error)
}

// Save writes title, room id and link. Status is left alone: it only
// changes through UpdateStatus so every transition gets logged.
func (r *ProjectRepository) Save(ctx context.Context, project *model.Project) error {
	model.EnsureRoomAndLink(project)
	return roomConflict(r.db.WithContext(ctx).Omit(clause.Associations, "Status").Save(project).Error)
}

// roomConflict keeps the store error but tags it so callers can answer 409.
// Collisions are never retried with a new room id.
func roomConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", apperrors.ErrRoomTaken, err)
	}
	return err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).Preload("TeamMembers", membersByID).First(&project, id).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrProjectNotFound)
	}
	return &project, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Preload("TeamMembers", membersByID).Order("created_at desc, id desc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) ReplaceTeamMembers(ctx context.Context, project *model.Project, members []model.User) error {
	if err := r.db.WithContext(ctx).Model(project).Association("TeamMembers").Replace(members); err != nil {
		return err
	}
	project.TeamMembers = members
	return nil
}

// UpdateStatus moves the project to status and appends the matching log row
// in the same transaction. The update only applies while the stored status
// still equals the one read, so the log never records a stale old status.
// Setting the current status again is a no-op and returns a nil log.
func (r *ProjectRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status constants.ProjectStatus,
) (*model.ProjectStatusLog, error) {
	var entry *model.ProjectStatusLog

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Project
		if err := tx.First(&current, id).Error; err != nil {
			return notFound(err, apperrors.ErrProjectNotFound)
		}
		if current.Status == status {
			return nil
		}

		res := tx.Model(&model.Project{}).
			Where("id = ? AND status = ?", id, current.Status).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrStatusConflict
		}

		entry = &model.ProjectStatusLog{
			ProjectID: id,
			OldStatus: current.Status,
			NewStatus: status,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *ProjectRepository) ListStatusLogs(ctx context.Context, projectID uint) ([]model.ProjectStatusLog, error) {
	var logs []model.ProjectStatusLog
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("changed_at asc, id asc").
		Find(&logs).Error
	return logs, err
}

// Delete removes the project and everything that hangs off it: task
// assignments, tasks, the whiteboard, status logs and team membership.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&model.Project{}, id).Error; err != nil {
			return notFound(err, apperrors.ErrProjectNotFound)
		}

		var taskIDs []uint
		if err := tx.Model(&model.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Exec("DELETE FROM "+taskAssigneesTable+" WHERE task_id IN ?", taskIDs).Error; err != nil {
				return err
			}
		}

		for _, dependent := range []interface{}{&model.Task{}, &model.Whiteboard{}, &model.ProjectStatusLog{}} {
			if err := tx.Where("project_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM "+projectMembersTable+" WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}
