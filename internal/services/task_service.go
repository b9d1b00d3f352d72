package services

import (
	"context"
	"strings"
	"time"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
}

type CreateTaskParams struct {
	ProjectID   uint
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Status      constants.TaskStatus
	AssigneeIDs []uint
}

type UpdateTaskParams struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		users:    users,
	}
}

func (s *TaskService) Create(ctx context.Context, params CreateTaskParams) (*model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}
	if params.EndDate.Before(params.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	status := params.Status
	if status == "" {
		status = constants.TaskBacklog
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	if err := s.requireProject(ctx, params.ProjectID); err != nil {
		return nil, err
	}

	assignees, err := resolveUsers(ctx, s.users, params.AssigneeIDs)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:     title,
		ProjectID: params.ProjectID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Status:    status,
		Assignees: assignees,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) ListForProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) Update(ctx context.Context, id uint, params UpdateTaskParams) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(params.Title); title != "" {
		task.Title = title
	}
	if !params.StartDate.IsZero() {
		task.StartDate = params.StartDate
	}
	if !params.EndDate.IsZero() {
		task.EndDate = params.EndDate
	}
	if task.EndDate.Before(task.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status constants.TaskStatus) (*model.Task, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidTaskStatus
	}
	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) SetAssignees(ctx context.Context, id uint, userIDs []uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assignees, err := resolveUsers(ctx, s.users, userIDs)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.ReplaceAssignees(ctx, task, assignees); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) requireProject(ctx context.Context, projectID uint) error {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
