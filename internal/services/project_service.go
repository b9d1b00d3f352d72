package services

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	"project-hub.com/project-hub/internal/logging"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type ProjectService struct {
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	notifier *NotificationService
}

type CreateProjectParams struct {
	Title          string
	Status         constants.ProjectStatus
	RoomID         *string
	ExcalidrawLink *string
	TeamMemberIDs  []uint
}

type UpdateProjectParams struct {
	Title          string
	RoomID         *string
	ExcalidrawLink *string
}

// NewProjectService wires the service. notifier may be nil, in which case
// team members are not told when they are added to a project.
func NewProjectService(
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	notifier *NotificationService,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		users:    users,
		notifier: notifier,
	}
}

func (s *ProjectService) Create(ctx context.Context, params CreateProjectParams) (*model.Project, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	status := params.Status
	if status == "" {
		status = constants.ProjectPlanning
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidProjectStatus
	}

	members, err := resolveUsers(ctx, s.users, params.TeamMemberIDs)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:          title,
		Status:         status,
		RoomID:         params.RoomID,
		ExcalidrawLink: params.ExcalidrawLink,
		TeamMembers:    members,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.notifyAdded(ctx, project, members)
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

// Update changes title, room id and link. Clearing the room id or link lets
// them be derived again on save.
func (s *ProjectService) Update(ctx context.Context, id uint, params UpdateProjectParams) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(params.Title); title != "" {
		project.Title = title
	}
	if params.RoomID != nil {
		project.RoomID = params.RoomID
	}
	if params.ExcalidrawLink != nil {
		project.ExcalidrawLink = params.ExcalidrawLink
	}

	if err := s.projects.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ChangeStatus moves the project to status and records the transition.
// The returned log is nil when the project already had that status.
func (s *ProjectService) ChangeStatus(
	ctx context.Context,
	id uint,
	status constants.ProjectStatus,
) (*model.ProjectStatusLog, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidProjectStatus
	}

	entry, err := s.projects.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		logging.Logger.WithFields(logging.Fields{
			"project_id": id,
			"old_status": entry.OldStatus,
			"new_status": entry.NewStatus,
		}).Info("project status changed")
	}
	return entry, nil
}

func (s *ProjectService) StatusHistory(ctx context.Context, id uint) ([]model.ProjectStatusLog, error) {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.projects.ListStatusLogs(ctx, id)
}

// SetTeamMembers replaces the team. Users who were not on it before are
// notified.
func (s *ProjectService) SetTeamMembers(ctx context.Context, id uint, userIDs []uint) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := resolveUsers(ctx, s.users, userIDs)
	if err != nil {
		return nil, err
	}

	previous := lo.SliceToMap(project.TeamMembers, func(u model.User) (uint, struct{}) {
		return u.ID, struct{}{}
	})
	added := lo.Filter(members, func(u model.User, _ int) bool {
		_, ok := previous[u.ID]
		return !ok
	})

	if err := s.projects.ReplaceTeamMembers(ctx, project, members); err != nil {
		return nil, err
	}

	s.notifyAdded(ctx, project, added)
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.projects.Delete(ctx, id)
}

// notifyAdded is best effort: the membership change has already been
// committed, so failures are only logged.
func (s *ProjectService) notifyAdded(ctx context.Context, project *model.Project, users []model.User) {
	if s.notifier == nil {
		return
	}
	for _, u := range users {
		_, err := s.notifier.Notify(ctx, u.ID, "You were added to project "+project.Title, project.ExcalidrawLink)
		if err != nil {
			logging.Logger.WithFields(logging.Fields{
				"project_id": project.ID,
				"user_id":    u.ID,
			}).Warnf("failed to notify team member: %v", err)
		}
	}
}

func uniqueIDs(ids []uint) []uint {
	return lo.Uniq(ids)
}
