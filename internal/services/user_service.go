package services

import (
	"context"
	"strings"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, username, email string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.ErrUsernameRequired
	}

	user := &model.User{Username: username, Email: strings.TrimSpace(email)}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes the user along with its profile, notifications and
// memberships. Projects and tasks the user belonged to are kept.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// resolveUsers loads every id or fails with ErrUnknownMembers.
func resolveUsers(ctx context.Context, repo *repository.UserRepository, ids []uint) ([]model.User, error) {
	ids = uniqueIDs(ids)
	users, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, apperrors.ErrUnknownMembers
	}
	return users, nil
}
