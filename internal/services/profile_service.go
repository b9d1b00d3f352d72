package services

import (
	"context"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type ProfileService struct {
	profiles *repository.ProfileRepository
	users    *repository.UserRepository
}

func NewProfileService(profiles *repository.ProfileRepository, users *repository.UserRepository) *ProfileService {
	return &ProfileService{profiles: profiles, users: users}
}

func (s *ProfileService) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if err := validateGender(profile.Gender); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, profile.UserID); err != nil {
		return nil, err
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.FindByUserID(ctx, profile.UserID)
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*model.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Update replaces the optional fields of the user's profile with those in
// changes. The owning user never changes.
func (s *ProfileService) Update(ctx context.Context, userID uint, changes *model.Profile) (*model.Profile, error) {
	if err := validateGender(changes.Gender); err != nil {
		return nil, err
	}

	current, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes.ID = current.ID
	changes.UserID = current.UserID
	changes.User = current.User
	if err := s.profiles.Update(ctx, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// List returns all profiles with their user, sorted by the user's email.
func (s *ProfileService) List(ctx context.Context, emailDesc bool) ([]model.Profile, error) {
	return s.profiles.ListWithUser(ctx, emailDesc)
}

func validateGender(g *constants.Gender) error {
	if g != nil && !g.IsValid() {
		return apperrors.ErrInvalidGender
	}
	return nil
}
