package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts the profile. A user owns at most one profile; the unique
// index on user_id backs the explicit check.
func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Profile{}).Where("user_id = ?", profile.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrProfileExists
		}
		return tx.Omit(clause.Associations).Create(profile).Error
	})

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrProfileExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.ErrUserNotFound
	}
	return err
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Joins("User").Where("profiles.user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Omit(clause.Associations, "UserID").Save(profile).Error
}

// ListWithUser returns every profile joined with its user, ordered by the
// user's email.
func (r *ProfileRepository) ListWithUser(ctx context.Context, emailDesc bool) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Joins("User").
		Order(clause.OrderByColumn{Column: clause.Column{Table: "User", Name: "email"}, Desc: emailDesc}).
		Order("profiles.id").
		Find(&profiles).Error
	return profiles, err
}
