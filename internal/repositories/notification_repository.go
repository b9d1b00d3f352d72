package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

// PendingSMS is a notification whose recipient has a phone number and which
// has not been texted yet.
type PendingSMS struct {
	NotificationID uint
	UserID         uint
	Phone          string
	Message        string
	Link           *string
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create always stores the notification unread and unsent; only MarkRead and
// ClaimSMS flip those flags.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	n.Read = false
	n.SentSMS = false

	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(n).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrUserNotFound
	}
	return err
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrNotificationNotFound)
	}
	return &n, nil
}

func (r *NotificationRepository) ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where(map[string]interface{}{"read": false})
	}

	var out []model.Notification
	err := query.Order("created_at desc, id desc").Find(&out).Error
	return out, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) error {
	return r.setFlag(ctx, id, "read")
}

func (r *NotificationRepository) setFlag(ctx context.Context, id uint, column string) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update(column, true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// ClaimSMS flags the notification as sent if nobody has done so yet. It
// reports false when another sender already claimed it.
func (r *NotificationRepository) ClaimSMS(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND sent_sms = ?", id, false).
		Update("sent_sms", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ReleaseSMSClaim puts a claimed notification back in the pending set after
// a failed send.
func (r *NotificationRepository) ReleaseSMSClaim(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND sent_sms = ?", id, true).
		Update("sent_sms", false).Error
}

// ListPendingSMS returns the oldest unsent notifications whose recipient
// has a phone number on their profile.
func (r *NotificationRepository) ListPendingSMS(ctx context.Context, limit int) ([]PendingSMS, error) {
	if limit <= 0 {
		return nil, apperrors.ErrInvalidLimit
	}

	var out []PendingSMS
	err := r.db.WithContext(ctx).
		Table("notifications").
		Select("notifications.id AS notification_id, notifications.user_id, profiles.phone, notifications.message, notifications.link").
		Joins("JOIN profiles ON profiles.user_id = notifications.user_id").
		Where("notifications.sent_sms = ? AND profiles.phone IS NOT NULL AND profiles.phone <> ''", false).
		Order("notifications.created_at asc, notifications.id asc").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
