package services

import (
	"context"
	"strings"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify stores a new unread notification. It is picked up for SMS
// delivery by the dispatcher if the user has a phone number.
func (s *NotificationService) Notify(ctx context.Context, userID uint, message string, link *string) (*model.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.ErrMessageRequired
	}

	n := &model.Notification{UserID: userID, Message: message, Link: link}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint, unreadOnly bool) ([]model.Notification, error) {
	return s.repo.ListForUser(ctx, userID, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*model.Notification, error) {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
