package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "project-hub.com/project-hub/internal/errors"
	model "project-hub.com/project-hub/internal/models"
)

func TestNotificationRepository_CreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")

	n := &model.Notification{UserID: alice.ID, Message: "You were added", Read: true, SentSMS: true}
	require.NoError(t, repo.Create(ctx, n))

	stored, err := repo.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, stored.Read)
	assert.False(t, stored.SentSMS)
	assert.False(t, stored.CreatedAt.IsZero())

	err = repo.Create(ctx, &model.Notification{UserID: 8080, Message: "nobody"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestNotificationRepository_Flags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	first := &model.Notification{UserID: alice.ID, Message: "one"}
	second := &model.Notification{UserID: alice.ID, Message: "two"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.MarkRead(ctx, first.ID))

	unread, err := repo.ListForUser(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID, unread[0].ID)

	all, err := repo.ListForUser(ctx, alice.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, repo.MarkRead(ctx, 4444), apperrors.ErrNotificationNotFound)
}

func TestNotificationRepository_PendingSMS(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	withPhone := createUser(t, db, "alice")
	noPhone := createUser(t, db, "bob")
	noProfile := createUser(t, db, "carol")

	phone := "+94770000000"
	require.NoError(t, profiles.Create(ctx, &model.Profile{UserID: withPhone.ID, Phone: &phone}))
	require.NoError(t, profiles.Create(ctx, &model.Profile{UserID: noPhone.ID}))

	for _, u := range []model.User{withPhone, noPhone, noProfile} {
		require.NoError(t, repo.Create(ctx, &model.Notification{UserID: u.ID, Message: "deadline tomorrow"}))
	}

	pending, err := repo.ListPendingSMS(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, withPhone.ID, pending[0].UserID)
	assert.Equal(t, phone, pending[0].Phone)
	assert.Equal(t, "deadline tomorrow", pending[0].Message)

	id := pending[0].NotificationID
	claimed, err := repo.ClaimSMS(ctx, id)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimSMS(ctx, id)
	require.NoError(t, err)
	assert.False(t, claimed, "a notification can only be claimed once")

	pending, err = repo.ListPendingSMS(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, repo.ReleaseSMSClaim(ctx, id))
	pending, err = repo.ListPendingSMS(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, id, pending[0].NotificationID)

	_, err = repo.ListPendingSMS(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidLimit)
}
