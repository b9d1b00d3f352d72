package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-hub.com/project-hub/internal/constants"
	"project-hub.com/project-hub/internal/migrations"
	model "project-hub.com/project-hub/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), &user))
	return user
}

func createProject(t *testing.T, db *gorm.DB, title string, members ...model.User) *model.Project {
	t.Helper()
	project := &model.Project{Title: title, Status: constants.ProjectPlanning, TeamMembers: members}
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), project))
	return project
}

func createTask(t *testing.T, db *gorm.DB, projectID uint, title string, assignees ...model.User) *model.Task {
	t.Helper()
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	task := &model.Task{
		Title:     title,
		ProjectID: projectID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
		Status:    constants.TaskBacklog,
		Assignees: assignees,
	}
	require.NoError(t, NewTaskRepository(db).Create(context.Background(), task))
	return task
}

func count(t *testing.T, db *gorm.DB, table string, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where(where, args...).Count(&n).Error)
	return n
}
