package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-hub.com/project-hub/internal/constants"
	apperrors "project-hub.com/project-hub/internal/errors"
	"project-hub.com/project-hub/internal/migrations"
	model "project-hub.com/project-hub/internal/models"
	repository "project-hub.com/project-hub/internal/repositories"
	"project-hub.com/project-hub/internal/sms"
)

type testEnv struct {
	db            *gorm.DB
	users         *UserService
	profiles      *ProfileService
	projects      *ProjectService
	tasks         *TaskService
	whiteboards   *WhiteboardService
	notifications *NotificationService
	notifRepo     *repository.NotificationRepository
}

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

func setupEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	notifications := NewNotificationService(notifRepo)

	return &testEnv{
		db:            db,
		users:         NewUserService(userRepo),
		profiles:      NewProfileService(repository.NewProfileRepository(db), userRepo),
		projects:      NewProjectService(projectRepo, userRepo, notifications),
		tasks:         NewTaskService(repository.NewTaskRepository(db), projectRepo, userRepo),
		whiteboards:   NewWhiteboardService(repository.NewWhiteboardRepository(db), projectRepo),
		notifications: notifications,
		notifRepo:     notifRepo,
	}
}

func (e *testEnv) user(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), username, username+"@example.com")
	require.NoError(t, err)
	return u
}

// recordingSender collects sent messages and can be told to fail.
type recordingSender struct {
	mu   sync.Mutex
	sent []sms.Message
	err  error
}

func (r *recordingSender) Send(ctx context.Context, msg sms.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return cond()
}

func TestUserService_Create(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	_, err := env.users.Create(ctx, "  ", "x@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUsernameRequired)

	u := env.user(t, "alice")
	got, err := env.users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, env.users.Delete(ctx, u.ID))
	_, err = env.users.Get(ctx, u.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileService(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	bad := constants.Gender("Other")
	_, err := env.profiles.Create(ctx, &model.Profile{UserID: alice.ID, Gender: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGender)
	assert.EqualValues(t, 0, countRows(t, env.db, "profiles"))

	_, err = env.profiles.Create(ctx, &model.Profile{UserID: 999})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	profile, err := env.profiles.Create(ctx, &model.Profile{UserID: alice.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", profile.User.Email)

	_, err = env.profiles.Create(ctx, &model.Profile{UserID: alice.ID})
	assert.ErrorIs(t, err, apperrors.ErrProfileExists)

	phone := "+94770000000"
	updated, err := env.profiles.Update(ctx, alice.ID, &model.Profile{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, updated.ID)

	got, err := env.profiles.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, phone, *got.Phone)
}

func TestProjectService_Create(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	_, err := env.projects.Create(ctx, CreateProjectParams{Title: ""})
	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)

	_, err = env.projects.Create(ctx, CreateProjectParams{Title: "X", Status: "Archived"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidProjectStatus)

	_, err = env.projects.Create(ctx, CreateProjectParams{Title: "X", TeamMemberIDs: []uint{alice.ID, 404}})
	assert.ErrorIs(t, err, apperrors.ErrUnknownMembers)
	assert.EqualValues(t, 0, countRows(t, env.db, "projects"))

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch", TeamMemberIDs: []uint{alice.ID, alice.ID}})
	require.NoError(t, err)
	assert.Equal(t, constants.ProjectPlanning, project.Status)
	require.NotNil(t, project.RoomID)
	assert.Equal(t, model.ExcalidrawLink(*project.RoomID), *project.ExcalidrawLink)
	assert.Len(t, project.TeamMembers, 1)

	notes, err := env.notifications.ListForUser(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "You were added to project Launch", notes[0].Message)
	assert.False(t, notes[0].SentSMS)
}

func TestProjectService_UpdateKeepsDerivedValues(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch"})
	require.NoError(t, err)
	room := *project.RoomID

	updated, err := env.projects.Update(ctx, project.ID, UpdateProjectParams{Title: "Relaunch"})
	require.NoError(t, err)
	assert.Equal(t, "Relaunch", updated.Title)
	assert.Equal(t, room, *updated.RoomID)

	empty := ""
	updated, err = env.projects.Update(ctx, project.ID, UpdateProjectParams{RoomID: &empty, ExcalidrawLink: &empty})
	require.NoError(t, err)
	assert.NotEqual(t, room, *updated.RoomID)
	assert.Equal(t, model.ExcalidrawLink(*updated.RoomID), *updated.ExcalidrawLink)
}

func TestProjectService_ChangeStatus(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch"})
	require.NoError(t, err)

	_, err = env.projects.ChangeStatus(ctx, project.ID, "Done")
	assert.ErrorIs(t, err, apperrors.ErrInvalidProjectStatus)

	entry, err := env.projects.ChangeStatus(ctx, project.ID, constants.ProjectInProgress)
	require.NoError(t, err)
	require.NotNil(t, entry)

	entry, err = env.projects.ChangeStatus(ctx, project.ID, constants.ProjectInProgress)
	require.NoError(t, err)
	assert.Nil(t, entry)

	history, err := env.projects.StatusHistory(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constants.ProjectPlanning, history[0].OldStatus)

	_, err = env.projects.StatusHistory(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestProjectService_ConcurrentStatusChanges(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch"})
	require.NoError(t, err)

	const concurrentCount = 20
	var wg sync.WaitGroup
	wg.Add(concurrentCount)

	for i := 0; i < concurrentCount; i++ {
		go func(idx int) {
			defer wg.Done()
			status := constants.ProjectInProgress
			if idx%2 == 0 {
				status = constants.ProjectCompleted
			}
			_, err := env.projects.ChangeStatus(ctx, project.ID, status)
			if err != nil && !errors.Is(err, apperrors.ErrStatusConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	history, err := env.projects.StatusHistory(ctx, project.ID)
	require.NoError(t, err)

	// the log must chain: every entry starts where the previous one ended
	prev := constants.ProjectPlanning
	for _, entry := range history {
		assert.Equal(t, prev, entry.OldStatus)
		assert.NotEqual(t, entry.OldStatus, entry.NewStatus)
		prev = entry.NewStatus
	}

	current, err := env.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, prev, current.Status)
}

func TestProjectService_SetTeamMembersNotifiesNewcomers(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch", TeamMemberIDs: []uint{alice.ID}})
	require.NoError(t, err)

	project, err = env.projects.SetTeamMembers(ctx, project.ID, []uint{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Len(t, project.TeamMembers, 2)

	aliceNotes, err := env.notifications.ListForUser(ctx, alice.ID, false)
	require.NoError(t, err)
	assert.Len(t, aliceNotes, 1)

	bobNotes, err := env.notifications.ListForUser(ctx, bob.ID, false)
	require.NoError(t, err)
	assert.Len(t, bobNotes, 1)

	_, err = env.projects.SetTeamMembers(ctx, project.ID, []uint{777})
	assert.ErrorIs(t, err, apperrors.ErrUnknownMembers)
}

func TestProjectService_DeleteCascade(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch", TeamMemberIDs: []uint{alice.ID}})
	require.NoError(t, err)
	other, err := env.projects.Create(ctx, CreateProjectParams{Title: "Other"})
	require.NoError(t, err)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []*model.Project{project, other} {
		_, err = env.tasks.Create(ctx, CreateTaskParams{ProjectID: p.ID, Title: "T", StartDate: start, EndDate: start})
		require.NoError(t, err)
		_, err = env.whiteboards.Get(ctx, p.ID)
		require.NoError(t, err)
		_, err = env.projects.ChangeStatus(ctx, p.ID, constants.ProjectCompleted)
		require.NoError(t, err)
	}

	require.NoError(t, env.projects.Delete(ctx, project.ID))

	_, err = env.projects.Get(ctx, project.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	_, err = env.tasks.ListForProject(ctx, project.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

	tasks, err := env.tasks.ListForProject(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	history, err := env.projects.StatusHistory(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
	assert.EqualValues(t, 1, countRows(t, env.db, "whiteboards"))
}

func TestTaskService(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch"})
	require.NoError(t, err)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)

	_, err = env.tasks.Create(ctx, CreateTaskParams{ProjectID: project.ID, Title: "T", StartDate: end, EndDate: start})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	_, err = env.tasks.Create(ctx, CreateTaskParams{ProjectID: project.ID, Title: "T", StartDate: start, EndDate: end, Status: "PAUSED"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaskStatus)

	_, err = env.tasks.Create(ctx, CreateTaskParams{ProjectID: 999, Title: "T", StartDate: start, EndDate: end})
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

	task, err := env.tasks.Create(ctx, CreateTaskParams{
		ProjectID:   project.ID,
		Title:       "Wireframes",
		StartDate:   start,
		EndDate:     end,
		AssigneeIDs: []uint{alice.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.TaskBacklog, task.Status)

	task, err = env.tasks.UpdateStatus(ctx, task.ID, constants.TaskDone)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskDone, task.Status)

	_, err = env.tasks.UpdateStatus(ctx, task.ID, "LATER")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTaskStatus)

	_, err = env.tasks.Update(ctx, task.ID, UpdateTaskParams{EndDate: start.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	task, err = env.tasks.Update(ctx, task.ID, UpdateTaskParams{Title: "Mockups"})
	require.NoError(t, err)
	assert.Equal(t, "Mockups", task.Title)

	task, err = env.tasks.SetAssignees(ctx, task.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, task.Assignees)

	require.NoError(t, env.tasks.Delete(ctx, task.ID))
	_, err = env.tasks.Get(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestWhiteboardService(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	project, err := env.projects.Create(ctx, CreateProjectParams{Title: "Launch"})
	require.NoError(t, err)

	board, err := env.whiteboards.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(board.DrawingData))

	for _, bad := range []string{`[1,2]`, `"text"`, `null`, `{broken`} {
		_, err = env.whiteboards.Save(ctx, project.ID, []byte(bad))
		assert.ErrorIs(t, err, apperrors.ErrInvalidDrawing, bad)
	}

	board, err = env.whiteboards.Save(ctx, project.ID, []byte(`{"elements":[{"id":"a"}]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"elements":[{"id":"a"}]}`, string(board.DrawingData))

	board, err = env.whiteboards.Save(ctx, project.ID, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(board.DrawingData))

	_, err = env.whiteboards.Get(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestNotificationService(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	_, err := env.notifications.Notify(ctx, alice.ID, " ", nil)
	assert.ErrorIs(t, err, apperrors.ErrMessageRequired)

	n, err := env.notifications.Notify(ctx, alice.ID, "Deadline moved", nil)
	require.NoError(t, err)
	assert.False(t, n.Read)
	assert.False(t, n.SentSMS)

	n, err = env.notifications.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, n.Read)
	assert.False(t, n.SentSMS)

	_, err = env.notifications.MarkRead(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
