package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"project-hub.com/project-hub/internal/constants"
	model "project-hub.com/project-hub/internal/models"
)

func TestTeamMembersList(t *testing.T) {
	tests := []struct {
		name    string
		members []model.User
		want    string
	}{
		{name: "empty", members: nil, want: ""},
		{name: "single", members: []model.User{{Username: "alice"}}, want: "alice"},
		{
			name:    "several keep order",
			members: []model.User{{Username: "carol"}, {Username: "alice"}, {Username: "bob"}},
			want:    "carol, alice, bob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TeamMembersList(model.Project{TeamMembers: tt.members}))
		})
	}
}

func TestProfileRows(t *testing.T) {
	github := "alice-gh"
	profiles := []model.Profile{
		{ID: 1, User: model.User{Username: "alice", Email: "alice@example.com"}, GithubName: &github},
		{ID: 2, User: model.User{Username: "bob", Email: "bob@example.com"}},
	}

	rows := ProfileRows(profiles)
	assert.Len(t, rows, 2)
	assert.Equal(t, "alice@example.com", rows[0].Email)
	assert.Equal(t, "alice-gh", rows[0].GithubName)
	assert.Equal(t, "", rows[1].GoogleName)
	assert.Equal(t, "bob", rows[1].User)
}

func TestProjectRows(t *testing.T) {
	rows := ProjectRows([]model.Project{
		{ID: 7, Title: "Launch", Status: constants.ProjectInProgress, TeamMembers: []model.User{{Username: "a"}, {Username: "b"}}},
		{ID: 8, Title: "Solo", Status: constants.ProjectPlanning},
	})

	assert.Equal(t, "a, b", rows[0].TeamMembers)
	assert.Equal(t, constants.ProjectInProgress, rows[0].Status)
	assert.Equal(t, "", rows[1].TeamMembers)
	assert.Empty(t, ProjectRows(nil))
}
