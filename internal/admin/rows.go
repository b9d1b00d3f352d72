package admin

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"project-hub.com/project-hub/internal/constants"
	model "project-hub.com/project-hub/internal/models"
)

// ProfileRow is one line of the profile list. Email comes from the linked
// user, not from any of the social accounts.
type ProfileRow struct {
	ID            uint   `json:"id"`
	User          string `json:"user"`
	Email         string `json:"email"`
	GoogleName    string `json:"google_name"`
	GithubName    string `json:"github_name"`
	FacebookName  string `json:"facebook_name"`
	FacebookEmail string `json:"facebook_email"`
}

type ProjectRow struct {
	ID          uint                    `json:"id"`
	Title       string                  `json:"title"`
	Status      constants.ProjectStatus `json:"status"`
	TeamMembers string                  `json:"team_members"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

func NewProfileRow(p model.Profile) ProfileRow {
	return ProfileRow{
		ID:            p.ID,
		User:          p.User.Username,
		Email:         p.User.Email,
		GoogleName:    lo.FromPtr(p.GoogleName),
		GithubName:    lo.FromPtr(p.GithubName),
		FacebookName:  lo.FromPtr(p.FacebookName),
		FacebookEmail: lo.FromPtr(p.FacebookEmail),
	}
}

// ProfileRows keeps the input order; sorting by email happens in the query.
func ProfileRows(profiles []model.Profile) []ProfileRow {
	return lo.Map(profiles, func(p model.Profile, _ int) ProfileRow {
		return NewProfileRow(p)
	})
}

func NewProjectRow(p model.Project) ProjectRow {
	return ProjectRow{
		ID:          p.ID,
		Title:       p.Title,
		Status:      p.Status,
		TeamMembers: TeamMembersList(p),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ProjectRows(projects []model.Project) []ProjectRow {
	return lo.Map(projects, func(p model.Project, _ int) ProjectRow {
		return NewProjectRow(p)
	})
}

// TeamMembersList joins member usernames with ", " in the order they were
// loaded. An empty team gives "".
func TeamMembersList(p model.Project) string {
	return strings.Join(lo.Map(p.TeamMembers, func(u model.User, _ int) string {
		return u.Username
	}), ", ")
}
