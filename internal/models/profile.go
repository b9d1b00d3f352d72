package model

import "project-hub.com/project-hub/internal/constants"

type Profile struct {
	ID       uint              `gorm:"primaryKey" json:"id"`
	UserID   uint              `gorm:"not null;uniqueIndex" json:"user_id"`
	User     User              `json:"-"`
	Gender   *constants.Gender `gorm:"size:10" json:"gender,omitempty"`
	Country  *string           `gorm:"size:100" json:"country,omitempty"`
	Phone    *string           `gorm:"size:15" json:"phone,omitempty"`
	Language *string           `gorm:"size:50" json:"language,omitempty"`

	GoogleEmail   *string `gorm:"size:254" json:"google_email,omitempty"`
	GoogleName    *string `gorm:"size:255" json:"google_name,omitempty"`
	GithubEmail   *string `gorm:"size:254" json:"github_email,omitempty"`
	GithubName    *string `gorm:"size:255" json:"github_name,omitempty"`
	FacebookEmail *string `gorm:"size:254" json:"facebook_email,omitempty"`
	FacebookName  *string `gorm:"size:255" json:"facebook_name,omitempty"`

	ProfilePicture *string `gorm:"size:200" json:"profile_picture,omitempty"`
}

func (p Profile) String() string {
	return p.User.Username
}
