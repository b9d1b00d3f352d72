package model

import "time"

// User is the identity an external auth system owns. Only the columns the
// rest of the schema references are kept here.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:254;not null;default:''" json:"email"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
}

func (u User) String() string {
	return u.Username
}
