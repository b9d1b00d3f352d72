package model

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      *string   `gorm:"size:200" json:"link,omitempty"`
	CreatedAt time.Time `gorm:"<-:create" json:"created_at"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	SentSMS   bool      `gorm:"column:sent_sms;not null;default:false" json:"sent_sms"`
}

func (n Notification) String() string {
	username := ""
	if n.User != nil {
		username = n.User.Username
	}
	msg := []rune(n.Message)
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return "Notification for " + username + ": " + string(msg)
}
