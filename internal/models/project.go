package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"project-hub.com/project-hub/internal/constants"
)

// ExcalidrawRoomURL is the collaboration link template. Consumers parse it,
// so the format must not change.
const ExcalidrawRoomURL = "https://excalidraw.com/#room=%s"

type Project struct {
	ID             uint                    `gorm:"primaryKey" json:"id"`
	Title          string                  `gorm:"size:255;not null" json:"title"`
	TeamMembers    []User                  `gorm:"many2many:project_team_members" json:"team_members"`
	Status         constants.ProjectStatus `gorm:"type:varchar(20);not null;default:'Planning'" json:"status"`
	ExcalidrawLink *string                 `gorm:"size:200" json:"excalidraw_link"`
	RoomID         *string                 `gorm:"size:255;uniqueIndex" json:"room_id"`
	CreatedAt      time.Time               `gorm:"<-:create" json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func (p Project) String() string {
	return p.Title
}

func ExcalidrawLink(roomID string) string {
	return fmt.Sprintf(ExcalidrawRoomURL, roomID)
}

// EnsureRoomAndLink fills in a missing room id and a missing link before the
// project is written. Values already present are never replaced, so a second
// call leaves the project unchanged.
func EnsureRoomAndLink(p *Project) *Project {
	return ensureRoomAndLink(p, uuid.NewString)
}

func ensureRoomAndLink(p *Project, newRoomID func() string) *Project {
	if p.RoomID == nil || *p.RoomID == "" {
		roomID := newRoomID()
		p.RoomID = &roomID
	}
	if p.ExcalidrawLink == nil || *p.ExcalidrawLink == "" {
		link := ExcalidrawLink(*p.RoomID)
		p.ExcalidrawLink = &link
	}
	return p
}
