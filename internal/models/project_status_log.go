package model

import (
	"fmt"
	"time"

	"project-hub.com/project-hub/internal/constants"
)

// ProjectStatusLog rows are append-only: every column is create-only.
type ProjectStatusLog struct {
	ID        uint                    `gorm:"primaryKey" json:"id"`
	ProjectID uint                    `gorm:"<-:create;not null;index" json:"project_id"`
	Project   *Project                `json:"-"`
	OldStatus constants.ProjectStatus `gorm:"<-:create;type:varchar(20);not null" json:"old_status"`
	NewStatus constants.ProjectStatus `gorm:"<-:create;type:varchar(20);not null" json:"new_status"`
	ChangedAt time.Time               `gorm:"<-:create;autoCreateTime" json:"changed_at"`
}

func (l ProjectStatusLog) String() string {
	title := ""
	if l.Project != nil {
		title = l.Project.Title
	}
	return fmt.Sprintf("%s: %s -> %s at %s", title, l.OldStatus, l.NewStatus, l.ChangedAt.Format(time.RFC3339))
}
