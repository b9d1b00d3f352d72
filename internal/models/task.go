package model

import (
	"encoding/json"
	"time"

	"project-hub.com/project-hub/internal/constants"
)

type Task struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	Title     string               `gorm:"size:255;not null" json:"title"`
	ProjectID uint                 `gorm:"not null;index" json:"project_id"`
	Project   *Project             `json:"-"`
	Assignees []User               `gorm:"many2many:task_assignees" json:"assigned_to"`
	StartDate time.Time            `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time            `gorm:"type:date;not null" json:"end_date"`
	Status    constants.TaskStatus `gorm:"type:varchar(20);not null;default:'BACKLOG'" json:"status"`
	CreatedAt time.Time            `gorm:"<-:create" json:"created_at"`
}

func (t Task) String() string {
	return t.Title
}

// MarshalJSON adds the display label next to the stored status code.
func (t Task) MarshalJSON() ([]byte, error) {
	type task Task
	return json.Marshal(struct {
		task
		StatusLabel string `json:"status_label"`
	}{
		task:        task(t),
		StatusLabel: t.Status.Label(),
	})
}
