package model

import (
	"time"

	"gorm.io/datatypes"
)

type Whiteboard struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"not null;uniqueIndex" json:"project_id"`
	Project     *Project       `json:"-"`
	DrawingData datatypes.JSON `gorm:"not null" json:"drawing_data"`
	LastUpdated time.Time      `gorm:"autoUpdateTime" json:"last_updated"`
}

func EmptyDrawing() datatypes.JSON {
	return datatypes.JSON(`{}`)
}

func (w Whiteboard) String() string {
	if w.Project == nil {
		return "Whiteboard"
	}
	return "Whiteboard for " + w.Project.Title
}
