package constants

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

var ProjectStatuses = []ProjectStatus{ProjectPlanning, ProjectInProgress, ProjectCompleted}

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}
