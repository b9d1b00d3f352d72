package constants

import "strings"

// TaskStatus is stored as its code; Label is what the admin panel shows.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "BACKLOG"
	TaskDoing      TaskStatus = "DOING"
	TaskOnHold     TaskStatus = "ON_HOLD"
	TaskDone       TaskStatus = "DONE"
	TaskUnfinished TaskStatus = "UNFINISHED"
)

var taskStatusLabels = map[TaskStatus]string{
	TaskBacklog:    "Backlog",
	TaskDoing:      "Doing",
	TaskOnHold:     "On Hold",
	TaskDone:       "Done",
	TaskUnfinished: "Unfinished",
}

func (s TaskStatus) IsValid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

func (s TaskStatus) Label() string {
	return taskStatusLabels[s]
}

// ParseTaskStatus accepts either the stored code or the display label.
func ParseTaskStatus(v string) (TaskStatus, bool) {
	v = strings.TrimSpace(v)
	if s := TaskStatus(strings.ToUpper(v)); s.IsValid() {
		return s, true
	}
	for code, label := range taskStatusLabels {
		if strings.EqualFold(label, v) {
			return code, true
		}
	}
	return "", false
}
