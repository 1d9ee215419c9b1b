package models

// TaskStatus is the board column a task sits in. Values are the strings the
// frontend renders as column headers.
type TaskStatus string

const (
	StatusToDo           TaskStatus = "To Do"
	StatusWorkInProgress TaskStatus = "Work In Progress"
	StatusUnderReview    TaskStatus = "Under Review"
	StatusCompleted      TaskStatus = "Completed"
)

// Valid reports whether s is one of the known board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusWorkInProgress, StatusUnderReview, StatusCompleted:
		return true
	}
	return false
}

// TaskPriority orders tasks inside a column.
type TaskPriority string

const (
	PriorityUrgent  TaskPriority = "Urgent"
	PriorityHigh    TaskPriority = "High"
	PriorityMedium  TaskPriority = "Medium"
	PriorityLow     TaskPriority = "Low"
	PriorityBacklog TaskPriority = "Backlog"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow, PriorityBacklog:
		return true
	}
	return false
}
