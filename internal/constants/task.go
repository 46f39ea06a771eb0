package constants

import "strings"

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

var (
	Statuses   = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
	Priorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParseStatus accepts the canonical names plus "in-progress" and "done",
// case-insensitively.
func ParseStatus(s string) (TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending, true
	case "in_progress", "in-progress", "inprogress":
		return StatusInProgress, true
	case "completed", "done":
		return StatusCompleted, true
	}
	return "", false
}

func ParsePriority(s string) (TaskPriority, bool) {
	p := TaskPriority(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}
