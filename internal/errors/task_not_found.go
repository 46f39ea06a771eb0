package errors

import (
	"fmt"
	"net/http"
)

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

// TaskNotFoundError is returned when an update targets an id the store does
// not hold. It matches ErrTaskNotFound with errors.Is.
type TaskNotFoundError struct {
	ID int64
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

func (e *TaskNotFoundError) Unwrap() error {
	return ErrTaskNotFound
}

func NewTaskNotFound(id int64) error {
	return &TaskNotFoundError{ID: id}
}
