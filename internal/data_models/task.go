package dto

import model "task-tracker.com/task-tracker/pkg/models"

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// UpdateTaskRequest distinguishes omitted fields (nil) from fields set to
// their zero value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type TaskListResponse struct {
	Count int          `json:"count"`
	Tasks []model.Task `json:"tasks"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
