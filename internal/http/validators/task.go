package validators

import (
	"strings"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (services.CreateTaskInput, error) {
	in := services.CreateTaskInput{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
	}
	if in.Title == "" {
		return in, apperrors.ErrTitleRequired
	}

	if r.Priority != "" {
		p, ok := constants.ParsePriority(r.Priority)
		if !ok {
			return in, apperrors.ErrInvalidPriority
		}
		in.Priority = p
	}

	if r.Status != "" {
		s, ok := constants.ParseStatus(r.Status)
		if !ok {
			return in, apperrors.ErrInvalidStatus
		}
		in.Status = s
	}

	return in, nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) (model.TaskPatch, error) {
	patch := model.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
	}

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return patch, apperrors.ErrTitleRequired
	}

	if r.Priority != nil {
		p, ok := constants.ParsePriority(*r.Priority)
		if !ok {
			return patch, apperrors.ErrInvalidPriority
		}
		patch.Priority = &p
	}

	if r.Status != nil {
		s, ok := constants.ParseStatus(*r.Status)
		if !ok {
			return patch, apperrors.ErrInvalidStatus
		}
		patch.Status = &s
	}

	if patch.Empty() {
		return patch, apperrors.ErrEmptyPatch
	}
	return patch, nil
}

// ValidateListQuery parses the optional status and priority filters.
func ValidateListQuery(status, priority string) (services.ListFilter, error) {
	var filter services.ListFilter

	if status != "" {
		s, ok := constants.ParseStatus(status)
		if !ok {
			return filter, apperrors.ErrInvalidStatus
		}
		filter.Status = s
	}

	if priority != "" {
		p, ok := constants.ParsePriority(priority)
		if !ok {
			return filter, apperrors.ErrInvalidPriority
		}
		filter.Priority = p
	}

	return filter, nil
}
