package errors

import "net/http"

var (
	ErrTitleRequired = &Exception{
		Message:    "title is required",
		StatusCode: http.StatusBadRequest,
	}

	ErrInvalidPriority = &Exception{
		Message:    "priority must be one of low, medium, high",
		StatusCode: http.StatusBadRequest,
	}

	ErrInvalidStatus = &Exception{
		Message:    "status must be one of pending, in_progress, completed",
		StatusCode: http.StatusBadRequest,
	}

	ErrEmptyPatch = &Exception{
		Message:    "at least one field must be supplied",
		StatusCode: http.StatusBadRequest,
	}
)
