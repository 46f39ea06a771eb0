package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskNotFoundError(t *testing.T) {
	err := NewTaskNotFound(42)

	assert.True(t, errors.Is(err, ErrTaskNotFound))
	assert.Equal(t, "task 42 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, "task 42 not found", Message(err))

	var nf *TaskNotFoundError
	assert.True(t, errors.As(fmt.Errorf("update: %w", err), &nf))
	assert.Equal(t, int64(42), nf.ID)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrTitleRequired))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("wrapped: %w", ErrInvalidStatus)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.Equal(t, "Internal Server Error", Message(errors.New("boom")))
	assert.Equal(t, "title is required", Message(ErrTitleRequired))
}
