package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func str(s string) *string { return &s }

func TestValidateCreateTaskRequest(t *testing.T) {
	in, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: " a ", Priority: "HIGH", Status: "in-progress"})
	require.NoError(t, err)
	assert.Equal(t, "a", in.Title)
	assert.Equal(t, constants.PriorityHigh, in.Priority)
	assert.Equal(t, constants.StatusInProgress, in.Status)

	in, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "a"})
	require.NoError(t, err)
	assert.Empty(t, in.Priority)

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{})
	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "a", Priority: "p1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPriority)

	_, err = ValidateCreateTaskRequest(&dto.CreateTaskRequest{Title: "a", Status: "paused"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	patch, err := ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Status: str("done")})
	require.NoError(t, err)
	require.NotNil(t, patch.Status)
	assert.Equal(t, constants.StatusCompleted, *patch.Status)
	assert.Nil(t, patch.Title)
	assert.Nil(t, patch.Priority)

	patch, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Description: str("")})
	require.NoError(t, err)
	require.NotNil(t, patch.Description)

	_, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{})
	assert.ErrorIs(t, err, apperrors.ErrEmptyPatch)

	_, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Title: str("")})
	assert.ErrorIs(t, err, apperrors.ErrTitleRequired)

	_, err = ValidateUpdateTaskRequest(&dto.UpdateTaskRequest{Priority: str("")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPriority)
}

func TestValidateListQuery(t *testing.T) {
	f, err := ValidateListQuery("", "")
	require.NoError(t, err)
	assert.Empty(t, f.Status)

	f, err = ValidateListQuery("pending", "low")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, f.Status)
	assert.Equal(t, constants.PriorityLow, f.Priority)

	_, err = ValidateListQuery("x", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}
