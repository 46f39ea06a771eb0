package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

func TestNewCodec(t *testing.T) {
	c, err := NewCodec("")
	require.NoError(t, err)
	assert.IsType(t, JSONCodec{}, c)

	c, err = NewCodec("YAML")
	require.NoError(t, err)
	assert.IsType(t, YAMLCodec{}, c)

	_, err = NewCodec("toml")
	assert.Error(t, err)
}

func TestCodecs_EmptyCollection(t *testing.T) {
	for _, c := range []Codec{JSONCodec{}, YAMLCodec{}} {
		data, err := c.Encode(nil)
		require.NoError(t, err)

		tasks, err := c.Decode(data)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)

		tasks, err = c.Decode("")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	}
}

func TestJSONCodec_OmitsEmptyDescription(t *testing.T) {
	data, err := JSONCodec{}.Encode([]model.Task{{ID: 1, Title: "a", Priority: constants.PriorityLow, Status: constants.StatusPending}})
	require.NoError(t, err)

	assert.NotContains(t, data, "description")
	assert.Contains(t, data, `"created_at":"0001-01-01T00:00:00Z"`)
}

func TestYAMLCodec_FieldNames(t *testing.T) {
	data, err := YAMLCodec{}.Encode([]model.Task{{ID: 9, Title: "a", Description: "b", Priority: constants.PriorityHigh, Status: constants.StatusInProgress}})
	require.NoError(t, err)

	assert.Contains(t, data, "id: 9")
	assert.Contains(t, data, "description: b")
	assert.Contains(t, data, "status: in_progress")
	assert.Contains(t, data, "updated_at:")
}
