package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/internal/sink"
	"task-tracker.com/task-tracker/internal/store"
	model "task-tracker.com/task-tracker/pkg/models"
)

func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	taskStore := store.NewTaskStore(sink.NewMemorySink())
	service := services.NewTaskService(zerolog.Nop(), taskStore)

	e := echo.New()
	Register(e, NewHandler(service), zerolog.Nop(), 1000)
	return e
}

func request(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createTask(t *testing.T, e *echo.Echo, body string) model.Task {
	t.Helper()
	rec := request(e, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var task model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	return task
}

func TestHandler_CreateAndGet(t *testing.T) {
	e := setupServer(t)

	task := createTask(t, e, `{"title":"Test Task","priority":"high"}`)
	assert.Equal(t, "Test Task", task.Title)
	assert.Equal(t, constants.PriorityHigh, task.Priority)
	assert.Equal(t, constants.StatusPending, task.Status)

	rec := request(e, http.MethodGet, "/tasks/"+strconv.FormatInt(task.ID, 10), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var fetched model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, task.ID, fetched.ID)
}

func TestHandler_CreateValidation(t *testing.T) {
	e := setupServer(t)

	rec := request(e, http.MethodPost, "/tasks", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")

	rec = request(e, http.MethodPost, "/tasks", `{"title":"a","priority":"urgent"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(e, http.MethodPost, "/tasks", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON payload")
}

func TestHandler_GetErrors(t *testing.T) {
	e := setupServer(t)

	rec := request(e, http.MethodGet, "/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(e, http.MethodGet, "/tasks/12345", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "task 12345 not found")
}

func TestHandler_ListWithFilters(t *testing.T) {
	e := setupServer(t)
	createTask(t, e, `{"title":"a","status":"pending"}`)
	createTask(t, e, `{"title":"b","status":"completed","priority":"low"}`)
	createTask(t, e, `{"title":"c","status":"pending","priority":"low"}`)

	var list dto.TaskListResponse
	rec := request(e, http.MethodGet, "/tasks?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
	assert.Equal(t, "a", list.Tasks[0].Title)
	assert.Equal(t, "c", list.Tasks[1].Title)

	rec = request(e, http.MethodGet, "/tasks?priority=low&status=pending", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	rec = request(e, http.MethodGet, "/tasks?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateTask(t *testing.T) {
	e := setupServer(t)
	task := createTask(t, e, `{"title":"Test Task","priority":"high","description":"d"}`)
	path := "/tasks/" + strconv.FormatInt(task.ID, 10)

	rec := request(e, http.MethodPatch, path, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, constants.StatusCompleted, updated.Status)
	assert.Equal(t, "Test Task", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.Equal(t, constants.PriorityHigh, updated.Priority)

	rec = request(e, http.MethodPatch, path, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = request(e, http.MethodPatch, "/tasks/1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteTask(t *testing.T) {
	e := setupServer(t)
	task := createTask(t, e, `{"title":"a"}`)
	path := "/tasks/" + strconv.FormatInt(task.ID, 10)

	rec := request(e, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(e, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = request(e, http.MethodDelete, "/tasks/99", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
