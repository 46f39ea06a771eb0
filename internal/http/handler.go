package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	in, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), in)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter, err := validators.ValidateListQuery(c.QueryParam("status"), c.QueryParam("priority"))
	if err != nil {
		return httpError(err)
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.TaskListResponse{
		Count: len(tasks),
		Tasks: tasks,
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	patch, err := validators.ValidateUpdateTaskRequest(&req)
	if err != nil {
		return httpError(err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	if _, err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.ErrInvalidTaskID
	}
	return id, nil
}

func httpError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), apperrors.Message(err)).SetInternal(err)
}
