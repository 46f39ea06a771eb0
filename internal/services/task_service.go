package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/store"
	model "task-tracker.com/task-tracker/pkg/models"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    constants.TaskPriority
	Status      constants.TaskStatus
}

// ListFilter narrows ListTasks. Empty fields match everything.
type ListFilter struct {
	Status   constants.TaskStatus
	Priority constants.TaskPriority
}

// TaskService is the entry point used by the HTTP API and the CLI. It owns id
// assignment and input validation, and serializes access to the store.
type TaskService struct {
	mu     sync.Mutex
	store  *store.TaskStore
	logger zerolog.Logger
	now    func() time.Time
	lastID int64
}

func NewTaskService(logger zerolog.Logger, taskStore *store.TaskStore) *TaskService {
	return &TaskService{
		store:  taskStore,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Restore loads the persisted collection into the store and makes sure new
// ids sort after every restored one.
func (s *TaskService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Restore(ctx); err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to restore tasks")
		return err
	}

	for _, t := range s.store.All() {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := in.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	status := in.Status
	if status == "" {
		status = constants.StatusPending
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := model.Task{
		ID:          s.nextID(now),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Add(ctx, task); err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to add task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("priority", string(task.Priority)).
		Msg("created task")
	return &task, nil
}

func (s *TaskService) GetTask(id int64) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.GetByID(id)
	if !ok {
		return nil, apperrors.NewTaskNotFound(id)
	}
	return &task, nil
}

func (s *TaskService) ListTasks(filter ListFilter) ([]model.Task, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var tasks []model.Task
	if filter.Status != "" {
		tasks = s.store.GetByStatus(filter.Status)
	} else {
		tasks = s.store.All()
	}
	if filter.Priority != "" {
		tasks = store.FilterByField(tasks, taskPriority, filter.Priority)
	}
	return tasks, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch model.TaskPatch) (*model.Task, error) {
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Str("status", string(task.Status)).
		Msg("updated task")
	return &task, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status constants.TaskStatus) (*model.Task, error) {
	return s.UpdateTask(ctx, id, model.TaskPatch{Status: &status})
}

// DeleteTask removes every task with the given id. Deleting an unknown id is
// not an error.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return 0, err
	}

	s.logger.Info().
		Int64("task_id", id).
		Int("removed", removed).
		Msg("deleted task")
	return removed, nil
}

// nextID derives the id from the creation time in milliseconds, bumped past
// the last id handed out so rapid creates stay distinct.
func (s *TaskService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func validatePatch(patch *model.TaskPatch) error {
	if patch.Empty() {
		return apperrors.ErrEmptyPatch
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return apperrors.ErrTitleRequired
		}
		patch.Title = &title
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return apperrors.ErrInvalidPriority
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}

func taskPriority(t model.Task) constants.TaskPriority {
	return t.Priority
}
