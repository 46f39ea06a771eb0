// Package store keeps the ordered in-memory task collection and mirrors it
// to a key-value sink after every mutation.
//
// A TaskStore is not safe for concurrent use; callers that share one must
// serialize access themselves.
package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/sink"
	model "task-tracker.com/task-tracker/pkg/models"
)

const DefaultKey = "tasks"

type TaskStore struct {
	tasks  []model.Task
	sink   sink.Sink
	codec  Codec
	key    string
	now    func() time.Time
	logger zerolog.Logger
}

type Option func(*TaskStore)

func WithKey(key string) Option {
	return func(s *TaskStore) {
		if key != "" {
			s.key = key
		}
	}
}

func WithCodec(codec Codec) Option {
	return func(s *TaskStore) {
		if codec != nil {
			s.codec = codec
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

func NewTaskStore(sk sink.Sink, opts ...Option) *TaskStore {
	s := &TaskStore{
		tasks:  []model.Task{},
		sink:   sk,
		codec:  JSONCodec{},
		key:    DefaultKey,
		now:    func() time.Time { return time.Now().UTC() },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends task to the end of the collection and persists. Ids are not
// checked for uniqueness. Zero timestamps are filled from the store clock.
func (s *TaskStore) Add(ctx context.Context, task model.Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = s.now()
	}
	if task.UpdatedAt.Before(task.CreatedAt) {
		task.UpdatedAt = task.CreatedAt
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()

	s.tasks = append(s.tasks, task)

	s.logger.Debug().
		Int64("task_id", task.ID).
		Int("count", len(s.tasks)).
		Msg("added task")

	return s.Persist(ctx)
}

// Update merges patch into the first task with the given id and refreshes
// its UpdatedAt. It returns a *errors.TaskNotFoundError when no task matches,
// leaving the collection unchanged.
func (s *TaskStore) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, apperrors.NewTaskNotFound(id)
	}

	task := s.tasks[i]
	patch.Apply(&task)

	now := s.now().UTC()
	if now.Before(task.UpdatedAt) {
		now = task.UpdatedAt
	}
	task.UpdatedAt = now
	s.tasks[i] = task

	s.logger.Debug().
		Int64("task_id", id).
		Str("status", string(task.Status)).
		Msg("updated task")

	return task, s.Persist(ctx)
}

// Delete removes every task with the given id and persists. Unknown ids are
// a no-op. It returns how many tasks were removed.
func (s *TaskStore) Delete(ctx context.Context, id int64) (int, error) {
	kept := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	s.tasks = kept

	s.logger.Debug().
		Int64("task_id", id).
		Int("removed", removed).
		Msg("deleted task")

	return removed, s.Persist(ctx)
}

// GetByID returns the first task with the given id.
func (s *TaskStore) GetByID(id int64) (model.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *TaskStore) GetByStatus(status constants.TaskStatus) []model.Task {
	return FilterByField(s.tasks, taskStatus, status)
}

// All returns a copy of the collection in insertion order.
func (s *TaskStore) All() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Persist writes the whole collection under the store key, replacing any
// previous value.
func (s *TaskStore) Persist(ctx context.Context) error {
	data, err := s.codec.Encode(s.tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}

	if err := s.sink.Set(ctx, s.key, data); err != nil {
		s.logger.Error().
			Err(err).
			Str("key", s.key).
			Msg("failed to persist tasks")
		return fmt.Errorf("persist tasks: %w", err)
	}

	return nil
}

// Restore replaces the collection with the value stored under the store key.
// A missing key leaves the collection as it is.
func (s *TaskStore) Restore(ctx context.Context) error {
	data, ok, err := s.sink.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("read tasks: %w", err)
	}
	if !ok {
		s.logger.Debug().
			Str("key", s.key).
			Msg("nothing to restore")
		return nil
	}

	tasks, err := s.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("decode tasks: %w", err)
	}
	s.tasks = tasks

	s.logger.Info().
		Str("key", s.key).
		Int("count", len(tasks)).
		Msg("restored tasks")
	return nil
}

func (s *TaskStore) indexOf(id int64) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool {
		return t.ID == id
	})
}

func taskStatus(t model.Task) constants.TaskStatus {
	return t.Status
}
