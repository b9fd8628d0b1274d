package memorystore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"taskboard/internal/ids"
	"taskboard/internal/model"
)

// TaskStore keeps tasks in insertion order. Lookups are linear scans.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []model.Task
	seq   *ids.Sequence
	now   func() time.Time
}

// NewTaskStore returns an empty store whose first id is 1.
func NewTaskStore(now func() time.Time) *TaskStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &TaskStore{
		tasks: make([]model.Task, 0),
		seq:   ids.NewSequence(1),
		now:   now,
	}
}

// NewSeededTaskStore returns a store holding the fixture tasks, with the
// next id following the highest fixture id.
func NewSeededTaskStore(now func() time.Time) *TaskStore {
	s := NewTaskStore(now)
	seed := SeedTasks(s.now())
	s.tasks = append(s.tasks, seed...)
	s.seq = ids.NewSequence(len(seed) + 1)
	return s
}

func (s *TaskStore) Create(title string) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Task{
		ID:        s.seq.Next(),
		Title:     title,
		Completed: false,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, t)
	return t
}

// List returns a copy of all tasks, most recently created first. Tasks
// sharing a creation time keep their insertion order.
func (s *TaskStore) List() []model.Task {
	s.mu.RLock()
	out := slices.Clone(s.tasks)
	s.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b model.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func (s *TaskStore) Get(id int) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}
	return s.tasks[i], nil
}

// Update merges the provided fields into the stored task. ID and CreatedAt
// are never touched.
func (s *TaskStore) Update(id int, changes model.Changes) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, notFound(id)
	}

	t := s.tasks[i]
	if changes.Title != nil {
		t.Title = *changes.Title
	}
	if changes.Completed != nil {
		t.Completed = *changes.Completed
	}
	s.tasks[i] = t
	return t, nil
}

func (s *TaskStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if len(s.tasks) == before {
		return notFound(id)
	}
	return nil
}

func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// PingContext reports readiness. The in-memory store is always ready unless
// the context is already done.
func (s *TaskStore) PingContext(ctx context.Context) error {
	return ctx.Err()
}

func (s *TaskStore) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func notFound(id int) error {
	return fmt.Errorf("task %d: %w", id, model.ErrNotFound)
}
