package task_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/latency"
	"taskboard/internal/model"
	"taskboard/internal/store/memorystore"
	"taskboard/internal/task"
)

type stepClock struct {
	now time.Time
}

// Now advances one millisecond per call so every created task is newer.
func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newSeededService(t *testing.T) (*task.Service, *memorystore.TaskStore) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC)}
	st := memorystore.NewSeededTaskStore(clock.Now)
	return task.NewService(st, nil), st
}

func TestScenario_SeededStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	created, err := svc.Create(ctx, "Write tests")
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Write tests", created.Title)
	assert.False(t, created.Completed)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)
	assert.Equal(t, 6, list[0].ID)

	updated, err := svc.Update(ctx, 6, model.Changes{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	res, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, res.Success)

	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for _, tk := range list {
		assert.NotEqual(t, 3, tk.ID)
	}

	_, err = svc.Delete(ctx, 3)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreate_FreshTask(t *testing.T) {
	ctx := context.Background()
	st := memorystore.NewTaskStore(nil)
	svc := task.NewService(st, nil)

	before := time.Now().UTC()
	created, err := svc.Create(ctx, "Buy milk")
	require.NoError(t, err)

	assert.False(t, created.Completed)
	assert.False(t, created.CreatedAt.Before(before), "created_at %s before %s", created.CreatedAt, before)

	other, err := svc.Create(ctx, "Buy bread")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t\n"} {
		svc, st := newSeededService(t)

		_, err := svc.Create(ctx, title)
		if !errors.Is(err, model.ErrValidation) {
			t.Fatalf("title=%q: expected ErrValidation, got %v", title, err)
		}
		assert.ErrorIs(t, err, task.ErrEmptyTitle)
		assert.Equal(t, "task title cannot be empty", err.Error())
		assert.Equal(t, 5, st.Len())
	}
}

func TestCreate_KeepsTitleAsGiven(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	created, err := svc.Create(ctx, "  Write tests  ")
	require.NoError(t, err)
	assert.Equal(t, "  Write tests  ", created.Title)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "  Write tests  ", got.Title)
}

func TestUpdate_AllowsEmptyTitle(t *testing.T) {
	svc, _ := newSeededService(t)

	updated, err := svc.Update(context.Background(), 4, model.Changes{Title: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, st := newSeededService(t)

	_, err := svc.Update(context.Background(), 99, model.Changes{Completed: ptr(true)})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 5, st.Len())
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSeededService(t)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Set up the project structure", got.Title)

	_, err = svc.Get(ctx, 100)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLatency_CommitsBeforeWaiting(t *testing.T) {
	st := memorystore.NewSeededTaskStore(nil)
	sim := latency.New(latency.Config{Min: time.Minute, Max: 2 * time.Minute}, rand.New(rand.NewSource(1)))
	svc := task.NewService(st, sim)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Create(ctx, "Abandoned")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the caller gave up but the task is stored
	assert.Equal(t, 6, st.Len())
	got, err := st.Get(6)
	require.NoError(t, err)
	assert.Equal(t, "Abandoned", got.Title)
}

func TestLatency_Applied(t *testing.T) {
	st := memorystore.NewSeededTaskStore(nil)
	cfg := latency.Config{Min: 15 * time.Millisecond, Max: 20 * time.Millisecond}
	svc := task.NewService(st, latency.New(cfg, rand.New(rand.NewSource(3))))

	start := time.Now()
	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), cfg.Min)
}

func ptr[T any](v T) *T { return &v }
