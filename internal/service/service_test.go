package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptstudio/internal/service"
)

// ─────────────────────────────────────────────────────────────
// RunningJobsGuard tests
// ─────────────────────────────────────────────────────────────

func TestRunningGuard_TryLock(t *testing.T) {
	var g service.ExportedRunningGuard

	require.True(t, g.TryLock("job-1"), "first TryLock should succeed")
	assert.False(t, g.TryLock("job-1"), "second TryLock for the same key should fail")
	assert.True(t, g.Busy("job-1"))
	require.True(t, g.TryLock("job-2"))

	g.Unlock("job-1")
	g.Unlock("job-2")
	assert.False(t, g.Busy("job-1"))

	require.True(t, g.TryLock("job-1"), "TryLock should succeed after unlock")
	g.Unlock("job-1")
}

func TestRunningGuard_WaitAll(t *testing.T) {
	var g service.ExportedRunningGuard
	require.True(t, g.TryLock("job-a"))

	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Unlock("job-a")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, g.WaitAll(ctx))
}

func TestRunningGuard_WaitAllHonoursContext(t *testing.T) {
	var g service.ExportedRunningGuard
	require.True(t, g.TryLock("stuck"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.WaitAll(ctx), context.DeadlineExceeded)

	g.Unlock("stuck")
	assert.NoError(t, g.WaitAll(context.Background()))
}

// ─────────────────────────────────────────────────────────────
// Emitter tests
// ─────────────────────────────────────────────────────────────

func TestMockEmitter_RecordsEvents(t *testing.T) {
	m := &service.MockEmitter{}
	ctx := context.Background()

	m.Emit(ctx, "test:event", map[string]string{"foo": "bar"})
	m.Emit(ctx, "test:event2", nil)

	assert.Equal(t, []string{"test:event", "test:event2"}, m.Names())
	last, ok := m.Last()
	require.True(t, ok)
	assert.Nil(t, last.Data)
}

func TestMultiEmitter_FansOut(t *testing.T) {
	a, b := &service.MockEmitter{}, &service.MockEmitter{}
	multi := service.MultiEmitter{a, nil, b, service.NopEmitter{}}

	multi.Emit(context.Background(), "x", 1)

	assert.Equal(t, []string{"x"}, a.Names())
	assert.Equal(t, []string{"x"}, b.Names())
}
