package factory

import (
	"time"

	"github.com/kefmc/tournament-engine/internal/dependencies/mocks"
	"github.com/kefmc/tournament-engine/internal/storage/memory"
	"github.com/kefmc/tournament-engine/internal/telemetry"
	"github.com/kefmc/tournament-engine/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MemoryStore *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithCacheSize(DefaultEngineCacheSize)
}

// NewTestAppWithCacheSize is NewTestApp with a custom engine cache bound
func NewTestAppWithCacheSize(size int) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger(), telemetry.NewNopProvider(), size)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MemoryStore: store,
	}
}

// MustEngine returns the engine for device and panics on failure
func (t *TestApp) MustEngine(device string) *Engine {
	e, err := t.Engine(device)
	if err != nil {
		panic(err)
	}
	return e
}
