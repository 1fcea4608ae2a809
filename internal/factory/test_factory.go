package factory

import (
	"time"

	"github.com/ruzibekov24/farosat-gramm-bot/internal/dependencies/mocks"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/storage/memory"
	"github.com/ruzibekov24/farosat-gramm-bot/internal/testutil"
)

// TestAdminID is the admin user id wired into test apps
const TestAdminID int64 = 42

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, TestAdminID, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
