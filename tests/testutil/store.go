package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/contract-tracker/internal/store"
)

// NewTestStore creates a SQLiteStore backed by a fresh file in a temporary
// directory. The store opens a connection per call, so an in-memory
// database would not survive between operations.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "contracts.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	return s
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
