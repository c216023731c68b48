package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/nhle/contract-tracker/internal/model"
)

// busyTimeoutMS bounds how long a statement waits on a locked file.
const busyTimeoutMS = 5000

// SQLiteStore implements the Store interface using a local SQLite file.
// It keeps no connection open between calls: every operation opens the
// file, runs one statement and closes it again.
type SQLiteStore struct {
	path string
	log  zerolog.Logger
}

// NewSQLiteStore prepares a store backed by the SQLite file at dbPath,
// creating the file and the contracts table if needed.
func NewSQLiteStore(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	if err := InitSchema(context.Background(), dbPath); err != nil {
		return nil, fmt.Errorf("opening contracts store %s: %w", dbPath, err)
	}

	return &SQLiteStore{
		path: dbPath,
		log:  log.With().Str("component", "store").Logger(),
	}, nil
}

// Path returns the database file backing the store.
func (s *SQLiteStore) Path() string {
	return s.path
}

// openDB opens a single-connection handle on the file at path and checks
// that it is usable.
func openDB(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to sqlite db: %w", err)
	}

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeoutMS)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return db, nil
}

// withDB runs fn against a freshly opened connection and closes it when fn
// returns. Failures are reported as *StorageError tagged with op.
func (s *SQLiteStore) withDB(ctx context.Context, op string, fn func(db *sqlx.DB) error) error {
	start := time.Now()

	db, err := openDB(ctx, s.path)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("acquiring connection")
		return &StorageError{Op: op, Err: err}
	}
	defer db.Close()

	if err := fn(db); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("statement failed")
		return &StorageError{Op: op, Err: err}
	}

	s.log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Msg("statement done")
	return nil
}

// sqlDate scans an end_date column. The driver may hand back the stored
// text or, for DATE columns, an already parsed time.Time.
type sqlDate struct {
	time.Time
}

// Scan implements sql.Scanner.
func (d *sqlDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = model.Today(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported end_date type %T", src)
	}
}

func (d *sqlDate) parse(s string) error {
	// Tolerate a time suffix written by other tools.
	if len(s) > len(model.DateLayout) {
		s = s[:len(model.DateLayout)]
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer, storing the date as YYYY-MM-DD text.
func (d sqlDate) Value() (driver.Value, error) {
	return model.FormatDate(d.Time), nil
}
