package store

import (
	"context"
)

// schema creates the single contracts table. end_date holds YYYY-MM-DD
// text, so string comparison orders it by calendar date.
const schema = `
CREATE TABLE IF NOT EXISTS contracts (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	end_date    DATE NOT NULL
)`

// InitSchema creates the contracts table in the database at dbPath if it
// does not exist yet. Running it repeatedly leaves existing data untouched.
func InitSchema(ctx context.Context, dbPath string) error {
	db, err := openDB(ctx, dbPath)
	if err != nil {
		return &StorageError{Op: "initializing schema", Err: err}
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return &StorageError{Op: "initializing schema", Err: err}
	}
	return nil
}
