package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/contract-tracker/internal/model"
)

// contractRow is the on-disk shape of a contract.
type contractRow struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	EndDate     sqlDate `db:"end_date"`
}

func (r contractRow) contract() model.Contract {
	return model.Contract{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		EndDate:     r.EndDate.Time,
	}
}

// dueRow is the on-disk shape of a reminder line.
type dueRow struct {
	Name    string  `db:"name"`
	EndDate sqlDate `db:"end_date"`
}

// validateDraft rejects drafts without a name or an end date. An empty
// description is allowed.
func validateDraft(d model.Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if d.EndDate.IsZero() {
		return &ValidationError{Field: "end_date", Message: "is required"}
	}
	return nil
}

// CreateContract inserts a new contract. SQLite assigns the ID.
func (s *SQLiteStore) CreateContract(ctx context.Context, d model.Draft) (model.Contract, error) {
	if err := validateDraft(d); err != nil {
		return model.Contract{}, err
	}

	var id int64
	err := s.withDB(ctx, "creating contract", func(db *sqlx.DB) error {
		result, err := db.ExecContext(ctx,
			"INSERT INTO contracts (name, description, end_date) VALUES (?, ?, ?)",
			d.Name, d.Description, sqlDate{d.EndDate},
		)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return model.Contract{}, err
	}

	s.log.Info().Int64("id", id).Str("name", d.Name).Msg("contract created")
	return model.Contract{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		EndDate:     model.Today(d.EndDate),
	}, nil
}

// ListContracts retrieves every contract ordered by ID.
func (s *SQLiteStore) ListContracts(ctx context.Context) ([]model.Contract, error) {
	var rows []contractRow
	err := s.withDB(ctx, "listing contracts", func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows,
			"SELECT id, name, description, end_date FROM contracts ORDER BY id")
	})
	if err != nil {
		return nil, err
	}

	contracts := make([]model.Contract, len(rows))
	for i, r := range rows {
		contracts[i] = r.contract()
	}
	return contracts, nil
}

// GetContract retrieves a single contract by ID.
func (s *SQLiteStore) GetContract(ctx context.Context, id int64) (*model.Contract, error) {
	var row contractRow
	err := s.withDB(ctx, "getting contract", func(db *sqlx.DB) error {
		return db.GetContext(ctx, &row,
			"SELECT id, name, description, end_date FROM contracts WHERE id = ?", id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c := row.contract()
	return &c, nil
}

// UpdateContract overwrites name, description and end date of contract c.ID.
func (s *SQLiteStore) UpdateContract(ctx context.Context, c model.Contract) error {
	if err := validateDraft(c.Draft()); err != nil {
		return err
	}

	var affected int64
	err := s.withDB(ctx, "updating contract", func(db *sqlx.DB) error {
		result, err := db.ExecContext(ctx,
			"UPDATE contracts SET name = ?, description = ?, end_date = ? WHERE id = ?",
			c.Name, c.Description, sqlDate{c.EndDate}, c.ID,
		)
		if err != nil {
			return err
		}
		affected, _ = result.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		s.log.Debug().Int64("id", c.ID).Msg("update matched no contract")
		return nil
	}
	s.log.Info().Int64("id", c.ID).Msg("contract updated")
	return nil
}

// DeleteContract removes the contract with the given ID.
func (s *SQLiteStore) DeleteContract(ctx context.Context, id int64) error {
	var affected int64
	err := s.withDB(ctx, "deleting contract", func(db *sqlx.DB) error {
		result, err := db.ExecContext(ctx, "DELETE FROM contracts WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, _ = result.RowsAffected()
		return nil
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		s.log.Debug().Int64("id", id).Msg("delete matched no contract")
		return nil
	}
	s.log.Info().Int64("id", id).Msg("contract deleted")
	return nil
}

// FindDue returns contracts whose end date is on or before asOf.
func (s *SQLiteStore) FindDue(ctx context.Context, asOf time.Time) ([]model.DueContract, error) {
	var rows []dueRow
	err := s.withDB(ctx, "finding due contracts", func(db *sqlx.DB) error {
		return db.SelectContext(ctx, &rows,
			"SELECT name, end_date FROM contracts WHERE end_date <= ? ORDER BY id",
			model.FormatDate(asOf))
	})
	if err != nil {
		return nil, err
	}

	due := make([]model.DueContract, len(rows))
	for i, r := range rows {
		due[i] = model.DueContract{Name: r.Name, EndDate: r.EndDate.Time}
	}
	return due, nil
}
