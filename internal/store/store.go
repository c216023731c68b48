package store

import (
	"context"
	"time"

	"github.com/nhle/contract-tracker/internal/model"
)

// Store defines the persistence interface for contracts.
type Store interface {
	// CreateContract inserts a new contract and returns it with its
	// assigned ID. Duplicates are not detected.
	CreateContract(ctx context.Context, d model.Draft) (model.Contract, error)

	// ListContracts returns every contract in ascending ID order.
	ListContracts(ctx context.Context) ([]model.Contract, error)

	// GetContract returns a single contract or ErrNotFound.
	GetContract(ctx context.Context, id int64) (*model.Contract, error)

	// UpdateContract overwrites all mutable fields of the contract with
	// c.ID. A missing ID is not an error.
	UpdateContract(ctx context.Context, c model.Contract) error

	// DeleteContract removes the contract with id. A missing ID is not
	// an error.
	DeleteContract(ctx context.Context, id int64) error

	// FindDue returns the contracts ending on or before the calendar
	// date of asOf, in ascending ID order.
	FindDue(ctx context.Context, asOf time.Time) ([]model.DueContract, error)
}
