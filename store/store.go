// Package store defines the transaction boundary the checkout engine runs
// against. The production implementation lives in store/gormstore; an
// in-memory implementation for tests and local development lives in
// store/memstore.
package store

import (
	"errors"

	"github.com/RAravinthRaj/medicine-finder/models"
)

// ErrNotFound is returned by Tx lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Checkout is the unit of work used to place an order. Every write staged
// inside the callback commits atomically when it returns nil; any error
// rolls all of them back.
type Checkout interface {
	WithinTx(fn func(Tx) error) error
}

// Tx is the set of operations available inside one checkout transaction.
type Tx interface {
	// MedicineForUpdate loads a catalog row and locks it against concurrent
	// checkouts until the transaction ends.
	MedicineForUpdate(id uint) (*models.Medicine, error)
	SaveMedicine(m *models.Medicine) error
	// CreateOrder persists the order header and its items, assigning IDs.
	CreateOrder(o *models.Order) error
}
