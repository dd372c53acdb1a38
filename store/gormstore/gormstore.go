package gormstore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/store"
)

// Store implements store.Checkout on top of a GORM connection. Row locks
// (SELECT ... FOR UPDATE) serialize concurrent checkouts that touch the same
// medicine, so two low-stock checkouts can never both pass the stock check.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(fn func(store.Tx) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{tx: tx})
	})
}

type gormTx struct {
	tx *gorm.DB
}

func (t *gormTx) MedicineForUpdate(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&medicine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

func (t *gormTx) SaveMedicine(m *models.Medicine) error {
	return t.tx.Save(m).Error
}

func (t *gormTx) CreateOrder(o *models.Order) error {
	return t.tx.Create(o).Error
}
