package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/store"
)

// Store is an in-memory store.Checkout for tests and local development.
// The mutex is held for the whole unit of work, which gives the same
// serialization guarantee the SQL implementation gets from row locks.
type Store struct {
	mu        sync.Mutex
	medicines map[uint]models.Medicine
	orders    []models.Order
	nextOrder uint
	nextItem  uint
	commitErr error
}

func New() *Store {
	return &Store{
		medicines: make(map[uint]models.Medicine),
		nextOrder: 1,
		nextItem:  1,
	}
}

// PutMedicine seeds or replaces a catalog row.
func (s *Store) PutMedicine(m models.Medicine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medicines[m.ID] = m
}

// Medicine returns a copy of a catalog row.
func (s *Store) Medicine(id uint) (models.Medicine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.medicines[id]
	return m, ok
}

// Orders returns a copy of every committed order.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// FailCommits makes every subsequent commit fail with err without applying
// staged writes. Pass nil to restore normal behavior.
func (s *Store) FailCommits(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitErr = err
}

func (s *Store) WithinTx(fn func(store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, staged: make(map[uint]models.Medicine)}
	if err := fn(tx); err != nil {
		return err
	}
	if s.commitErr != nil {
		return s.commitErr
	}
	for id, m := range tx.staged {
		s.medicines[id] = m
	}
	s.orders = append(s.orders, tx.orders...)
	return nil
}

type memTx struct {
	store  *Store
	staged map[uint]models.Medicine
	orders []models.Order
}

func (t *memTx) MedicineForUpdate(id uint) (*models.Medicine, error) {
	if m, ok := t.staged[id]; ok {
		copied := m
		return &copied, nil
	}
	m, ok := t.store.medicines[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := m
	return &copied, nil
}

func (t *memTx) SaveMedicine(m *models.Medicine) error {
	t.staged[m.ID] = *m
	return nil
}

func (t *memTx) CreateOrder(o *models.Order) error {
	o.ID = t.store.nextOrder
	t.store.nextOrder++
	if o.OrderRef == "" {
		o.OrderRef = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	for i := range o.Items {
		o.Items[i].ID = t.store.nextItem
		t.store.nextItem++
		o.Items[i].OrderID = o.ID
	}
	t.orders = append(t.orders, *o)
	return nil
}
