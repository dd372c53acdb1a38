package checkoutControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/store"
)

// Line is one client-supplied cart entry. The client sits outside the trust
// boundary, so id and stock are re-validated against the catalog; price is
// deliberately taken as sent to preserve price-at-add-to-cart semantics.
// Price and Quantity are pointers so an absent field is distinguishable from
// zero.
type Line struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// UnmarshalJSON binds a line leniently: a non-numeric price or quantity nils
// the field out instead of failing the whole cart, so each line is still
// classified individually, in input order. IDs may arrive as numbers or
// numeric strings; anything else counts as missing.
func (l *Line) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Name     string          `json:"name"`
		Price    json.RawMessage `json:"price"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Name = raw.Name

	l.ID = 0
	if len(raw.ID) > 0 {
		var id uint
		if err := json.Unmarshal(raw.ID, &id); err == nil {
			l.ID = id
		} else {
			var s string
			if err := json.Unmarshal(raw.ID, &s); err == nil {
				if v, err := strconv.ParseUint(s, 10, 64); err == nil {
					l.ID = uint(v)
				}
			}
		}
	}

	l.Price = nil
	if len(raw.Price) > 0 {
		var price float64
		if err := json.Unmarshal(raw.Price, &price); err == nil {
			l.Price = &price
		}
	}

	l.Quantity = nil
	if len(raw.Quantity) > 0 {
		var quantity int
		if err := json.Unmarshal(raw.Quantity, &quantity); err == nil {
			l.Quantity = &quantity
		}
	}

	return nil
}

type Kind int

const (
	KindEmptyCart Kind = iota
	KindMissingID
	KindInvalidLine
	KindNotFound
	KindInsufficientStock
	KindPersistence
)

// Error is a checkout failure. Validation and stock failures carry the name
// of the offending item; persistence failures wrap the storage cause.
type Error struct {
	Kind Kind
	Item string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyCart:
		return "Cart is empty"
	case KindMissingID:
		return fmt.Sprintf("Missing ID for item %s", e.Item)
	case KindInvalidLine:
		return fmt.Sprintf("Invalid price or quantity for item %s", e.Item)
	case KindNotFound:
		return fmt.Sprintf("Medicine %s not found in database", e.Item)
	case KindInsufficientStock:
		return fmt.Sprintf("Insufficient stock for %s", e.Item)
	default:
		return fmt.Sprintf("Checkout failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the failure to an HTTP status: persistence faults are server
// errors, everything else is the caller's problem.
func (e *Error) Status() int {
	if e.Kind == KindPersistence {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Run validates the cart line by line, decrements stock and records the
// order. Every staged write commits atomically inside one store transaction;
// any failure at any line rolls all of them back, so a rejected checkout
// leaves the catalog and the order ledger untouched. On success the committed
// order is returned with its assigned IDs, items and timestamp.
func Run(st store.Checkout, userID string, lines []Line) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, &Error{Kind: KindEmptyCart}
	}

	var committed models.Order
	err := st.WithinTx(func(tx store.Tx) error {
		var total float64
		items := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			name := line.Name
			if name == "" {
				name = "unknown"
			}
			if line.ID == 0 {
				return &Error{Kind: KindMissingID, Item: name}
			}
			if line.Price == nil || line.Quantity == nil {
				return &Error{Kind: KindInvalidLine, Item: name}
			}

			total += *line.Price * float64(*line.Quantity)

			medicine, err := tx.MedicineForUpdate(line.ID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return &Error{Kind: KindNotFound, Item: name}
				}
				return &Error{Kind: KindPersistence, Err: err}
			}
			if medicine.Quantity < *line.Quantity {
				return &Error{Kind: KindInsufficientStock, Item: medicine.Name}
			}

			medicine.Quantity -= *line.Quantity
			if err := tx.SaveMedicine(medicine); err != nil {
				return &Error{Kind: KindPersistence, Err: err}
			}

			items = append(items, models.OrderItem{
				MedicineID:   medicine.ID,
				MedicineName: medicine.Name,
				Quantity:     *line.Quantity,
				Price:        *line.Price,
			})
		}

		order := models.Order{
			OrderRef:    generateOrderRef(),
			UserID:      userID,
			Items:       items,
			TotalAmount: total,
			CreatedAt:   time.Now(),
		}
		if err := tx.CreateOrder(&order); err != nil {
			return &Error{Kind: KindPersistence, Err: err}
		}

		committed = order
		return nil
	})
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			return models.Order{}, cerr
		}
		// Commit-time failure surfaced by the store itself.
		return models.Order{}, &Error{Kind: KindPersistence, Err: err}
	}
	return committed, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
