package checkoutControllers

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/store/memstore"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func seededStore() *memstore.Store {
	st := memstore.New()
	st.PutMedicine(models.Medicine{ID: 1, Name: "Paracetamol", Quantity: 100, Price: 5.99})
	st.PutMedicine(models.Medicine{ID: 2, Name: "Ibuprofen", Quantity: 50, Price: 7.49})
	return st
}

func TestRunSuccess(t *testing.T) {
	st := seededStore()

	order, err := Run(st, "user-1", []Line{
		{ID: 1, Name: "Paracetamol", Price: ptrFloat(5.99), Quantity: ptrInt(2)},
	})

	require.NoError(t, err)
	assert.InDelta(t, 11.98, order.TotalAmount, 1e-9)
	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, "user-1", order.UserID)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Paracetamol", order.Items[0].MedicineName)

	medicine, ok := st.Medicine(1)
	require.True(t, ok)
	assert.Equal(t, 98, medicine.Quantity)

	orders := st.Orders()
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Paracetamol", orders[0].Items[0].MedicineName)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestRunTotalMatchesItems(t *testing.T) {
	st := seededStore()

	order, err := Run(st, "user-1", []Line{
		{ID: 1, Name: "Paracetamol", Price: ptrFloat(5.99), Quantity: ptrInt(3)},
		{ID: 2, Name: "Ibuprofen", Price: ptrFloat(7.49), Quantity: ptrInt(2)},
	})
	require.NoError(t, err)

	orders := st.Orders()
	require.Len(t, orders, 1)

	var sum float64
	for _, item := range orders[0].Items {
		sum += item.Price * float64(item.Quantity)
	}
	assert.InDelta(t, order.TotalAmount, sum, 1e-9)
	assert.InDelta(t, orders[0].TotalAmount, sum, 1e-9)
}

func TestRunEmptyCart(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", nil)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindEmptyCart, cerr.Kind)
	assert.Equal(t, "Cart is empty", cerr.Error())
	assert.Equal(t, 400, cerr.Status())
}

func TestRunMissingID(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", []Line{
		{Name: "Paracetamol", Price: ptrFloat(5.99), Quantity: ptrInt(1)},
	})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindMissingID, cerr.Kind)
	assert.Equal(t, "Missing ID for item Paracetamol", cerr.Error())
	assertUnchanged(t, st)
}

func TestRunInvalidLineData(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", []Line{
		{ID: 1, Name: "Paracetamol", Quantity: ptrInt(1)},
	})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindInvalidLine, cerr.Kind)
	assert.Equal(t, "Invalid price or quantity for item Paracetamol", cerr.Error())
	assertUnchanged(t, st)
}

func TestRunItemNotFound(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", []Line{
		{ID: 99, Name: "Ghostmed", Price: ptrFloat(1.00), Quantity: ptrInt(1)},
	})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindNotFound, cerr.Kind)
	assert.Equal(t, "Medicine Ghostmed not found in database", cerr.Error())
	assertUnchanged(t, st)
}

func TestRunInsufficientStock(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", []Line{
		{ID: 2, Name: "Ibuprofen", Price: ptrFloat(7.49), Quantity: ptrInt(51)},
	})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindInsufficientStock, cerr.Kind)
	assert.Equal(t, "Insufficient stock for Ibuprofen", cerr.Error())
	assertUnchanged(t, st)
}

// A failing line must roll back writes already staged for earlier lines.
func TestRunRollsBackEarlierLines(t *testing.T) {
	st := seededStore()

	_, err := Run(st, "user-1", []Line{
		{ID: 1, Name: "Paracetamol", Price: ptrFloat(5.99), Quantity: ptrInt(10)},
		{ID: 2, Name: "Ibuprofen", Price: ptrFloat(7.49), Quantity: ptrInt(500)},
	})

	require.Error(t, err)
	assertUnchanged(t, st)
}

func TestRunCommitFailure(t *testing.T) {
	st := seededStore()
	st.FailCommits(errors.New("connection reset"))

	_, err := Run(st, "user-1", []Line{
		{ID: 1, Name: "Paracetamol", Price: ptrFloat(5.99), Quantity: ptrInt(1)},
	})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindPersistence, cerr.Kind)
	assert.Equal(t, 500, cerr.Status())
	assert.Contains(t, cerr.Error(), "Checkout failed:")
	assertUnchanged(t, st)
}

// Two concurrent checkouts of 6 units against stock 10: exactly one may
// succeed.
func TestRunConcurrentCheckoutsDoNotOversell(t *testing.T) {
	st := memstore.New()
	st.PutMedicine(models.Medicine{ID: 7, Name: "Azithromycin", Quantity: 10, Price: 18.99})

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = Run(st, "user-1", []Line{
				{ID: 7, Name: "Azithromycin", Price: ptrFloat(18.99), Quantity: ptrInt(6)},
			})
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		var cerr *Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, KindInsufficientStock, cerr.Kind)
	}
	assert.Equal(t, 1, successes)

	medicine, ok := st.Medicine(7)
	require.True(t, ok)
	assert.Equal(t, 4, medicine.Quantity)
	assert.Len(t, st.Orders(), 1)
}

// Malformed price or quantity values must not abort binding of the whole
// cart; the field nils out and the line is rejected individually.
func TestLineUnmarshalLenient(t *testing.T) {
	var line Line
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":1,"name":"Paracetamol","price":"abc","quantity":2}`), &line))
	assert.Equal(t, uint(1), line.ID)
	assert.Equal(t, "Paracetamol", line.Name)
	assert.Nil(t, line.Price)
	require.NotNil(t, line.Quantity)
	assert.Equal(t, 2, *line.Quantity)

	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"2","name":"Ibuprofen","price":7.49,"quantity":"two"}`), &line))
	assert.Equal(t, uint(2), line.ID)
	require.NotNil(t, line.Price)
	assert.Nil(t, line.Quantity)

	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":"abc","name":"Cetirizine","price":3.25,"quantity":1}`), &line))
	assert.Zero(t, line.ID)
}

func TestRunInvalidPriceValueRejectsLine(t *testing.T) {
	st := seededStore()

	var line Line
	require.NoError(t, json.Unmarshal(
		[]byte(`{"id":1,"name":"Paracetamol","price":"abc","quantity":2}`), &line))

	_, err := Run(st, "user-1", []Line{line})

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindInvalidLine, cerr.Kind)
	assert.Equal(t, "Invalid price or quantity for item Paracetamol", cerr.Error())
	assertUnchanged(t, st)
}

func assertUnchanged(t *testing.T, st *memstore.Store) {
	t.Helper()
	paracetamol, ok := st.Medicine(1)
	require.True(t, ok)
	assert.Equal(t, 100, paracetamol.Quantity)
	ibuprofen, ok := st.Medicine(2)
	require.True(t, ok)
	assert.Equal(t, 50, ibuprofen.Quantity)
	assert.Empty(t, st.Orders())
}
