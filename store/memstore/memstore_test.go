package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/store"
)

func TestWithinTxCommitsStagedWrites(t *testing.T) {
	st := New()
	st.PutMedicine(models.Medicine{ID: 1, Name: "Aspirin", Quantity: 60, Price: 3.99})

	err := st.WithinTx(func(tx store.Tx) error {
		m, err := tx.MedicineForUpdate(1)
		require.NoError(t, err)
		m.Quantity -= 10
		require.NoError(t, tx.SaveMedicine(m))
		return tx.CreateOrder(&models.Order{
			UserID:      "user-1",
			TotalAmount: 39.90,
			Items:       []models.OrderItem{{MedicineID: 1, MedicineName: "Aspirin", Quantity: 10, Price: 3.99}},
		})
	})
	require.NoError(t, err)

	m, ok := st.Medicine(1)
	require.True(t, ok)
	assert.Equal(t, 50, m.Quantity)

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.NotZero(t, orders[0].ID)
	assert.NotEmpty(t, orders[0].OrderRef)
	assert.Equal(t, orders[0].ID, orders[0].Items[0].OrderID)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	st := New()
	st.PutMedicine(models.Medicine{ID: 1, Name: "Aspirin", Quantity: 60, Price: 3.99})

	errBoom := errors.New("boom")
	err := st.WithinTx(func(tx store.Tx) error {
		m, _ := tx.MedicineForUpdate(1)
		m.Quantity = 0
		_ = tx.SaveMedicine(m)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	m, _ := st.Medicine(1)
	assert.Equal(t, 60, m.Quantity)
	assert.Empty(t, st.Orders())
}

func TestWithinTxReadsOwnWrites(t *testing.T) {
	st := New()
	st.PutMedicine(models.Medicine{ID: 1, Name: "Aspirin", Quantity: 60, Price: 3.99})

	err := st.WithinTx(func(tx store.Tx) error {
		m, _ := tx.MedicineForUpdate(1)
		m.Quantity = 10
		_ = tx.SaveMedicine(m)

		again, err := tx.MedicineForUpdate(1)
		require.NoError(t, err)
		assert.Equal(t, 10, again.Quantity)
		return nil
	})
	require.NoError(t, err)
}

func TestMedicineForUpdateNotFound(t *testing.T) {
	st := New()
	err := st.WithinTx(func(tx store.Tx) error {
		_, err := tx.MedicineForUpdate(99)
		return err
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
