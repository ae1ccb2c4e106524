package services

import (
	"testing"

	"github.com/qarsatnahlah/store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStoreAddSequence(t *testing.T) {
	store := NewCartStore(NewMemoryCartBackend(), "cart:test")

	assert.Equal(t, 2, store.Add("a", 2))
	assert.Equal(t, 5, store.Add("a", 3))
	assert.Equal(t, 4, store.Add("a", -1))
	assert.Equal(t, 0, store.Add("a", -10), "quantity floors at zero")
	assert.Equal(t, 0, store.Quantity("a"))
	assert.Empty(t, store.Entries(), "zero quantity removes the entry")
}

func TestCartStoreInsertionOrder(t *testing.T) {
	store := NewCartStore(NewMemoryCartBackend(), "cart:test")

	store.Add("b", 1)
	store.Add("a", 2)
	store.Add("c", 3)
	store.Add("b", 1) // update must not move b

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
	assert.Equal(t, 7, store.TotalQuantity())
}

func TestCartStorePersistenceRoundTrip(t *testing.T) {
	backend := NewMemoryCartBackend()

	first := NewCartStore(backend, "cart:rt")
	first.Add("sidr-honey::w500", 2)
	first.Add("chamomile::custom-g-250", 1)

	// A fresh instance over the same backend sees the same state
	second := NewCartStore(backend, "cart:rt")
	assert.Equal(t, 2, second.Quantity("sidr-honey::w500"))
	assert.Equal(t, 1, second.Quantity("chamomile::custom-g-250"))
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestCartStoreFilePersistence(t *testing.T) {
	backend := NewFileCartBackend(t.TempDir())

	first := NewCartStore(backend, "cart:v1")
	first.Add("a", 3)

	second := NewCartStore(backend, "cart:v1")
	assert.Equal(t, 3, second.Quantity("a"))
}

func TestCartStoreCorruptStateStartsEmpty(t *testing.T) {
	backend := NewMemoryCartBackend()
	require.NoError(t, backend.Save("cart:bad", []byte("{{{not json")))

	store := NewCartStore(backend, "cart:bad")
	assert.Empty(t, store.Entries())
	assert.Equal(t, 1, store.Add("a", 1), "store stays usable after a bad load")
}

func TestCartStoreNotifiesListeners(t *testing.T) {
	store := NewCartStore(NewMemoryCartBackend(), "cart:test")

	var changes []models.CartChange
	store.Subscribe(func(c models.CartChange) { changes = append(changes, c) })

	store.Add("a", 2)
	store.Add("b", 1)
	store.Add("a", -2)

	require.Len(t, changes, 3)
	assert.Equal(t, models.CartChange{Identifier: "a", Quantity: 2, TotalQuantity: 2}, changes[0])
	assert.Equal(t, models.CartChange{Identifier: "b", Quantity: 1, TotalQuantity: 3}, changes[1])
	assert.Equal(t, models.CartChange{Identifier: "a", Quantity: 0, TotalQuantity: 1}, changes[2])
}

func TestCartStoreClear(t *testing.T) {
	store := NewCartStore(NewMemoryCartBackend(), "cart:test")
	store.Add("a", 2)
	store.Add("b", 3)

	store.Clear()
	assert.Empty(t, store.Entries())
	assert.Zero(t, store.TotalQuantity())
}

func TestAddWithConstraints(t *testing.T) {
	newStore := func() *CartStore {
		return NewCartStore(NewMemoryCartBackend(), "cart:test")
	}

	t.Run("min order quantity applies on first add only", func(t *testing.T) {
		store := newStore()
		p := &models.Product{ID: "p", MinOrderQty: 3}

		qty, err := store.AddWithConstraints(p, "p", 1)
		require.NoError(t, err)
		assert.Equal(t, 3, qty, "first add is raised to the minimum")

		qty, err = store.AddWithConstraints(p, "p", 1)
		require.NoError(t, err)
		assert.Equal(t, 4, qty, "later adds are plain increments")

		qty, err = store.AddWithConstraints(p, "p", -1)
		require.NoError(t, err)
		assert.Equal(t, 3, qty, "decrements below the minimum are allowed")
	})

	t.Run("max order quantity clamps", func(t *testing.T) {
		store := newStore()
		p := &models.Product{ID: "p", MaxOrderQt: intPtr(5)}

		qty, err := store.AddWithConstraints(p, "p", 10)
		require.NoError(t, err)
		assert.Equal(t, 5, qty)

		qty, err = store.AddWithConstraints(p, "p", 1)
		require.NoError(t, err)
		assert.Equal(t, 5, qty, "already at the limit")
	})

	t.Run("alternate maxOrderQty spelling clamps too", func(t *testing.T) {
		store := newStore()
		p := &models.Product{ID: "p", MaxOrderQty: intPtr(2)}

		qty, err := store.AddWithConstraints(p, "p", 10)
		require.NoError(t, err)
		assert.Equal(t, 2, qty)
	})

	t.Run("stock quantity clamps", func(t *testing.T) {
		store := newStore()
		p := &models.Product{ID: "p", StockQuantity: intPtr(4)}

		qty, err := store.AddWithConstraints(p, "p", 10)
		require.NoError(t, err)
		assert.Equal(t, 4, qty)
	})

	t.Run("out of stock blocks increases but not removals", func(t *testing.T) {
		store := newStore()
		inStock := &models.Product{ID: "p"}
		_, err := store.AddWithConstraints(inStock, "p", 2)
		require.NoError(t, err)

		oos := &models.Product{ID: "p", StockStatus: "out_of_stock"}
		_, err = store.AddWithConstraints(oos, "p", 1)
		assert.EqualError(t, err, "المنتج غير متوفر حالياً")
		assert.Equal(t, 2, store.Quantity("p"))

		qty, err := store.AddWithConstraints(oos, "p", -2)
		require.NoError(t, err)
		assert.Equal(t, 0, qty)
	})

	t.Run("zero effective delta is a no-op", func(t *testing.T) {
		store := newStore()
		p := &models.Product{ID: "p"}

		var notified int
		store.Subscribe(func(models.CartChange) { notified++ })

		qty, err := store.AddWithConstraints(p, "p", 0)
		require.NoError(t, err)
		assert.Zero(t, qty)
		assert.Zero(t, notified)
	})
}

func TestCartStoreFor(t *testing.T) {
	old := defaultCartBackend
	defer InitCartBackend(old)
	InitCartBackend(NewMemoryCartBackend())

	shared := CartStoreFor("")
	shared.Add("a", 1)

	customer := CartStoreFor("c-123")
	assert.Zero(t, customer.Quantity("a"), "per-customer carts are isolated")

	customer.Add("a", 2)
	assert.Equal(t, 2, CartStoreFor("c-123").Quantity("a"))
	assert.Equal(t, 1, CartStoreFor("").Quantity("a"))
}
