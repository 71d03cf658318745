package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id uint, qty, stock int) Item {
	return Item{ProductID: id, Name: "p", UnitPrice: decimal.NewFromInt(10), Quantity: qty, Stock: stock}
}

func TestAddIncrementsExistingLine(t *testing.T) {
	s := NewStore()
	key := UserKey(1)

	s.Add(key, item(1, 1, 5))
	s.Add(key, item(1, 1, 5))

	items := s.Items(key)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddRespectsStockCap(t *testing.T) {
	s := NewStore()
	key := UserKey(1)

	s.Add(key, item(1, 1, 2))
	s.Add(key, item(1, 1, 2))
	s.Add(key, item(1, 1, 2))

	assert.Equal(t, 2, s.Items(key)[0].Quantity)
}

func TestSetQuantityBounds(t *testing.T) {
	s := NewStore()
	key := UserKey(1)
	s.Add(key, item(1, 1, 5))

	s.SetQuantity(key, 1, 4)
	assert.Equal(t, 4, s.Items(key)[0].Quantity)

	s.SetQuantity(key, 1, 0) // below 1: ignored
	assert.Equal(t, 4, s.Items(key)[0].Quantity)

	s.SetQuantity(key, 1, 9) // above stock: ignored
	assert.Equal(t, 4, s.Items(key)[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	s := NewStore()
	key := GuestKey("abc")
	s.Add(key, item(1, 1, 0))
	s.Add(key, item(2, 1, 0))

	s.Remove(key, 1)
	assert.Len(t, s.Items(key), 1)

	s.Clear(key)
	assert.Empty(t, s.Items(key))
}

// Login rebinds the guest bucket to the user bucket and merges overlapping
// lines; buckets of other identities are untouched.
func TestRebindMergesGuestIntoUser(t *testing.T) {
	s := NewStore()
	guest := GuestKey("abc")
	user := UserKey(1)

	s.Add(guest, item(1, 1, 10))
	s.Add(guest, item(2, 1, 10))
	s.Add(user, item(1, 1, 10))
	s.SetQuantity(user, 1, 3)

	s.Rebind(guest, user)

	assert.Empty(t, s.Items(guest))
	items := s.Items(user)
	assert.Len(t, items, 2)
	for _, it := range items {
		if it.ProductID == 1 {
			assert.Equal(t, 4, it.Quantity)
		}
	}
}

func TestRebindCapsMergedQuantityAtStock(t *testing.T) {
	s := NewStore()
	guest := GuestKey("abc")
	user := UserKey(1)

	s.Add(guest, item(1, 1, 3))
	s.SetQuantity(guest, 1, 3)
	s.Add(user, item(1, 1, 3))
	s.SetQuantity(user, 1, 2)

	s.Rebind(guest, user)

	assert.Equal(t, 3, s.Items(user)[0].Quantity)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	key := UserKey(1)
	s.Add(key, item(1, 1, 5))

	got := s.Items(key)
	got[0].Quantity = 99

	assert.Equal(t, 1, s.Items(key)[0].Quantity)
}
