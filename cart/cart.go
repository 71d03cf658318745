// Package cart is a keyed in-process cart cache. Buckets are keyed by the
// resolved identity ("guest:<token>" before login, "user:<id>" after), and
// login rebinds the guest bucket onto the user bucket instead of dropping it.
package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type Item struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"` // quantity cap known at add time
}

func UserKey(userID uint) string   { return fmt.Sprintf("user:%d", userID) }
func GuestKey(token string) string { return "guest:" + token }

type Store struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Item)}
}

// Items returns a copy of the bucket so callers cannot mutate shared state.
func (s *Store) Items(key string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[key]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Add puts one more unit of the product into the bucket, capped at the
// stock recorded on the item.
func (s *Store) Add(key string, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[key]
	for i := range items {
		if items[i].ProductID == item.ProductID {
			limit := items[i].Stock
			if item.Stock > 0 {
				limit = item.Stock
			}
			if limit == 0 || items[i].Quantity < limit {
				items[i].Quantity++
			}
			return
		}
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	s.carts[key] = append(items, item)
}

// SetQuantity adjusts an existing line; quantities below 1 or above the
// recorded stock are ignored, matching the storefront behavior.
func (s *Store) SetQuantity(key string, productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[key]
	for i := range items {
		if items[i].ProductID == productID {
			if quantity < 1 {
				return
			}
			if items[i].Stock > 0 && quantity > items[i].Stock {
				return
			}
			items[i].Quantity = quantity
			return
		}
	}
}

func (s *Store) Remove(key string, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[key]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[key] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}

// Rebind moves the old bucket onto the new key, merging quantities for
// products present in both. Used on login (guest → user); logout rebinds to
// a fresh guest key with nothing to merge.
func (s *Store) Rebind(oldKey, newKey string) {
	if oldKey == newKey {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.carts[oldKey]
	delete(s.carts, oldKey)
	if len(old) == 0 {
		return
	}

	target := s.carts[newKey]
	for _, it := range old {
		merged := false
		for i := range target {
			if target[i].ProductID == it.ProductID {
				target[i].Quantity += it.Quantity
				if target[i].Stock > 0 && target[i].Quantity > target[i].Stock {
					target[i].Quantity = target[i].Stock
				}
				merged = true
				break
			}
		}
		if !merged {
			target = append(target, it)
		}
	}
	s.carts[newKey] = target
}
