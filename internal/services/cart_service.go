// internal/services/cart_service.go
package services

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/anthia/storefront-backend/internal/models"
	"github.com/anthia/storefront-backend/internal/storage"
)

// taxRate is the flat storefront tax applied to the cart subtotal.
var taxRate = decimal.New(1, -1) // 0.10

// CartTotals is derived from a cart snapshot and never persisted.
type CartTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CartService owns the cart document: at most one entry per product id,
// quantities aggregated additively. Product snapshots are frozen at first
// add and only the quantity changes afterwards.
type CartService struct {
	store storage.KV
}

func NewCartService(store storage.KV) *CartService {
	return &CartService{store: store}
}

func (s *CartService) load() ([]models.CartItem, error) {
	data, found, err := s.store.Get(storage.CartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if !found {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("corrupt cart document: %w", err)
	}
	return items, nil
}

func (s *CartService) save(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.store.Set(storage.CartKey, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// ListCart returns the cart as stored, without derived ordering.
func (s *CartService) ListCart() ([]models.CartItem, error) {
	return s.load()
}

// AddToCart merges quantity into an existing entry for the product, or
// inserts a new entry holding the given snapshot. The stored snapshot is
// not refreshed on merge.
func (s *CartService) AddToCart(product models.Product, quantity int) error {
	items, err := s.load()
	if err != nil {
		return err
	}

	merged := false
	for i, item := range items {
		if item.Product.ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{Product: product, Quantity: quantity})
	}

	if err := s.save(items); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"quantity":   quantity,
		"merged":     merged,
	}).Info("Product added to cart")

	return nil
}

// UpdateQuantity sets the entry's quantity verbatim. Callers clamp to >= 1
// before invoking; the service trusts its input. Unknown ids are a no-op.
func (s *CartService) UpdateQuantity(productID string, quantity int) error {
	items, err := s.load()
	if err != nil {
		return err
	}

	for i, item := range items {
		if item.Product.ID == productID {
			items[i].Quantity = quantity
			return s.save(items)
		}
	}
	return nil
}

// RemoveFromCart drops the entry for the product if present.
func (s *CartService) RemoveFromCart(productID string) error {
	items, err := s.load()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	return s.save(kept)
}

// ClearCart deletes the cart document; the next ListCart is empty.
func (s *CartService) ClearCart() error {
	if err := s.store.Delete(storage.CartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Totals computes subtotal, flat 10% tax and total for a cart snapshot.
// Values are exact; rounding to two decimals is display-time only.
func Totals(items []models.CartItem) CartTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Product.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(taxRate)
	return CartTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
