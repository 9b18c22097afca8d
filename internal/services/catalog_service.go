// internal/services/catalog_service.go
package services

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/anthia/storefront-backend/internal/models"
	"github.com/anthia/storefront-backend/internal/storage"
)

// CatalogService owns the product catalog document. Every mutation is a
// read-compute-write of the whole document against the KV port; the caller
// sees it as one step. Missing targets on update/delete are silent no-ops.
type CatalogService struct {
	store storage.KV
}

func NewCatalogService(store storage.KV) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) load() ([]models.Product, error) {
	data, found, err := s.store.Get(storage.ProductsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if !found {
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("corrupt catalog document: %w", err)
	}
	return products, nil
}

func (s *CatalogService) save(products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := s.store.Set(storage.ProductsKey, data); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// ListProducts returns the catalog sorted by display rank, ascending.
// Ranks may carry transient gaps after a delete; the sort is by value.
func (s *CatalogService) ListProducts() ([]models.Product, error) {
	products, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Order < products[j].Order
	})
	return products, nil
}

// AddProduct assigns a fresh id, appends at the end of the display order
// and persists the result.
func (s *CatalogService) AddProduct(input models.ProductInput) (models.Product, error) {
	products, err := s.load()
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		Order:       len(products),
	}

	products = append(products, product)
	if err := s.save(products); err != nil {
		return models.Product{}, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID,
		"order":      product.Order,
	}).Info("Product added to catalog")

	return product, nil
}

// UpdateProduct merges the patch into the matching record. An unknown id is
// a no-op, not an error; the catalog is not rewritten in that case.
func (s *CatalogService) UpdateProduct(id string, patch models.ProductPatch) error {
	products, err := s.load()
	if err != nil {
		return err
	}

	for i, p := range products {
		if p.ID == id {
			products[i] = patch.Merge(p)
			return s.save(products)
		}
	}

	logrus.WithField("product_id", id).Debug("Update skipped, product not in catalog")
	return nil
}

// DeleteProduct removes the matching record. Display ranks of the remaining
// products are left alone; ListProducts tolerates the gap and the next
// reorder re-densifies.
func (s *CatalogService) DeleteProduct(id string) error {
	products, err := s.load()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.save(kept)
}

// ReorderProducts rebuilds the catalog from orderedIDs: each listed id gets
// its position index as rank. Ids that are not in the catalog are skipped,
// and catalog entries missing from orderedIDs are dropped, so the result is
// the intersection with a dense zero-based ranking.
func (s *CatalogService) ReorderProducts(orderedIDs []string) error {
	products, err := s.load()
	if err != nil {
		return err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	reordered := make([]models.Product, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		p.Order = len(reordered)
		reordered = append(reordered, p)
	}

	if len(reordered) < len(products) {
		logrus.WithFields(logrus.Fields{
			"before": len(products),
			"after":  len(reordered),
		}).Warn("Reorder pruned products missing from the permutation")
	}

	return s.save(reordered)
}
