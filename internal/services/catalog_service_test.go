// internal/services/catalog_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/anthia/storefront-backend/internal/models"
	"github.com/anthia/storefront-backend/internal/storage"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	store   *storage.MemStore
	catalog *CatalogService
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.store = storage.NewMemStore()
	suite.catalog = NewCatalogService(suite.store)
}

func (suite *CatalogServiceTestSuite) addProduct(name string, price float64) models.Product {
	product, err := suite.catalog.AddProduct(models.ProductInput{
		Name:     name,
		Price:    price,
		Category: models.CategoryJewelry,
	})
	require.NoError(suite.T(), err)
	return product
}

func (suite *CatalogServiceTestSuite) TestAddProductRoundTrip() {
	created := suite.addProduct("Amber Necklace", 49.90)

	assert.NotEmpty(suite.T(), created.ID)
	assert.Equal(suite.T(), 0, created.Order)

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), created, products[0])

	second := suite.addProduct("Linen Scarf", 24.50)
	assert.Equal(suite.T(), 1, second.Order)
	assert.NotEqual(suite.T(), created.ID, second.ID)
}

func (suite *CatalogServiceTestSuite) TestListProductsIsIdempotent() {
	suite.addProduct("A", 1)
	suite.addProduct("B", 2)
	suite.addProduct("C", 3)

	first, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	second, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

func (suite *CatalogServiceTestSuite) TestListProductsSortsByOrder() {
	a := suite.addProduct("A", 1)
	b := suite.addProduct("B", 2)
	c := suite.addProduct("C", 3)

	require.NoError(suite.T(), suite.catalog.ReorderProducts([]string{c.ID, a.ID, b.ID}))

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 3)
	assert.Equal(suite.T(), []string{c.ID, a.ID, b.ID},
		[]string{products[0].ID, products[1].ID, products[2].ID})
}

func (suite *CatalogServiceTestSuite) TestUpdateProductMergesFields() {
	created := suite.addProduct("Amber Necklace", 49.90)

	newName := "Amber Pendant"
	newPrice := 54.90
	err := suite.catalog.UpdateProduct(created.ID, models.ProductPatch{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(suite.T(), err)

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Amber Pendant", products[0].Name)
	assert.Equal(suite.T(), 54.90, products[0].Price)
	// Untouched fields survive the merge
	assert.Equal(suite.T(), created.Category, products[0].Category)
	assert.Equal(suite.T(), created.Order, products[0].Order)
}

func (suite *CatalogServiceTestSuite) TestUpdateMissingProductLeavesCatalogUntouched() {
	suite.addProduct("Amber Necklace", 49.90)

	before, found, err := suite.store.Get(storage.ProductsKey)
	require.NoError(suite.T(), err)
	require.True(suite.T(), found)

	name := "Ghost"
	err = suite.catalog.UpdateProduct("missing-id", models.ProductPatch{Name: &name})
	require.NoError(suite.T(), err)

	after, found, err := suite.store.Get(storage.ProductsKey)
	require.NoError(suite.T(), err)
	require.True(suite.T(), found)
	assert.Equal(suite.T(), before, after)
}

func (suite *CatalogServiceTestSuite) TestDeleteProductToleratesGaps() {
	a := suite.addProduct("A", 1)
	b := suite.addProduct("B", 2)
	c := suite.addProduct("C", 3)

	require.NoError(suite.T(), suite.catalog.DeleteProduct(b.ID))

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	// Ranks keep their values; only the sort order matters for reads
	assert.Equal(suite.T(), a.ID, products[0].ID)
	assert.Equal(suite.T(), c.ID, products[1].ID)
	assert.Equal(suite.T(), 0, products[0].Order)
	assert.Equal(suite.T(), 2, products[1].Order)
}

func (suite *CatalogServiceTestSuite) TestDeleteMissingProductIsNoOp() {
	suite.addProduct("A", 1)

	require.NoError(suite.T(), suite.catalog.DeleteProduct("missing-id"))

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), products, 1)
}

func (suite *CatalogServiceTestSuite) TestReorderProducesDenseRanking() {
	a := suite.addProduct("A", 1)
	b := suite.addProduct("B", 2)
	c := suite.addProduct("C", 3)
	require.NoError(suite.T(), suite.catalog.DeleteProduct(b.ID))

	require.NoError(suite.T(), suite.catalog.ReorderProducts([]string{c.ID, a.ID}))

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	for i, p := range products {
		assert.Equal(suite.T(), i, p.Order)
	}
}

func (suite *CatalogServiceTestSuite) TestReorderPrunesToIntersection() {
	a := suite.addProduct("A", 1)
	c := suite.addProduct("C", 2)
	b := suite.addProduct("B", 3)

	// c is absent from the permutation and an unknown id is present
	require.NoError(suite.T(), suite.catalog.ReorderProducts([]string{b.ID, "unknown-id", a.ID}))

	products, err := suite.catalog.ListProducts()
	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), b.ID, products[0].ID)
	assert.Equal(suite.T(), 0, products[0].Order)
	assert.Equal(suite.T(), a.ID, products[1].ID)
	assert.Equal(suite.T(), 1, products[1].Order)
	for _, p := range products {
		assert.NotEqual(suite.T(), c.ID, p.ID)
	}
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

// brokenKV fails every write, standing in for a full or unavailable medium.
type brokenKV struct {
	storage.KV
}

func (brokenKV) Set(string, []byte) error {
	return errors.New("medium unavailable")
}

func TestAddProductPropagatesStorageFailure(t *testing.T) {
	catalog := NewCatalogService(brokenKV{storage.NewMemStore()})

	_, err := catalog.AddProduct(models.ProductInput{
		Name:     "Amber Necklace",
		Price:    49.90,
		Category: models.CategoryJewelry,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "medium unavailable")
}
