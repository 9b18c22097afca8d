// internal/models/product.go
package models

type Category string

const (
	CategoryJewelry     Category = "jewelry"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryJewelry, CategoryClothing, CategoryAccessories:
		return true
	}
	return false
}

// Product is a catalog entry. Order is a dense zero-based display rank
// maintained by the catalog service.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

// ProductInput carries the admin-supplied fields of a new product.
// ID and Order are assigned by the catalog service.
type ProductInput struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"min=0"`
	Category    Category `json:"category" validate:"required,category"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// ProductPatch is a partial update. Nil fields are left untouched by the
// merge. Order is deliberately absent; only a reorder may change it.
type ProductPatch struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,min=0"`
	Category    *Category `json:"category,omitempty" validate:"omitempty,category"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// Merge applies the patch to a copy of p and returns the result.
func (patch ProductPatch) Merge(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	return p
}
