// internal/models/cart.go
package models

// CartItem pairs a product snapshot with an aggregated quantity.
// The snapshot is frozen at first add; later catalog edits do not
// propagate into existing cart entries.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
