// internal/storage/kv.go
package storage

// Keys of the two persisted documents. Both hold JSON arrays.
const (
	ProductsKey = "anthia_products"
	CartKey     = "anthia_cart"
)

// KV is the durable local key-value port both state managers write through.
// Get reports absence via found=false rather than an error; Delete of a
// missing key is a no-op. Single-key writes are atomic, nothing more.
type KV interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
