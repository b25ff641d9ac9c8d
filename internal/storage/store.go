// Package storage provides the durable key/value mirror the ledger
// writes through to. Each record holds one full serialized collection
// and is overwritten wholesale on every mutation.
package storage

// Record keys. Each names one serialized collection.
const (
	KeyExpenses   = "expenses"
	KeyCategories = "categories"
	KeySettings   = "settings"
)

// Store is the durable mirror behind the ledger. It is a passive sink:
// in-memory state always wins, and the mirror is only read back at startup.
//
// Get returns (nil, nil) when the key has never been written.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Clear() error
	Close() error
}
