package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Adapter defines the model-specific side of reconciliation: how records are
// indexed and how files are written back to the store.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "games").
	Name() string

	// LoadIndex loads every record and returns it keyed by filename.
	// Implementations should use a single query selecting minimal columns.
	LoadIndex(ctx context.Context, db *gorm.DB) (map[string]Entry, error)

	// Insert creates a record for a file that has none.
	Insert(ctx context.Context, tx *gorm.DB, file FileInfo) error

	// UpdateDigest stores the file's digest and size on the record with the given identity.
	UpdateDigest(ctx context.Context, tx *gorm.DB, id uint, file FileInfo) error
}

// BatchInserter is implemented by adapters that can insert many records in one statement.
type BatchInserter interface {
	InsertBatch(ctx context.Context, tx *gorm.DB, files []FileInfo) error
}
