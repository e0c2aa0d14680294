package storage

import (
	"context"

	"github.com/poiesic/melodex/core"
)

// MediaRepository provides operations for managing media records.
// Implementations must be thread-safe and support concurrent access.
type MediaRepository interface {
	// Exists reports whether a record for the given source key is already
	// stored. Absence is a normal false result, never an error.
	Exists(ctx context.Context, sourceKey string) (bool, error)

	// AddMediaRecord persists a single record. The ID is derived from the
	// source key when unset, and CreatedAt is set when zero. The duplicate
	// check and the insert are atomic: a record already stored for the same
	// source key - including one written by a concurrent ingestion - yields
	// ErrDuplicateKey, which callers treat as "already ingested".
	AddMediaRecord(ctx context.Context, record *core.MediaRecord) (*core.MediaRecord, error)

	// UpdateMediaRecords replaces existing records. Only the embedding is
	// expected to change after ingestion (re-embedding migrations); records
	// are otherwise append-only. Returns ErrNotFound if any record doesn't
	// exist.
	UpdateMediaRecords(ctx context.Context, records ...*core.MediaRecord) ([]*core.MediaRecord, error)

	// GetMediaRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetMediaRecord(ctx context.Context, id core.ID) (*core.MediaRecord, error)

	// GetMediaRecordBySourceKey retrieves the record for a source key.
	// Returns ErrNotFound if no record exists for the key.
	GetMediaRecordBySourceKey(ctx context.Context, sourceKey string) (*core.MediaRecord, error)

	// AllMediaRecords performs a full corpus scan, returning every stored
	// record. Similarity ranking is a linear scan over this corpus.
	AllMediaRecords(ctx context.Context) ([]*core.MediaRecord, error)

	// Close closes the repository and releases resources.
	Close() error
}
