package blob

import (
	"context"
	"io"
)

// Store is an opaque-id-addressed binary object store, distinct from the
// structured document store. Implementations must be thread-safe.
type Store interface {
	// Upload writes a fully materialized payload under a store-generated
	// identifier and returns that identifier once the write is durable from
	// the store's perspective. The name is advisory metadata (original
	// filename); addressing is by the returned identifier only. On failure
	// no identifier is returned.
	Upload(ctx context.Context, name string, data []byte) (string, error)

	// Download streams the blob's bytes into the sink, completing only after
	// the full transfer finishes. Read-side and write-side errors are both
	// propagated, never swallowed.
	Download(ctx context.Context, id string, sink io.Writer) error
}
