package ai

import (
	"context"

	"github.com/poiesic/melodex/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Analyzer produces structured metadata for a media source.
// Implementations must be thread-safe for concurrent use.
type Analyzer interface {
	// Analyze requests metadata and lyrics analysis for the media at the
	// given source URL. Optional mapping fields absent from the service
	// response are returned as empty slices, never as an error.
	Analyze(ctx context.Context, sourceURL string) (*core.TrackAnalysis, error)
}
