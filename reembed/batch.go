package reembed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
)

// BatchProcessor regenerates embeddings for batches of media records. The
// text to embed is recomposed from each record's stored analysis fields, so
// a run against a new model reproduces exactly the text the original
// ingestion embedded.
type BatchProcessor struct {
	repo           storage.MediaRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration

	mu        sync.Mutex
	dimension int
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.MediaRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of records and updates them in the
// database. Every batch in a run must produce embeddings of the same
// dimension; the first batch fixes it.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.MediaRecord) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.EmbeddingText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	for i := range embeddings {
		if err := bp.checkDimension(len(embeddings[i])); err != nil {
			return err
		}
	}

	for i := range records {
		records[i].Embedding = embeddings[i]
	}

	_, err = bp.repo.UpdateMediaRecords(ctx, records...)
	if err != nil {
		return fmt.Errorf("failed to update records: %w", err)
	}

	return nil
}

// Dimension reports the dimension fixed by the first processed batch, or 0.
func (bp *BatchProcessor) Dimension() int {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	return bp.dimension
}

func (bp *BatchProcessor) checkDimension(got int) error {
	bp.mu.Lock()
	defer bp.mu.Unlock()
	if got <= 0 {
		return fmt.Errorf("%w: embedder returned an empty vector", ErrDimensionDrift)
	}
	if bp.dimension == 0 {
		bp.dimension = got
		return nil
	}
	if got != bp.dimension {
		return fmt.Errorf("%w: got %d, run established %d", ErrDimensionDrift, got, bp.dimension)
	}
	return nil
}
