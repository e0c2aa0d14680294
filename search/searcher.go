package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
)

// Searcher answers similarity queries over the stored corpus: the query text
// is embedded, every stored record is scored against the query vector, and
// the top-K matches come back ranked.
type Searcher struct {
	mediaRepository storage.MediaRepository
	embedder        ai.Embedder
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(mediaRepository storage.MediaRepository, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if mediaRepository == nil {
		return nil, ErrMediaRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		mediaRepository: mediaRepository,
		embedder:        embedder,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns up to maxHits records ranked by similarity to the query
// text. Embedding and store failures surface to the caller; an empty result
// built on a failed query vector would be misleading.
func (s *Searcher) Search(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, maxHits, nil)
}

// SearchWithMonitor runs Search with stage callbacks for observability.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(len(embedding))

	corpus, err := s.mediaRepository.AllMediaRecords(ctx)
	if err != nil {
		s.logger.Error("error loading corpus", "err", err)
		return nil, err
	}
	monitor.AfterCorpusLoad(len(corpus))

	results, err := Rank(embedding, corpus, maxHits)
	if err != nil {
		s.logger.Error("error ranking corpus", "corpusSize", len(corpus), "err", err)
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}
