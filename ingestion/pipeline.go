// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/blob"
	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
)

// Pipeline ingests tracks: it analyzes the track, embeds the composed
// description, transfers the binary payload into the blob store, and persists
// a media record. The source URL doubles as the dedup key, so ingesting the
// same URL twice yields the record from the first run.
type Pipeline struct {
	mediaRepository storage.MediaRepository
	blobStore       blob.Store
	embedder        ai.Embedder
	analyzer        ai.Analyzer
	fetcher         Fetcher
	guard           *DimensionGuard
	logger          *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFetcher overrides the payload fetcher. The default fetches over HTTP.
func WithFetcher(fetcher Fetcher) Option {
	return func(p *Pipeline) {
		p.fetcher = fetcher
	}
}

// WithDimensionGuard shares a dimension guard with other components, so a
// corpus-established dimension constrains new ingestions.
func WithDimensionGuard(guard *DimensionGuard) Option {
	return func(p *Pipeline) {
		p.guard = guard
	}
}

// WithLogger sets the logger for pipeline operations.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger.With("component", "ingestion")
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(mediaRepository storage.MediaRepository, blobStore blob.Store, embedder ai.Embedder, analyzer ai.Analyzer, opts ...Option) (*Pipeline, error) {
	if mediaRepository == nil {
		return nil, ErrMediaRepositoryRequired
	}
	if blobStore == nil {
		return nil, ErrBlobStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}

	p := &Pipeline{
		mediaRepository: mediaRepository,
		blobStore:       blobStore,
		embedder:        embedder,
		analyzer:        analyzer,
		logger:          slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.fetcher == nil {
		p.fetcher = NewHTTPFetcher(0)
	}
	if p.guard == nil {
		p.guard = NewDimensionGuard(0)
	}

	return p, nil
}

// Ingest runs the full pipeline for the track at sourceURL. If a record for
// the URL already exists the pipeline performs no side effects and returns
// the existing record. All failures leave the store without a record for the
// URL, so a failed ingestion can simply be retried.
func (p *Pipeline) Ingest(ctx context.Context, sourceURL string) (*core.MediaRecord, error) {
	exists, err := p.mediaRepository.Exists(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if exists {
		p.logger.Info("skipping already ingested track", "url", sourceURL)
		return p.mediaRepository.GetMediaRecordBySourceKey(ctx, sourceURL)
	}

	analysis, err := p.analyzer.Analyze(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAnalysisService, err)
	}

	embedding, err := p.embedder.EmbedText(ctx, analysis.EmbeddingText())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	if err := p.guard.Check(len(embedding)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}

	payload, filename, err := p.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	blobId, err := p.blobStore.Upload(ctx, filename, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBlobStore, err)
	}

	record := &core.MediaRecord{
		SourceKey:   sourceURL,
		BlobId:      blobId,
		Filename:    filename,
		Language:    analysis.Language,
		LanguageIso: analysis.LanguageIso,
		Summary:     analysis.Summary,
		Explicit:    analysis.Explicit,
		Keywords:    analysis.Keywords,
		Moods:       analysis.Moods,
		Themes:      analysis.Themes,
		Flags:       analysis.Flags,
		Embedding:   embedding,
	}

	if err := core.ValidateMediaRecord(record, p.guard.Dimension()); err != nil {
		return nil, err
	}

	stored, err := p.mediaRepository.AddMediaRecord(ctx, record)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// A concurrent ingestion won the race. The blob uploaded above is
			// now orphaned; that costs storage, not correctness.
			p.logger.Info("track ingested concurrently, using existing record", "url", sourceURL)
			return p.mediaRepository.GetMediaRecordBySourceKey(ctx, sourceURL)
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	p.logger.Info("ingested track",
		"url", sourceURL,
		"id", stored.Id,
		"blobId", stored.BlobId,
		"dimension", len(stored.Embedding))
	return stored, nil
}
