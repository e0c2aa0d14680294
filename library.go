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

// Package melodex ties the ingestion pipeline and the similarity search
// engine to one media library: a badger-backed record store, a blob store
// for the binary payloads, and the analysis and embedding services.
package melodex

import (
	"log/slog"

	"github.com/poiesic/melodex/ai"
	"github.com/poiesic/melodex/ai/lyrics"
	"github.com/poiesic/melodex/ai/openai"
	"github.com/poiesic/melodex/blob"
	"github.com/poiesic/melodex/blob/fs"
	"github.com/poiesic/melodex/ingestion"
	"github.com/poiesic/melodex/search"
	"github.com/poiesic/melodex/storage"
	"github.com/poiesic/melodex/storage/badger"
)

// Library is the top-level handle over one media corpus.
type Library struct {
	backend   *badger.Backend
	mediaRepo storage.MediaRepository
	blobStore blob.Store
	embedder  ai.Embedder
	analyzer  ai.Analyzer
	logger    *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig  *ai.Config
	blobStore blob.Store
	blobRoot  string
}

// WithAIConfig overrides the analysis/embedding service configuration.
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithBlobStore supplies a blob store, typically an S3-backed one. The
// default is a filesystem store next to the database.
func WithBlobStore(store blob.Store) LibraryOption {
	return func(o *libraryOptions) {
		o.blobStore = store
	}
}

// WithBlobRoot sets the directory for the default filesystem blob store.
// Ignored when WithBlobStore is given.
func WithBlobRoot(root string) LibraryOption {
	return func(o *libraryOptions) {
		o.blobRoot = root
	}
}

// NewLibrary opens (or creates) the media library at filePath.
func NewLibrary(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
		blobRoot: filePath + "-blobs",
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	mediaRepo, err := badger.NewMediaRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	blobStore := options.blobStore
	if blobStore == nil {
		blobStore, err = fs.NewStore(options.blobRoot)
		if err != nil {
			mediaRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		mediaRepo.Close()
		backend.Close()
		return nil, err
	}

	analyzer, err := lyrics.NewClient(options.aiConfig)
	if err != nil {
		mediaRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Library{
		backend:   backend,
		mediaRepo: mediaRepo,
		blobStore: blobStore,
		embedder:  embedder,
		analyzer:  analyzer,
		logger:    slog.Default(),
	}, nil
}

func (l *Library) Close() error {
	if err := l.mediaRepo.Close(); err != nil {
		l.logger.Error("error closing media repository", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (l *Library) MediaRepository() storage.MediaRepository {
	return l.mediaRepo
}

func (l *Library) BlobStore() blob.Store {
	return l.blobStore
}

func (l *Library) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(l.mediaRepo, l.blobStore, l.embedder, l.analyzer, opts...)
}

func (l *Library) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(l.mediaRepo, l.embedder, opts...)
}
