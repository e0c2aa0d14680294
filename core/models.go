package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing of the record's source key.
type ID uint64

// IDFromSourceKey generates a deterministic ID from a source key using BLAKE2b hashing.
// Identical source keys always produce identical IDs, which makes the
// duplicate check a point lookup.
func IDFromSourceKey(sourceKey string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(sourceKey))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MediaRecord represents a single ingested media item. Records are
// append-only: once persisted, only the embedding may change (via a
// corpus re-embedding migration).
type MediaRecord struct {
	Id          ID
	SourceKey   string // Canonical source URL, unique across all records
	BlobId      string // Opaque blob store identifier, assigned after a durable upload
	Filename    string
	Language    string
	LanguageIso string
	Summary     string
	Explicit    bool
	Keywords    []string // Values in analysis-document order
	Moods       []string
	Themes      []string
	Flags       []byte // Raw JSON passthrough from the analysis service
	Embedding   []float32
	CreatedAt   time.Time
}

// EmbeddingText recomposes the text this record's embedding was generated
// from. It must match the text composed from the original TrackAnalysis,
// or re-embedding drifts away from the stored vectors.
func (r *MediaRecord) EmbeddingText() string {
	return composeEmbeddingText(r.Summary, r.Keywords, r.Moods, r.Themes)
}

// TrackAnalysis is the normalized result of the metadata/lyrics analysis
// service for a single track. Irregular wire field names ("language-iso",
// "ddex moods") are mapped to fixed field names at the parse boundary;
// no string-keyed lookup leaks past it.
type TrackAnalysis struct {
	Summary     string
	Language    string
	LanguageIso string
	Explicit    bool
	Keywords    []string
	Moods       []string
	Themes      []string
	Flags       []byte
}

// EmbeddingText composes the text to embed for this analysis.
func (a *TrackAnalysis) EmbeddingText() string {
	return composeEmbeddingText(a.Summary, a.Keywords, a.Moods, a.Themes)
}

// SearchResult represents a similarity match with the full record and its
// cosine score.
type SearchResult struct {
	Record *MediaRecord
	Score  float64
}
