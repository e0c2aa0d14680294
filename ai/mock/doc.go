// Package mock provides test doubles for the ai package interfaces.
//
// MockEmbedder produces deterministic vectors derived from the input text,
// so tests get stable similarity scores without an embedding service.
// MockAnalyzer returns a fixed analysis for any source URL. Both support
// behavior injection through function fields and call-count assertions.
package mock
