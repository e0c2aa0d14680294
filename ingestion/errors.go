package ingestion

import "errors"

// Stage errors. Each ingestion failure wraps exactly one of these, so the
// caller learns which stage failed with errors.Is without parsing messages.
var (
	// ErrAnalysisService indicates the metadata/lyrics analysis service
	// returned a non-success response or a malformed payload.
	ErrAnalysisService = errors.New("analysis service failed")

	// ErrEmbedding indicates the embedding call failed or returned a vector
	// of an unexpected dimension.
	ErrEmbedding = errors.New("embedding failed")

	// ErrTransfer indicates the binary payload could not be fetched from its
	// source location.
	ErrTransfer = errors.New("payload transfer failed")

	// ErrBlobStore indicates the blob store upload failed.
	ErrBlobStore = errors.New("blob store failed")

	// ErrDatabase indicates the record could not be persisted.
	ErrDatabase = errors.New("database failed")
)

// Constructor validation errors.
var (
	// ErrMediaRepositoryRequired is returned when a media repository is not provided.
	ErrMediaRepositoryRequired = errors.New("media repository required")

	// ErrBlobStoreRequired is returned when a blob store is not provided.
	ErrBlobStoreRequired = errors.New("blob store required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrAnalyzerRequired is returned when an analyzer is not provided.
	ErrAnalyzerRequired = errors.New("analyzer required")
)
