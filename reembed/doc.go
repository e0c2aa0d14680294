// Package reembed regenerates the embeddings of an existing media corpus
// with a new or updated embedding model.
//
// The text for each record is recomposed from its stored analysis fields, so
// a run produces exactly the text the original ingestion embedded. Batches
// run concurrently on a worker pool with retry and exponential backoff, and
// the run enforces a single embedding dimension across the whole corpus.
package reembed
