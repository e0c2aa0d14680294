// Package ingestion implements the track ingestion pipeline: analyze,
// embed, transfer the payload into the blob store, and persist the media
// record. The source URL is the dedup key; ingesting a URL twice is a no-op
// that returns the existing record.
package ingestion
