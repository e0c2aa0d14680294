// Package blob defines the binary object store abstraction used for media
// payloads. A MediaRecord references its payload by the opaque identifier
// returned from Upload; the record is only ever persisted after the upload
// reported durable success.
//
// Two implementations ship with Melodex:
//
//   - blob/fs: local filesystem store with sharded uuid paths
//   - blob/s3: S3-compatible object storage (AWS S3, minio)
package blob
