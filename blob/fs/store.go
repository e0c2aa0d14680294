package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/poiesic/melodex/blob"
)

// Directory/File permission.
const permission os.FileMode = 0o755

// Store implements blob.Store on the local filesystem. Blobs are written
// under a two-level shard directory derived from the uuid, keeping directory
// fan-out bounded for large corpora. No caching is built in; payloads are
// large and callers can layer caching on top.
type Store struct {
	root   string
	logger *slog.Logger
}

var _ blob.Store = (*Store)(nil)

// NewStore creates a filesystem blob store rooted at the given directory,
// creating it if needed.
func NewStore(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("blob store root directory required")
	}
	if err := os.MkdirAll(root, permission); err != nil {
		return nil, err
	}
	return &Store{
		root:   root,
		logger: slog.Default().With("component", "fs-blobstore"),
	}, nil
}

// Upload writes the payload under a freshly generated uuid and returns the
// uuid once the file is fully written. The advisory name is logged only.
func (s *Store) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", blob.ErrEmptyPayload
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.New().String()
	dir := s.shardDir(id)
	if err := os.MkdirAll(dir, permission); err != nil {
		return "", err
	}

	path := filepath.Join(dir, id)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		// Leave no partial file behind a returned id.
		os.Remove(path)
		return "", err
	}

	s.logger.Debug("uploaded blob", "id", id, "name", name, "bytes", len(data))
	return id, nil
}

// Download streams the blob identified by id into the sink.
func (s *Store) Download(ctx context.Context, id string, sink io.Writer) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", blob.ErrInvalidID, id)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.shardDir(id), id)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", blob.ErrNotFound, id)
		}
		return err
	}
	defer f.Close()

	if _, err := io.Copy(sink, f); err != nil {
		return err
	}
	return nil
}

// shardDir computes the shard directory for a blob id: root/aa/bb from the
// first four hex characters.
func (s *Store) shardDir(id string) string {
	return filepath.Join(s.root, id[:2], id[2:4])
}
