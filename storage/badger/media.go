package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/melodex/core"
	"github.com/poiesic/melodex/storage"
)

// MediaRepository implements storage.MediaRepository for BadgerDB.
type MediaRepository struct {
	backend *Backend
}

var _ storage.MediaRepository = (*MediaRepository)(nil)

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(backend *Backend) (*MediaRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &MediaRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *MediaRepository) Close() error {
	return nil
}

// Exists reports whether a record for the source key is stored.
func (r *MediaRepository) Exists(ctx context.Context, sourceKey string) (bool, error) {
	var found bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeMediaRecordKey(core.IDFromSourceKey(sourceKey)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	}, false)
	return found, err
}

// AddMediaRecord persists a single record. The existence check and the
// insert share one write transaction: if the key was written between the
// check and this commit, Badger reports a conflict and the caller sees
// ErrDuplicateKey, the same outcome as losing the check itself. Exactly one
// record per source key can ever be committed.
func (r *MediaRepository) AddMediaRecord(ctx context.Context, record *core.MediaRecord) (*core.MediaRecord, error) {
	if record.Id == 0 {
		record.Id = core.IDFromSourceKey(record.SourceKey)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMediaRecordKey(record.Id)

		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrDuplicateKey
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := tx.Set(key, storage.MarshalMediaRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if errors.Is(err, badger.ErrConflict) {
		err = storage.ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateMediaRecords replaces existing records.
func (r *MediaRepository) UpdateMediaRecords(ctx context.Context, records ...*core.MediaRecord) ([]*core.MediaRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeMediaRecordKey(record.Id)

			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}

			if err := tx.Set(key, storage.MarshalMediaRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetMediaRecord retrieves a single record by ID.
func (r *MediaRepository) GetMediaRecord(ctx context.Context, id core.ID) (*core.MediaRecord, error) {
	var result *core.MediaRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readMediaRecord(tx, makeMediaRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetMediaRecordBySourceKey retrieves the record for a source key.
func (r *MediaRepository) GetMediaRecordBySourceKey(ctx context.Context, sourceKey string) (*core.MediaRecord, error) {
	return r.GetMediaRecord(ctx, core.IDFromSourceKey(sourceKey))
}

// AllMediaRecords performs a full corpus scan.
func (r *MediaRepository) AllMediaRecords(ctx context.Context) ([]*core.MediaRecord, error) {
	var results []*core.MediaRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(mediaRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.MediaRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalMediaRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// readMediaRecord reads and unmarshals a record, returning nil if absent.
func (r *MediaRepository) readMediaRecord(tx *badger.Txn, key []byte) (*core.MediaRecord, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record *core.MediaRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalMediaRecord(val)
		return err
	})
	return record, err
}
