package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
//
// Similarity queries scan every stored vector and score it with a dot
// product, which assumes all vectors are unit-normalized before upsert.
// The scan is fine at single-mailbox scale.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) *VectorRepository {
	return &VectorRepository{backend: backend}
}

// Close releases repository resources.
func (r *VectorRepository) Close() error {
	return nil
}

// UpsertVector stores a vector and its metadata keyed by id.
func (r *VectorRepository) UpsertVector(ctx context.Context, id string, vector []float32, metadata map[string]string) error {
	if id == "" {
		return storage.ErrEmptyID
	}
	if len(vector) == 0 {
		return storage.ErrInvalidQuery
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		value, err := storage.MarshalVectorEntry(vector, metadata)
		if err != nil {
			return err
		}
		if err := tx.Set(makeVectorKey(id), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// QuerySimilar returns up to topK matches ordered by similarity
// descending.
func (r *VectorRepository) QuerySimilar(ctx context.Context, vector []float32, topK int, filter storage.VectorFilter) ([]*core.VectorMatch, error) {
	if len(vector) == 0 {
		return nil, storage.ErrInvalidQuery
	}

	prefix := []byte(vectorRecordPrefix + ":")

	var matches []*core.VectorMatch
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			id := string(item.Key()[len(prefix):])

			var stored []float32
			var metadata map[string]string
			err := item.Value(func(val []byte) error {
				var err error
				stored, metadata, err = storage.UnmarshalVectorEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if len(stored) == 0 {
				continue
			}
			if filter != nil && !filter(metadata) {
				continue
			}

			matches = append(matches, &core.VectorMatch{
				ID:       id,
				Score:    dotProduct(vector, stored),
				Metadata: metadata,
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b *core.VectorMatch) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// DeleteVector removes the entry keyed by id. Missing ids are a no-op.
func (r *VectorRepository) DeleteVector(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrEmptyID
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeVectorKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
