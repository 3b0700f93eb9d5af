package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// DraftRepository implements storage.DraftRepository for BadgerDB.
//
// Drafts carry no secondary index: their update time churns on every
// refinement, so listing scans and sorts instead.
type DraftRepository struct {
	backend *Backend
}

var _ storage.DraftRepository = (*DraftRepository)(nil)

// NewDraftRepository creates a new DraftRepository.
func NewDraftRepository(backend *Backend) *DraftRepository {
	return &DraftRepository{backend: backend}
}

// Close releases repository resources.
func (r *DraftRepository) Close() error {
	return nil
}

// SaveDraft inserts or overwrites the draft keyed by its ID.
func (r *DraftRepository) SaveDraft(ctx context.Context, draft *core.EmailDraft) (string, error) {
	if draft == nil || draft.ID == "" {
		return "", storage.ErrEmptyID
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		value, err := storage.MarshalDraft(draft)
		if err != nil {
			return err
		}
		if err := tx.Set(makeDraftKey(draft.ID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return "", err
	}

	return draft.ID, nil
}

// GetDraft retrieves a single draft by ID.
func (r *DraftRepository) GetDraft(ctx context.Context, id string) (*core.EmailDraft, error) {
	if id == "" {
		return nil, storage.ErrEmptyID
	}

	var result *core.EmailDraft
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDraftKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalDraft(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// ListDrafts returns drafts ordered by update time descending.
func (r *DraftRepository) ListDrafts(ctx context.Context, skip, limit int) ([]*core.EmailDraft, error) {
	var drafts []*core.EmailDraft
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(draftRecordPrefix + ":")

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var draft *core.EmailDraft
			err := iter.Item().Value(func(val []byte) error {
				var err error
				draft, err = storage.UnmarshalDraft(val)
				return err
			})
			if err != nil {
				return err
			}
			if draft != nil {
				drafts = append(drafts, draft)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(drafts, func(a, b *core.EmailDraft) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	if skip >= len(drafts) {
		return nil, nil
	}
	drafts = drafts[skip:]
	if limit > 0 && len(drafts) > limit {
		drafts = drafts[:limit]
	}
	return drafts, nil
}

// DeleteDraft removes a draft by ID.
func (r *DraftRepository) DeleteDraft(ctx context.Context, id string) error {
	if id == "" {
		return storage.ErrEmptyID
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDraftKey(id)
		if _, err := tx.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
