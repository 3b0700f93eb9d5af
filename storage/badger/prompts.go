package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// PromptRepository implements storage.PromptRepository for BadgerDB.
type PromptRepository struct {
	backend *Backend
}

var _ storage.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a new PromptRepository.
func NewPromptRepository(backend *Backend) *PromptRepository {
	return &PromptRepository{backend: backend}
}

// Close releases repository resources.
func (r *PromptRepository) Close() error {
	return nil
}

// SavePrompt inserts or overwrites the config keyed by its ID.
func (r *PromptRepository) SavePrompt(ctx context.Context, config *core.PromptConfig) (string, error) {
	if config == nil || config.ID == "" {
		return "", storage.ErrEmptyID
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		value, err := storage.MarshalPromptConfig(config)
		if err != nil {
			return err
		}
		if err := tx.Set(makePromptKey(config.ID), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return "", err
	}

	return config.ID, nil
}

// GetPrompt retrieves a single config by ID.
func (r *PromptRepository) GetPrompt(ctx context.Context, id string) (*core.PromptConfig, error) {
	if id == "" {
		return nil, storage.ErrEmptyID
	}

	var result *core.PromptConfig
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePromptKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalPromptConfig(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// GetActivePrompt returns the active config for a prompt type. When
// several are active the most recently updated one wins.
func (r *PromptRepository) GetActivePrompt(ctx context.Context, promptType string) (*core.PromptConfig, error) {
	configs, err := r.scanPrompts(ctx)
	if err != nil {
		return nil, err
	}

	var active *core.PromptConfig
	for _, config := range configs {
		if !config.IsActive || config.PromptType != promptType {
			continue
		}
		if active == nil || config.UpdatedAt.After(active.UpdatedAt) {
			active = config
		}
	}
	if active == nil {
		return nil, storage.ErrNotFound
	}
	return active, nil
}

// ListPrompts returns all configs ordered by creation time descending.
func (r *PromptRepository) ListPrompts(ctx context.Context) ([]*core.PromptConfig, error) {
	configs, err := r.scanPrompts(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(configs, func(a, b *core.PromptConfig) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return configs, nil
}

// scanPrompts reads every prompt config. The config set is small so a
// full scan is fine here.
func (r *PromptRepository) scanPrompts(ctx context.Context) ([]*core.PromptConfig, error) {
	var configs []*core.PromptConfig
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(promptRecordPrefix + ":")

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var config *core.PromptConfig
			err := iter.Item().Value(func(val []byte) error {
				var err error
				config, err = storage.UnmarshalPromptConfig(val)
				return err
			})
			if err != nil {
				return err
			}
			if config != nil {
				configs = append(configs, config)
			}
		}
		return nil
	}, false)
	return configs, err
}
