package badger

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// EmailRepository implements storage.EmailRepository for BadgerDB.
type EmailRepository struct {
	backend *Backend
}

var _ storage.EmailRepository = (*EmailRepository)(nil)

// NewEmailRepository creates a new EmailRepository.
func NewEmailRepository(backend *Backend) *EmailRepository {
	return &EmailRepository{backend: backend}
}

// Close releases repository resources. The backend itself is closed by
// its owner.
func (r *EmailRepository) Close() error {
	return nil
}

// SaveEmail inserts or overwrites the email keyed by its ID.
func (r *EmailRepository) SaveEmail(ctx context.Context, email *core.Email) (string, error) {
	if email == nil || email.ID == "" {
		return "", storage.ErrEmptyID
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmailKey(email.ID)

		// Read any existing record so the date index can be kept in sync
		// when the timestamp changes.
		old, err := r.readEmail(tx, key)
		if err != nil {
			return err
		}

		value, err := storage.MarshalEmail(email)
		if err != nil {
			return err
		}
		if err := tx.Set(key, value); err != nil {
			return err
		}

		if old != nil && !old.Timestamp.Equal(email.Timestamp) {
			if err := tx.Delete(makeEmailDateKey(old.Timestamp, old.ID)); err != nil {
				return err
			}
		}
		if old == nil || !old.Timestamp.Equal(email.Timestamp) {
			if err := tx.Set(makeEmailDateKey(email.Timestamp, email.ID), []byte(email.ID)); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return "", err
	}

	return email.ID, nil
}

// GetEmail retrieves a single email by ID.
func (r *EmailRepository) GetEmail(ctx context.Context, id string) (*core.Email, error) {
	if id == "" {
		return nil, storage.ErrEmptyID
	}

	var result *core.Email
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readEmail(tx, makeEmailKey(id))
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

// ListEmails returns emails matching the filter ordered by timestamp
// descending. Pagination via skip and limit applies after filtering; a
// limit <= 0 means no limit.
func (r *EmailRepository) ListEmails(ctx context.Context, filter storage.EmailFilter, skip, limit int) ([]*core.Email, error) {
	var results []*core.Email

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Walk the date index backwards to get newest first.
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makePartialEmailDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(emailRecordDatePrefix + ":")

		skipped := 0
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var emailID string
			if err := iter.Item().Value(func(val []byte) error {
				emailID = string(val)
				return nil
			}); err != nil {
				return err
			}

			email, err := r.readEmail(tx, makeEmailKey(emailID))
			if err != nil {
				return err
			}
			if email == nil || !matchesFilter(email, filter) {
				continue
			}

			if skipped < skip {
				skipped++
				continue
			}

			results = append(results, email)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	return results, err
}

// CountEmails returns the number of emails matching the filter.
func (r *EmailRepository) CountEmails(ctx context.Context, filter storage.EmailFilter) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(emailRecordPrefix + ":")

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var email *core.Email
			err := iter.Item().Value(func(val []byte) error {
				var err error
				email, err = storage.UnmarshalEmail(val)
				return err
			})
			if err != nil {
				return err
			}
			if email != nil && matchesFilter(email, filter) {
				count++
			}
		}
		return nil
	}, false)
	return count, err
}

// readEmail reads an email record from the transaction. A missing key
// yields (nil, nil).
func (r *EmailRepository) readEmail(tx *badger.Txn, key []byte) (*core.Email, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var email *core.Email
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		email, unmarshalErr = storage.UnmarshalEmail(val)
		return unmarshalErr
	})
	return email, err
}

// matchesFilter checks an email against the filter. Zero-valued filter
// fields match everything.
func matchesFilter(email *core.Email, filter storage.EmailFilter) bool {
	if filter.Category != nil && email.Category != *filter.Category {
		return false
	}
	if filter.Sender != "" &&
		!strings.Contains(strings.ToLower(email.Sender), strings.ToLower(filter.Sender)) {
		return false
	}
	return true
}
