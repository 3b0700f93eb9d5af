package storage

import (
	"context"

	"github.com/brightbeam/mailmind/core"
)

// EmailFilter restricts email listing and counting.
// Zero-valued fields do not filter.
type EmailFilter struct {
	// Category restricts to emails with exactly this category.
	Category *core.Category

	// Sender restricts to emails whose sender contains this substring,
	// case-insensitively.
	Sender string
}

// EmailRepository provides operations for managing email records.
// Implementations must be thread-safe and support concurrent access.
//
// Saves follow upsert-by-application-id semantics: no duplicate rows per
// id, last write wins on conflicting concurrent saves. Emails are never
// deleted.
type EmailRepository interface {
	// SaveEmail inserts or overwrites the email keyed by its ID.
	// Returns the email's ID.
	SaveEmail(ctx context.Context, email *core.Email) (string, error)

	// GetEmail retrieves a single email by ID.
	// Returns ErrNotFound if the email doesn't exist.
	GetEmail(ctx context.Context, id string) (*core.Email, error)

	// ListEmails returns emails matching the filter, ordered by timestamp
	// descending, with pagination via skip and limit. A limit <= 0 means
	// no limit.
	ListEmails(ctx context.Context, filter EmailFilter, skip, limit int) ([]*core.Email, error)

	// CountEmails returns the number of emails matching the filter.
	CountEmails(ctx context.Context, filter EmailFilter) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// PromptRepository provides operations for managing prompt configurations.
// Prompt configs are never deleted.
type PromptRepository interface {
	// SavePrompt inserts or overwrites the config keyed by its ID.
	// Returns the config's ID.
	SavePrompt(ctx context.Context, config *core.PromptConfig) (string, error)

	// GetPrompt retrieves a single config by ID.
	// Returns ErrNotFound if the config doesn't exist.
	GetPrompt(ctx context.Context, id string) (*core.PromptConfig, error)

	// GetActivePrompt returns the active config for a prompt type.
	// When several configs of the type are active, the most recently
	// updated one wins. Returns ErrNotFound when none is active.
	GetActivePrompt(ctx context.Context, promptType string) (*core.PromptConfig, error)

	// ListPrompts returns all configs ordered by creation time descending.
	ListPrompts(ctx context.Context) ([]*core.PromptConfig, error)

	// Close releases resources held by the repository.
	Close() error
}

// DraftRepository provides operations for managing email drafts.
type DraftRepository interface {
	// SaveDraft inserts or overwrites the draft keyed by its ID.
	// Returns the draft's ID.
	SaveDraft(ctx context.Context, draft *core.EmailDraft) (string, error)

	// GetDraft retrieves a single draft by ID.
	// Returns ErrNotFound if the draft doesn't exist.
	GetDraft(ctx context.Context, id string) (*core.EmailDraft, error)

	// ListDrafts returns drafts ordered by update time descending, with
	// pagination via skip and limit. A limit <= 0 means no limit.
	ListDrafts(ctx context.Context, skip, limit int) ([]*core.EmailDraft, error)

	// DeleteDraft removes a draft by ID.
	// Returns ErrNotFound if the draft doesn't exist.
	DeleteDraft(ctx context.Context, id string) error

	// Close releases resources held by the repository.
	Close() error
}

// VectorFilter is a metadata predicate applied to candidate matches
// during a similarity query. A nil filter admits everything.
type VectorFilter func(metadata map[string]string) bool

// VectorRepository stores embedding vectors with attached metadata and
// answers nearest-neighbor queries over them.
type VectorRepository interface {
	// UpsertVector stores a vector and its metadata keyed by id.
	// Re-upserting an id overwrites the previous entry.
	UpsertVector(ctx context.Context, id string, vector []float32, metadata map[string]string) error

	// QuerySimilar returns up to topK matches ordered by similarity
	// descending, optionally restricted by the metadata filter.
	QuerySimilar(ctx context.Context, vector []float32, topK int, filter VectorFilter) ([]*core.VectorMatch, error)

	// DeleteVector removes the entry keyed by id. Deleting a missing id
	// is a no-op.
	DeleteVector(ctx context.Context, id string) error

	// Close releases resources held by the repository.
	Close() error
}
