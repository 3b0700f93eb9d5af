package core

import "time"

// Category classifies an email according to the urgency and kind of
// attention it needs.
type Category string

const (
	CategoryUrgent         Category = "URGENT"
	CategoryActionRequired Category = "ACTION_REQUIRED"
	CategoryInformational  Category = "INFORMATIONAL"
	CategorySpam           Category = "SPAM"
	CategoryUncategorized  Category = "UNCATEGORIZED"
)

// Categories returns all valid email categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryUrgent,
		CategoryActionRequired,
		CategoryInformational,
		CategorySpam,
		CategoryUncategorized,
	}
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryUrgent, CategoryActionRequired, CategoryInformational,
		CategorySpam, CategoryUncategorized:
		return true
	}
	return false
}

// ParseCategory maps a raw label onto a Category. The second return value
// is false when the label is unknown; callers are expected to coerce to
// CategoryUncategorized in that case rather than fail.
func ParseCategory(label string) (Category, bool) {
	c := Category(label)
	if c.Valid() {
		return c, true
	}
	return CategoryUncategorized, false
}

// Priority ranks an action item. Unknown priorities sort after Low.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank returns the sort position of the priority. High sorts first,
// unrecognized values sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// ParsePriority maps a raw label onto a Priority. The second return
// value is false when the label is missing or unknown; callers are
// expected to coerce to PriorityMedium in that case rather than fail.
func ParsePriority(label string) (Priority, bool) {
	p := Priority(label)
	if p.Valid() {
		return p, true
	}
	return PriorityMedium, false
}

// Prompt type tags. Each agent looks up its active prompt configuration
// by one of these tags.
const (
	PromptTypeCategorization = "categorization"
	PromptTypeActionItem     = "action_item"
	PromptTypeReplyDraft     = "reply_draft"
)

// PromptTypes returns the valid prompt type tags.
func PromptTypes() []string {
	return []string{PromptTypeCategorization, PromptTypeActionItem, PromptTypeReplyDraft}
}

// ActionItem is a discrete task extracted from an email body.
// Items are owned by exactly one email. The ID is generated at extraction
// time; the description is additionally kept as a legacy lookup key for
// completion toggling.
type ActionItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Deadline    string   `json:"deadline,omitempty"`
	Completed   bool     `json:"completed"`
}

// Email is the central record of the pipeline. It is created at ingestion
// and enriched in place by the categorization and action-item agents.
// Emails are never deleted.
type Email struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`

	// Processing results
	Category       Category     `json:"category"`
	CategoryReason string       `json:"category_reason,omitempty"`
	ActionItems    []ActionItem `json:"action_items"`

	// Metadata
	HasAttachments  bool     `json:"has_attachments"`
	AttachmentNames []string `json:"attachment_names,omitempty"`
	ThreadID        string   `json:"thread_id,omitempty"`
	IsRead          bool     `json:"is_read"`
	IsStarred       bool     `json:"is_starred"`

	// Vector search
	EmbeddingID string `json:"embedding_id,omitempty"`
}

// NewEmail creates an email with a generated ID, the current timestamp,
// and the default UNCATEGORIZED category.
func NewEmail(sender, recipient, subject, body string) *Email {
	return &Email{
		ID:        NewID(),
		Sender:    sender,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().UTC(),
		Category:  CategoryUncategorized,
	}
}

// EmailDraft is a generated or hand-edited reply or fresh email,
// persisted independently of its originating email.
type EmailDraft struct {
	ID              string    `json:"id"`
	OriginalEmailID string    `json:"original_email_id,omitempty"`
	Recipient       string    `json:"recipient"`
	Subject         string    `json:"subject"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Metadata carried over from the source email for context
	Category           string   `json:"category,omitempty"`
	ActionItems        []string `json:"action_items,omitempty"`
	SuggestedFollowups []string `json:"suggested_followups,omitempty"`

	// Status
	IsSent  bool `json:"is_sent"`
	IsSaved bool `json:"is_saved"`
}

// NewEmailDraft creates a draft with a generated ID and matching
// created/updated timestamps.
func NewEmailDraft(recipient, subject, body string) *EmailDraft {
	now := time.Now().UTC()
	return &EmailDraft{
		ID:        NewID(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
		IsSaved:   true,
	}
}

// PromptConfig holds an instruction text for one agent operation type.
// The active config of a type is the default prompt for that operation;
// per-call overrides bypass the lookup without being persisted.
type PromptConfig struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PromptType string    `json:"prompt_type"`
	PromptText string    `json:"prompt_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	IsActive   bool      `json:"is_active"`
	Version    int       `json:"version"`
}

// NewPromptConfig creates an active version-1 prompt configuration with a
// generated ID.
func NewPromptConfig(name, promptType, promptText string) *PromptConfig {
	now := time.Now().UTC()
	return &PromptConfig{
		ID:         NewID(),
		Name:       name,
		PromptType: promptType,
		PromptText: promptText,
		CreatedAt:  now,
		UpdatedAt:  now,
		IsActive:   true,
		Version:    1,
	}
}

// VectorMatch is a single result from a similarity query against the
// vector index.
type VectorMatch struct {
	ID       string
	Score    float32
	Metadata map[string]string
}
