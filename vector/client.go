package vector

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

const (
	// bodyPreviewLength caps the body excerpt stored in vector metadata.
	bodyPreviewLength = 200

	// contextSeparator joins retrieved snippets into a single context
	// block for the language model.
	contextSeparator = "\n\n---\n\n"
)

// Client indexes emails into the vector store and answers semantic
// queries over them. Vectors are unit-normalized on the way in so the
// store's dot-product scoring behaves as cosine similarity.
type Client struct {
	vectors  storage.VectorRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewClient creates a new vector index client.
func NewClient(vectors storage.VectorRepository, embedder ai.Embedder, opts ...Option) (*Client, error) {
	if vectors == nil {
		return nil, ErrVectorRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	c := &Client{
		vectors:  vectors,
		embedder: embedder,
		logger:   slog.Default().With("component", "vector"),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// UpsertEmail embeds an email's searchable text and stores the vector
// keyed by the email's ID, together with display metadata for retrieval.
// Returns the vector entry's id.
func (c *Client) UpsertEmail(ctx context.Context, email *core.Email) (string, error) {
	if email == nil || email.ID == "" {
		return "", storage.ErrEmptyID
	}

	text := embeddingText(email)
	embedding, err := c.embedder.EmbedText(ctx, text)
	if err != nil {
		c.logger.Error("error embedding email", "email_id", email.ID, "err", err)
		return "", err
	}

	metadata := map[string]string{
		"sender":       email.Sender,
		"subject":      email.Subject,
		"body_preview": truncate(email.Body, bodyPreviewLength),
		"category":     string(email.Category),
		"timestamp":    email.Timestamp.UTC().Format(time.RFC3339),
	}

	err = c.vectors.UpsertVector(ctx, email.ID, normalizeVector(embedding), metadata)
	if err != nil {
		return "", err
	}
	return email.ID, nil
}

// Delete removes an email's vector entry. Missing ids are a no-op.
func (c *Client) Delete(ctx context.Context, emailID string) error {
	return c.vectors.DeleteVector(ctx, emailID)
}

// Search embeds the query and returns up to topK entries ordered by
// similarity descending, optionally restricted by the metadata filter.
func (c *Client) Search(ctx context.Context, query string, topK int, filter storage.VectorFilter) ([]*core.VectorMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	embedding, err := c.embedder.EmbedText(ctx, query)
	if err != nil {
		c.logger.Error("error embedding query", "err", err)
		return nil, err
	}

	return c.vectors.QuerySimilar(ctx, normalizeVector(embedding), topK, filter)
}

// RelevantContext searches for the query and formats the matches into a
// context block suitable for prompting. Returns the block and the
// matches it was built from; an empty string when nothing matched.
func (c *Client) RelevantContext(ctx context.Context, query string, topK int, filter storage.VectorFilter) (string, []*core.VectorMatch, error) {
	matches, err := c.Search(ctx, query, topK, filter)
	if err != nil {
		return "", nil, err
	}
	if len(matches) == 0 {
		return "", nil, nil
	}

	snippets := make([]string, 0, len(matches))
	for _, match := range matches {
		snippets = append(snippets, formatSnippet(match.Metadata))
	}
	return strings.Join(snippets, contextSeparator), matches, nil
}

// embeddingText builds the text actually embedded for an email.
func embeddingText(email *core.Email) string {
	return fmt.Sprintf("Subject: %s\nFrom: %s\n\n%s", email.Subject, email.Sender, email.Body)
}

// formatSnippet renders one match's metadata for the context block.
func formatSnippet(metadata map[string]string) string {
	return fmt.Sprintf("Subject: %s\nFrom: %s\nContent: %s",
		metadata["subject"], metadata["sender"], metadata["body_preview"])
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// normalizeVector normalizes a vector to unit length.
// Returns a new vector. If the input is a zero vector, returns a zero vector.
func normalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var magnitude float32
	for _, val := range v {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude == 0 {
		return make([]float32, len(v))
	}

	result := make([]float32, len(v))
	for i, val := range v {
		result[i] = val / magnitude
	}
	return result
}
