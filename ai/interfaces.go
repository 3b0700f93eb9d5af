package ai

import (
	"context"
	"iter"
)

// Generator produces text completions from an LLM endpoint.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate produces a text completion for the prompt.
	// Transient endpoint failures are retried with exponential backoff;
	// exhausting the retries surfaces the last error to the caller.
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)

	// GenerateStream produces a lazy, finite sequence of incremental text
	// chunks. The sequence is not restartable and fails at the first
	// error; a stream already started is never partially retried.
	GenerateStream(ctx context.Context, prompt string, opts ...GenerateOption) iter.Seq2[string, error]
}

// Classifier extracts structured intelligence from email content via
// JSON-shaped LLM completions. Implementations must be thread-safe.
//
// Both methods share the same failure asymmetry: a generation error is
// returned to the caller (hard fail), while malformed JSON in the model
// response degrades to a safe default carried in the result (soft fail).
type Classifier interface {
	// CategorizeEmail classifies one email's content. When customPrompt is
	// empty the built-in default instruction text is used.
	CategorizeEmail(ctx context.Context, emailContent, customPrompt string) (Categorization, error)

	// ExtractActionItems extracts zero or more structured tasks from one
	// email's content. When customPrompt is empty the built-in default
	// instruction text is used.
	ExtractActionItems(ctx context.Context, emailContent, customPrompt string) (Extraction, error)
}

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch. The returned slice preserves input order.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Generator,
// Classifier and Embedder instances sharing configuration and resources.
type Provider interface {
	// Generator returns the text generation service.
	Generator() Generator

	// Classifier returns the email classification service.
	Classifier() Classifier

	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	Close() error
}
