package openai

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/brightbeam/mailmind/ai"
)

// errStreamStopped signals that the consumer stopped ranging over a
// stream; it is used to abort the underlying generation cleanly.
var errStreamStopped = errors.New("stream consumer stopped")

// Generator implements ai.Generator using OpenAI-compatible chat APIs.
type Generator struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken("none"),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &Generator{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generator using the provided configuration.
//
// Returns ai.Generator interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.Generator, error) {
	return newGenerator(config)
}

// callOptions resolves per-call overrides against the configured defaults.
func (g *Generator) callOptions(opts []ai.GenerateOption) []llms.CallOption {
	o := ai.NewGenerateOptions(opts...)

	temperature := g.config.Temperature
	if o.HasTemperature {
		temperature = o.Temperature
	}
	maxTokens := g.config.MaxTokens
	if o.HasMaxTokens {
		maxTokens = o.MaxTokens
	}

	return []llms.CallOption{
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	}
}

// Generate produces a text completion for the prompt. Failures from the
// underlying call are retried with exponential backoff; once the attempt
// budget is exhausted the last error is returned.
func (g *Generator) Generate(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}
	callOpts := g.callOptions(opts)

	var text string
	err := retryWithBackoff(ctx, func() error {
		response, err := g.client.GenerateContent(ctx, content, callOpts...)
		if err != nil {
			return err
		}
		if len(response.Choices) < 1 {
			return errors.New("no choices returned from model")
		}
		text = response.Choices[0].Content
		return nil
	}, g.config.MaxAttempts, g.config.RetryMinDelay, g.config.RetryMaxDelay)

	if err != nil {
		g.logger.Error("failed to generate text", "err", err)
		return "", err
	}
	return text, nil
}

// GenerateStream produces a lazy sequence of incremental text chunks.
// The sequence ends at the first error; a started stream is never
// retried, since the consumer may already have observed partial output.
func (g *Generator) GenerateStream(ctx context.Context, prompt string, opts ...ai.GenerateOption) iter.Seq2[string, error] {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}
	callOpts := g.callOptions(opts)

	return func(yield func(string, error) bool) {
		stopped := false
		streamOpt := llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			if len(chunk) == 0 {
				return nil
			}
			if !yield(string(chunk), nil) {
				stopped = true
				return errStreamStopped
			}
			return nil
		})

		_, err := g.client.GenerateContent(ctx, content, append(callOpts, streamOpt)...)
		if err != nil && !stopped {
			g.logger.Error("error in streaming generation", "err", err)
			yield("", err)
		}
	}
}
