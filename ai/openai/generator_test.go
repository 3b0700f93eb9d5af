package openai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/brightbeam/mailmind/ai"
)

// fakeChatModel is an llms.Model that replays a scripted stream of
// chunks through the streaming callback, then returns finalErr.
type fakeChatModel struct {
	chunks   []string
	finalErr error
	calls    int
}

func (f *fakeChatModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.StreamingFunc != nil {
		for _, chunk := range f.chunks {
			if err := opts.StreamingFunc(ctx, []byte(chunk)); err != nil {
				return nil, err
			}
		}
	}
	if f.finalErr != nil {
		return nil, f.finalErr
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: strings.Join(f.chunks, "")}},
	}, nil
}

func (f *fakeChatModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	response, err := f.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return response.Choices[0].Content, nil
}

func generatorWithModel(t *testing.T, model llms.Model) *Generator {
	t.Helper()
	return &Generator{
		client: model,
		config: ai.DefaultConfig(),
		logger: slog.Default(),
	}
}

func TestGenerateStream(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers chunks in order", func(t *testing.T) {
		model := &fakeChatModel{chunks: []string{"The ", "budget ", "is 50k."}}
		g := generatorWithModel(t, model)

		var got []string
		for chunk, err := range g.GenerateStream(ctx, "question") {
			require.NoError(t, err)
			got = append(got, chunk)
		}
		assert.Equal(t, []string{"The ", "budget ", "is 50k."}, got)
	})

	t.Run("empty chunks are skipped", func(t *testing.T) {
		model := &fakeChatModel{chunks: []string{"", "hello", ""}}
		g := generatorWithModel(t, model)

		var got []string
		for chunk, err := range g.GenerateStream(ctx, "question") {
			require.NoError(t, err)
			got = append(got, chunk)
		}
		assert.Equal(t, []string{"hello"}, got)
	})

	t.Run("ends at first error without retrying", func(t *testing.T) {
		model := &fakeChatModel{
			chunks:   []string{"partial "},
			finalErr: errors.New("connection reset"),
		}
		g := generatorWithModel(t, model)

		var got []string
		var streamErr error
		for chunk, err := range g.GenerateStream(ctx, "question") {
			if err != nil {
				streamErr = err
				continue
			}
			got = append(got, chunk)
		}

		assert.Equal(t, []string{"partial "}, got)
		require.Error(t, streamErr)
		assert.Contains(t, streamErr.Error(), "connection reset")
		// A started stream is never retried: the consumer may have
		// already seen partial output.
		assert.Equal(t, 1, model.calls)
	})

	t.Run("consumer can stop early", func(t *testing.T) {
		model := &fakeChatModel{chunks: []string{"one", "two", "three"}}
		g := generatorWithModel(t, model)

		var got []string
		for chunk, err := range g.GenerateStream(ctx, "question") {
			require.NoError(t, err)
			got = append(got, chunk)
			break
		}

		// Breaking out of the range aborts the underlying call; no
		// trailing error chunk follows the stop.
		assert.Equal(t, []string{"one"}, got)
		assert.Equal(t, 1, model.calls)
	})
}
