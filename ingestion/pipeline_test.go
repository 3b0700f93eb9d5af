package ingestion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightbeam/mailmind/agents"
	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/ai/mock"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
	badgerstore "github.com/brightbeam/mailmind/storage/badger"
	"github.com/brightbeam/mailmind/vector"
)

type pipelineFixture struct {
	pipeline   *Pipeline
	stores     *badgerstore.Stores
	classifier *mock.MockClassifier
	index      *vector.Client
}

func newPipelineFixture(t *testing.T) *pipelineFixture {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	classifier := mock.NewMockClassifier()

	categorizer, err := agents.NewCategorizer(stores.Emails, stores.Prompts, classifier)
	require.NoError(t, err)
	extractor, err := agents.NewExtractor(stores.Emails, stores.Prompts, classifier)
	require.NoError(t, err)
	index, err := vector.NewClient(stores.Vectors, mock.NewMockEmbedder())
	require.NoError(t, err)

	pipeline, err := NewPipeline(stores.Emails, categorizer, extractor, index, WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return &pipelineFixture{
		pipeline:   pipeline,
		stores:     stores,
		classifier: classifier,
		index:      index,
	}
}

func TestProcessFullPass(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		return ai.Categorization{Category: "ACTION_REQUIRED", Reason: "asks for review"}, nil
	}
	f.classifier.ExtractActionItemsFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Extraction, error) {
		return ai.Extraction{Items: []ai.ExtractedActionItem{
			{Description: "review the doc", Priority: "High"},
		}}, nil
	}

	email := core.NewEmail("alice@example.com", "me@example.com", "Review", "Please review the doc.")
	processed, err := f.pipeline.Process(ctx, email)
	require.NoError(t, err)

	assert.Equal(t, core.CategoryActionRequired, processed.Category)
	require.Len(t, processed.ActionItems, 1)
	assert.Equal(t, email.ID, processed.EmbeddingID)

	// The stored record carries everything, including the embedding
	// reference written by the final save.
	stored, err := f.stores.Emails.GetEmail(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, core.CategoryActionRequired, stored.Category)
	assert.Len(t, stored.ActionItems, 1)
	assert.Equal(t, email.ID, stored.EmbeddingID)

	// And the email is findable in the vector index.
	matches, err := f.index.Search(ctx, "review", 5, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, email.ID, matches[0].ID)
	assert.Equal(t, "ACTION_REQUIRED", matches[0].Metadata["category"])
}

func TestProcessInvalidEmail(t *testing.T) {
	f := newPipelineFixture(t)

	_, err := f.pipeline.Process(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmailRequired)

	empty := core.NewEmail("", "me@example.com", "S", "body")
	_, err = f.pipeline.Process(context.Background(), empty)
	assert.ErrorIs(t, err, core.ErrEmptySender)
}

func TestProcessCategorizationFailure(t *testing.T) {
	f := newPipelineFixture(t)

	wantErr := errors.New("endpoint down")
	f.classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		return ai.Categorization{}, wantErr
	}

	email := core.NewEmail("a@x.com", "b@x.com", "S", "body")
	_, err := f.pipeline.Process(context.Background(), email)
	assert.ErrorIs(t, err, wantErr)
}

func TestProcessBatch(t *testing.T) {
	f := newPipelineFixture(t)
	ctx := context.Background()

	f.classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		if strings.Contains(emailContent, "POISON") {
			return ai.Categorization{}, errors.New("boom")
		}
		return ai.Categorization{Category: "INFORMATIONAL", Reason: "r"}, nil
	}

	emails := []*core.Email{
		core.NewEmail("a@x.com", "me@x.com", "one", "body"),
		core.NewEmail("b@x.com", "me@x.com", "POISON", "body"),
		core.NewEmail("c@x.com", "me@x.com", "three", "body"),
	}

	result, err := f.pipeline.ProcessBatch(ctx, emails)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, emails[1].ID, result.Failures[0].EmailID)
	assert.Error(t, result.Failures[0].Err)

	count, err := f.stores.Emails.CountEmails(ctx, storage.EmailFilter{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}

func TestProcessBatchEmpty(t *testing.T) {
	f := newPipelineFixture(t)

	result, err := f.pipeline.ProcessBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Empty(t, result.Failures)
}
