package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/ai/mock"
	"github.com/brightbeam/mailmind/core"
	badgerstore "github.com/brightbeam/mailmind/storage/badger"
)

func newCategorizerFixture(t *testing.T) (*Categorizer, *badgerstore.Stores, *mock.MockClassifier) {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	classifier := mock.NewMockClassifier()
	categorizer, err := NewCategorizer(stores.Emails, stores.Prompts, classifier)
	require.NoError(t, err)
	return categorizer, stores, classifier
}

func TestNewCategorizerValidation(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	_, err = NewCategorizer(nil, stores.Prompts, mock.NewMockClassifier())
	assert.ErrorIs(t, err, ErrEmailRepositoryRequired)
	_, err = NewCategorizer(stores.Emails, nil, mock.NewMockClassifier())
	assert.ErrorIs(t, err, ErrPromptRepositoryRequired)
	_, err = NewCategorizer(stores.Emails, stores.Prompts, nil)
	assert.ErrorIs(t, err, ErrClassifierRequired)
}

func TestCategorizePersists(t *testing.T) {
	categorizer, stores, classifier := newCategorizerFixture(t)
	ctx := context.Background()

	classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		assert.Contains(t, emailContent, "Subject: Server down")
		return ai.Categorization{Category: "URGENT", Reason: "production incident"}, nil
	}

	email := core.NewEmail("ops@corp.com", "me@corp.com", "Server down", "The API is returning 500s.")
	_, err := stores.Emails.SaveEmail(ctx, email)
	require.NoError(t, err)

	categorized, err := categorizer.Categorize(ctx, email, "")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryUrgent, categorized.Category)
	assert.Equal(t, "production incident", categorized.CategoryReason)

	stored, err := stores.Emails.GetEmail(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, core.CategoryUrgent, stored.Category)
}

func TestCategorizeUnknownLabelCoerces(t *testing.T) {
	categorizer, _, classifier := newCategorizerFixture(t)

	classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		return ai.Categorization{Category: "BANANAS", Reason: "?"}, nil
	}

	email := core.NewEmail("a@x.com", "b@x.com", "Hm", "body")
	categorized, err := categorizer.Categorize(context.Background(), email, "")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryUncategorized, categorized.Category)
}

func TestCategorizeGenerationFailure(t *testing.T) {
	categorizer, _, classifier := newCategorizerFixture(t)

	wantErr := errors.New("endpoint down")
	classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		return ai.Categorization{}, wantErr
	}

	email := core.NewEmail("a@x.com", "b@x.com", "Hm", "body")
	_, err := categorizer.Categorize(context.Background(), email, "")
	assert.ErrorIs(t, err, wantErr)
}

func TestCategorizePromptResolution(t *testing.T) {
	categorizer, stores, classifier := newCategorizerFixture(t)
	ctx := context.Background()

	stored := core.NewPromptConfig("strict", core.PromptTypeCategorization, "Categorize very strictly.")
	_, err := stores.Prompts.SavePrompt(ctx, stored)
	require.NoError(t, err)

	email := core.NewEmail("a@x.com", "b@x.com", "Hi", "body")

	// Stored active prompt applies when no custom prompt is given.
	_, err = categorizer.Categorize(ctx, email, "")
	require.NoError(t, err)
	assert.Equal(t, "Categorize very strictly.", classifier.Prompts[len(classifier.Prompts)-1])

	// An explicit prompt wins over the stored one.
	_, err = categorizer.Categorize(ctx, email, "Use my rules.")
	require.NoError(t, err)
	assert.Equal(t, "Use my rules.", classifier.Prompts[len(classifier.Prompts)-1])
}

func TestRecategorizeAllContinuesPastFailures(t *testing.T) {
	categorizer, stores, classifier := newCategorizerFixture(t)
	ctx := context.Background()

	subjects := []string{"first", "POISON", "third"}
	for _, subject := range subjects {
		email := core.NewEmail("a@x.com", "b@x.com", subject, "body")
		_, err := stores.Emails.SaveEmail(ctx, email)
		require.NoError(t, err)
	}

	classifier.CategorizeEmailFunc = func(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
		if strings.Contains(emailContent, "POISON") {
			return ai.Categorization{}, errors.New("boom")
		}
		return ai.Categorization{Category: "SPAM", Reason: "r"}, nil
	}

	count, err := categorizer.RecategorizeAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCategoryStatistics(t *testing.T) {
	categorizer, stores, _ := newCategorizerFixture(t)
	ctx := context.Background()

	urgent := core.NewEmail("a@x.com", "b@x.com", "Now", "body")
	urgent.Category = core.CategoryUrgent
	info := core.NewEmail("c@x.com", "b@x.com", "FYI", "body")
	info.Category = core.CategoryInformational
	for _, email := range []*core.Email{urgent, info} {
		_, err := stores.Emails.SaveEmail(ctx, email)
		require.NoError(t, err)
	}

	stats, err := categorizer.CategoryStatistics(ctx)
	require.NoError(t, err)

	// Every category is present, zero counts included.
	assert.Len(t, stats, len(core.Categories()))
	assert.Equal(t, 1, stats[core.CategoryUrgent])
	assert.Equal(t, 1, stats[core.CategoryInformational])
	assert.Equal(t, 0, stats[core.CategorySpam])
}
