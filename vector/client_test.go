package vector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightbeam/mailmind/ai/mock"
	"github.com/brightbeam/mailmind/core"
	badgerstore "github.com/brightbeam/mailmind/storage/badger"
)

func newTestClient(t *testing.T) (*Client, *mock.MockEmbedder) {
	t.Helper()

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	embedder := mock.NewMockEmbedder()
	client, err := NewClient(stores.Vectors, embedder)
	require.NoError(t, err)
	return client, embedder
}

func TestNewClientValidation(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	_, err = NewClient(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrVectorRepositoryRequired)

	_, err = NewClient(stores.Vectors, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestUpsertAndSearch(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	budget := core.NewEmail("finance@corp.com", "me@corp.com", "Budget review", "The Q3 budget needs your sign-off by Thursday.")
	party := core.NewEmail("social@corp.com", "me@corp.com", "Office party", "Snacks and music in the lobby on Friday.")

	for _, email := range []*core.Email{budget, party} {
		id, err := client.UpsertEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, email.ID, id)
	}

	matches, err := client.Search(ctx, "budget sign-off", 5, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// Scores come back ordered and carry the indexed metadata.
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	for _, match := range matches {
		assert.NotEmpty(t, match.Metadata["subject"])
		assert.NotEmpty(t, match.Metadata["sender"])
		assert.NotEmpty(t, match.Metadata["body_preview"])
		assert.NotEmpty(t, match.Metadata["timestamp"])
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Search(context.Background(), "   ", 5, nil)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRelevantContext(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	email := core.NewEmail("alice@example.com", "me@example.com", "Lunch", "Want to grab lunch tomorrow?")
	_, err := client.UpsertEmail(ctx, email)
	require.NoError(t, err)

	block, matches, err := client.RelevantContext(ctx, "lunch plans", 5, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, block, "Subject: Lunch")
	assert.Contains(t, block, "From: alice@example.com")
	assert.Contains(t, block, "Content: Want to grab lunch tomorrow?")
}

func TestRelevantContextEmptyIndex(t *testing.T) {
	client, _ := newTestClient(t)

	block, matches, err := client.RelevantContext(context.Background(), "anything", 5, nil)
	require.NoError(t, err)
	assert.Empty(t, block)
	assert.Empty(t, matches)
}

func TestBodyPreviewTruncation(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	email := core.NewEmail("a@x.com", "b@x.com", "Long", string(long))
	_, err := client.UpsertEmail(ctx, email)
	require.NoError(t, err)

	matches, err := client.Search(ctx, "long email", 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Len(t, matches[0].Metadata["body_preview"], bodyPreviewLength)
}

func TestNormalizeVector(t *testing.T) {
	normalized := normalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, normalized[0], 1e-6)
	assert.InDelta(t, 0.8, normalized[1], 1e-6)

	zero := normalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, zero)

	assert.Empty(t, normalizeVector(nil))
}

func TestDelete(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	email := core.NewEmail("a@x.com", "b@x.com", "Bye", "deleting")
	_, err := client.UpsertEmail(ctx, email)
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, email.ID))

	matches, err := client.Search(ctx, "deleting", 5, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
