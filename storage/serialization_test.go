package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightbeam/mailmind/core"
)

func TestEmailRoundTrip(t *testing.T) {
	email := core.NewEmail("alice@example.com", "bob@example.com", "Quarterly Report", "Please review by Friday.")
	email.Category = core.CategoryActionRequired
	email.CategoryReason = "asks for review"
	email.ActionItems = []core.ActionItem{
		{ID: core.NewID(), Description: "review report", Priority: core.PriorityHigh, Deadline: "Friday"},
	}
	email.HasAttachments = true
	email.AttachmentNames = []string{"q3.pdf"}
	email.EmbeddingID = email.ID

	data, err := MarshalEmail(email)
	require.NoError(t, err)

	got, err := UnmarshalEmail(data)
	require.NoError(t, err)
	assert.Equal(t, email, got)
}

func TestEmailTimestampLossless(t *testing.T) {
	email := core.NewEmail("a@x.com", "b@x.com", "s", "b")
	email.Timestamp = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	data, err := MarshalEmail(email)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-03-14T09:26:53Z", "timestamps serialize as ISO-8601")

	got, err := UnmarshalEmail(data)
	require.NoError(t, err)
	assert.True(t, email.Timestamp.Equal(got.Timestamp))
}

func TestDraftRoundTrip(t *testing.T) {
	draft := core.NewEmailDraft("bob@example.com", "Re: Quarterly Report", "Looks good to me.")
	draft.OriginalEmailID = core.NewID()
	draft.Category = string(core.CategoryActionRequired)
	draft.ActionItems = []string{"review report"}
	draft.SuggestedFollowups = []string{"schedule sync", "share final version"}

	data, err := MarshalDraft(draft)
	require.NoError(t, err)

	got, err := UnmarshalDraft(data)
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestPromptConfigRoundTrip(t *testing.T) {
	config := core.NewPromptConfig("strict", core.PromptTypeCategorization, "Categorize strictly.")
	config.Version = 3
	config.IsActive = false

	data, err := MarshalPromptConfig(config)
	require.NoError(t, err)

	got, err := UnmarshalPromptConfig(data)
	require.NoError(t, err)
	assert.Equal(t, config, got)
}

func TestVectorEntryRoundTrip(t *testing.T) {
	vector := []float32{0.1, -0.5, 0.9}
	metadata := map[string]string{"sender": "alice@example.com", "subject": "Hi"}

	data, err := MarshalVectorEntry(vector, metadata)
	require.NoError(t, err)

	gotVector, gotMetadata, err := UnmarshalVectorEntry(data)
	require.NoError(t, err)
	assert.Equal(t, vector, gotVector)
	assert.Equal(t, metadata, gotMetadata)
}

func TestUnmarshalGarbage(t *testing.T) {
	_, err := UnmarshalEmail([]byte("not json"))
	assert.ErrorIs(t, err, ErrSerializationFailed)

	_, err = UnmarshalDraft([]byte("{truncated"))
	assert.ErrorIs(t, err, ErrSerializationFailed)

	_, _, err = UnmarshalVectorEntry([]byte(""))
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
