package ingestion

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMailbox(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mailbox.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadEmails(t *testing.T) {
	path := writeMailbox(t, `[
		{
			"id": "msg-1",
			"sender": "alice@example.com",
			"recipient": "me@example.com",
			"subject": "Hello",
			"body": "Hi there",
			"timestamp": "2025-06-01T10:30:00Z",
			"has_attachments": true,
			"attachment_names": ["photo.jpg"]
		},
		{
			"sender": "bob@example.com",
			"subject": "No frills",
			"body": "Minimal entry"
		}
	]`)

	emails, err := LoadEmails(path)
	require.NoError(t, err)
	require.Len(t, emails, 2)

	first := emails[0]
	assert.Equal(t, "msg-1", first.ID)
	assert.Equal(t, "alice@example.com", first.Sender)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC), first.Timestamp)
	assert.True(t, first.HasAttachments)
	assert.Equal(t, []string{"photo.jpg"}, first.AttachmentNames)

	// Missing optional fields get defaults.
	second := emails[1]
	assert.NotEmpty(t, second.ID)
	assert.Equal(t, defaultRecipient, second.Recipient)
	assert.False(t, second.Timestamp.IsZero())
}

func TestLoadEmailsMissingRequiredField(t *testing.T) {
	path := writeMailbox(t, `[{"sender": "a@x.com", "subject": "S"}]`)

	_, err := LoadEmails(path)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestLoadEmailsBadTimestamp(t *testing.T) {
	path := writeMailbox(t, `[{"sender": "a@x.com", "subject": "S", "body": "b", "timestamp": "yesterday"}]`)

	_, err := LoadEmails(path)
	assert.Error(t, err)
}

func TestLoadEmailsMissingFile(t *testing.T) {
	_, err := LoadEmails(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadEmailsMalformedJSON(t *testing.T) {
	path := writeMailbox(t, `{not json`)

	_, err := LoadEmails(path)
	assert.Error(t, err)
}
