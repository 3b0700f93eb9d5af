package ingestion

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brightbeam/mailmind/core"
)

// defaultRecipient is assumed when a loaded email doesn't name one.
const defaultRecipient = "user@company.com"

// loadedEmail is the on-disk shape of one email in a mailbox file.
type loadedEmail struct {
	ID              string   `json:"id"`
	Sender          string   `json:"sender"`
	Recipient       string   `json:"recipient"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body"`
	Timestamp       string   `json:"timestamp"`
	HasAttachments  bool     `json:"has_attachments"`
	AttachmentNames []string `json:"attachment_names"`
}

// LoadEmails reads a JSON mailbox file (an array of email objects) and
// converts it to emails ready for processing. Sender, subject and body
// are required per entry; a missing id, recipient or timestamp gets a
// sensible default.
func LoadEmails(path string) ([]*core.Email, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var loaded []loadedEmail
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	emails := make([]*core.Email, 0, len(loaded))
	for i, entry := range loaded {
		if entry.Sender == "" {
			return nil, fmt.Errorf("%w: entry %d: sender", ErrMissingField, i)
		}
		if entry.Subject == "" {
			return nil, fmt.Errorf("%w: entry %d: subject", ErrMissingField, i)
		}
		if entry.Body == "" {
			return nil, fmt.Errorf("%w: entry %d: body", ErrMissingField, i)
		}

		recipient := entry.Recipient
		if recipient == "" {
			recipient = defaultRecipient
		}

		email := core.NewEmail(entry.Sender, recipient, entry.Subject, entry.Body)
		if entry.ID != "" {
			email.ID = entry.ID
		}
		if entry.Timestamp != "" {
			timestamp, err := time.Parse(time.RFC3339, entry.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("entry %d: bad timestamp %q: %w", i, entry.Timestamp, err)
			}
			email.Timestamp = timestamp.UTC()
		}
		email.HasAttachments = entry.HasAttachments
		email.AttachmentNames = entry.AttachmentNames

		emails = append(emails, email)
	}

	slog.Default().Info("loaded emails from file", "path", path, "count", len(emails))
	return emails, nil
}
