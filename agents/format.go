package agents

import (
	"fmt"
	"time"

	"github.com/brightbeam/mailmind/core"
)

// formatEmailContent renders an email into the canonical text block the
// classification prompts operate on.
func formatEmailContent(email *core.Email) string {
	return fmt.Sprintf("Subject: %s\nFrom: %s\nTo: %s\nDate: %s\n\nBody:\n%s",
		email.Subject, email.Sender, email.Recipient,
		email.Timestamp.UTC().Format(time.RFC3339), email.Body)
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
