package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmail() *Email {
	return NewEmail("alice@example.com", "bob@example.com", "Status Update", "All systems nominal.")
}

func TestValidateEmail(t *testing.T) {
	t.Run("valid email", func(t *testing.T) {
		require.NoError(t, ValidateEmail(validEmail()))
	})

	t.Run("nil email", func(t *testing.T) {
		err := ValidateEmail(nil)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("empty id", func(t *testing.T) {
		email := validEmail()
		email.ID = ""
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrEmptyID)
	})

	t.Run("empty sender", func(t *testing.T) {
		email := validEmail()
		email.Sender = ""
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrEmptySender)
	})

	t.Run("empty body", func(t *testing.T) {
		email := validEmail()
		email.Body = ""
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("invalid category", func(t *testing.T) {
		email := validEmail()
		email.Category = Category("IMPORTANT")
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("invalid action item", func(t *testing.T) {
		email := validEmail()
		email.ActionItems = []ActionItem{{ID: NewID(), Description: "", Priority: PriorityHigh}}
		err := ValidateEmail(email)
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})
}

func TestValidateActionItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item := &ActionItem{ID: NewID(), Description: "submit report", Priority: PriorityMedium}
		require.NoError(t, ValidateActionItem(item))
	})

	t.Run("nil item", func(t *testing.T) {
		assert.ErrorIs(t, ValidateActionItem(nil), ErrInvalidActionItem)
	})

	t.Run("unknown priority", func(t *testing.T) {
		item := &ActionItem{ID: NewID(), Description: "submit report", Priority: "Critical"}
		assert.ErrorIs(t, ValidateActionItem(item), ErrInvalidPriority)
	})
}

func TestValidateDraft(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		require.NoError(t, ValidateDraft(NewEmailDraft("bob@example.com", "Hi", "Body")))
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		require.NoError(t, ValidateDraft(NewEmailDraft("bob@example.com", "Hi", "")))
	})

	t.Run("empty recipient", func(t *testing.T) {
		draft := NewEmailDraft("", "Hi", "Body")
		assert.ErrorIs(t, ValidateDraft(draft), ErrEmptyRecipient)
	})
}

func TestValidatePromptConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config := NewPromptConfig("default", PromptTypeActionItem, "Extract tasks.")
		require.NoError(t, ValidatePromptConfig(config))
	})

	t.Run("unknown type", func(t *testing.T) {
		config := NewPromptConfig("default", "summarization", "Summarize.")
		assert.ErrorIs(t, ValidatePromptConfig(config), ErrInvalidPromptType)
	})

	t.Run("empty text", func(t *testing.T) {
		config := NewPromptConfig("default", PromptTypeReplyDraft, "")
		assert.ErrorIs(t, ValidatePromptConfig(config), ErrEmptyPromptText)
	})
}
