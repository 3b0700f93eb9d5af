// Copyright 2025 Brightbeam Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"slices"
)

// ValidateEmail validates an Email according to domain rules.
//
// Validation rules:
//   - ID, Sender and Body must not be empty
//   - Category must be one of the five known values
//   - Every action item must validate individually
//
// NOT validated (populated by agents):
//   - CategoryReason (empty until a classification pass)
//   - EmbeddingID (empty until indexed)
func ValidateEmail(email *Email) error {
	if email == nil {
		return fmt.Errorf("%w: email is nil", ErrInvalidEmail)
	}

	if email.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, ErrEmptyID)
	}

	if email.Sender == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, ErrEmptySender)
	}

	if email.Body == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, ErrEmptyBody)
	}

	if !email.Category.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidEmail, ErrInvalidCategory, email.Category)
	}

	for i := range email.ActionItems {
		if err := ValidateActionItem(&email.ActionItems[i]); err != nil {
			return fmt.Errorf("%w: item %d: %w", ErrInvalidEmail, i, err)
		}
	}

	return nil
}

// ValidateActionItem validates an ActionItem according to domain rules.
//
// Validation rules:
//   - Description must not be empty
//   - Priority must be High, Medium or Low
func ValidateActionItem(item *ActionItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidActionItem)
	}

	if item.Description == "" {
		return fmt.Errorf("%w: %w", ErrInvalidActionItem, ErrEmptyDescription)
	}

	if !item.Priority.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidActionItem, ErrInvalidPriority, item.Priority)
	}

	return nil
}

// ValidateDraft validates an EmailDraft according to domain rules.
//
// Validation rules:
//   - ID and Recipient must not be empty
//
// Body is intentionally not required: an empty body is a legitimate
// intermediate state while a draft is being edited.
func ValidateDraft(draft *EmailDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: draft is nil", ErrInvalidDraft)
	}

	if draft.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, ErrEmptyID)
	}

	if draft.Recipient == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDraft, ErrEmptyRecipient)
	}

	return nil
}

// ValidatePromptConfig validates a PromptConfig according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - PromptType must be one of the known tags
//   - PromptText must not be empty
func ValidatePromptConfig(config *PromptConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidPromptConfig)
	}

	if config.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPromptConfig, ErrEmptyID)
	}

	if !slices.Contains(PromptTypes(), config.PromptType) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPromptConfig, ErrInvalidPromptType, config.PromptType)
	}

	if config.PromptText == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPromptConfig, ErrEmptyPromptText)
	}

	return nil
}
