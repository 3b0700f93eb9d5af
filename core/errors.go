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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEmail indicates an Email failed validation.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidActionItem indicates an ActionItem failed validation.
	ErrInvalidActionItem = errors.New("invalid action item")

	// ErrInvalidDraft indicates an EmailDraft failed validation.
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrInvalidPromptConfig indicates a PromptConfig failed validation.
	ErrInvalidPromptConfig = errors.New("invalid prompt config")

	// ErrEmptyID indicates a missing application-assigned identifier.
	ErrEmptyID = errors.New("id cannot be empty")

	// ErrEmptySender indicates the Sender field is empty.
	ErrEmptySender = errors.New("sender cannot be empty")

	// ErrEmptyRecipient indicates the Recipient field is empty.
	ErrEmptyRecipient = errors.New("recipient cannot be empty")

	// ErrEmptyBody indicates the Body field is empty.
	ErrEmptyBody = errors.New("body cannot be empty")

	// ErrEmptyDescription indicates an action item description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidCategory indicates a category outside the known enum.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidPriority indicates a priority outside High/Medium/Low.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidPromptType indicates an unknown prompt type tag.
	ErrInvalidPromptType = errors.New("invalid prompt type")

	// ErrEmptyPromptText indicates an empty prompt text.
	ErrEmptyPromptText = errors.New("prompt text cannot be empty")
)
