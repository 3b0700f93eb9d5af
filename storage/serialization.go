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


package storage

import (
	"encoding/json"
	"fmt"

	"github.com/brightbeam/mailmind/core"
)

// All records round-trip through canonical JSON. Timestamps serialize as
// RFC 3339 (ISO-8601) strings, so the persisted and in-memory
// representations are losslessly reconstructible from one another.

// MarshalEmail serializes an Email to bytes.
func MarshalEmail(email *core.Email) ([]byte, error) {
	data, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("%w: email %s: %w", ErrSerializationFailed, email.ID, err)
	}
	return data, nil
}

// UnmarshalEmail deserializes an Email from bytes.
func UnmarshalEmail(data []byte) (*core.Email, error) {
	var email core.Email
	if err := json.Unmarshal(data, &email); err != nil {
		return nil, fmt.Errorf("%w: email: %w", ErrSerializationFailed, err)
	}
	return &email, nil
}

// MarshalDraft serializes an EmailDraft to bytes.
func MarshalDraft(draft *core.EmailDraft) ([]byte, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("%w: draft %s: %w", ErrSerializationFailed, draft.ID, err)
	}
	return data, nil
}

// UnmarshalDraft deserializes an EmailDraft from bytes.
func UnmarshalDraft(data []byte) (*core.EmailDraft, error) {
	var draft core.EmailDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("%w: draft: %w", ErrSerializationFailed, err)
	}
	return &draft, nil
}

// MarshalPromptConfig serializes a PromptConfig to bytes.
func MarshalPromptConfig(config *core.PromptConfig) ([]byte, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("%w: prompt config %s: %w", ErrSerializationFailed, config.ID, err)
	}
	return data, nil
}

// UnmarshalPromptConfig deserializes a PromptConfig from bytes.
func UnmarshalPromptConfig(data []byte) (*core.PromptConfig, error) {
	var config core.PromptConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: prompt config: %w", ErrSerializationFailed, err)
	}
	return &config, nil
}

// vectorEntry is the persisted form of one vector index entry.
type vectorEntry struct {
	Vector   []float32         `json:"vector"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MarshalVectorEntry serializes a vector and its metadata to bytes.
func MarshalVectorEntry(vector []float32, metadata map[string]string) ([]byte, error) {
	data, err := json.Marshal(vectorEntry{Vector: vector, Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("%w: vector entry: %w", ErrSerializationFailed, err)
	}
	return data, nil
}

// UnmarshalVectorEntry deserializes a vector and its metadata from bytes.
func UnmarshalVectorEntry(data []byte) ([]float32, map[string]string, error) {
	var entry vectorEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, nil, fmt.Errorf("%w: vector entry: %w", ErrSerializationFailed, err)
	}
	return entry.Vector, entry.Metadata, nil
}
