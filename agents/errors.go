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

package agents

import "errors"

var (
	// ErrEmailRepositoryRequired is returned when a nil email repository
	// is passed to an agent constructor.
	ErrEmailRepositoryRequired = errors.New("email repository is required")

	// ErrPromptRepositoryRequired is returned when a nil prompt repository
	// is passed to an agent constructor.
	ErrPromptRepositoryRequired = errors.New("prompt repository is required")

	// ErrDraftRepositoryRequired is returned when a nil draft repository
	// is passed to an agent constructor.
	ErrDraftRepositoryRequired = errors.New("draft repository is required")

	// ErrClassifierRequired is returned when a nil classifier is passed
	// to an agent constructor.
	ErrClassifierRequired = errors.New("classifier is required")

	// ErrGeneratorRequired is returned when a nil generator is passed to
	// an agent constructor.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrVectorClientRequired is returned when a nil vector client is
	// passed to an agent constructor.
	ErrVectorClientRequired = errors.New("vector client is required")

	// ErrEmailRequired is returned when a nil email is passed to an
	// agent operation.
	ErrEmailRequired = errors.New("email is required")

	// ErrDraftRequired is returned when a nil draft is passed to an
	// agent operation.
	ErrDraftRequired = errors.New("draft is required")
)
