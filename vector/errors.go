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

package vector

import "errors"

var (
	// ErrVectorRepositoryRequired is returned when a nil vector repository
	// is passed to NewClient.
	ErrVectorRepositoryRequired = errors.New("vector repository is required")

	// ErrEmbedderRequired is returned when a nil embedder is passed to
	// NewClient.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrEmptyQuery is returned when a similarity search is attempted
	// with an empty query string.
	ErrEmptyQuery = errors.New("query must not be empty")
)
