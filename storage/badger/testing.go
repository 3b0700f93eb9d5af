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

package badger

// Stores bundles the four repositories backed by a single Backend.
type Stores struct {
	Emails  *EmailRepository
	Prompts *PromptRepository
	Drafts  *DraftRepository
	Vectors *VectorRepository

	backend *Backend
}

// OpenStores opens a backend at path and wires every repository to it.
// With inMemory true the path is ignored; this is the constructor tests
// use.
func OpenStores(path string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, err
	}

	return &Stores{
		Emails:  NewEmailRepository(backend),
		Prompts: NewPromptRepository(backend),
		Drafts:  NewDraftRepository(backend),
		Vectors: NewVectorRepository(backend),
		backend: backend,
	}, nil
}

// Close closes every repository and then the backend.
func (s *Stores) Close() error {
	s.Emails.Close()
	s.Prompts.Close()
	s.Drafts.Close()
	s.Vectors.Close()
	return s.backend.Close()
}

// NewMemoryStores creates in-memory repositories for testing.
// Caller must close the returned Stores when done.
func NewMemoryStores() (*Stores, error) {
	return OpenStores("", true)
}
