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


// Package mock provides test doubles for the ai package interfaces.
//
// The mocks use function fields for behavior injection and count calls
// for assertions. Defaults are deterministic: the generator returns a
// fixed response, the classifier returns INFORMATIONAL with no action
// items, and the embedder derives vectors from a hash of the input text.
package mock
