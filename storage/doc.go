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


// Package storage defines the persistence interfaces of Mailmind and the
// canonical serialization shared by their implementations.
//
// Three document collections (emails, prompt configurations, drafts) and
// one vector index are modeled as separate repository interfaces, all
// keyed by application-assigned string ids rather than any store-native
// key. Records round-trip through canonical JSON with ISO-8601
// timestamps. The storage/badger sub-package provides the BadgerDB
// implementation.
package storage
