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


// Package ai provides abstractions for the AI services used in Mailmind.
//
// This package defines interfaces for text generation, email
// classification and text embeddings. It follows the dependency inversion
// principle, allowing the agents and the ingestion pipeline to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Generator: Produces text completions, plain and streaming
//   - Classifier: Extracts structured categorization and action items
//   - Embedder: Generates vector embeddings from text
//   - Provider: Aggregates AI services for convenient initialization
//
// # Failure Asymmetry
//
// Transient endpoint failures and malformed model output are treated
// differently on purpose. Generation errors are retried with exponential
// backoff and then surfaced to the caller; a model response that cannot
// be parsed as JSON is replaced with a safe default and flagged via the
// Degraded field on the result, so the pipeline keeps moving. Callers
// that care can tell the two apart; callers that don't get a usable
// result either way.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, openai.NewGenerator, etc.)
// return interface types to prevent coupling to implementation details.
// Mock constructors return concrete types so tests can inject behavior
// and assert call counts.
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithHost("http://localhost:11434/v1"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.Generator().Generate(ctx, "Summarize this inbox")
//	result, err := provider.Classifier().CategorizeEmail(ctx, content, "")
package ai
