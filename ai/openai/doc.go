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


// Package openai implements the ai interfaces against OpenAI-compatible
// chat and embedding APIs (Ollama, LocalAI, vLLM, OpenAI itself).
//
// The generator retries transient endpoint failures with bounded
// exponential backoff. The classifier layers JSON-shaped extraction on
// top of the generator: responses are stripped of optional code fences,
// run through a small JSON repair pass, and parsed; parse failures
// degrade to safe defaults rather than erroring, so one badly behaved
// completion cannot stall the pipeline.
package openai
