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

package mailmind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brightbeam/mailmind/agents"
	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/ai/openai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/ingestion"
	"github.com/brightbeam/mailmind/storage"
	"github.com/brightbeam/mailmind/storage/badger"
	"github.com/brightbeam/mailmind/vector"
)

// summarizeTemperature is used for single-email summaries.
const summarizeTemperature = 0.3

// App is the assembled email intelligence system: storage, the AI
// provider, the vector index, and the four agents wired together over
// one database.
type App struct {
	stores   *badger.Stores
	provider ai.Provider
	index    *vector.Client

	categorizer *agents.Categorizer
	extractor   *agents.Extractor
	drafter     *agents.Drafter
	assistant   *agents.Assistant

	logger *slog.Logger
}

// Option configures an App.
type Option func(*appOptions)

type appOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig sets the AI endpoint configuration used to build the
// default provider.
func WithAIConfig(config *ai.Config) Option {
	return func(o *appOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Tests use this to inject mocks.
func WithProvider(provider ai.Provider) Option {
	return func(o *appOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all storage in memory. The path passed to Open is
// ignored.
func WithInMemory() Option {
	return func(o *appOptions) {
		o.inMemory = true
	}
}

// Open assembles the system over a database at filePath.
func Open(filePath string, opts ...Option) (*App, error) {
	options := &appOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	stores, err := badger.OpenStores(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			stores.Close()
			return nil, err
		}
	}

	index, err := vector.NewClient(stores.Vectors, provider.Embedder())
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}

	categorizer, err := agents.NewCategorizer(stores.Emails, stores.Prompts, provider.Classifier())
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}
	extractor, err := agents.NewExtractor(stores.Emails, stores.Prompts, provider.Classifier())
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}
	drafter, err := agents.NewDrafter(stores.Drafts, stores.Prompts, provider.Generator())
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}
	assistant, err := agents.NewAssistant(stores.Emails, index, provider.Generator())
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}

	return &App{
		stores:      stores,
		provider:    provider,
		index:       index,
		categorizer: categorizer,
		extractor:   extractor,
		drafter:     drafter,
		assistant:   assistant,
		logger:      slog.Default(),
	}, nil
}

// Close shuts down the AI provider and storage.
func (a *App) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.stores.Close(); err != nil {
		a.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// Emails exposes the email repository.
func (a *App) Emails() storage.EmailRepository {
	return a.stores.Emails
}

// Prompts exposes the prompt config repository.
func (a *App) Prompts() storage.PromptRepository {
	return a.stores.Prompts
}

// Drafts exposes the draft repository.
func (a *App) Drafts() storage.DraftRepository {
	return a.stores.Drafts
}

// Index exposes the vector index client.
func (a *App) Index() *vector.Client {
	return a.index
}

// Categorizer exposes the categorization agent.
func (a *App) Categorizer() *agents.Categorizer {
	return a.categorizer
}

// Extractor exposes the action item agent.
func (a *App) Extractor() *agents.Extractor {
	return a.extractor
}

// Drafter exposes the draft agent.
func (a *App) Drafter() *agents.Drafter {
	return a.drafter
}

// Assistant exposes the RAG agent.
func (a *App) Assistant() *agents.Assistant {
	return a.assistant
}

// NewPipeline builds an ingestion pipeline over this App's agents and
// storage.
func (a *App) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.stores.Emails, a.categorizer, a.extractor, a.index, opts...)
}

// SummarizeEmail produces a short model-written summary of one stored
// email.
func (a *App) SummarizeEmail(ctx context.Context, emailID string) (string, error) {
	email, err := a.stores.Emails.GetEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "Email not found", nil
		}
		return "", err
	}

	prompt := fmt.Sprintf(`Summarize this email in 2-3 sentences:

Subject: %s
From: %s
Body: %s

Summary:`, email.Subject, email.Sender, email.Body)

	summary, err := a.provider.Generator().Generate(ctx, prompt, ai.WithTemperature(summarizeTemperature))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

// SeedDefaultPrompts stores the built-in prompt configs for the three
// operation types when they are missing. Existing configs are left
// alone, so repeated seeding is safe.
func (a *App) SeedDefaultPrompts(ctx context.Context) error {
	defaults := map[string]string{
		core.PromptTypeCategorization: ai.DefaultCategorizationPrompt,
		core.PromptTypeActionItem:     ai.DefaultActionItemPrompt,
		core.PromptTypeReplyDraft:     ai.DefaultReplyDraftPrompt,
	}

	for promptType, text := range defaults {
		config := core.NewPromptConfig("default", promptType, text)
		// Deterministic id keyed on type, so reseeding overwrites the
		// same record instead of accumulating copies.
		config.ID = core.IDFromContent("default-prompt:" + promptType)

		if _, err := a.stores.Prompts.GetPrompt(ctx, config.ID); err == nil {
			continue
		} else if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if _, err := a.stores.Prompts.SavePrompt(ctx, config); err != nil {
			return err
		}
	}
	return nil
}
