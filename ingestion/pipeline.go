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

package ingestion

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/brightbeam/mailmind/agents"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
	"github.com/brightbeam/mailmind/vector"
)

// Pipeline runs the full intelligence pass over incoming emails:
// categorization, action item extraction, vector indexing, and the
// final persist carrying the embedding reference.
type Pipeline struct {
	emails      storage.EmailRepository
	categorizer *agents.Categorizer
	extractor   *agents.Extractor
	index       *vector.Client
	pool        *ants.Pool
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for batch processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new email processing pipeline.
func NewPipeline(
	emails storage.EmailRepository,
	categorizer *agents.Categorizer,
	extractor *agents.Extractor,
	index *vector.Client,
	opts ...Option,
) (*Pipeline, error) {
	if emails == nil {
		return nil, ErrEmailRepositoryRequired
	}
	if categorizer == nil {
		return nil, ErrCategorizerRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if index == nil {
		return nil, ErrVectorClientRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		emails:      emails,
		categorizer: categorizer,
		extractor:   extractor,
		index:       index,
		pool:        pool,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Process runs one email through the whole pass. The categorization and
// extraction agents persist their own results; the vector upsert comes
// after, and the email is saved a final time with its embedding
// reference. A crash between those last two steps leaves an indexed
// email without the back-reference, which the next Process repairs.
func (p *Pipeline) Process(ctx context.Context, email *core.Email) (*core.Email, error) {
	if email == nil {
		return nil, ErrEmailRequired
	}
	if err := core.ValidateEmail(email); err != nil {
		return nil, err
	}

	if _, err := p.categorizer.Categorize(ctx, email, ""); err != nil {
		return nil, err
	}
	if _, err := p.extractor.Extract(ctx, email, ""); err != nil {
		return nil, err
	}

	embeddingID, err := p.index.UpsertEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	email.EmbeddingID = embeddingID

	if _, err := p.emails.SaveEmail(ctx, email); err != nil {
		return nil, err
	}

	p.logger.Info("processed email", "email_id", email.ID, "category", email.Category,
		"action_items", len(email.ActionItems))
	return email, nil
}

// BatchFailure records one email that failed batch processing.
type BatchFailure struct {
	EmailID string
	Err     error
}

// BatchResult is the outcome of a batch processing run.
type BatchResult struct {
	Processed int
	Failures  []BatchFailure
}

// ProcessBatch runs Process over every email concurrently on the worker
// pool. Individual failures do not stop the batch; they are collected
// in the result.
func (p *Pipeline) ProcessBatch(ctx context.Context, emails []*core.Email) (*BatchResult, error) {
	result := &BatchResult{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, email := range emails {
		wg.Add(1)
		email := email
		err := p.pool.Submit(func() {
			defer wg.Done()

			if _, err := p.Process(ctx, email); err != nil {
				p.logger.Error("error processing email", "email_id", emailID(email), "err", err)
				mu.Lock()
				result.Failures = append(result.Failures, BatchFailure{EmailID: emailID(email), Err: err})
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Processed++
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			result.Failures = append(result.Failures, BatchFailure{EmailID: emailID(email), Err: err})
			mu.Unlock()
		}
	}

	wg.Wait()
	return result, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

func emailID(email *core.Email) string {
	if email == nil {
		return ""
	}
	return email.ID
}
