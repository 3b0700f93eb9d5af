package agents

import (
	"context"
	"log/slog"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// recategorizeScanLimit bounds how many emails a bulk recategorization
// pass touches.
const recategorizeScanLimit = 1000

// Categorizer assigns categories to emails using the classification
// model and persists the result.
type Categorizer struct {
	emails     storage.EmailRepository
	prompts    storage.PromptRepository
	classifier ai.Classifier
	logger     *slog.Logger
}

// NewCategorizer creates a new categorization agent.
func NewCategorizer(emails storage.EmailRepository, prompts storage.PromptRepository, classifier ai.Classifier) (*Categorizer, error) {
	if emails == nil {
		return nil, ErrEmailRepositoryRequired
	}
	if prompts == nil {
		return nil, ErrPromptRepositoryRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	return &Categorizer{
		emails:     emails,
		prompts:    prompts,
		classifier: classifier,
		logger:     slog.Default().With("component", "categorizer"),
	}, nil
}

// Categorize classifies a single email and saves it. An unknown label
// from the model coerces to UNCATEGORIZED rather than failing. When
// customPrompt is empty the active stored prompt, then the built-in
// default, is used.
func (c *Categorizer) Categorize(ctx context.Context, email *core.Email, customPrompt string) (*core.Email, error) {
	if email == nil {
		return nil, ErrEmailRequired
	}

	prompt := resolvePrompt(ctx, c.prompts, core.PromptTypeCategorization, customPrompt, c.logger)

	result, err := c.classifier.CategorizeEmail(ctx, formatEmailContent(email), prompt)
	if err != nil {
		c.logger.Error("error categorizing email", "email_id", email.ID, "err", err)
		return nil, err
	}
	if result.Degraded {
		c.logger.Warn("categorization degraded", "email_id", email.ID, "reason", result.DegradedReason)
	}

	category, ok := core.ParseCategory(result.Category)
	if !ok {
		c.logger.Warn("invalid category from model", "email_id", email.ID, "category", result.Category)
	}
	email.Category = category
	email.CategoryReason = result.Reason

	if _, err := c.emails.SaveEmail(ctx, email); err != nil {
		return nil, err
	}

	c.logger.Info("categorized email", "email_id", email.ID, "category", email.Category)
	return email, nil
}

// RecategorizeAll re-runs categorization over stored emails. Individual
// failures are logged and skipped; the return value counts successes.
func (c *Categorizer) RecategorizeAll(ctx context.Context, customPrompt string) (int, error) {
	emails, err := c.emails.ListEmails(ctx, storage.EmailFilter{}, 0, recategorizeScanLimit)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, email := range emails {
		if _, err := c.Categorize(ctx, email, customPrompt); err != nil {
			c.logger.Error("failed to recategorize email", "email_id", email.ID, "err", err)
			continue
		}
		count++
	}

	c.logger.Info("recategorized emails", "count", count)
	return count, nil
}

// CategoryStatistics returns the email count per category. Every
// category appears in the result, zero counts included.
func (c *Categorizer) CategoryStatistics(ctx context.Context) (map[core.Category]int, error) {
	stats := make(map[core.Category]int, len(core.Categories()))
	for _, category := range core.Categories() {
		count, err := c.emails.CountEmails(ctx, storage.EmailFilter{Category: &category})
		if err != nil {
			return nil, err
		}
		stats[category] = count
	}
	return stats, nil
}
