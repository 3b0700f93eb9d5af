package agents

import (
	"context"
	"log/slog"
	"slices"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

// aggregateScanLimit bounds how many recent emails an aggregation pass
// collects items from.
const aggregateScanLimit = 1000

// AggregatedItem is one action item joined with the email it came from.
type AggregatedItem struct {
	EmailID      string          `json:"email_id"`
	EmailSubject string          `json:"email_subject"`
	EmailSender  string          `json:"email_sender"`
	Item         core.ActionItem `json:"action_item"`
}

// Extractor pulls structured action items out of emails and manages
// their lifecycle.
type Extractor struct {
	emails     storage.EmailRepository
	prompts    storage.PromptRepository
	classifier ai.Classifier
	logger     *slog.Logger
}

// NewExtractor creates a new action item agent.
func NewExtractor(emails storage.EmailRepository, prompts storage.PromptRepository, classifier ai.Classifier) (*Extractor, error) {
	if emails == nil {
		return nil, ErrEmailRepositoryRequired
	}
	if prompts == nil {
		return nil, ErrPromptRepositoryRequired
	}
	if classifier == nil {
		return nil, ErrClassifierRequired
	}

	return &Extractor{
		emails:     emails,
		prompts:    prompts,
		classifier: classifier,
		logger:     slog.Default().With("component", "actionitems"),
	}, nil
}

// Extract runs action item extraction for one email and saves it. The
// email's item list is replaced wholesale; each new item gets a
// generated id, and items arriving without a recognized priority
// default to Medium. Completed state on previous items does not
// survive re-extraction.
func (e *Extractor) Extract(ctx context.Context, email *core.Email, customPrompt string) (*core.Email, error) {
	if email == nil {
		return nil, ErrEmailRequired
	}

	prompt := resolvePrompt(ctx, e.prompts, core.PromptTypeActionItem, customPrompt, e.logger)

	result, err := e.classifier.ExtractActionItems(ctx, formatEmailContent(email), prompt)
	if err != nil {
		e.logger.Error("error extracting action items", "email_id", email.ID, "err", err)
		return nil, err
	}
	if result.Degraded {
		e.logger.Warn("action item extraction degraded", "email_id", email.ID, "reason", result.DegradedReason)
	}

	items := make([]core.ActionItem, 0, len(result.Items))
	for _, extracted := range result.Items {
		priority, ok := core.ParsePriority(extracted.Priority)
		if !ok && extracted.Priority != "" {
			e.logger.Warn("unknown priority from model, using Medium",
				"email_id", email.ID, "priority", extracted.Priority)
		}
		items = append(items, core.ActionItem{
			ID:          core.NewID(),
			Description: extracted.Description,
			Priority:    priority,
			Deadline:    extracted.Deadline,
		})
	}
	email.ActionItems = items

	if _, err := e.emails.SaveEmail(ctx, email); err != nil {
		return nil, err
	}

	e.logger.Info("extracted action items", "email_id", email.ID, "count", len(items))
	return email, nil
}

// Aggregate collects action items across the most recent emails and
// returns them sorted by priority, highest first. Items with a priority
// outside the known set sort last. Completed items are excluded unless
// includeCompleted is set.
func (e *Extractor) Aggregate(ctx context.Context, includeCompleted bool) ([]*AggregatedItem, error) {
	emails, err := e.emails.ListEmails(ctx, storage.EmailFilter{}, 0, aggregateScanLimit)
	if err != nil {
		return nil, err
	}

	var items []*AggregatedItem
	for _, email := range emails {
		for _, item := range email.ActionItems {
			if !includeCompleted && item.Completed {
				continue
			}
			items = append(items, &AggregatedItem{
				EmailID:      email.ID,
				EmailSubject: email.Subject,
				EmailSender:  email.Sender,
				Item:         item,
			})
		}
	}

	// Stable sort keeps the recency order within a priority band.
	slices.SortStableFunc(items, func(a, b *AggregatedItem) int {
		return a.Item.Priority.Rank() - b.Item.Priority.Rank()
	})

	return items, nil
}

// ByPriority returns the aggregated pending items with exactly the
// given priority.
func (e *Extractor) ByPriority(ctx context.Context, priority core.Priority) ([]*AggregatedItem, error) {
	items, err := e.Aggregate(ctx, false)
	if err != nil {
		return nil, err
	}

	var filtered []*AggregatedItem
	for _, item := range items {
		if item.Item.Priority == priority {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Complete marks the first action item on the email whose description
// matches exactly. Returns true when a matching item was found; marking
// an already-completed item is a no-op that still reports true.
func (e *Extractor) Complete(ctx context.Context, emailID, description string) (bool, error) {
	email, err := e.emails.GetEmail(ctx, emailID)
	if err != nil {
		return false, err
	}

	for i := range email.ActionItems {
		if email.ActionItems[i].Description != description {
			continue
		}
		if !email.ActionItems[i].Completed {
			email.ActionItems[i].Completed = true
			if _, err := e.emails.SaveEmail(ctx, email); err != nil {
				return false, err
			}
		}
		e.logger.Info("marked action item complete", "email_id", emailID, "description", description)
		return true, nil
	}

	e.logger.Warn("action item not found", "email_id", emailID, "description", description)
	return false, nil
}
