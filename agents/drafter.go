package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
)

const (
	// replyTemperature is used for reply bodies, new drafts and
	// refinements.
	replyTemperature = 0.7

	// followupTemperature is used for follow-up suggestions.
	followupTemperature = 0.6

	// followupPreviewLength caps the excerpts fed to the follow-up
	// prompt.
	followupPreviewLength = 300

	// maxFollowups bounds the suggested follow-up list.
	maxFollowups = 3
)

// Drafter generates, refines and manages email drafts.
type Drafter struct {
	drafts    storage.DraftRepository
	prompts   storage.PromptRepository
	generator ai.Generator
	logger    *slog.Logger
}

// NewDrafter creates a new draft agent.
func NewDrafter(drafts storage.DraftRepository, prompts storage.PromptRepository, generator ai.Generator) (*Drafter, error) {
	if drafts == nil {
		return nil, ErrDraftRepositoryRequired
	}
	if prompts == nil {
		return nil, ErrPromptRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	return &Drafter{
		drafts:    drafts,
		prompts:   prompts,
		generator: generator,
		logger:    slog.Default().With("component", "drafter"),
	}, nil
}

// Reply generates a reply draft for an email and saves it. The subject
// gains a "Re: " prefix unless it already has one. Follow-up suggestions
// come from a second generation call; when that call fails the draft is
// still produced, with an empty follow-up list.
func (d *Drafter) Reply(ctx context.Context, original *core.Email, additionalContext, customPrompt string) (*core.EmailDraft, error) {
	if original == nil {
		return nil, ErrEmailRequired
	}

	prompt := resolvePrompt(ctx, d.prompts, core.PromptTypeReplyDraft, customPrompt, d.logger)
	if prompt == "" {
		prompt = ai.DefaultReplyDraftPrompt
	}

	originalContent := fmt.Sprintf("Subject: %s\nFrom: %s\nDate: %s\n\n%s",
		original.Subject, original.Sender,
		original.Timestamp.UTC().Format(time.RFC3339), original.Body)

	contextBlock := ""
	if additionalContext != "" {
		contextBlock = fmt.Sprintf("\n\nAdditional Context:\n%s", additionalContext)
	}

	fullPrompt := fmt.Sprintf("%s\n\nOriginal Email:\n%s%s\n\nDraft Reply:", prompt, originalContent, contextBlock)

	body, err := d.generator.Generate(ctx, fullPrompt, ai.WithTemperature(replyTemperature))
	if err != nil {
		d.logger.Error("error generating reply draft", "email_id", original.ID, "err", err)
		return nil, err
	}

	subject := original.Subject
	if !strings.HasPrefix(subject, "Re: ") {
		subject = "Re: " + subject
	}

	draft := core.NewEmailDraft(original.Sender, subject, strings.TrimSpace(body))
	draft.OriginalEmailID = original.ID
	draft.Category = string(original.Category)
	for _, item := range original.ActionItems {
		draft.ActionItems = append(draft.ActionItems, item.Description)
	}
	draft.SuggestedFollowups = d.generateFollowups(ctx, original, draft.Body)

	if _, err := d.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	d.logger.Info("generated reply draft", "draft_id", draft.ID, "email_id", original.ID)
	return draft, nil
}

// NewDraft generates a fresh draft from free-form instructions and
// saves it. Context is optional.
func (d *Drafter) NewDraft(ctx context.Context, recipient, subject, instructions, extraContext string) (*core.EmailDraft, error) {
	contextLine := ""
	if extraContext != "" {
		contextLine = fmt.Sprintf("Context: %s\n", extraContext)
	}

	prompt := fmt.Sprintf(`Write a professional email with the following details:

Recipient: %s
Subject: %s
Instructions: %s
%s
Write only the email body (no subject line):`, recipient, subject, instructions, contextLine)

	body, err := d.generator.Generate(ctx, prompt, ai.WithTemperature(replyTemperature))
	if err != nil {
		d.logger.Error("error generating new draft", "err", err)
		return nil, err
	}

	draft := core.NewEmailDraft(recipient, subject, strings.TrimSpace(body))
	if _, err := d.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	d.logger.Info("generated new draft", "draft_id", draft.ID)
	return draft, nil
}

// Refine rewrites a draft's body per the instruction, bumps its update
// time and saves it.
func (d *Drafter) Refine(ctx context.Context, draft *core.EmailDraft, instruction string) (*core.EmailDraft, error) {
	if draft == nil {
		return nil, ErrDraftRequired
	}

	prompt := fmt.Sprintf(`Refine this email draft based on the instruction:

Current Draft:
Subject: %s
Body:
%s

Instruction: %s

Refined email body:`, draft.Subject, draft.Body, instruction)

	body, err := d.generator.Generate(ctx, prompt, ai.WithTemperature(replyTemperature))
	if err != nil {
		d.logger.Error("error refining draft", "draft_id", draft.ID, "err", err)
		return nil, err
	}

	draft.Body = strings.TrimSpace(body)
	draft.UpdatedAt = time.Now().UTC()

	if _, err := d.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, err
	}

	d.logger.Info("refined draft", "draft_id", draft.ID)
	return draft, nil
}

// ListDrafts returns saved drafts, most recently updated first.
func (d *Drafter) ListDrafts(ctx context.Context, skip, limit int) ([]*core.EmailDraft, error) {
	return d.drafts.ListDrafts(ctx, skip, limit)
}

// DeleteDraft removes a saved draft.
func (d *Drafter) DeleteDraft(ctx context.Context, draftID string) error {
	if err := d.drafts.DeleteDraft(ctx, draftID); err != nil {
		return err
	}
	d.logger.Info("deleted draft", "draft_id", draftID)
	return nil
}

// generateFollowups asks the model for follow-up suggestions based on
// the conversation so far. Failures degrade to an empty list.
func (d *Drafter) generateFollowups(ctx context.Context, original *core.Email, replyBody string) []string {
	prompt := fmt.Sprintf(`Based on this email conversation, suggest 2-3 brief follow-up actions:

Original Email:
Subject: %s
%s

Reply:
%s

List follow-up actions (one per line):`,
		original.Subject, truncate(original.Body, followupPreviewLength), truncate(replyBody, followupPreviewLength))

	response, err := d.generator.Generate(ctx, prompt, ai.WithTemperature(followupTemperature))
	if err != nil {
		d.logger.Warn("error generating follow-ups", "email_id", original.ID, "err", err)
		return nil
	}

	var followups []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		if line == "" {
			continue
		}
		followups = append(followups, line)
		if len(followups) >= maxFollowups {
			break
		}
	}
	return followups
}
