package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/brightbeam/mailmind/ai"
)

// classificationTemperature keeps structured extraction calls close to
// deterministic.
const classificationTemperature = 0.3

// Classifier implements ai.Classifier on top of an ai.Generator.
// Generation failures are surfaced to the caller; malformed JSON in the
// model response degrades to a safe default instead.
type Classifier struct {
	generator ai.Generator
	logger    *slog.Logger
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(generator ai.Generator) *Classifier {
	return &Classifier{
		generator: generator,
		logger:    slog.Default().With("component", "openai-classifier"),
	}
}

// NewClassifier creates a classifier backed by the given generator.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(generator ai.Generator) ai.Classifier {
	return newClassifier(generator)
}

// categorizeResponse matches the JSON structure expected from the model.
type categorizeResponse struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// extractResponse is the wrapper structure for action-item extraction.
type extractResponse struct {
	ActionItems []extractedItem `json:"action_items"`
}

type extractedItem struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
}

// CategorizeEmail classifies one email's content. An empty customPrompt
// falls back to the default categorization instruction text.
func (c *Classifier) CategorizeEmail(ctx context.Context, emailContent, customPrompt string) (ai.Categorization, error) {
	instruction := customPrompt
	if instruction == "" {
		instruction = ai.DefaultCategorizationPrompt
	}
	prompt := buildCategorizePrompt(instruction, emailContent)

	response, err := c.generator.Generate(ctx, prompt, ai.WithTemperature(classificationTemperature))
	if err != nil {
		return ai.Categorization{}, err
	}

	var parsed categorizeResponse
	if err := unmarshalModelJSON(response, &parsed); err != nil {
		c.logger.Warn("failed to parse categorization response", "response", response, "err", err)
		return ai.Categorization{
			Category:       "UNCATEGORIZED",
			Reason:         "Unable to categorize",
			Degraded:       true,
			DegradedReason: err.Error(),
		}, nil
	}

	return ai.Categorization{
		Category: parsed.Category,
		Reason:   parsed.Reason,
	}, nil
}

// ExtractActionItems extracts structured tasks from one email's content.
// An empty customPrompt falls back to the default extraction instruction.
func (c *Classifier) ExtractActionItems(ctx context.Context, emailContent, customPrompt string) (ai.Extraction, error) {
	instruction := customPrompt
	if instruction == "" {
		instruction = ai.DefaultActionItemPrompt
	}
	prompt := buildExtractPrompt(instruction, emailContent)

	response, err := c.generator.Generate(ctx, prompt, ai.WithTemperature(classificationTemperature))
	if err != nil {
		return ai.Extraction{}, err
	}

	var parsed extractResponse
	if err := unmarshalModelJSON(response, &parsed); err != nil {
		c.logger.Warn("failed to parse action item response", "response", response, "err", err)
		return ai.Extraction{
			Degraded:       true,
			DegradedReason: err.Error(),
		}, nil
	}

	items := make([]ai.ExtractedActionItem, 0, len(parsed.ActionItems))
	for _, item := range parsed.ActionItems {
		if item.Description == "" {
			continue
		}
		items = append(items, ai.ExtractedActionItem{
			Description: item.Description,
			Priority:    item.Priority,
			Deadline:    normalizeDeadline(item.Deadline),
		})
	}

	return ai.Extraction{Items: items}, nil
}

// unmarshalModelJSON strips optional code fences, repairs common JSON
// issues and unmarshals the result.
func unmarshalModelJSON(response string, v any) error {
	cleaned := stripCodeFences(response)
	cleaned = repairJSON(cleaned)
	return json.Unmarshal([]byte(cleaned), v)
}

// stripCodeFences removes optional triple-backtick markers that models
// wrap around JSON payloads.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// normalizeDeadline maps the model's textual null markers to an absent
// deadline.
func normalizeDeadline(deadline string) string {
	switch strings.ToLower(strings.TrimSpace(deadline)) {
	case "null", "none", "n/a":
		return ""
	}
	return strings.TrimSpace(deadline)
}
