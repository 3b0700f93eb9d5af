package agents

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/brightbeam/mailmind/ai"
	"github.com/brightbeam/mailmind/core"
	"github.com/brightbeam/mailmind/storage"
	"github.com/brightbeam/mailmind/vector"
)

// Confidence levels attached to retrieval-augmented answers.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
	ConfidenceError  = "error"
)

const (
	// answerTemperature is used for question answering over retrieved
	// context.
	answerTemperature = 0.4

	// summaryTemperature is used for inbox summaries.
	summaryTemperature = 0.5

	// defaultAnswerTopK is how many snippets back an answer by default.
	defaultAnswerTopK = 5

	// answerSourceCount caps the source list attached to an answer.
	answerSourceCount = 3

	// summaryEmailLimit and summaryBulletLimit bound the inbox summary
	// input.
	summaryEmailLimit  = 20
	summaryBulletLimit = 10

	// urgentQuery is the fixed semantic query used to surface urgent
	// mail.
	urgentQuery = "urgent important immediate action required critical"

	// insufficientContextMessage is returned when retrieval finds
	// nothing to answer with; the model is not called in that case.
	insufficientContextMessage = "I don't have enough information to answer that question. Please try rephrasing or check if emails have been processed."
)

func answerPrompt(contextBlock, query string) string {
	return fmt.Sprintf(`Based on the following context, answer the question concisely and accurately.

Context:
%s

Question: %s

Answer:`, contextBlock, query)
}

// Answer is a retrieval-augmented response to an inbox question.
type Answer struct {
	Answer     string              `json:"answer"`
	Sources    []*core.VectorMatch `json:"sources"`
	Confidence string              `json:"confidence"`
}

// Assistant answers questions about the inbox by retrieving relevant
// emails from the vector index and prompting the model with them.
//
// Its methods are conversational surface: internal failures come back
// as human-readable text with degraded confidence, never as an error.
type Assistant struct {
	emails    storage.EmailRepository
	index     *vector.Client
	generator ai.Generator
	logger    *slog.Logger
}

// NewAssistant creates a new RAG agent.
func NewAssistant(emails storage.EmailRepository, index *vector.Client, generator ai.Generator) (*Assistant, error) {
	if emails == nil {
		return nil, ErrEmailRepositoryRequired
	}
	if index == nil {
		return nil, ErrVectorClientRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	return &Assistant{
		emails:    emails,
		index:     index,
		generator: generator,
		logger:    slog.Default().With("component", "assistant"),
	}, nil
}

// Ask answers a question with defaultAnswerTopK retrieved snippets.
func (a *Assistant) Ask(ctx context.Context, query string) *Answer {
	return a.Answer(ctx, query, defaultAnswerTopK)
}

// Answer retrieves up to topK relevant snippets and prompts the model
// with them. With no relevant context the model is not called at all
// and the answer reports low confidence. Confidence is high with two or
// more sources, medium otherwise.
func (a *Assistant) Answer(ctx context.Context, query string, topK int) *Answer {
	if topK <= 0 {
		topK = defaultAnswerTopK
	}

	contextBlock, _, err := a.index.RelevantContext(ctx, query, topK, nil)
	if err != nil {
		a.logger.Error("error retrieving context", "err", err)
		return &Answer{
			Answer:     fmt.Sprintf("Error processing query: %v", err),
			Confidence: ConfidenceError,
		}
	}

	if contextBlock == "" {
		return &Answer{
			Answer:     insufficientContextMessage,
			Confidence: ConfidenceLow,
		}
	}

	answerText, err := a.generator.Generate(ctx, answerPrompt(contextBlock, query), ai.WithTemperature(answerTemperature))
	if err != nil {
		a.logger.Error("error answering query", "err", err)
		return &Answer{
			Answer:     fmt.Sprintf("Error processing query: %v", err),
			Confidence: ConfidenceError,
		}
	}

	sources, err := a.index.Search(ctx, query, answerSourceCount, nil)
	if err != nil {
		a.logger.Warn("error collecting answer sources", "err", err)
		sources = nil
	}

	confidence := ConfidenceMedium
	if len(sources) >= 2 {
		confidence = ConfidenceHigh
	}

	return &Answer{
		Answer:     strings.TrimSpace(answerText),
		Sources:    sources,
		Confidence: confidence,
	}
}

// AnswerStream answers like Answer but yields the model's text
// incrementally as it is generated. The empty-context short-circuit
// and internal failures yield the same fixed messages Answer returns,
// as a single final chunk; the sequence itself never carries an error.
func (a *Assistant) AnswerStream(ctx context.Context, query string, topK int) iter.Seq[string] {
	if topK <= 0 {
		topK = defaultAnswerTopK
	}

	return func(yield func(string) bool) {
		contextBlock, _, err := a.index.RelevantContext(ctx, query, topK, nil)
		if err != nil {
			a.logger.Error("error retrieving context", "err", err)
			yield(fmt.Sprintf("Error processing query: %v", err))
			return
		}
		if contextBlock == "" {
			yield(insufficientContextMessage)
			return
		}

		for chunk, err := range a.generator.GenerateStream(ctx, answerPrompt(contextBlock, query), ai.WithTemperature(answerTemperature)) {
			if err != nil {
				a.logger.Error("error answering query", "err", err)
				yield(fmt.Sprintf("Error processing query: %v", err))
				return
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// SummarizeInbox produces a short textual summary of recent mail. An
// empty inbox yields a fixed message without calling the model.
func (a *Assistant) SummarizeInbox(ctx context.Context, maxEmails int) string {
	if maxEmails <= 0 {
		maxEmails = summaryEmailLimit
	}

	emails, err := a.emails.ListEmails(ctx, storage.EmailFilter{}, 0, maxEmails)
	if err != nil {
		a.logger.Error("error summarizing inbox", "err", err)
		return "Error generating inbox summary."
	}
	if len(emails) == 0 {
		return "Your inbox is empty."
	}

	var bullets []string
	for _, email := range emails {
		if len(bullets) >= summaryBulletLimit {
			break
		}
		bullets = append(bullets, fmt.Sprintf("- From %s: %s [%s]", email.Sender, email.Subject, email.Category))
	}

	prompt := fmt.Sprintf(`Summarize this inbox:

Total emails: %d

Recent emails:
%s

Provide a brief summary (2-3 sentences) of the inbox status and key items:`,
		len(emails), strings.Join(bullets, "\n"))

	summary, err := a.generator.Generate(ctx, prompt, ai.WithTemperature(summaryTemperature))
	if err != nil {
		a.logger.Error("error summarizing inbox", "err", err)
		return "Error generating inbox summary."
	}
	return strings.TrimSpace(summary)
}

// FindUrgent surfaces emails matching a fixed urgency query.
func (a *Assistant) FindUrgent(ctx context.Context) string {
	matches, err := a.index.Search(ctx, urgentQuery, defaultAnswerTopK, nil)
	if err != nil {
		a.logger.Error("error finding urgent emails", "err", err)
		return "Error finding urgent emails."
	}
	if len(matches) == 0 {
		return "No urgent emails found."
	}

	var lines []string
	for _, match := range matches {
		lines = append(lines, fmt.Sprintf("- %s from %s",
			metadataOr(match.Metadata, "subject", "No subject"),
			metadataOr(match.Metadata, "sender", "Unknown")))
	}
	return "Urgent/Important emails:\n" + strings.Join(lines, "\n")
}

// BySender lists recent emails whose sender matches the given
// substring, case-insensitively.
func (a *Assistant) BySender(ctx context.Context, sender string) string {
	emails, err := a.emails.ListEmails(ctx, storage.EmailFilter{Sender: sender}, 0, 10)
	if err != nil {
		a.logger.Error("error listing emails by sender", "sender", sender, "err", err)
		return fmt.Sprintf("Error retrieving emails from %s.", sender)
	}
	if len(emails) == 0 {
		return fmt.Sprintf("No emails found from %s.", sender)
	}

	var lines []string
	for _, email := range emails {
		lines = append(lines, fmt.Sprintf("- %s (%s)", email.Subject, email.Timestamp.UTC().Format("2006-01-02")))
	}
	return fmt.Sprintf("Emails from %s:\n%s", sender, strings.Join(lines, "\n"))
}

// ByTopic lists emails semantically related to a topic, with relevance
// scores.
func (a *Assistant) ByTopic(ctx context.Context, topic string) string {
	matches, err := a.index.Search(ctx, topic, defaultAnswerTopK, nil)
	if err != nil {
		a.logger.Error("error searching by topic", "topic", topic, "err", err)
		return fmt.Sprintf("Error searching for '%s'.", topic)
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No emails found related to '%s'.", topic)
	}

	var lines []string
	for _, match := range matches {
		lines = append(lines, fmt.Sprintf("- %s (Relevance: %.2f)",
			metadataOr(match.Metadata, "subject", "No subject"), match.Score))
	}
	return fmt.Sprintf("Emails related to '%s':\n%s", topic, strings.Join(lines, "\n"))
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if value := metadata[key]; value != "" {
		return value
	}
	return fallback
}
