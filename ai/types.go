package ai

// Categorization is the result of classifying one email.
//
// Degraded is set when the model returned unparseable structure and the
// result was replaced with the safe default (UNCATEGORIZED). Callers can
// distinguish "the model chose UNCATEGORIZED" from "the pipeline could
// not parse the response" without the distinction becoming an error.
type Categorization struct {
	// Category is the raw label returned by the model. Agents map it onto
	// the category enum; unknown labels coerce to UNCATEGORIZED.
	Category string

	// Reason is the model's brief explanation for the label.
	Reason string

	// Degraded reports that parsing failed and the default was substituted.
	Degraded bool

	// DegradedReason describes why the result was degraded, for logging.
	DegradedReason string
}

// ExtractedActionItem is one task as returned by the model, before it is
// converted into a domain action item.
type ExtractedActionItem struct {
	Description string
	Priority    string
	Deadline    string
}

// Extraction is the result of extracting action items from one email.
// Degraded carries the soft-fail signal the same way Categorization does;
// a degraded extraction has an empty item list.
type Extraction struct {
	Items          []ExtractedActionItem
	Degraded       bool
	DegradedReason string
}

// Default instruction texts for the three agent operation types. These are
// the process-wide fallbacks used when no prompt configuration is active
// and no per-call override is given.
const (
	DefaultCategorizationPrompt = `You are an email categorization assistant.
Categorize the email into one of these categories:
- URGENT: Requires immediate attention
- ACTION_REQUIRED: Needs response or action
- INFORMATIONAL: FYI, no action needed
- SPAM: Unwanted or promotional

Provide category and brief reason.`

	DefaultActionItemPrompt = `Extract action items from this email.
List each action item with:
- Description of the task
- Priority (High/Medium/Low)
- Deadline if mentioned

If no action items, respond with "No action items found".`

	DefaultReplyDraftPrompt = `Draft a professional email reply based on:
- Original email context
- Professional and courteous tone
- Address all key points
- Keep it concise (2-3 paragraphs)

Do not include subject line.`
)
