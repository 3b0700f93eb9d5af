package openai

import "fmt"

// The classification helpers wrap the caller's instruction text in a
// scaffold that pins down the email content and the expected JSON shape.
// Models are told the exact structure; responses that still come back
// malformed are handled by the soft-fail path in classifier.go.

const categorizeResponseFormat = `{
    "category": "URGENT|ACTION_REQUIRED|INFORMATIONAL|SPAM",
    "reason": "brief explanation"
}`

const extractResponseFormat = `{
    "action_items": [
        {
            "description": "task description",
            "priority": "High|Medium|Low",
            "deadline": "deadline if mentioned or null"
        }
    ]
}`

// buildCategorizePrompt assembles the full categorization prompt from the
// instruction text and the email content.
func buildCategorizePrompt(instruction, emailContent string) string {
	return fmt.Sprintf(`%s

Email Content:
%s

Respond in JSON format:
%s`, instruction, emailContent, categorizeResponseFormat)
}

// buildExtractPrompt assembles the full action-item extraction prompt.
func buildExtractPrompt(instruction, emailContent string) string {
	return fmt.Sprintf(`%s

Email Content:
%s

Respond in JSON format:
%s`, instruction, emailContent, extractResponseFormat)
}
