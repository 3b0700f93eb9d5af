package agents

import (
	"context"
	"errors"
	"log/slog"

	"github.com/brightbeam/mailmind/storage"
)

// resolvePrompt decides which instruction text an agent operation uses.
// A caller-supplied prompt wins; otherwise the active stored config for
// the prompt type; otherwise empty, which tells the AI layer to fall
// back to its built-in default.
func resolvePrompt(ctx context.Context, prompts storage.PromptRepository, promptType, customPrompt string, logger *slog.Logger) string {
	if customPrompt != "" {
		return customPrompt
	}

	config, err := prompts.GetActivePrompt(ctx, promptType)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("error loading active prompt, using default", "prompt_type", promptType, "err", err)
		}
		return ""
	}
	return config.PromptText
}
