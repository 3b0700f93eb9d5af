package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	t.Run("valid json unchanged", func(t *testing.T) {
		input := `{"category": "URGENT", "reason": "deadline"}`
		assert.Equal(t, input, repairJSON(input))
	})

	t.Run("missing opening quote on key", func(t *testing.T) {
		input := `{"category": "URGENT", reason": "deadline"}`
		repaired := repairJSON(input)

		var parsed map[string]string
		require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
		assert.Equal(t, "deadline", parsed["reason"])
	})

	t.Run("missing opening quote on first key", func(t *testing.T) {
		input := `{category": "SPAM", "reason": "ads"}`
		repaired := repairJSON(input)

		var parsed map[string]string
		require.NoError(t, json.Unmarshal([]byte(repaired), &parsed))
		assert.Equal(t, "SPAM", parsed["category"])
	})

	t.Run("nested arrays untouched", func(t *testing.T) {
		input := `{"action_items": [{"description": "a", "priority": "High"}]}`
		assert.Equal(t, input, repairJSON(input))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, "", repairJSON(""))
	})
}
