package proofpad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proofpad"
)

func TestAnswerRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := proofpad.AnswerRequest{
		Messages: []proofpad.ChatMessage{{Role: proofpad.RoleUser, Content: "q"}},
		Model:    proofpad.ModelDeepSeek,
	}
	assert.NoError(t, valid.Validate())

	t.Run("empty model means provider default", func(t *testing.T) {
		t.Parallel()
		r := valid
		r.Model = ""
		assert.NoError(t, r.Validate())
	})

	t.Run("empty messages", func(t *testing.T) {
		t.Parallel()
		r := valid
		r.Messages = nil
		assert.ErrorIs(t, r.Validate(), proofpad.ErrValidation)
	})

	t.Run("unknown model label", func(t *testing.T) {
		t.Parallel()
		r := valid
		r.Model = "gpt-2"
		assert.ErrorIs(t, r.Validate(), proofpad.ErrUnknownModel)
	})
}

func TestLastAssistantIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, proofpad.LastAssistantIndex(nil))
	assert.Equal(t, -1, proofpad.LastAssistantIndex([]proofpad.ChatMessage{
		{Role: proofpad.RoleUser, Content: "q"},
	}))
	assert.Equal(t, 1, proofpad.LastAssistantIndex([]proofpad.ChatMessage{
		{Role: proofpad.RoleUser, Content: "q"},
		{Role: proofpad.RoleAssistant, Content: "a"},
		{Role: proofpad.RoleUser, Content: "q2"},
	}))
}
