package proofpad_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proofpad"
)

func TestInferTaskType(t *testing.T) {
	t.Parallel()

	t.Run("concept questions route to qa", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "What is a normed space?"},
		}
		assert.Equal(t, proofpad.TaskQA, proofpad.InferTaskType(msgs, ""))
	})

	t.Run("proof requests route to solve", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "Prove that every Cauchy sequence in R converges."},
		}
		assert.Equal(t, proofpad.TaskSolve, proofpad.InferTaskType(msgs, ""))
	})

	t.Run("latex input participates in routing", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "see attached"},
		}
		latex := `\text{Show that } \ell^2 \text{ is a Banach space.}`
		assert.Equal(t, proofpad.TaskSolve, proofpad.InferTaskType(msgs, latex))
	})

	t.Run("only the latest user message is inspected", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "Prove that X is complete."},
			{Role: proofpad.RoleAssistant, Content: "Done."},
			{Role: proofpad.RoleUser, Content: "What does that notation mean?"},
		}
		assert.Equal(t, proofpad.TaskQA, proofpad.InferTaskType(msgs, ""))
	})

	t.Run("chinese markers route to solve", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "试证明 C[0,1] 按最大值范数完备"},
		}
		assert.Equal(t, proofpad.TaskSolve, proofpad.InferTaskType(msgs, ""))
	})
}

func TestPrepareMessages(t *testing.T) {
	t.Parallel()

	t.Run("prepends hint and appends latex", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "Prove completeness."},
		}
		out := proofpad.PrepareMessages(msgs, `\ell^2`)
		require.Len(t, out, 3)
		assert.Equal(t, proofpad.RoleUser, out[0].Role)
		assert.Contains(t, out[0].Content, "KEY_STEP")
		assert.Equal(t, msgs[0], out[1])
		assert.Equal(t, "LaTeX input:\n\\ell^2", out[2].Content)
	})

	t.Run("qa hint has no key step instruction", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "What is a dual space?"},
		}
		out := proofpad.PrepareMessages(msgs, "")
		require.Len(t, out, 2)
		assert.True(t, strings.HasPrefix(out[0].Content, "Task type: concept Q&A"))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		t.Parallel()
		msgs := []proofpad.ChatMessage{
			{Role: proofpad.RoleUser, Content: "q"},
		}
		_ = proofpad.PrepareMessages(msgs, "x")
		assert.Equal(t, "q", msgs[0].Content)
	})
}
