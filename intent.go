package proofpad

import "strings"

// TaskType classifies what the user wants from the next turn.
type TaskType string

const (
	TaskQA    TaskType = "qa"
	TaskSolve TaskType = "solve"
)

// solveMarkers are keywords that usually indicate a problem, exercise
// or proof request rather than concept Q&A. Classification errs toward
// solve so typical exercise statements get the full worked treatment.
var solveMarkers = []string{
	"prove that",
	"show that",
	"exercise",
	"problem",
	"find",
	"compute",
	"banach",
	"cauchy",
	"complete",
	"incomplete",
	"证明",
	"试证",
	"求证",
	"求",
	"计算",
	"解答",
	"题目",
	"例题",
	"完备",
	"不完备",
	"柯西",
}

// InferTaskType heuristically decides between concept Q&A and problem
// solving by inspecting the latest user message together with the raw
// LaTeX input. It is a lightweight hint; the model keeps stylistic
// freedom either way.
func InferTaskType(msgs []ChatMessage, latex string) TaskType {
	var lastUser string
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			lastUser = msgs[i].Content
			break
		}
	}

	var parts []string
	if lastUser != "" {
		parts = append(parts, strings.ToLower(lastUser))
	}
	if latex != "" {
		parts = append(parts, strings.ToLower(latex))
	}
	text := strings.TrimSpace(strings.Join(parts, "\n"))

	for _, marker := range solveMarkers {
		if strings.Contains(text, marker) {
			return TaskSolve
		}
	}
	return TaskQA
}

const (
	qaHint = "Task type: concept Q&A. Explain the relevant definitions and " +
		"theorems precisely and keep notation consistent with the course text."
	solveHint = "Task type: problem solving / proof. Work through the solution " +
		"in textbook style and wrap each key step in " +
		`[[KEY_STEP id=<n> theorem="<name>"]]...[[/KEY_STEP]] markers.`
)

// PrepareMessages builds the message list sent to the model: a task
// hint is prepended, and the raw LaTeX input (if any) is appended as
// an extra user message. Inference runs before the LaTeX message is
// appended so routing sees the question text and the LaTeX separately.
func PrepareMessages(msgs []ChatMessage, latex string) []ChatMessage {
	hint := qaHint
	if InferTaskType(msgs, latex) == TaskSolve {
		hint = solveHint
	}

	out := make([]ChatMessage, 0, len(msgs)+2)
	out = append(out, ChatMessage{Role: RoleUser, Content: hint})
	out = append(out, msgs...)
	if latex != "" {
		out = append(out, ChatMessage{Role: RoleUser, Content: "LaTeX input:\n" + latex})
	}
	return out
}
