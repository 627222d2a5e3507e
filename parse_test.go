package proofpad_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proofpad"
)

func TestParseSegments_NoTags(t *testing.T) {
	t.Parallel()

	t.Run("plain text yields one normal segment", func(t *testing.T) {
		t.Parallel()
		input := "Let $X$ be a Banach space. Then the unit ball is closed."
		segs := proofpad.ParseSegments(input)
		require.Len(t, segs, 1)
		assert.Equal(t, proofpad.NormalSegment{Text: input}, segs[0])
	})

	t.Run("empty input yields one empty normal segment", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments("")
		require.Len(t, segs, 1)
		assert.Equal(t, proofpad.NormalSegment{Text: ""}, segs[0])
	})
}

func TestParseSegments_WellFormed(t *testing.T) {
	t.Parallel()

	t.Run("attribute extraction", func(t *testing.T) {
		t.Parallel()
		input := `[[KEY_STEP id=7 theorem="Hahn-Banach"]]proof body[[/KEY_STEP]]`
		segs := proofpad.ParseSegments(input)
		require.Len(t, segs, 1)
		ks, ok := segs[0].(proofpad.KeyStepSegment)
		require.True(t, ok)
		assert.Equal(t, "7", ks.ID)
		assert.Equal(t, "Hahn-Banach", ks.Theorem)
		assert.Equal(t, "proof body", ks.Text)
	})

	t.Run("surrounding text becomes normal segments", func(t *testing.T) {
		t.Parallel()
		input := `before [[KEY_STEP id=1]]step[[/KEY_STEP]] after`
		segs := proofpad.ParseSegments(input)
		require.Len(t, segs, 3)
		assert.Equal(t, proofpad.NormalSegment{Text: "before "}, segs[0])
		assert.Equal(t, proofpad.KeyStepSegment{Text: "step", ID: "1"}, segs[1])
		assert.Equal(t, proofpad.NormalSegment{Text: " after"}, segs[2])
	})

	t.Run("multiple key steps", func(t *testing.T) {
		t.Parallel()
		input := `a[[KEY_STEP id=1]]x[[/KEY_STEP]]b[[KEY_STEP id=2]]y[[/KEY_STEP]]`
		segs := proofpad.ParseSegments(input)
		require.Len(t, segs, 4)
		assert.Equal(t, proofpad.KeyStepSegment{Text: "x", ID: "1"}, segs[1])
		assert.Equal(t, proofpad.NormalSegment{Text: "b"}, segs[2])
		assert.Equal(t, proofpad.KeyStepSegment{Text: "y", ID: "2"}, segs[3])
	})

	t.Run("attributes are independently optional", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments(`[[KEY_STEP theorem="Baire category"]]body[[/KEY_STEP]]`)
		require.Len(t, segs, 1)
		ks := segs[0].(proofpad.KeyStepSegment)
		assert.Empty(t, ks.ID)
		assert.Equal(t, "Baire category", ks.Theorem)

		segs = proofpad.ParseSegments(`[[KEY_STEP]]body[[/KEY_STEP]]`)
		require.Len(t, segs, 1)
		ks = segs[0].(proofpad.KeyStepSegment)
		assert.Empty(t, ks.ID)
		assert.Empty(t, ks.Theorem)
	})

	t.Run("escaped quote inside theorem value", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments(`[[KEY_STEP theorem="the \"open\" mapping theorem"]]b[[/KEY_STEP]]`)
		require.Len(t, segs, 1)
		ks := segs[0].(proofpad.KeyStepSegment)
		assert.Equal(t, `the "open" mapping theorem`, ks.Theorem)
	})

	t.Run("unterminated theorem quote yields absent value", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments(`[[KEY_STEP id=3 theorem="no closing quote]]b[[/KEY_STEP]]`)
		require.Len(t, segs, 1)
		ks := segs[0].(proofpad.KeyStepSegment)
		assert.Equal(t, "3", ks.ID)
		assert.Empty(t, ks.Theorem)
	})

	t.Run("body may contain LaTeX and newlines", func(t *testing.T) {
		t.Parallel()
		body := "By completeness,\n$\\sum_n \\|x_n\\| < \\infty$ implies convergence."
		segs := proofpad.ParseSegments(`[[KEY_STEP id=2]]` + body + `[[/KEY_STEP]]`)
		require.Len(t, segs, 1)
		assert.Equal(t, body, segs[0].(proofpad.KeyStepSegment).Text)
	})

	t.Run("opening marker inside body is literal, no nesting", func(t *testing.T) {
		t.Parallel()
		input := `[[KEY_STEP id=1]]outer [[KEY_STEP id=2]] inner[[/KEY_STEP]] tail`
		segs := proofpad.ParseSegments(input)
		require.Len(t, segs, 2)
		// First terminator closes the first header; the embedded opening
		// marker stays in the body verbatim.
		assert.Equal(t, "outer [[KEY_STEP id=2]] inner", segs[0].(proofpad.KeyStepSegment).Text)
		assert.Equal(t, proofpad.NormalSegment{Text: " tail"}, segs[1])
	})
}

func TestParseSegments_Malformed(t *testing.T) {
	t.Parallel()

	t.Run("missing terminator falls back to literal text", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments("a [[KEY_STEP id=1]] b")
		require.Len(t, segs, 2)
		assert.Equal(t, proofpad.NormalSegment{Text: "a "}, segs[0])
		assert.Equal(t, proofpad.NormalSegment{Text: "[[KEY_STEP id=1]] b"}, segs[1])
	})

	t.Run("missing header terminator falls back to literal text", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments("a [[KEY_STEP id=1 b")
		require.Len(t, segs, 2)
		assert.Equal(t, proofpad.NormalSegment{Text: "a "}, segs[0])
		assert.Equal(t, proofpad.NormalSegment{Text: "[[KEY_STEP id=1 b"}, segs[1])
	})

	t.Run("well-formed tag before a malformed one still parses", func(t *testing.T) {
		t.Parallel()
		segs := proofpad.ParseSegments(`[[KEY_STEP id=1]]ok[[/KEY_STEP]] then [[KEY_STEP broken`)
		require.Len(t, segs, 3)
		assert.Equal(t, proofpad.KeyStepSegment{Text: "ok", ID: "1"}, segs[0])
		assert.Equal(t, proofpad.NormalSegment{Text: " then "}, segs[1])
		assert.Equal(t, proofpad.NormalSegment{Text: "[[KEY_STEP broken"}, segs[2])
	})
}

func TestParseSegments_Completeness(t *testing.T) {
	t.Parallel()

	// Concatenating all segment texts reproduces the input with
	// well-formed wrappers stripped and malformed tags left verbatim.
	inputs := []string{
		"",
		"plain text only",
		`x [[KEY_STEP id=1 theorem="Riesz"]]body[[/KEY_STEP]] y`,
		`[[KEY_STEP]]a[[/KEY_STEP]][[KEY_STEP]]b[[/KEY_STEP]]`,
		"unterminated [[KEY_STEP id=9]] tail",
		"no header end [[KEY_STEP tail",
	}
	stripped := []string{
		"",
		"plain text only",
		"x body y",
		"ab",
		"unterminated [[KEY_STEP id=9]] tail",
		"no header end [[KEY_STEP tail",
	}

	for i, input := range inputs {
		var b strings.Builder
		for _, seg := range proofpad.ParseSegments(input) {
			switch s := seg.(type) {
			case proofpad.NormalSegment:
				b.WriteString(s.Text)
			case proofpad.KeyStepSegment:
				b.WriteString(s.Text)
			}
		}
		assert.Equal(t, stripped[i], b.String(), "input %d: %q", i, input)
	}
}
