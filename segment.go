package proofpad

// Segment is a sealed interface representing one region of assistant
// output. The unexported marker method prevents external implementations.
// Segments partition their source text: concatenating every segment's
// Text in order reproduces the input minus the key-step tag delimiters
// and headers.
type Segment interface {
	segment()
}

// NormalSegment contains plain (or LaTeX) text outside any key-step tag.
type NormalSegment struct {
	Text string
}

func (NormalSegment) segment() {}

// KeyStepSegment contains the body of a [[KEY_STEP ...]] region.
// ID and Theorem come from the tag header and are empty when the
// corresponding attribute is absent or malformed.
type KeyStepSegment struct {
	Text    string
	ID      string
	Theorem string
}

func (KeyStepSegment) segment() {}

// Interface compliance checks.
var (
	_ Segment = NormalSegment{}
	_ Segment = KeyStepSegment{}
)
