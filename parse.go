package proofpad

import (
	"strings"
	"unicode"
)

// Key-step markup literals. A region looks like:
//
//	[[KEY_STEP id=<token> theorem="<text>"]]body[[/KEY_STEP]]
//
// The header is everything between the opening marker and the first "]]".
const (
	keyStepOpen  = "[[KEY_STEP"
	keyStepClose = "[[/KEY_STEP]]"
	headerClose  = "]]"
)

// ParseSegments splits assistant output into an ordered sequence of
// Normal and KeyStep segments. It is total: malformed markup never
// produces an error. An opening marker without a header terminator or
// without a closing [[/KEY_STEP]] falls back to literal text: the
// remainder of the input is emitted as a single NormalSegment and
// scanning stops.
//
// Nesting is not supported: the first terminator after a header always
// closes the region, so an opening marker inside a key-step body is
// literal content of that body.
func ParseSegments(text string) []Segment {
	var segs []Segment
	rest := text
	for {
		start := strings.Index(rest, keyStepOpen)
		if start < 0 {
			break
		}
		if start > 0 {
			segs = append(segs, NormalSegment{Text: rest[:start]})
		}
		tag := rest[start:]

		headerEnd := strings.Index(tag[len(keyStepOpen):], headerClose)
		if headerEnd < 0 {
			return append(segs, NormalSegment{Text: tag})
		}
		header := tag[len(keyStepOpen) : len(keyStepOpen)+headerEnd]
		bodyStart := len(keyStepOpen) + headerEnd + len(headerClose)

		term := strings.Index(tag[bodyStart:], keyStepClose)
		if term < 0 {
			return append(segs, NormalSegment{Text: tag})
		}

		id, theorem := parseHeader(header)
		segs = append(segs, KeyStepSegment{
			Text:    tag[bodyStart : bodyStart+term],
			ID:      id,
			Theorem: theorem,
		})
		rest = tag[bodyStart+term+len(keyStepClose):]
	}
	if rest != "" || len(segs) == 0 {
		segs = append(segs, NormalSegment{Text: rest})
	}
	return segs
}

// parseHeader extracts the optional id and theorem attributes from a
// key-step header. Missing or malformed attributes yield empty values.
func parseHeader(header string) (id, theorem string) {
	if i := attrIndex(header, "id="); i >= 0 {
		v := header[i+len("id="):]
		if j := strings.IndexFunc(v, unicode.IsSpace); j >= 0 {
			v = v[:j]
		}
		id = v
	}
	if i := attrIndex(header, `theorem="`); i >= 0 {
		if v, ok := scanQuoted(header[i+len(`theorem="`):]); ok {
			theorem = v
		}
	}
	return id, theorem
}

// attrIndex finds attr in header at an attribute boundary: the start of
// the header or immediately after whitespace. This keeps "id=" from
// matching inside a longer token.
func attrIndex(header, attr string) int {
	for from := 0; ; {
		i := strings.Index(header[from:], attr)
		if i < 0 {
			return -1
		}
		i += from
		if i == 0 || isSpace(header[i-1]) {
			return i
		}
		from = i + len(attr)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanQuoted reads up to the next unescaped double quote, turning \"
// into a literal quote. An unterminated value is malformed and reports
// ok = false.
func scanQuoted(s string) (value string, ok bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '"':
			b.WriteByte('"')
			i++
		case s[i] == '"':
			return b.String(), true
		default:
			b.WriteByte(s[i])
		}
	}
	return "", false
}
