package proofpad

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg int // User message accent
	KeyStep int // Key-step frame and header
	Error   int // Error messages
	Success int // Success indicators
	Muted   int // Status bar, placeholders, collapsed previews
	Accent  int // Headings, session tabs
	UserBg  int // User message background
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg: 4,
		KeyStep: 3,
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
		UserBg:  0,
	}
}
