package core

// Color is a hex color string such as "#FF0000".
// The empty Color means "terminal default".
type Color string

// ColorNone leaves the terminal's own color untouched.
const ColorNone Color = ""

// IsNone reports whether c is the terminal default.
func (c Color) IsNone() bool {
	return c == ColorNone
}
