package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Placeholder represents one delimited variable reference found in a
// template. Start and End are byte offsets covering the full placeholder
// including both delimiters. Empty marks a placeholder whose inner content
// was empty or whitespace-only; such placeholders carry no name.
type Placeholder struct {
	Name  string   // Identifier between the delimiters
	Raw   string   // Full placeholder text including delimiters
	Start int      // Byte offset of the opening delimiter
	End   int      // Byte offset just past the closing delimiter
	Pos   Position // Position of the opening delimiter
	Empty bool     // Inner content empty or whitespace-only
}

// String returns a human-readable representation of the placeholder
func (p Placeholder) String() string {
	if p.Empty {
		return fmt.Sprintf("Placeholder{empty @ %s}", p.Pos)
	}
	return fmt.Sprintf("Placeholder{%q @ %s}", p.Name, p.Pos)
}
