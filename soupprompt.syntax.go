package soupprompt

import (
	"github.com/LorenzoBalderrama/SoupPrompt/internal"
)

// Syntax is a placeholder delimiter pair, fixed for the lifetime of a
// parsing operation. The zero value means the default {{ }} syntax; an empty
// field falls back to its default individually.
type Syntax struct {
	Open  string
	Close string
}

// DefaultSyntax returns the default {{ }} placeholder syntax.
func DefaultSyntax() Syntax {
	return Syntax{
		Open:  DefaultOpenDelim,
		Close: DefaultCloseDelim,
	}
}

// scannerConfig converts the syntax into the internal scanner configuration.
func (s Syntax) scannerConfig() internal.ScannerConfig {
	config := internal.DefaultScannerConfig()
	if s.Open != "" {
		config.OpenDelim = s.Open
	}
	if s.Close != "" {
		config.CloseDelim = s.Close
	}
	return config
}
