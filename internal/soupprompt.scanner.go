package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	OpenDelim  string // Opening delimiter (default: "{{")
	CloseDelim string // Closing delimiter (default: "}}")
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// Scanner finds placeholder occurrences in template source. Matching is
// leftmost and non-overlapping: after a failed open delimiter the scan
// resumes one byte further, so a longer delimiter run still yields the
// leftmost real placeholder.
type Scanner struct {
	source string
	config ScannerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// scanMark is a restorable scanner position
type scanMark struct {
	pos    int
	line   int
	column int
}

// NewScanner creates a new scanner with default configuration
func NewScanner(source string, logger *zap.Logger) *Scanner {
	return NewScannerWithConfig(source, DefaultScannerConfig(), logger)
}

// NewScannerWithConfig creates a scanner with custom configuration.
// Empty delimiter fields fall back to the defaults.
func NewScannerWithConfig(source string, config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.OpenDelim == "" {
		config.OpenDelim = StrOpenDelim
	}
	if config.CloseDelim == "" {
		config.CloseDelim = StrCloseDelim
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan walks the source and returns every placeholder in order of
// occurrence. Delimited content that is neither a valid identifier nor
// empty/whitespace-only is not a placeholder; the scan treats it as plain
// text. Scan never fails: unmatched delimiters are plain text too.
func (s *Scanner) Scan() []Placeholder {
	s.logger.Debug(LogMsgScanStart)
	var placeholders []Placeholder

	for !s.isAtEnd() {
		if !s.matchStr(s.config.OpenDelim) {
			s.advance()
			continue
		}

		mark := s.mark()
		ph, ok := s.scanPlaceholder()
		if !ok {
			s.resetTo(mark)
			s.advance()
			continue
		}
		placeholders = append(placeholders, ph)
	}

	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldPlaceholders, len(placeholders)))
	return placeholders
}

// scanPlaceholder consumes one placeholder starting at the open delimiter.
// Returns false when the delimited content is not a placeholder; the caller
// restores the scan position.
func (s *Scanner) scanPlaceholder() (Placeholder, bool) {
	startPos := s.currentPosition()
	start := s.pos
	s.advanceN(len(s.config.OpenDelim))

	// Empty or whitespace-only content closes immediately after the skip
	inner := s.mark()
	s.skipWhitespace()
	if s.matchStr(s.config.CloseDelim) {
		s.advanceN(len(s.config.CloseDelim))
		return Placeholder{
			Raw:   s.source[start:s.pos],
			Start: start,
			End:   s.pos,
			Pos:   startPos,
			Empty: true,
		}, true
	}
	s.resetTo(inner)

	var sb strings.Builder
	for !s.isAtEnd() && isIdentChar(s.peek()) {
		sb.WriteByte(s.advance())
	}
	if sb.Len() == 0 || !s.matchStr(s.config.CloseDelim) {
		return Placeholder{}, false
	}
	s.advanceN(len(s.config.CloseDelim))

	return Placeholder{
		Name:  sb.String(),
		Raw:   s.source[start:s.pos],
		Start: start,
		End:   s.pos,
		Pos:   startPos,
	}, true
}

// Helper methods

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// mark captures the current scan position for later restore
func (s *Scanner) mark() scanMark {
	return scanMark{pos: s.pos, line: s.line, column: s.column}
}

// resetTo restores a previously captured scan position
func (s *Scanner) resetTo(m scanMark) {
	s.pos = m.pos
	s.line = m.line
	s.column = m.column
}

// isAtEnd returns true if we've reached the end of source
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

// matchStr returns true if the remaining source starts with str
func (s *Scanner) matchStr(str string) bool {
	return strings.HasPrefix(s.source[s.pos:], str)
}

// skipWhitespace skips whitespace characters
func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		ch := s.peek()
		if ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet {
			s.advance()
		} else {
			break
		}
	}
}

// Character classification helpers

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == CharUnderscore
}
