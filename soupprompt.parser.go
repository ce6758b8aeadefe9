package soupprompt

import (
	"sort"
	"strings"

	"github.com/LorenzoBalderrama/SoupPrompt/internal"
)

// ExtractVariables scans template under the default syntax and returns the
// distinct variable names, sorted. A template with no placeholders yields an
// empty result. Extraction never fails: malformed delimiter content is
// treated as plain text.
func ExtractVariables(template string) []string {
	return ExtractVariablesWithSyntax(template, DefaultSyntax())
}

// ExtractVariablesWithSyntax scans template under the given syntax.
func ExtractVariablesWithSyntax(template string, syntax Syntax) []string {
	scanner := internal.NewScannerWithConfig(template, syntax.scannerConfig(), nil)

	seen := make(map[string]bool)
	var names []string
	for _, ph := range scanner.Scan() {
		if ph.Empty || seen[ph.Name] {
			continue
		}
		seen[ph.Name] = true
		names = append(names, ph.Name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes values from input into template under the default
// syntax. Every name in required must map to a non-nil value in input or the
// render fails before producing any output. Replacement is global per
// variable and substituted text is not rescanned, so values containing
// delimiters are inserted literally. Placeholders whose names are not in
// required stay as literal text.
func Render(template string, input map[string]any, required []string) (string, error) {
	return RenderWithSyntax(template, input, required, DefaultSyntax())
}

// RenderWithSyntax renders template under the given syntax.
func RenderWithSyntax(template string, input map[string]any, required []string, syntax Syntax) (string, error) {
	values, err := resolveRequired(input, required)
	if err != nil {
		return "", err
	}

	scanner := internal.NewScannerWithConfig(template, syntax.scannerConfig(), nil)
	placeholders := scanner.Scan()
	if len(placeholders) == 0 {
		return template, nil
	}

	var sb strings.Builder
	sb.Grow(len(template))
	last := 0
	for _, ph := range placeholders {
		value, ok := values[ph.Name]
		if ph.Empty || !ok {
			continue
		}
		sb.WriteString(template[last:ph.Start])
		sb.WriteString(value)
		last = ph.End
	}
	sb.WriteString(template[last:])
	return sb.String(), nil
}

// Validate checks template under the default syntax and fails on the first
// placeholder whose inner content is empty or whitespace-only. Unmatched
// delimiters are not checked.
func Validate(template string) error {
	return ValidateWithSyntax(template, DefaultSyntax())
}

// ValidateWithSyntax validates template under the given syntax.
func ValidateWithSyntax(template string, syntax Syntax) error {
	scanner := internal.NewScannerWithConfig(template, syntax.scannerConfig(), nil)
	for _, ph := range scanner.Scan() {
		if ph.Empty {
			return NewInvalidTemplateError(ph.Raw, Position{
				Offset: ph.Pos.Offset,
				Line:   ph.Pos.Line,
				Column: ph.Pos.Column,
			})
		}
	}
	return nil
}

// resolveRequired checks every required variable against the render input
// and returns the canonical string form per name. Names are processed in
// sorted order so the reported missing variable is deterministic. A key
// mapped to nil counts as absent.
func resolveRequired(input map[string]any, required []string) (map[string]string, error) {
	names := make([]string, len(required))
	copy(names, required)
	sort.Strings(names)

	values := make(map[string]string, len(names))
	for _, name := range names {
		value, ok := input[name]
		if !ok || value == nil {
			return nil, NewMissingVariableError(name)
		}
		values[name] = internal.Stringify(value)
	}
	return values, nil
}
