package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/LorenzoBalderrama/SoupPrompt"
	"github.com/itsatony/go-cuserr"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid  bool                    `json:"valid"`
	Issues []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Placeholder string `json:"placeholder,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	// Read template
	source, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse the document, then check the template body. A document-level
	// failure (bad frontmatter, empty body) is reported like a template issue.
	module, err := soupprompt.ParseModuleDocument(source)
	if err != nil {
		return outputValidation(validationIssueFromError(err), cfg.format, stdout)
	}

	if err := module.Validate(); err != nil {
		return outputValidation(validationIssueFromError(err), cfg.format, stdout)
	}

	return outputValidation(nil, cfg.format, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// validationIssueFromError converts a validation error into output form,
// pulling position context from the error metadata when present.
func validationIssueFromError(err error) *validationIssueOutput {
	issue := &validationIssueOutput{
		Severity: SeverityNameError,
		Message:  err.Error(),
	}

	var customErr *cuserr.CustomError
	if errors.As(err, &customErr) {
		if line, ok := customErr.GetMetadata(soupprompt.MetaKeyLine); ok {
			issue.Line, _ = strconv.Atoi(line)
		}
		if column, ok := customErr.GetMetadata(soupprompt.MetaKeyColumn); ok {
			issue.Column, _ = strconv.Atoi(column)
		}
		if placeholder, ok := customErr.GetMetadata(soupprompt.MetaKeyPlaceholder); ok {
			issue.Placeholder = placeholder
		}
	}

	return issue
}

func outputValidation(issue *validationIssueOutput, format string, stdout io.Writer) int {
	if format == OutputFormatJSON {
		output := validationOutput{Valid: issue == nil}
		if issue != nil {
			output.Issues = []validationIssueOutput{*issue}
		}

		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))

		if issue != nil {
			return ExitCodeValidationError
		}
		return ExitCodeSuccess
	}

	if issue == nil {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline,
		issue.Severity, issue.Message, issue.Line, issue.Column)
	return ExitCodeValidationError
}
