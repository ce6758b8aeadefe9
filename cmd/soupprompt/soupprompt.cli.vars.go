package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/LorenzoBalderrama/SoupPrompt"
)

// varsConfig holds parsed vars command configuration
type varsConfig struct {
	templatePath string
	format       string
}

// varsOutput represents JSON output for vars
type varsOutput struct {
	Variables []string `json:"variables"`
}

func runVars(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseVarsFlags(args)
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

	module, err := soupprompt.ParseModuleDocument(source)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseDocFailed, err)
		return ExitCodeValidationError
	}

	variables := module.RequiredVariables()

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(varsOutput{Variables: variables}, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	for _, name := range variables {
		fmt.Fprintln(stdout, name)
	}
	return ExitCodeSuccess
}

func parseVarsFlags(args []string) (*varsConfig, error) {
	fs := flag.NewFlagSet(CmdNameVars, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &varsConfig{}

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
