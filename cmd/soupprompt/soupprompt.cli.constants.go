package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameVars     = "vars"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgInvalidJSON       = "invalid JSON data"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgParseDocFailed    = "document parsing failed"
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Help text templates
const (
	HelpMainUsage = `soupprompt - Prompt template composition CLI

Usage:
    soupprompt <command> [options]

Commands:
    render      Render a template with data
    vars        List the variables a template requires
    validate    Check a template for empty placeholders
    version     Show version information
    help        Show help for a command

Use "soupprompt help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with data

The template source may be plain template text or a module document with
YAML frontmatter.

Usage:
    soupprompt render [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <json>       JSON data string
    -f, --data-file <file>  JSON data file
    -o, --output <file>     Output file (default: stdout)

Examples:
    soupprompt render -t greeting.md -d '{"name": "Alice"}'
    soupprompt render -t greeting.md -f data.json
    cat greeting.md | soupprompt render -t - -d '{"name": "Bob"}'
    soupprompt render -t greeting.md -f data.json -o output.txt`

	HelpVarsUsage = `List the variables a template requires

Usage:
    soupprompt vars [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    soupprompt vars -t greeting.md
    soupprompt vars -t greeting.md -F json
    cat greeting.md | soupprompt vars -t -`

	HelpValidateUsage = `Check a template for empty placeholders

Usage:
    soupprompt validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)

Examples:
    soupprompt validate -t greeting.md
    cat greeting.md | soupprompt validate -t -`

	HelpVersionUsage = `Show version information

Usage:
    soupprompt version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    soupprompt help [command]

Commands:
    render      Show help for render command
    vars        Show help for vars command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "soupprompt version %s\nGo: %s"
)

// Validation output format templates
const (
	ValidationTextSuccess     = "Template is valid"
	ValidationTextIssueHeader = "Validation issues:"
	ValidationTextIssueFormat = "  [%s] %s at line %d, column %d"
)

// Severity names for output
const (
	SeverityNameError = "ERROR"
)

// CLI metadata
const (
	CLIName    = "soupprompt"
	CLIVersion = "1.0.0"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
