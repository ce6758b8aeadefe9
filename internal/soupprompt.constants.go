package internal

// Character constants
const (
	CharUnderscore  = '_'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// String constants for delimiter matching
const (
	StrOpenDelim  = "{{"
	StrCloseDelim = "}}"
)

// Canonical scalar string forms
const (
	StringValueEmpty = ""
	StringValueTrue  = "true"
	StringValueFalse = "false"
)

// Numeric formatting constants
const (
	IntBase10         = 10
	FloatFormatFlag   = 'f'
	FloatPrecisionAll = -1
	FloatBitSize64    = 64
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "starting placeholder scan"
	LogMsgScanEnd        = "placeholder scan complete"
)

// Log field names
const (
	LogFieldSource       = "source_length"
	LogFieldPlaceholders = "placeholder_count"
)
