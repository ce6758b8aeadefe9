package soupprompt

// Delimiter constants - the default {{ }} placeholder pair
const (
	DefaultOpenDelim  = "{{"
	DefaultCloseDelim = "}}"
)

// Default metadata values
const (
	DefaultModuleName = "Untitled Prompt"
)

// YAML frontmatter constants
const (
	// YAMLFrontmatterDelimiter is the standard YAML frontmatter delimiter
	YAMLFrontmatterDelimiter = "---"
)

// Default configuration values
const (
	DefaultMaxFrontmatterSize = 64 * 1024 // 64KB - DoS protection for YAML frontmatter
)

// File permissions for document writes
const (
	DocumentFilePermissions = 0644
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine        = "line"
	MetaKeyColumn      = "column"
	MetaKeyOffset      = "offset"
	MetaKeyVariable    = "variable"
	MetaKeyModule      = "module"
	MetaKeyGroup       = "group"
	MetaKeyPlaceholder = "placeholder"
	MetaKeyPath        = "path"
)

// Log message constants
const (
	LogMsgModuleCreated  = "module created"
	LogMsgModuleRendered = "module rendered"
	LogMsgGroupCreated   = "group created"
	LogMsgModuleAdded    = "module added to group"
	LogMsgGroupRendered  = "group rendered module"
	LogMsgGroupValidated = "group validated"
)

// Log field names
const (
	LogFieldModule    = "module"
	LogFieldGroup     = "group"
	LogFieldVariables = "variable_count"
	LogFieldModules   = "module_count"
	LogFieldOutput    = "output_length"
)
