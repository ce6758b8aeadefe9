package soupprompt

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Template errors
	ErrMsgEmptyTemplate    = "template cannot be empty"
	ErrMsgEmptyPlaceholder = "template contains an empty placeholder"

	// Render errors
	ErrMsgMissingVariable = "required variable missing from render input"

	// Group errors
	ErrMsgInvalidGroupName = "group name cannot be empty"
	ErrMsgUnnamedModule    = "module metadata lacks a name"
	ErrMsgDuplicateModule  = "module name already exists in group"
	ErrMsgModuleNotFound   = "module not found in group"
	ErrMsgGroupValidation  = "group member failed validation"

	// Document errors
	ErrMsgDocumentEmpty       = "document cannot be empty"
	ErrMsgFrontmatterUnclosed = "frontmatter delimiter not closed"
	ErrMsgFrontmatterTooLarge = "frontmatter exceeds size limit"
	ErrMsgFrontmatterParse    = "frontmatter parsing failed"
	ErrMsgManifestParse       = "group manifest parsing failed"
	ErrMsgDocumentRead        = "document read failed"
	ErrMsgDocumentWrite       = "document write failed"
)

// Error code constants for categorization
const (
	ErrCodeTemplate = "SOUPPROMPT_TEMPLATE"
	ErrCodeModule   = "SOUPPROMPT_MODULE"
	ErrCodeGroup    = "SOUPPROMPT_GROUP"
	ErrCodeDocument = "SOUPPROMPT_DOCUMENT"
)

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

// NewEmptyTemplateError creates an error for a module constructed without
// template text
func NewEmptyTemplateError() error {
	return cuserr.NewValidationError(ErrCodeModule, ErrMsgEmptyTemplate)
}

// NewInvalidTemplateError creates an error for a template whose placeholder
// content is empty or whitespace-only, carrying the first offender's
// position context
func NewInvalidTemplateError(placeholder string, pos Position) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgEmptyPlaceholder).
		WithMetadata(MetaKeyPlaceholder, placeholder).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewMissingVariableError creates an error for a required variable absent
// from the render input
func NewMissingVariableError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyVariable, ErrMsgMissingVariable).
		WithMetadata(MetaKeyVariable, name)
}

// NewInvalidGroupNameError creates an error for a group constructed with an
// empty name
func NewInvalidGroupNameError() error {
	return cuserr.NewValidationError(ErrCodeGroup, ErrMsgInvalidGroupName)
}

// NewUnnamedModuleError creates an error for adding a module with no
// metadata name to a group
func NewUnnamedModuleError(groupName string) error {
	return cuserr.NewValidationError(ErrCodeGroup, ErrMsgUnnamedModule).
		WithMetadata(MetaKeyGroup, groupName)
}

// NewDuplicateModuleError creates a module name collision error
func NewDuplicateModuleError(moduleName, groupName string) error {
	return cuserr.NewValidationError(ErrCodeGroup, ErrMsgDuplicateModule).
		WithMetadata(MetaKeyModule, moduleName).
		WithMetadata(MetaKeyGroup, groupName)
}

// NewModuleNotFoundError creates an error for a render against a name not
// present in the group
func NewModuleNotFoundError(moduleName, groupName string) error {
	return cuserr.NewNotFoundError(MetaKeyModule, ErrMsgModuleNotFound).
		WithMetadata(MetaKeyModule, moduleName).
		WithMetadata(MetaKeyGroup, groupName)
}

// NewGroupValidationError wraps a member's validation failure with module
// and group context
func NewGroupValidationError(moduleName, groupName string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeGroup, ErrMsgGroupValidation).
		WithMetadata(MetaKeyModule, moduleName).
		WithMetadata(MetaKeyGroup, groupName)
}

// NewDocumentError creates a document error with position context
func NewDocumentError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeDocument, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeDocument, msg)
	}
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
}

// NewDocumentFileError creates an error for a document file that cannot be
// read or written
func NewDocumentFileError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDocument, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewDocumentParseError creates an error for YAML frontmatter that fails to
// unmarshal
func NewDocumentParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDocument, ErrMsgFrontmatterParse)
}

// NewManifestParseError creates an error for a group manifest that fails to
// unmarshal or marshal
func NewManifestParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDocument, ErrMsgManifestParse)
}
