package soupprompt

import (
	"go.uber.org/zap"
)

// Module binds one template to a metadata record and the variable set the
// template requires. A Module is immutable after construction: Render and
// Validate return identical results for identical inputs, and rendering
// never mutates the module.
type Module struct {
	template string
	metadata Metadata
	required []string // sorted, derived once at construction
	logger   *zap.Logger
}

// NewModule creates a Module from template text. The template is mandatory:
// construction fails on an empty template, and the template is validated
// immediately so a module holding an empty placeholder is never created.
// Metadata defaults to {Name: "Untitled Prompt"} when no metadata option is
// supplied.
func NewModule(template string, opts ...ModuleOption) (*Module, error) {
	config := defaultModuleConfig()
	for _, opt := range opts {
		opt(config)
	}

	if template == "" {
		return nil, NewEmptyTemplateError()
	}

	metadata := Metadata{Name: DefaultModuleName}
	if config.metadata != nil {
		metadata = config.metadata.clone()
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	required := ExtractVariables(template)
	if err := Validate(template); err != nil {
		return nil, err
	}

	m := &Module{
		template: template,
		metadata: metadata,
		required: required,
		logger:   logger,
	}
	m.logger.Debug(LogMsgModuleCreated,
		zap.String(LogFieldModule, m.metadata.Name),
		zap.Int(LogFieldVariables, len(m.required)))
	return m, nil
}

// MustNewModule creates a Module and panics on error.
func MustNewModule(template string, opts ...ModuleOption) *Module {
	m, err := NewModule(template, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Render substitutes input values into the module's template. Every required
// variable must be present in input with a non-nil value or rendering fails
// without producing partial output.
func (m *Module) Render(input map[string]any) (string, error) {
	result, err := Render(m.template, input, m.required)
	if err != nil {
		return "", err
	}
	m.logger.Debug(LogMsgModuleRendered,
		zap.String(LogFieldModule, m.metadata.Name),
		zap.Int(LogFieldOutput, len(result)))
	return result, nil
}

// Validate re-checks the module's template. The template is immutable, so
// repeated validation always returns the construction-time result.
func (m *Module) Validate() error {
	return Validate(m.template)
}

// RequiredVariables returns a snapshot of the variable names the template
// demands at render time, sorted. The returned slice shares no storage with
// the module.
func (m *Module) RequiredVariables() []string {
	out := make([]string, len(m.required))
	copy(out, m.required)
	return out
}

// Template returns the module's template text.
func (m *Module) Template() string {
	return m.template
}

// Metadata returns a copy of the module's metadata record.
func (m *Module) Metadata() Metadata {
	return m.metadata.clone()
}

// Name returns the module's metadata name.
func (m *Module) Name() string {
	return m.metadata.Name
}
