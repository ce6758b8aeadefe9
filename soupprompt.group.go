package soupprompt

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Group is a named collection of Modules keyed by each module's metadata
// name. Names are unique within a group: a second module under an existing
// name is rejected rather than replacing the first. Members are only ever
// inserted, never removed or replaced. Access is guarded so a group may be
// shared across goroutines.
type Group struct {
	name     string
	metadata Metadata
	mu       sync.RWMutex // Protects modules map
	modules  map[string]*Module
	logger   *zap.Logger
}

// NewGroup creates a Group with the given name. Construction fails on an
// empty name. Initial modules supplied via WithModules are added in order;
// the first failing addition aborts construction and no group is returned.
// Metadata defaults to a record carrying the group name.
func NewGroup(name string, opts ...GroupOption) (*Group, error) {
	config := defaultGroupConfig()
	for _, opt := range opts {
		opt(config)
	}

	if name == "" {
		return nil, NewInvalidGroupNameError()
	}

	metadata := Metadata{Name: name}
	if config.metadata != nil {
		metadata = config.metadata.clone()
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Group{
		name:     name,
		metadata: metadata,
		modules:  make(map[string]*Module),
		logger:   logger,
	}

	for _, m := range config.modules {
		if err := g.Add(m); err != nil {
			return nil, err
		}
	}

	g.logger.Debug(LogMsgGroupCreated,
		zap.String(LogFieldGroup, g.name),
		zap.Int(LogFieldModules, len(g.modules)))
	return g, nil
}

// MustNewGroup creates a Group and panics on error.
func MustNewGroup(name string, opts ...GroupOption) *Group {
	g, err := NewGroup(name, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Add inserts a module under its metadata name. Fails when the module
// carries no name or when the name already exists in this group.
func (g *Group) Add(m *Module) error {
	if m == nil || m.Name() == "" {
		return NewUnnamedModuleError(g.name)
	}
	name := m.Name()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.modules[name]; exists {
		return NewDuplicateModuleError(name, g.name)
	}
	g.modules[name] = m

	g.logger.Debug(LogMsgModuleAdded,
		zap.String(LogFieldGroup, g.name),
		zap.String(LogFieldModule, name))
	return nil
}

// Get retrieves a module by name.
// Returns the module and true if found, or nil and false if not.
func (g *Group) Get(name string) (*Module, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.modules[name]
	return m, ok
}

// Has checks if a module with the given name is in the group.
func (g *Group) Has(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.modules[name]
	return ok
}

// Render looks up a module by name and renders it with input. Fails when the
// name is not present in the group; the module's own render failures pass
// through unchanged.
func (g *Group) Render(name string, input map[string]any) (string, error) {
	m, ok := g.Get(name)
	if !ok {
		return "", NewModuleNotFoundError(name, g.name)
	}

	result, err := m.Render(input)
	if err != nil {
		return "", err
	}
	g.logger.Debug(LogMsgGroupRendered,
		zap.String(LogFieldGroup, g.name),
		zap.String(LogFieldModule, name))
	return result, nil
}

// ListModules returns all module names in sorted order. The returned slice
// is a snapshot.
func (g *Group) ListModules() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNames()
}

// Count returns the number of modules in the group.
func (g *Group) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.modules)
}

// ValidateAll validates every member in sorted name order and stops at the
// first failure, wrapping it with module and group context.
func (g *Group) ValidateAll() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, name := range g.sortedNames() {
		if err := g.modules[name].Validate(); err != nil {
			return NewGroupValidationError(name, g.name, err)
		}
	}

	g.logger.Debug(LogMsgGroupValidated,
		zap.String(LogFieldGroup, g.name),
		zap.Int(LogFieldModules, len(g.modules)))
	return nil
}

// Name returns the group's name.
func (g *Group) Name() string {
	return g.name
}

// Metadata returns a copy of the group's metadata record.
func (g *Group) Metadata() Metadata {
	return g.metadata.clone()
}

// sortedNames returns the module names in sorted order.
// Callers must hold at least a read lock.
func (g *Group) sortedNames() []string {
	names := make([]string, 0, len(g.modules))
	for name := range g.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
