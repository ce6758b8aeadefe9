package soupprompt

import (
	"go.uber.org/zap"
)

// ModuleOption is a functional option for configuring a Module.
type ModuleOption func(*moduleConfig)

// moduleConfig holds the internal configuration for module construction.
type moduleConfig struct {
	metadata *Metadata
	logger   *zap.Logger
}

// defaultModuleConfig returns the default module configuration.
func defaultModuleConfig() *moduleConfig {
	return &moduleConfig{
		metadata: nil,
		logger:   nil,
	}
}

// WithMetadata sets the module's metadata record. A record supplied here is
// used as-is, even when its Name is empty.
// Default: {Name: "Untitled Prompt"}
func WithMetadata(metadata Metadata) ModuleOption {
	return func(c *moduleConfig) {
		c.metadata = &metadata
	}
}

// WithName sets the module's metadata name, keeping any other metadata
// fields already supplied.
func WithName(name string) ModuleOption {
	return func(c *moduleConfig) {
		if c.metadata == nil {
			c.metadata = &Metadata{}
		}
		c.metadata.Name = name
	}
}

// WithModuleLogger sets the logger for the module.
// Default: nil (no logging)
func WithModuleLogger(logger *zap.Logger) ModuleOption {
	return func(c *moduleConfig) {
		c.logger = logger
	}
}

// GroupOption is a functional option for configuring a Group.
type GroupOption func(*groupConfig)

// groupConfig holds the internal configuration for group construction.
type groupConfig struct {
	metadata *Metadata
	modules  []*Module
	logger   *zap.Logger
}

// defaultGroupConfig returns the default group configuration.
func defaultGroupConfig() *groupConfig {
	return &groupConfig{}
}

// WithModules supplies the group's initial modules, added in order during
// construction.
func WithModules(modules ...*Module) GroupOption {
	return func(c *groupConfig) {
		c.modules = append(c.modules, modules...)
	}
}

// WithGroupMetadata sets the group's metadata record.
// Default: a record carrying the group name
func WithGroupMetadata(metadata Metadata) GroupOption {
	return func(c *groupConfig) {
		c.metadata = &metadata
	}
}

// WithGroupLogger sets the logger for the group.
// Default: nil (no logging)
func WithGroupLogger(logger *zap.Logger) GroupOption {
	return func(c *groupConfig) {
		c.logger = logger
	}
}
