package soupprompt

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseModuleDocument parses a document (YAML frontmatter + body) into a
// Module. The document must start with --- and have a closing ---
// delimiter; the frontmatter carries the module metadata and everything
// after the closing delimiter is the template. A document with no
// frontmatter is treated entirely as template text with default metadata.
// Template and metadata failures surface exactly as NewModule reports them.
func ParseModuleDocument(data []byte) (*Module, error) {
	metadata, body, err := splitFrontmatter(data)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return NewModule(body)
	}
	return NewModule(body, WithMetadata(*metadata))
}

// ParseModuleFile reads a file and parses it as a module document.
func ParseModuleFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentFileError(ErrMsgDocumentRead, path, err)
	}
	return ParseModuleDocument(data)
}

// MustParseModuleDocument parses a module document and panics on error.
func MustParseModuleDocument(data []byte) *Module {
	m, err := ParseModuleDocument(data)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalDocument serializes the module as a YAML frontmatter document:
// metadata between --- delimiters, then the template body.
func (m *Module) MarshalDocument() ([]byte, error) {
	fm, err := yaml.Marshal(m.metadata)
	if err != nil {
		return nil, NewDocumentParseError(err)
	}

	var sb strings.Builder
	sb.WriteString(YAMLFrontmatterDelimiter)
	sb.WriteByte('\n')
	sb.Write(fm)
	sb.WriteString(YAMLFrontmatterDelimiter)
	sb.WriteByte('\n')
	sb.WriteString(m.template)
	return []byte(sb.String()), nil
}

// WriteDocumentFile serializes the module and writes it to path.
func (m *Module) WriteDocumentFile(path string) error {
	data, err := m.MarshalDocument()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, DocumentFilePermissions); err != nil {
		return NewDocumentFileError(ErrMsgDocumentWrite, path, err)
	}
	return nil
}

// groupManifest is the YAML document form of a whole group.
type groupManifest struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Modules     []manifestModule `yaml:"modules"`
}

// manifestModule is one module entry in a group manifest. Manifests carry
// the core metadata fields only; a module document holds the full record.
type manifestModule struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Template    string   `yaml:"template"`
}

// ParseGroupManifest parses a YAML manifest describing a group and its
// modules into a constructed Group. Module entries are constructed and added
// in listed order, so template and uniqueness failures surface exactly as
// Group construction reports them.
func ParseGroupManifest(data []byte) (*Group, error) {
	if len(data) == 0 {
		return nil, NewDocumentError(ErrMsgDocumentEmpty, Position{Line: 1, Column: 1}, nil)
	}

	var manifest groupManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, NewManifestParseError(err)
	}

	modules := make([]*Module, 0, len(manifest.Modules))
	for _, entry := range manifest.Modules {
		m, err := NewModule(entry.Template, WithMetadata(Metadata{
			Name:        entry.Name,
			Description: entry.Description,
			Tags:        entry.Tags,
			Version:     entry.Version,
		}))
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}

	opts := []GroupOption{WithModules(modules...)}
	if manifest.Description != "" {
		opts = append(opts, WithGroupMetadata(Metadata{
			Name:        manifest.Name,
			Description: manifest.Description,
		}))
	}
	return NewGroup(manifest.Name, opts...)
}

// ParseGroupManifestFile reads a file and parses it as a group manifest.
func ParseGroupManifestFile(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentFileError(ErrMsgDocumentRead, path, err)
	}
	return ParseGroupManifest(data)
}

// MarshalManifest serializes the group and its modules as a YAML manifest,
// modules in sorted name order.
func (g *Group) MarshalManifest() ([]byte, error) {
	g.mu.RLock()
	manifest := groupManifest{
		Name:        g.name,
		Description: g.metadata.Description,
	}
	for _, name := range g.sortedNames() {
		md := g.modules[name].Metadata()
		manifest.Modules = append(manifest.Modules, manifestModule{
			Name:        md.Name,
			Description: md.Description,
			Tags:        md.Tags,
			Version:     md.Version,
			Template:    g.modules[name].Template(),
		})
	}
	g.mu.RUnlock()

	out, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, NewManifestParseError(err)
	}
	return out, nil
}

// WriteManifestFile serializes the group and writes it to path.
func (g *Group) WriteManifestFile(path string) error {
	data, err := g.MarshalManifest()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, DocumentFilePermissions); err != nil {
		return NewDocumentFileError(ErrMsgDocumentWrite, path, err)
	}
	return nil
}

// splitFrontmatter separates YAML frontmatter from the document body.
// Returns nil metadata when the document has no frontmatter.
func splitFrontmatter(data []byte) (*Metadata, string, error) {
	if len(data) == 0 {
		return nil, "", NewDocumentError(ErrMsgDocumentEmpty, Position{Line: 1, Column: 1}, nil)
	}

	content := string(data)

	// Trim BOM and leading whitespace
	content = strings.TrimLeft(content, "\xef\xbb\xbf \t")

	if !strings.HasPrefix(content, YAMLFrontmatterDelimiter) {
		return nil, content, nil
	}

	// Skip opening delimiter and newline
	afterOpening := content[len(YAMLFrontmatterDelimiter):]
	if len(afterOpening) > 0 && afterOpening[0] == '\n' {
		afterOpening = afterOpening[1:]
	} else if len(afterOpening) > 1 && afterOpening[0] == '\r' && afterOpening[1] == '\n' {
		afterOpening = afterOpening[2:]
	}

	// Find closing delimiter
	closeIdx := strings.Index(afterOpening, "\n"+YAMLFrontmatterDelimiter)
	if closeIdx == -1 {
		return nil, "", NewDocumentError(ErrMsgFrontmatterUnclosed, Position{Line: 1, Column: 1}, nil)
	}

	fmYAML := afterOpening[:closeIdx]
	if len(fmYAML) > DefaultMaxFrontmatterSize {
		return nil, "", NewDocumentError(ErrMsgFrontmatterTooLarge, Position{Line: 1, Column: 1}, nil)
	}

	// Extract body (after closing delimiter and newline)
	bodyStart := closeIdx + len("\n"+YAMLFrontmatterDelimiter)
	body := ""
	if bodyStart < len(afterOpening) {
		body = afterOpening[bodyStart:]
		if len(body) > 0 && body[0] == '\n' {
			body = body[1:]
		} else if len(body) > 1 && body[0] == '\r' && body[1] == '\n' {
			body = body[2:]
		}
	}

	var metadata Metadata
	if err := yaml.Unmarshal([]byte(fmYAML), &metadata); err != nil {
		return nil, "", NewDocumentParseError(err)
	}

	return &metadata, body, nil
}
