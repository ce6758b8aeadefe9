package soupprompt

import "time"

// Metadata describes a prompt module or group. Name is the identity used for
// group membership; the remaining fields are descriptive. Extra holds
// arbitrary additional document fields and passes through serialization
// untouched.
type Metadata struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	CreatedAt   time.Time      `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time      `yaml:"updated_at,omitempty" json:"updated_at,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// clone returns a deep copy so callers and internals never share Tags or
// Extra storage.
func (m Metadata) clone() Metadata {
	out := m
	if m.Tags != nil {
		out.Tags = make([]string, len(m.Tags))
		copy(out.Tags, m.Tags)
	}
	if m.Extra != nil {
		out.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
