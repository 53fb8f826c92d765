package domain

// Step is a unit of a flow. Its ID is the name that interpolation
// expressions use to reference its output ({{<id>.path}}).
type Step struct {
	ID          string `json:"id" yaml:"id"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	LogoURL     string `json:"logo_url,omitempty" yaml:"logo_url,omitempty"`

	// Transitions are the outgoing edges, in declaration order. Traversal
	// order (and therefore step numbering) follows this order.
	Transitions []Transition `json:"transitions" yaml:"transitions"`

	// Metadata allows for extensible key-value pairs.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Label returns the display name, falling back to the ID.
func (s Step) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.ID
}

// StepMeta is the read-only view of a step used to label mentions.
type StepMeta struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"displayName" yaml:"display_name"`
	LogoURL     string `json:"logoUrl,omitempty" yaml:"logo_url,omitempty"`

	// IndexInTraversal is the 1-based position of the step in a depth-first
	// traversal of the flow. Zero means the step was not reached.
	IndexInTraversal int `json:"indexInTraversal,omitempty" yaml:"index,omitempty"`
}

// HasIndex reports whether the step was numbered by a traversal.
func (m StepMeta) HasIndex() bool {
	return m.IndexInTraversal > 0
}
