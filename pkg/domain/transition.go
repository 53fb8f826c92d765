package domain

// Transition is an edge between two steps.
type Transition struct {
	FromStepID string `json:"from_step_id,omitempty" yaml:"from,omitempty"`
	ToStepID   string `json:"to_step_id" yaml:"to,omitempty"`

	// Condition labels the branch (e.g. "status == 200"). It is not
	// evaluated; it is carried for graph export.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}
