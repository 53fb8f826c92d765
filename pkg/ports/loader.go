package ports

import "context"

// StepLoader defines how step definitions are retrieved.
// This allows the storage layer (Loam, Memory) to be decoupled from traversal.
type StepLoader interface {
	// GetStep retrieves the JSON definition of a step (a domain.Step) by ID.
	GetStep(id string) ([]byte, error)

	// ListSteps returns the IDs of all steps available in the flow.
	// Unreachable steps are listed too.
	ListSteps() ([]string, error)
}

// Watchable defines an interface for loaders that can notify about backend changes.
type Watchable interface {
	// Watch returns a channel that receives the ID of each changed step.
	Watch(ctx context.Context) (<-chan string, error)
}
