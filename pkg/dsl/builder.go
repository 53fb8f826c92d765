package dsl

import (
	"fmt"

	"github.com/aretw0/stepmention/pkg/adapters/memory"
	"github.com/aretw0/stepmention/pkg/domain"
)

// Builder manages the flow construction.
type Builder struct {
	steps map[string]*StepBuilder
	order []string
}

// New creates a new flow builder.
func New() *Builder {
	return &Builder{
		steps: make(map[string]*StepBuilder),
	}
}

// Add creates a new step in the flow.
// If the step already exists, it returns the existing builder.
func (b *Builder) Add(id string) *StepBuilder {
	if sb, ok := b.steps[id]; ok {
		return sb
	}
	sb := &StepBuilder{
		step: domain.Step{
			ID: id,
		},
	}
	b.steps[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Steps returns the steps in the order they were added.
func (b *Builder) Steps() []domain.Step {
	steps := make([]domain.Step, 0, len(b.order))
	for _, id := range b.order {
		steps = append(steps, b.steps[id].Build())
	}
	return steps
}

// Build compiles the flow into a memory Loader.
func (b *Builder) Build() (*memory.Loader, error) {
	loader, err := memory.NewFromSteps(b.Steps()...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}
