package dsl

import "github.com/aretw0/stepmention/pkg/domain"

// StepBuilder provides a fluent API for configuring a step.
type StepBuilder struct {
	step domain.Step
}

// Named sets the display name shown in mentions.
func (s *StepBuilder) Named(displayName string) *StepBuilder {
	s.step.DisplayName = displayName
	return s
}

// Logo sets the icon URL carried by mentions of this step.
func (s *StepBuilder) Logo(url string) *StepBuilder {
	s.step.LogoURL = url
	return s
}

// Meta adds a metadata entry.
func (s *StepBuilder) Meta(key, value string) *StepBuilder {
	if s.step.Metadata == nil {
		s.step.Metadata = make(map[string]string)
	}
	s.step.Metadata[key] = value
	return s
}

// Go adds an unconditional transition to the target step.
func (s *StepBuilder) Go(target string) *StepBuilder {
	s.step.Transitions = append(s.step.Transitions, domain.Transition{
		ToStepID: target,
	})
	return s
}

// Branch adds a labelled transition to the target step.
func (s *StepBuilder) Branch(condition string, target string) *StepBuilder {
	s.step.Transitions = append(s.step.Transitions, domain.Transition{
		Condition: condition,
		ToStepID:  target,
	})
	return s
}

// Terminal removes every outgoing transition.
func (s *StepBuilder) Terminal() *StepBuilder {
	s.step.Transitions = nil
	return s
}

// Build returns the underlying domain.Step.
func (s *StepBuilder) Build() domain.Step {
	return s.step
}
