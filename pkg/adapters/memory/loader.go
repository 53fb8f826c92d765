package memory

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aretw0/stepmention/pkg/domain"
)

// Loader implements ports.StepLoader using an in-memory map.
type Loader struct {
	steps map[string][]byte
}

// NewLoader creates a new Loader with the provided raw data (JSON strings).
func NewLoader(data map[string]string) *Loader {
	steps := make(map[string][]byte)
	for k, v := range data {
		steps[k] = []byte(v)
	}
	return &Loader{
		steps: steps,
	}
}

// NewFromSteps creates a new Loader from domain objects.
func NewFromSteps(steps ...domain.Step) (*Loader, error) {
	data := make(map[string][]byte)
	for _, s := range steps {
		if s.ID == "" {
			return nil, fmt.Errorf("step missing ID")
		}
		if _, ok := data[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrStepIDCollision, s.ID)
		}
		bytes, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal step %s: %w", s.ID, err)
		}
		data[s.ID] = bytes
	}
	return &Loader{steps: data}, nil
}

// GetStep retrieves the raw definition of a step by ID.
func (l *Loader) GetStep(id string) ([]byte, error) {
	content, ok := l.steps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrStepNotFound, id)
	}
	return content, nil
}

// ListSteps returns all available step IDs.
func (l *Loader) ListSteps() ([]string, error) {
	keys := make([]string, 0, len(l.steps))
	for k := range l.steps {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}
