package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aretw0/stepmention/internal/logging"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/ports"
)

// Option configures Collect.
type Option func(*collector)

// WithLogger sets the logger used to report dangling transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *collector) {
		c.logger = logger
	}
}

type collector struct {
	loader ports.StepLoader
	logger *slog.Logger
	steps  map[string]domain.Step
}

// Collect walks the flow depth-first from entry, following transitions in
// declaration order, and numbers every step on first visit. Steps the loader
// lists but the walk never reaches are included without an index.
//
// Transitions to missing steps are skipped and logged. A missing entry step
// is an error wrapping domain.ErrStepNotFound.
func Collect(loader ports.StepLoader, entry string, opts ...Option) (*Catalog, error) {
	c := &collector{
		loader: loader,
		steps:  make(map[string]domain.Step),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}

	if _, err := c.load(entry); err != nil {
		return nil, fmt.Errorf("entry step %q: %w", entry, err)
	}

	metas, err := c.walk(entry)
	if err != nil {
		return nil, err
	}

	ids, err := loader.ListSteps()
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, visited := c.steps[id]; visited {
			continue
		}
		step, err := c.load(id)
		if err != nil {
			return nil, err
		}
		metas = append(metas, toMeta(step, 0))
	}

	return NewCatalog(metas...), nil
}

func (c *collector) walk(entry string) ([]domain.StepMeta, error) {
	var metas []domain.StepMeta
	numbered := make(map[string]bool)
	stack := []string{entry}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if numbered[id] {
			continue
		}

		step, err := c.load(id)
		if errors.Is(err, domain.ErrStepNotFound) {
			c.logger.Warn("Skipping unresolved transition target", "step_id", id, "err", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		numbered[id] = true
		metas = append(metas, toMeta(step, len(metas)+1))

		// Push in reverse so the first transition is walked first.
		for i := len(step.Transitions) - 1; i >= 0; i-- {
			target := step.Transitions[i].ToStepID
			if target != "" && !numbered[target] {
				stack = append(stack, target)
			}
		}
	}
	return metas, nil
}

func (c *collector) load(id string) (domain.Step, error) {
	if s, ok := c.steps[id]; ok {
		return s, nil
	}
	raw, err := c.loader.GetStep(id)
	if err != nil {
		return domain.Step{}, err
	}
	var step domain.Step
	if err := json.Unmarshal(raw, &step); err != nil {
		return domain.Step{}, fmt.Errorf("invalid definition for step %s: %w", id, err)
	}
	if step.ID == "" {
		step.ID = id
	}
	c.steps[id] = step
	return step, nil
}

func toMeta(s domain.Step, index int) domain.StepMeta {
	return domain.StepMeta{
		Name:             s.ID,
		DisplayName:      s.Label(),
		LogoURL:          s.LogoURL,
		IndexInTraversal: index,
	}
}
