package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/ports"
)

// ValidateGraph checks for broken links starting from startStepID and
// reports steps that cannot be reached from it.
func ValidateGraph(loader ports.StepLoader, startStepID string) error {
	if _, err := loader.GetStep(startStepID); err != nil {
		return fmt.Errorf("start step '%s' not found: %w", startStepID, err)
	}

	visited := make(map[string]bool)
	queue := []string{startStepID}

	var problems []string

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		raw, err := loader.GetStep(currentID)
		if err != nil {
			problems = append(problems, fmt.Sprintf("Missing step or load error: '%s'", currentID))
			continue
		}

		var step domain.Step
		if err := json.Unmarshal(raw, &step); err != nil {
			problems = append(problems, fmt.Sprintf("Invalid step definition: '%s': %v", currentID, err))
			continue
		}

		for _, t := range step.Transitions {
			if t.ToStepID == "" {
				continue
			}
			if !visited[t.ToStepID] {
				queue = append(queue, t.ToStepID)
			}
		}
	}

	ids, err := loader.ListSteps()
	if err != nil {
		return fmt.Errorf("failed to list steps: %w", err)
	}
	for _, id := range ids {
		if !visited[id] {
			problems = append(problems, fmt.Sprintf("Unreachable step: '%s'", id))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: found %d errors:\n- %s", ErrInvalidGraph, len(problems), strings.Join(problems, "\n- "))
	}

	return nil
}

// ErrInvalidGraph wraps every validation failure report.
var ErrInvalidGraph = errors.New("invalid step graph")
