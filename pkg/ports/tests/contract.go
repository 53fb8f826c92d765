package tests

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StepLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.StepLoader.
// expected maps every step ID the loader holds to its decoded definition.
func StepLoaderContractTest(t *testing.T, loader ports.StepLoader, expected map[string]domain.Step) {
	t.Helper()

	t.Run("GetStep_Success", func(t *testing.T) {
		for id, want := range expected {
			raw, err := loader.GetStep(id)
			require.NoError(t, err, "getting step %s", id)

			var got domain.Step
			require.NoError(t, json.Unmarshal(raw, &got), "step %s is not a JSON step", id)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.DisplayName, got.DisplayName)
			assert.Equal(t, want.LogoURL, got.LogoURL)
			assert.Equal(t, targets(want.Transitions), targets(got.Transitions), "transitions of %s", id)
		}
	})

	t.Run("GetStep_NotFound", func(t *testing.T) {
		_, err := loader.GetStep("non-existent-step")
		assert.ErrorIs(t, err, domain.ErrStepNotFound)
	})

	t.Run("ListSteps", func(t *testing.T) {
		ids, err := loader.ListSteps()
		require.NoError(t, err)
		assert.Len(t, ids, len(expected))
		for id := range expected {
			assert.Contains(t, ids, id)
		}
	})
}

func targets(ts []domain.Transition) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ToStepID)
	}
	return out
}
