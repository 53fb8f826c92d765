package loam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Loader adapts a Loam repository of step files to the StepLoader interface.
type Loader struct {
	Repo *loam.TypedRepository[StepMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[StepMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// GetStep retrieves a step from the Loam repository and returns it as JSON.
// Loam resolves "fetch" to fetch.md, fetch.json or fetch.yaml.
func (l *Loader) GetStep(id string) ([]byte, error) {
	ctx := context.Background()

	doc, err := l.Repo.Get(ctx, id)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: loam get failed: %v", domain.ErrStepNotFound, id, err)
	}
	if err != nil {
		// A step file that exists but does not parse must not look like a
		// dangling transition.
		return nil, fmt.Errorf("step %s: loam get failed: %w", id, err)
	}

	step, err := toStep(doc.ID, doc.Data)
	if err != nil {
		return nil, fmt.Errorf("step %s: %w", id, err)
	}

	bytes, err := json.Marshal(step)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal step data: %w", err)
	}
	return bytes, nil
}

// ListSteps lists all steps in the repository.
func (l *Loader) ListSteps() ([]string, error) {
	ctx := context.Background()
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	ids := make([]string, 0, len(docs))

	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: '%s' is defined in both '%s' and '%s'", domain.ErrStepIDCollision, id, existingPath, doc.ID)
		}
		seen[id] = doc.ID
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Watch implements ports.Watchable.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func toStep(docID string, meta StepMetadata) (domain.Step, error) {
	rawID := meta.ID
	if rawID == "" {
		rawID = docID
	}

	transitions, err := buildTransitions(meta)
	if err != nil {
		return domain.Step{}, err
	}

	step := domain.Step{
		ID:          trimExtension(rawID),
		DisplayName: meta.DisplayName,
		LogoURL:     meta.LogoURL,
		Transitions: transitions,
	}
	if len(meta.Metadata) > 0 {
		step.Metadata = flattenMetadata(meta.Metadata)
	}
	return step, nil
}

// buildTransitions decodes the polymorphic transition list (strings or maps).
func buildTransitions(meta StepMetadata) ([]domain.Transition, error) {
	transitions := make([]domain.Transition, 0, len(meta.Transitions)+1)

	for i, item := range meta.Transitions {
		switch v := item.(type) {
		case string:
			transitions = append(transitions, domain.Transition{ToStepID: trimExtension(v)})
		default:
			var lt LoaderTransition
			if err := mapstructure.Decode(v, &lt); err != nil {
				return nil, fmt.Errorf("transitions[%d]: %w", i, err)
			}
			to := lt.To
			if to == "" {
				to = lt.ToFull
			}
			if to == "" {
				return nil, fmt.Errorf("transitions[%d]: missing target", i)
			}
			transitions = append(transitions, domain.Transition{
				ToStepID:  trimExtension(to),
				Condition: lt.Condition,
			})
		}
	}
	if meta.Next != "" {
		transitions = append(transitions, domain.Transition{ToStepID: trimExtension(meta.Next)})
	}
	return transitions, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// flattenMetadata converts a nested map into a flat map using dotted keys.
func flattenMetadata(src map[string]any) map[string]string {
	res := make(map[string]string)
	var visit func(prefix string, v any)

	visit = func(prefix string, v any) {
		switch val := v.(type) {
		case map[string]any:
			for k, sub := range val {
				visit(joinKey(prefix, k), sub)
			}
		case map[any]any: // YAML often decodes to this
			for k, sub := range val {
				visit(joinKey(prefix, fmt.Sprintf("%v", k)), sub)
			}
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, fmt.Sprintf("%v", item))
			}
			res[prefix] = strings.Join(parts, ",")
		default:
			if prefix != "" {
				res[prefix] = fmt.Sprintf("%v", val)
			}
		}
	}

	for k, v := range src {
		visit(k, v)
	}
	return res
}

func joinKey(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + "." + k
}
