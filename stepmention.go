package stepmention

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/loam"
	"github.com/aretw0/stepmention/internal/logging"
	"github.com/aretw0/stepmention/internal/validator"
	loamAdapter "github.com/aretw0/stepmention/pkg/adapters/loam"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/mention"
	"github.com/aretw0/stepmention/pkg/ports"
	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/aretw0/stepmention/pkg/steps"
)

// DefaultEntryStep is the step a flow starts from unless WithEntryStep is used.
const DefaultEntryStep = "trigger"

// Engine is the high-level entry point of the library. It binds a step flow
// to the mention converter.
type Engine struct {
	loader    ports.StepLoader
	converter *mention.Converter
	logger    *slog.Logger
	entry     string
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom StepLoader, bypassing the default Loam initialization.
func WithLoader(l ports.StepLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithEntryStep configures the step the traversal starts from (default: "trigger").
func WithEntryStep(stepID string) Option {
	return func(e *Engine) {
		e.entry = stepID
	}
}

// New initializes a new Engine.
// By default, it reads step files from a Loam repository at the given path.
// If WithLoader option is provided, repoPath can be empty and Loam is skipped.
func New(repoPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{entry: DefaultEntryStep}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom loader is provided")
		}

		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}

		eng.Name = filepath.Base(absPath)

		// Strict mode keeps numbers as json.Number across serializers and
		// read-only mode keeps Loam from touching the step files.
		repo, err := loam.Init(absPath,
			loam.WithStrict(true),
			loam.WithReadOnly(true),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize loam: %w", err)
		}

		typedRepo := loam.NewTypedRepository[loamAdapter.StepMetadata](repo)
		eng.loader = loamAdapter.New(typedRepo)
	} else if repoPath != "" {
		eng.Name = filepath.Base(repoPath)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("flow", eng.Name)
	}

	eng.converter = mention.New(mention.WithLogger(eng.logger))
	return eng, nil
}

// Catalog walks the flow from the entry step and returns the metadata used
// to label mentions. It reads the loader on every call, so edits to the step
// files are picked up.
func (e *Engine) Catalog() (*steps.Catalog, error) {
	return steps.Collect(e.loader, e.entry, steps.WithLogger(e.logger))
}

// ToDocument converts interpolated text into a document labelled from the
// current flow.
func (e *Engine) ToDocument(text string) (*richtext.Paragraph, error) {
	catalog, err := e.Catalog()
	if err != nil {
		return nil, err
	}
	return e.converter.ToDocument(text, catalog)
}

// ToText converts a document back into interpolated text.
func (e *Engine) ToText(n richtext.Node) string {
	return mention.ToText(n)
}

// Validate reports dangling transitions and unreachable steps.
func (e *Engine) Validate() error {
	return validator.ValidateGraph(e.loader, e.entry)
}

// Inspect returns every step of the flow, for visualization or introspection tools.
func (e *Engine) Inspect() ([]domain.Step, error) {
	ids, err := e.loader.ListSteps()
	if err != nil {
		return nil, err
	}

	flow := make([]domain.Step, 0, len(ids))
	for _, id := range ids {
		raw, err := e.loader.GetStep(id)
		if err != nil {
			return nil, err
		}
		var step domain.Step
		if err := json.Unmarshal(raw, &step); err != nil {
			return nil, fmt.Errorf("invalid definition for step %s: %w", id, err)
		}
		if step.ID == "" {
			step.ID = id
		}
		flow = append(flow, step)
	}
	return flow, nil
}

// Watch returns a channel that receives the ID of each changed step.
// Returns error if the loader does not support watching.
func (e *Engine) Watch(ctx context.Context) (<-chan string, error) {
	if w, ok := e.loader.(ports.Watchable); ok {
		return w.Watch(ctx)
	}
	return nil, fmt.Errorf("current loader does not support watching")
}

// Loader returns the underlying StepLoader used by the engine.
func (e *Engine) Loader() ports.StepLoader {
	return e.loader
}

// EntryStep returns the step the traversal starts from.
func (e *Engine) EntryStep() string {
	return e.entry
}
