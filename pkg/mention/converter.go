package mention

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/stepmention/internal/logging"
	"github.com/aretw0/stepmention/pkg/domain"
	"github.com/aretw0/stepmention/pkg/path"
	"github.com/aretw0/stepmention/pkg/richtext"
)

// CustomCodeLabel replaces the step name of expressions that do not reference
// a known step.
const CustomCodeLabel = "Custom Code"

var interpolation = regexp.MustCompile(`\{\{.*?\}\}`)

// Catalog resolves step names to their metadata.
type Catalog interface {
	Lookup(name string) (domain.StepMeta, bool)
}

// StepTable is a Catalog backed by a map keyed by step name.
type StepTable map[string]domain.StepMeta

// Lookup implements Catalog.
func (t StepTable) Lookup(name string) (domain.StepMeta, bool) {
	m, ok := t[name]
	return m, ok
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used to report failed conversions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// Converter turns interpolated text into documents. It holds no mutable state
// and is safe for concurrent use.
type Converter struct {
	logger *slog.Logger
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

// ToDocument converts text into a Paragraph. Each {{...}} span becomes a
// Mention labelled from catalog (which may be nil), each line break a
// HardBreak, and everything else Text.
//
// Failures are not recovered: they are logged with the input text and then
// returned, or re-panicked if they were panics.
func (c *Converter) ToDocument(text string, catalog Catalog) (*richtext.Paragraph, error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Failed to convert text to document", "text", text, "error", r)
			panic(r)
		}
	}()

	var content []richtext.Node
	for _, fragment := range split(text) {
		nodes, err := c.convertFragment(fragment, catalog)
		if err != nil {
			c.logger.Error("Failed to convert text to document", "text", text, "error", err)
			return nil, err
		}
		content = append(content, nodes...)
	}
	return richtext.NewParagraph(content...), nil
}

func (c *Converter) convertFragment(fragment string, catalog Catalog) ([]richtext.Node, error) {
	if isInterpolation(fragment) {
		m, err := richtext.NewMention(Attrs(fragment, catalog))
		if err != nil {
			return nil, fmt.Errorf("mention %s: %w", fragment, err)
		}
		return []richtext.Node{m}, nil
	}
	if strings.Contains(fragment, "\n") {
		return splitLines(fragment), nil
	}
	return []richtext.Node{richtext.NewText(fragment)}, nil
}

// Attrs computes the mention attributes of a {{...}} expression.
//
// The display text is the step's display name (CustomCodeLabel when the step
// is unknown) followed by the remaining path keys, space separated, and
// prefixed with "<index>. " when the step has a traversal index.
func Attrs(expression string, catalog Catalog) richtext.MentionAttrs {
	inner := strings.TrimSuffix(strings.TrimPrefix(expression, "{{"), "}}")
	keys := path.Keys(inner)

	var stepName string
	var rest []string
	if len(keys) > 0 {
		stepName, rest = keys[0], keys[1:]
	}

	var (
		meta  domain.StepMeta
		found bool
	)
	if catalog != nil {
		meta, found = catalog.Lookup(stepName)
	}

	label := CustomCodeLabel
	if found && meta.DisplayName != "" {
		label = meta.DisplayName
	}

	var prefix string
	if found && meta.HasIndex() {
		prefix = strconv.Itoa(meta.IndexInTraversal) + ". "
	}

	attrs := richtext.MentionAttrs{
		DisplayText: prefix + strings.Join(append([]string{label}, rest...), " "),
		ServerValue: expression,
	}
	if found {
		attrs.LogoURL = meta.LogoURL
	}
	return attrs
}

// split cuts text around {{...}} spans, keeping the spans and dropping empty
// fragments.
func split(text string) []string {
	var out []string
	last := 0
	for _, loc := range interpolation.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			out = append(out, text[last:loc[0]])
		}
		out = append(out, text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}

func isInterpolation(fragment string) bool {
	return len(fragment) > 4 &&
		strings.HasPrefix(fragment, "{{") &&
		strings.HasSuffix(fragment, "}}")
}

func splitLines(fragment string) []richtext.Node {
	lines := strings.Split(fragment, "\n")
	nodes := make([]richtext.Node, 0, 2*len(lines))
	for i, line := range lines {
		if line != "" {
			nodes = append(nodes, richtext.NewText(line))
		}
		if i < len(lines)-1 {
			nodes = append(nodes, richtext.NewHardBreak())
		}
	}
	return nodes
}
