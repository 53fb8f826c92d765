package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// NewRenderer returns a function that renders a document using glamour.
// Mentions are rendered as bold inline code so they stand out from the text.
func NewRenderer(opts ...glamour.TermRendererOption) (func(richtext.Node) (string, error), error) {
	if len(opts) == 0 {
		// Automatically detect light/dark background
		opts = []glamour.TermRendererOption{glamour.WithAutoStyle()}
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(n richtext.Node) (string, error) {
		return r.Render(ToMarkdown(n))
	}, nil
}

// ToMarkdown converts a document to markdown: sibling paragraphs become
// markdown paragraphs, hard breaks become markdown line breaks and mentions
// become `display text` spans.
func ToMarkdown(n richtext.Node) string {
	w := &markdownWriter{}
	if richtext.IsNil(n) {
		return ""
	}
	n.Accept(w)
	return w.sb.String()
}

type markdownWriter struct {
	sb    strings.Builder
	depth int
	seen  []bool
}

func (w *markdownWriter) VisitParagraph(p *richtext.Paragraph) {
	if w.depth > 0 {
		if w.seen[w.depth-1] {
			w.sb.WriteString("\n\n")
		}
		w.seen[w.depth-1] = true
	}
	w.depth++
	w.seen = append(w.seen, false)
	for _, child := range p.Content {
		if !richtext.IsNil(child) {
			child.Accept(w)
		}
	}
	w.seen = w.seen[:len(w.seen)-1]
	w.depth--
}

func (w *markdownWriter) VisitText(t *richtext.Text) {
	w.sb.WriteString(escapeMarkdown(t.Text))
}

func (w *markdownWriter) VisitHardBreak(*richtext.HardBreak) {
	w.sb.WriteString("\\\n")
}

func (w *markdownWriter) VisitMention(m *richtext.Mention) {
	label := m.Attrs().DisplayText
	if label == "" {
		label = m.ID
	}
	w.sb.WriteString("**`" + strings.ReplaceAll(label, "`", "'") + "`**")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Highlight renders the document as plain terminal text with mentions
// colored, for output that should not be reflowed.
func Highlight(n richtext.Node, profile termenv.Profile) string {
	w := &highlightWriter{profile: profile}
	if richtext.IsNil(n) {
		return ""
	}
	n.Accept(w)
	return w.sb.String()
}

type highlightWriter struct {
	sb      strings.Builder
	profile termenv.Profile
	nested  bool
	started bool
}

func (w *highlightWriter) VisitParagraph(p *richtext.Paragraph) {
	if w.nested && w.started {
		w.sb.WriteByte('\n')
	}
	w.started = true
	child := &highlightWriter{profile: w.profile, nested: true}
	for _, n := range p.Content {
		if !richtext.IsNil(n) {
			n.Accept(child)
		}
	}
	w.sb.WriteString(child.sb.String())
}

func (w *highlightWriter) VisitText(t *richtext.Text)         { w.sb.WriteString(t.Text) }
func (w *highlightWriter) VisitHardBreak(*richtext.HardBreak) { w.sb.WriteByte('\n') }

func (w *highlightWriter) VisitMention(m *richtext.Mention) {
	label := m.Attrs().DisplayText
	if label == "" {
		label = m.ID
	}
	chip := w.profile.String(" " + label + " ").
		Foreground(w.profile.Color("#1e1b4b")).
		Background(w.profile.Color("#a78bfa")).
		Bold()
	w.sb.WriteString(chip.String())
}
