package mention

import (
	"strings"

	"github.com/aretw0/stepmention/pkg/richtext"
)

// ToText converts a document back into interpolated text.
//
// Children of a Paragraph are written in order: text verbatim, hard breaks as
// "\n", mentions as their stored expression, and nested paragraphs separated
// from a previous sibling paragraph by "\n". A mention whose payload cannot be
// decoded contributes nothing. A non-paragraph root is written as a single
// child.
func ToText(n richtext.Node) string {
	var sb strings.Builder
	if richtext.IsNil(n) {
		return ""
	}
	if p, ok := n.(*richtext.Paragraph); ok {
		writeContent(&sb, p.Content)
	} else {
		writeContent(&sb, []richtext.Node{n})
	}
	return sb.String()
}

func writeContent(sb *strings.Builder, nodes []richtext.Node) {
	w := &textWriter{sb: sb, firstParagraph: true}
	for _, n := range nodes {
		if !richtext.IsNil(n) {
			n.Accept(w)
		}
	}
}

// textWriter tracks paragraph separation for one level of siblings.
type textWriter struct {
	sb             *strings.Builder
	firstParagraph bool
}

func (w *textWriter) VisitParagraph(p *richtext.Paragraph) {
	if !w.firstParagraph {
		w.sb.WriteByte('\n')
	}
	w.firstParagraph = false
	writeContent(w.sb, p.Content)
}

func (w *textWriter) VisitText(t *richtext.Text) {
	w.sb.WriteString(t.Text)
}

func (w *textWriter) VisitHardBreak(*richtext.HardBreak) {
	w.sb.WriteByte('\n')
}

func (w *textWriter) VisitMention(m *richtext.Mention) {
	if m.Label == "" {
		return
	}
	w.sb.WriteString(m.Attrs().ServerValue)
}
