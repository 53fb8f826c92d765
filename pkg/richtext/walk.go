package richtext

import "strings"

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if IsNil(n) || !fn(n) {
		return
	}
	if p, ok := n.(*Paragraph); ok {
		for _, child := range p.Content {
			Walk(child, fn)
		}
	}
}

// Mentions returns every mention in document order.
func Mentions(n Node) []*Mention {
	var out []*Mention
	Walk(n, func(n Node) bool {
		if m, ok := n.(*Mention); ok {
			out = append(out, m)
		}
		return true
	})
	return out
}

// PlainText renders the text a reader sees: mentions contribute their display
// text and sibling paragraphs are separated by a line break.
func PlainText(n Node) string {
	v := &plainText{}
	if IsNil(n) {
		return ""
	}
	n.Accept(v)
	return v.sb.String()
}

type plainText struct {
	sb    strings.Builder
	depth int
	seen  []bool
}

func (v *plainText) VisitParagraph(p *Paragraph) {
	if v.depth > 0 {
		if v.seen[v.depth-1] {
			v.sb.WriteByte('\n')
		}
		v.seen[v.depth-1] = true
	}
	v.depth++
	v.seen = append(v.seen, false)
	for _, child := range p.Content {
		if !IsNil(child) {
			child.Accept(v)
		}
	}
	v.seen = v.seen[:len(v.seen)-1]
	v.depth--
}

func (v *plainText) VisitText(t *Text)         { v.sb.WriteString(t.Text) }
func (v *plainText) VisitHardBreak(*HardBreak) { v.sb.WriteByte('\n') }
func (v *plainText) VisitMention(m *Mention)   { v.sb.WriteString(m.Attrs().DisplayText) }
