package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownNodeType is returned when the root of a decoded document is not
// one of the four document node types. Unknown children are skipped.
var ErrUnknownNodeType = errors.New("unknown node type")

// typeDoc is the root wrapper some editors emit around paragraphs. It is
// accepted on decode only and becomes a Paragraph.
const typeDoc = "doc"

type wireNode struct {
	Type    string      `json:"type"`
	Text    string      `json:"text,omitempty"`
	Attrs   *wireAttrs  `json:"attrs,omitempty"`
	Content []*wireNode `json:"content,omitempty"`
}

type wireAttrs struct {
	ID    lenientString `json:"id"`
	Label lenientString `json:"label"`
}

// lenientString decodes JSON strings and reads any other value as "".
type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = lenientString(v)
	return nil
}

// Marshal encodes a node tree in the editor JSON shape. A nil node is
// encoded as an empty paragraph.
func Marshal(n Node) ([]byte, error) {
	if IsNil(n) {
		n = &Paragraph{}
	}
	w := toWire(n)
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s node: %w", n.Type(), err)
	}
	return b, nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	if IsNil(n) {
		n = &Paragraph{}
	}
	b, err := json.MarshalIndent(toWire(n), prefix, indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s node: %w", n.Type(), err)
	}
	return b, nil
}

// Unmarshal decodes a node tree. A root "doc" wrapper is read as a Paragraph.
// Decoding is permissive below the root: null children and children of an
// unknown type (images, tables, ...) are dropped, and non-string mention
// attributes read as empty.
func Unmarshal(data []byte) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid document json: %w", err)
	}
	if w.Type == typeDoc {
		w.Type = string(TypeParagraph)
	}
	return fromWire(&w, "$")
}

func toWire(n Node) *wireNode {
	b := &wireBuilder{}
	n.Accept(b)
	return b.out
}

type wireBuilder struct {
	out *wireNode
}

func (b *wireBuilder) VisitParagraph(p *Paragraph) {
	w := &wireNode{Type: string(TypeParagraph)}
	for _, child := range p.Content {
		if IsNil(child) {
			continue
		}
		w.Content = append(w.Content, toWire(child))
	}
	b.out = w
}

func (b *wireBuilder) VisitText(t *Text) {
	b.out = &wireNode{Type: string(TypeText), Text: t.Text}
}

func (b *wireBuilder) VisitHardBreak(*HardBreak) {
	b.out = &wireNode{Type: string(TypeHardBreak)}
}

func (b *wireBuilder) VisitMention(m *Mention) {
	b.out = &wireNode{Type: string(TypeMention), Attrs: &wireAttrs{ID: lenientString(m.ID), Label: lenientString(m.Label)}}
}

func fromWire(w *wireNode, at string) (Node, error) {
	if w == nil {
		return nil, fmt.Errorf("%s: null node", at)
	}
	switch NodeType(w.Type) {
	case TypeParagraph:
		p := &Paragraph{Content: make([]Node, 0, len(w.Content))}
		for i, c := range w.Content {
			if c == nil || !known(c.Type) {
				continue
			}
			child, err := fromWire(c, fmt.Sprintf("%s.content[%d]", at, i))
			if err != nil {
				return nil, err
			}
			p.Content = append(p.Content, child)
		}
		return p, nil
	case TypeText:
		return &Text{Text: w.Text}, nil
	case TypeHardBreak:
		return &HardBreak{}, nil
	case TypeMention:
		m := &Mention{}
		if w.Attrs != nil {
			m.ID = string(w.Attrs.ID)
			m.Label = string(w.Attrs.Label)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%s: %w %q", at, ErrUnknownNodeType, w.Type)
	}
}

func known(t string) bool {
	switch NodeType(t) {
	case TypeParagraph, TypeText, TypeHardBreak, TypeMention:
		return true
	}
	return false
}
