package richtext

// NodeType is the tag of a document node.
type NodeType string

const (
	TypeParagraph NodeType = "paragraph"
	TypeText      NodeType = "text"
	TypeHardBreak NodeType = "hardBreak"
	TypeMention   NodeType = "mention"
)

// Node is a document node. It is implemented only by the types of this package.
type Node interface {
	Type() NodeType
	Accept(v Visitor)
	sealed()
}

// IsNil reports whether n is nil, either as an interface or as a nil
// pointer of one of the node types. Operations on documents treat a nil node
// as an empty document.
func IsNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Paragraph:
		return v == nil
	case *Text:
		return v == nil
	case *HardBreak:
		return v == nil
	case *Mention:
		return v == nil
	}
	return false
}

// Visitor handles every node kind.
type Visitor interface {
	VisitParagraph(p *Paragraph)
	VisitText(t *Text)
	VisitHardBreak(b *HardBreak)
	VisitMention(m *Mention)
}

// Paragraph is the container node. Converted documents always have a
// Paragraph root.
type Paragraph struct {
	Content []Node
}

// NewParagraph wraps the given nodes.
func NewParagraph(content ...Node) *Paragraph {
	return &Paragraph{Content: content}
}

func (p *Paragraph) Type() NodeType   { return TypeParagraph }
func (p *Paragraph) Accept(v Visitor) { v.VisitParagraph(p) }
func (p *Paragraph) sealed()          {}

// Text is a literal text run.
type Text struct {
	Text string
}

// NewText creates a text node.
func NewText(s string) *Text {
	return &Text{Text: s}
}

func (t *Text) Type() NodeType   { return TypeText }
func (t *Text) Accept(v Visitor) { v.VisitText(t) }
func (t *Text) sealed()          {}

// HardBreak is a line break.
type HardBreak struct{}

// NewHardBreak creates a line break node.
func NewHardBreak() *HardBreak {
	return &HardBreak{}
}

func (b *HardBreak) Type() NodeType   { return TypeHardBreak }
func (b *HardBreak) Accept(v Visitor) { v.VisitHardBreak(b) }
func (b *HardBreak) sealed()          {}

// Mention is a rendered interpolation expression.
//
// ID and Label mirror the editor's mention attributes: ID holds the raw
// expression and Label holds the JSON encoded MentionAttrs. Use Attrs to read
// the payload.
type Mention struct {
	ID    string
	Label string
}

// NewMention encodes attrs into a mention node.
func NewMention(attrs MentionAttrs) (*Mention, error) {
	label, err := EncodeMentionAttrs(attrs)
	if err != nil {
		return nil, err
	}
	return &Mention{ID: attrs.ServerValue, Label: label}, nil
}

// Attrs decodes the label payload. A missing or malformed payload yields
// zero attributes.
func (m *Mention) Attrs() MentionAttrs {
	return DecodeMentionAttrs(m.Label)
}

func (m *Mention) Type() NodeType   { return TypeMention }
func (m *Mention) Accept(v Visitor) { v.VisitMention(m) }
func (m *Mention) sealed()          {}
