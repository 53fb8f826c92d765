package richtext_test

import (
	"testing"

	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc(t *testing.T) *richtext.Paragraph {
	t.Helper()
	m, err := richtext.NewMention(richtext.MentionAttrs{
		LogoURL:     "https://cdn.example.com/webhook.svg",
		DisplayText: "1. Webhook body",
		ServerValue: "{{trigger.body}}",
	})
	require.NoError(t, err)
	return richtext.NewParagraph(
		richtext.NewText("Got "),
		m,
		richtext.NewHardBreak(),
		richtext.NewText("done"),
	)
}

func TestMarshal_EditorShape(t *testing.T) {
	b, err := richtext.Marshal(sampleDoc(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "paragraph",
		"content": [
			{"type": "text", "text": "Got "},
			{"type": "mention", "attrs": {
				"id": "{{trigger.body}}",
				"label": "{\"logoUrl\":\"https://cdn.example.com/webhook.svg\",\"displayText\":\"1. Webhook body\",\"serverValue\":\"{{trigger.body}}\"}"
			}},
			{"type": "hardBreak"},
			{"type": "text", "text": "done"}
		]
	}`, string(b))
}

func TestUnmarshal_RestoresTree(t *testing.T) {
	doc := sampleDoc(t)
	b, err := richtext.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	n, err := richtext.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, doc, n)
}

func TestUnmarshal_DocRoot(t *testing.T) {
	n, err := richtext.Unmarshal([]byte(`{"type":"doc","content":[{"type":"paragraph"}]}`))
	require.NoError(t, err)

	p, ok := n.(*richtext.Paragraph)
	require.True(t, ok)
	require.Len(t, p.Content, 1)
	assert.Equal(t, richtext.TypeParagraph, p.Content[0].Type())
}

func TestUnmarshal_UnknownRootIsRejected(t *testing.T) {
	_, err := richtext.Unmarshal([]byte(`{"type":"image"}`))
	assert.ErrorIs(t, err, richtext.ErrUnknownNodeType)
	assert.Contains(t, err.Error(), "$")
}

func TestUnmarshal_SkipsUnknownChildren(t *testing.T) {
	n, err := richtext.Unmarshal([]byte(`{"type":"paragraph","content":[
		{"type":"text","text":"a"},
		{"type":"image","attrs":{"src":"x.png"}},
		null,
		{"type":"doc"},
		{"type":"paragraph","content":[{"type":"table"},{"type":"hardBreak"}]},
		{"type":"text","text":"b"}
	]}`))
	require.NoError(t, err)

	p := n.(*richtext.Paragraph)
	require.Len(t, p.Content, 3)
	assert.Equal(t, "a", p.Content[0].(*richtext.Text).Text)
	inner := p.Content[1].(*richtext.Paragraph)
	require.Len(t, inner.Content, 1)
	assert.Equal(t, richtext.TypeHardBreak, inner.Content[0].Type())
	assert.Equal(t, "b", p.Content[2].(*richtext.Text).Text)
}

func TestUnmarshal_InvalidJSON(t *testing.T) {
	_, err := richtext.Unmarshal([]byte(`{`))
	assert.Error(t, err)
}

func TestUnmarshal_NonStringMentionAttrs(t *testing.T) {
	n, err := richtext.Unmarshal([]byte(`{"type":"mention","attrs":{"id":7,"label":{"displayText":"x"}}}`))
	require.NoError(t, err)
	m := n.(*richtext.Mention)
	assert.Empty(t, m.ID)
	assert.Empty(t, m.Label)
	assert.Equal(t, richtext.MentionAttrs{}, m.Attrs())
}

func TestUnmarshal_MentionWithoutAttrs(t *testing.T) {
	n, err := richtext.Unmarshal([]byte(`{"type":"mention"}`))
	require.NoError(t, err)
	m := n.(*richtext.Mention)
	assert.Equal(t, richtext.MentionAttrs{}, m.Attrs())
}

func TestDecodeMentionAttrs_Permissive(t *testing.T) {
	assert.Equal(t, richtext.MentionAttrs{}, richtext.DecodeMentionAttrs(""))
	assert.Equal(t, richtext.MentionAttrs{}, richtext.DecodeMentionAttrs("not json"))
	assert.Equal(t, richtext.MentionAttrs{}, richtext.DecodeMentionAttrs(`{"serverValue":42}`))
	assert.Equal(t,
		richtext.MentionAttrs{ServerValue: "{{a}}"},
		richtext.DecodeMentionAttrs(`{"serverValue":"{{a}}","extra":true}`),
	)
}
