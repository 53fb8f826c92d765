package tui

import (
	"testing"

	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *richtext.Paragraph {
	t.Helper()
	m, err := richtext.NewMention(richtext.MentionAttrs{
		DisplayText: "1. Webhook body",
		ServerValue: "{{trigger.body}}",
	})
	require.NoError(t, err)
	return richtext.NewParagraph(
		richtext.NewParagraph(richtext.NewText("Got *"), m, richtext.NewHardBreak(), richtext.NewText("ok")),
		richtext.NewParagraph(richtext.NewText("bye")),
	)
}

func TestToMarkdown(t *testing.T) {
	assert.Equal(t, "Got \\***`1. Webhook body`**\\\nok\n\nbye", ToMarkdown(sample(t)))
}

func TestToMarkdown_MentionFallsBackToID(t *testing.T) {
	doc := richtext.NewParagraph(&richtext.Mention{ID: "{{x}}"})
	assert.Equal(t, "**`{{x}}`**", ToMarkdown(doc))
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(glamour.WithStandardStyle("notty"), glamour.WithWordWrap(0))
	require.NoError(t, err)

	out, err := render(sample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "1. Webhook body")
	assert.Contains(t, out, "bye")
}

func TestHighlight_Ascii(t *testing.T) {
	assert.Equal(t, "Got * 1. Webhook body \nok\nbye", Highlight(sample(t), termenv.Ascii))
}

func TestNilDocument(t *testing.T) {
	var p *richtext.Paragraph
	assert.Empty(t, ToMarkdown(nil))
	assert.Empty(t, ToMarkdown(p))
	assert.Empty(t, Highlight(nil, termenv.Ascii))
	assert.Equal(t, "a", Highlight(richtext.NewParagraph(p, richtext.NewText("a")), termenv.Ascii))
}
