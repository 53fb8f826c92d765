package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/stepmention/internal/testutils"
	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFlow(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"trigger.md": "---\nid: trigger\ndisplay_name: Webhook\nnext: fetch\n---\n",
		"fetch.md":   "---\nid: fetch\ndisplay_name: HTTP request\nmetadata:\n  http:\n    method: GET\n---\n",
	})
	return dir
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys", `a.b[0]["c.d"]."e.f"`)
	require.NoError(t, err)
	assert.Equal(t, "\"a\"\n\"b\"\n\"0\"\n\"c.d\"\n\"\\\"e\"\n\"f\\\"\"\n", out)
}

func TestParseCommand_StepsFile(t *testing.T) {
	stepsFile := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(stepsFile, []byte(`
- name: trigger
  display_name: Webhook
  index: 1
`), 0644))

	out, err := execute(t, "parse", "--steps", stepsFile, "Hello {{trigger.name}}")
	require.NoError(t, err)

	doc, err := richtext.Unmarshal([]byte(out))
	require.NoError(t, err)
	mentions := richtext.Mentions(doc)
	require.Len(t, mentions, 1)
	assert.Equal(t, "1. Webhook name", mentions[0].Attrs().DisplayText)
	assert.Equal(t, "{{trigger.name}}", mentions[0].Attrs().ServerValue)
}

func TestFormatCommand(t *testing.T) {
	attrs, err := richtext.EncodeMentionAttrs(richtext.MentionAttrs{DisplayText: "1. Webhook", ServerValue: "{{trigger}}"})
	require.NoError(t, err)
	doc := `{"type":"paragraph","content":[{"type":"text","text":"Hi "},` +
		`{"type":"mention","attrs":{"id":"{{trigger}}","label":` + quoteJSON(attrs) + `}}]}`

	file := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(doc), 0644))

	out, err := execute(t, "format", file)
	require.NoError(t, err)
	assert.Equal(t, "Hi {{trigger}}\n", out)
}

func TestFormatCommand_SkipsUnknownNodes(t *testing.T) {
	doc := `{"type":"doc","content":[{"type":"text","text":"Hi"},{"type":"image","attrs":{"src":"a.png"}},` +
		`{"type":"hardBreak"},{"type":"mention","attrs":{"id":"{{x}}","label":42}},{"type":"text","text":"!"}]}`

	file := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(doc), 0644))

	out, err := execute(t, "format", file)
	require.NoError(t, err)
	assert.Equal(t, "Hi\n!\n", out)
}

func TestValidateAndGraphCommands(t *testing.T) {
	dir := writeFlow(t)

	out, err := execute(t, "validate", "--dir", dir, "--entry", "trigger")
	require.NoError(t, err)
	assert.Contains(t, out, "Flow is valid!")

	out, err = execute(t, "graph", "--dir", dir, "--entry", "trigger", "--text", "", "--metadata=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "2. HTTP request")
	assert.NotContains(t, out, "http.method")

	out, err = execute(t, "graph", "--dir", dir, "--entry", "trigger", "--text", "{{fetch.body}}", "--metadata")
	require.NoError(t, err)
	assert.Contains(t, out, "2. HTTP request<br/>http.method: GET")
	assert.Contains(t, out, "class fetch mentioned;")
}

func TestCatalogCommand(t *testing.T) {
	dir := writeFlow(t)

	out, err := execute(t, "catalog", "--dir", dir, "--entry", "trigger", "--watch=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "trigger")
	assert.Contains(t, lines[2], "fetch")
}

func TestSigningKeysCommand(t *testing.T) {
	out, err := execute(t, "signing-keys", "--delay", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "Fake key")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stepmention version")
}

func quoteJSON(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
