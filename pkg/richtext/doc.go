/*
Package richtext models the rich-text documents exchanged with the editor.

A document is a tree of four node kinds:

  - Paragraph: container for inline nodes (and, at the root, other paragraphs).
  - Text: a run of literal text.
  - HardBreak: a line break inside a paragraph.
  - Mention: a rendered interpolation expression carrying MentionAttrs.

Node is sealed; code that needs to handle every kind implements Visitor, so
adding a kind breaks the build of every visitor instead of being silently
ignored.

Documents are encoded in the editor's JSON shape, where a mention stores its
attributes as a JSON string in attrs.label:

	{"type":"paragraph","content":[
	  {"type":"text","text":"Hello "},
	  {"type":"mention","attrs":{"id":"{{step_1.name}}","label":"{\"displayText\":\"1. Start name\",\"serverValue\":\"{{step_1.name}}\"}"}}
	]}
*/
package richtext
