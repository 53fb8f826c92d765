/*
Package mention converts between interpolated text and rich-text documents.

Text such as

	Hello {{trigger.body.name}},
	your order {{fetch.items[0].id}} shipped.

becomes a Paragraph whose {{...}} spans are Mention nodes labelled for humans
("1. Webhook body name"), and whose line breaks are HardBreak nodes. ToText
reverses the conversion. Mentions are written back from their stored
expression, never from their label, so

	ToText(c.ToDocument(text, catalog)) == text

holds for any catalog.
*/
package mention
