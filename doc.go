/*
Package stepmention converts interpolated text into rich-text documents with
human-readable step mentions, and back.

Flows reference the output of earlier steps with interpolation expressions:

	Hello {{trigger.body.name}}, your order {{fetch.items[0].id}} shipped.

An editor shows those expressions as mention chips ("1. Webhook body name")
while the stored text keeps the raw expressions. The Engine loads the flow
(by default a Loam repository of step files), numbers the steps in
depth-first order from the entry step, and labels mentions from that
numbering.

# Usage

	eng, err := stepmention.New("./my-flow")
	if err != nil {
		log.Fatal(err)
	}

	doc, err := eng.ToDocument("Hi {{trigger.body.name}}")
	if err != nil {
		log.Fatal(err)
	}

	// ... hand doc to the editor (richtext.Marshal), receive it back ...

	text := eng.ToText(doc) // "Hi {{trigger.body.name}}"

The building blocks are usable on their own: package path tokenizes
expressions, package richtext models documents, package mention converts,
and package steps numbers flows.
*/
package stepmention
