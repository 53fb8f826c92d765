/*
Package dsl provides a fluent builder for step flows.

It is the programmatic alternative to a Loam repository of step files and is
mostly used by tests and embedders that already hold their flow in memory.

	b := dsl.New()
	b.Add("trigger").Named("Every hour").Go("fetch")
	b.Add("fetch").Named("HTTP request").Logo("https://cdn.example.com/http.svg").
		Branch("status == 200", "store").
		Branch("status != 200", "alert")
	b.Add("store").Named("Insert row")
	b.Add("alert").Named("Send email")

	loader, err := b.Build() // ports.StepLoader
*/
package dsl
