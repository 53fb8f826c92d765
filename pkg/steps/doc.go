/*
Package steps derives mention metadata from a step flow.

Collect walks the flow depth-first from its entry step and numbers each step in
the order it is first reached, starting at 1. The resulting Catalog is what the
mention converter consults to label {{step.path}} expressions.
*/
package steps
