/*
Package domain contains the step graph model.

A flow is a graph of Steps joined by Transitions. Interpolation expressions
reference steps by ID, and the converter labels them from StepMeta, the
read-only projection of a step enriched with its traversal index.

# Key Entities

  - Step: a node of the flow (ID, display name, logo, outgoing transitions).
  - Transition: an edge between two steps.
  - StepMeta: what the mention converter needs to know about a step.
*/
package domain
