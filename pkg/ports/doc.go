/*
Package ports defines the driven ports (interfaces) of stepmention.

# Key Interfaces

  - StepLoader: retrieves step definitions (e.g., from Loam or Memory).
  - Watchable: optional; loaders that can signal changes to step definitions.
*/
package ports
