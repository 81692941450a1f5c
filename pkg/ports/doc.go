/*
Package ports defines the driven ports (interfaces) for the svgtint engine.

These interfaces decouple the core pipeline from external implementations,
allowing the engine to work with alternative extractors, rewriter variants,
and document storage backends.

# Key Interfaces

  - Extractor: Parses an instruction into a GradientSpec.
  - Rewriter: Embeds a gradient into a document per a GradientSpec.
  - DocumentStore: Persists and loads document bodies by ID.
*/
package ports
