/*
Package domain contains the core domain models for the svgtint engine.

It defines the GradientSpec value object produced by the extractor and
consumed by the rewriters, plus the lifecycle events used for observability.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - GradientSpec: A fully-defaulted description of a two-stop color gradient
    and the shape whose fill it binds to.
  - LifecycleHooks: Callbacks fired by the engine around extraction and
    rewriting, for logging and metrics.
*/
package domain
