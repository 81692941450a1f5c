/*
Package svgtint is a deterministic engine that turns a free-text styling
instruction into a gradient definition inside an SVG document.

It implements a two-stage pipeline with an explicit intermediate value: the
extractor parses the instruction into a GradientSpec, and a rewriter embeds
that spec into the document and binds the target shape's fill to it. Both
stages are pure functions over their inputs — same instruction and same
document always yield the same output document.

# Concept

svgtint treats instruction parsing as fixed keyword and pattern matching,
not natural-language understanding. Anything the instruction does not spell
out degrades to a documented default, so extraction never fails. Document
editing defaults to literal text-pattern rewriting for compatibility with
the pipeline's historical behavior; a stricter XML-based rewriter is
available as an opt-in variant.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/svgtint"
	)

	func main() {
		eng := svgtint.New()

		doc := `<svg><rect fill="red"/></svg>`
		out, spec, err := eng.Apply(context.Background(),
			"vertical gradient from #ff0000 to #0000ff on the rect", doc)
		if err != nil {
			panic(err)
		}
		fmt.Println(spec.Kind) // linear
		fmt.Println(out)       // document with <defs> and fill="url(#grad1)"
	}

Both stages are also exposed separately via Engine.Extract and
Engine.Rewrite, or dependency-free through the pkg/extract and pkg/rewrite
packages.
*/
package svgtint
