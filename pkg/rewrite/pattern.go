package rewrite

import (
	"regexp"
	"strings"

	"github.com/aretw0/svgtint/pkg/domain"
)

// defsContainer matches a full <defs>...</defs> container, non-greedily and
// across line breaks.
var defsContainer = regexp.MustCompile(`(?s)<defs>.*?</defs>`)

// PatternRewriter edits documents with literal text-pattern search/replace.
// The zero value is ready to use.
//
// Known, intentional quirks carried for compatibility:
//   - Tag names are matched by prefix, so a target of "rect" would also match
//     an element named "rectangle".
//   - Replacing an existing defs container discards any non-gradient
//     definitions it held.
//   - Only the first defs container and the first matching shape are touched.
type PatternRewriter struct{}

// NewPattern returns a ready-to-use pattern rewriter.
func NewPattern() *PatternRewriter { return &PatternRewriter{} }

// Mode reports the rewriter variant for events and metrics.
func (*PatternRewriter) Mode() string { return "pattern" }

// Rewrite returns a new document with the gradient definition embedded and
// the target shape's fill bound to it. The only error condition is a spec
// whose colors fail validation; malformed documents never error — the
// gradient block is appended when no insertion point exists, and the fill
// binding is skipped when no shape matches.
func (*PatternRewriter) Rewrite(spec domain.GradientSpec, doc string) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	block := defsBlock(spec)

	// Insert or replace the definitions container. An existing container is
	// replaced wholesale; otherwise the block goes on its own line right
	// after the close of the document's root opening tag.
	if strings.Contains(doc, "<defs>") {
		doc = replaceFirst(defsContainer, doc, block)
	} else if i := strings.Index(doc, ">"); i >= 0 {
		doc = doc[:i+1] + "\n" + block + doc[i+1:]
	} else {
		doc = doc + "\n" + block
	}

	return bindFill(spec.TargetShape, doc), nil
}

// bindFill rebinds the first existing fill attribute on the target tag, or
// injects a fresh one before the closing bracket of the first matching tag.
// The tag pattern has no trailing boundary: prefix matching is part of the
// compatibility contract.
func bindFill(shape domain.Shape, doc string) string {
	ref := `fill="` + fillRef() + `"`

	rebind := regexp.MustCompile(`(<` + string(shape) + `[^>]*\s)fill="[^"]*"([^>]*>)`)
	if loc := rebind.FindStringSubmatchIndex(doc); loc != nil {
		// Keep both captured groups, swap only the fill attribute between them.
		return doc[:loc[3]] + ref + doc[loc[4]:]
	}

	inject := regexp.MustCompile(`(<` + string(shape) + `[^>]*?)(/?>)`)
	if loc := inject.FindStringSubmatchIndex(doc); loc != nil {
		return doc[:loc[3]] + " " + ref + doc[loc[4]:]
	}

	// No matching shape at all: the defs block stays, nothing references it.
	return doc
}

// replaceFirst replaces only the first match of re in s.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
