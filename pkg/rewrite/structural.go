package rewrite

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/svgtint/pkg/domain"
)

// StructuralRewriter rebuilds the document from an XML token stream instead
// of editing it as text. Compared to PatternRewriter it matches tag names
// exactly, replaces only the first defs element while leaving the rest of
// the tree untouched, and rejects documents that do not parse as XML.
//
// Serialization is normalized on output: attribute quoting, entity escaping
// and foreign namespace prefixes follow encoding/xml conventions rather than
// the input's original spelling.
type StructuralRewriter struct{}

// NewStructural returns a ready-to-use structural rewriter.
func NewStructural() *StructuralRewriter { return &StructuralRewriter{} }

// Mode reports the rewriter variant for events and metrics.
func (*StructuralRewriter) Mode() string { return "structural" }

// Rewrite returns a new document with the gradient definition embedded and
// the target shape's fill bound to it. It errors on an invalid spec or on a
// document that fails to parse as XML.
func (*StructuralRewriter) Rewrite(spec domain.GradientSpec, doc string) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	hasDefs, err := containsElement(doc, "defs")
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	out, err := rebuild(spec, doc, hasDefs)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}
	return out, nil
}

// containsElement reports whether the document has at least one element with
// the given local name.
func containsElement(doc, name string) (bool, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == name {
			return true, nil
		}
	}
}

// rebuild walks the token stream and re-serializes it, applying three edits:
// replace the first defs subtree with the generated block (or insert the
// block right after the root opening tag when no defs exists), and set the
// fill attribute on the first element whose name equals the target shape.
func rebuild(spec domain.GradientSpec, doc string, hasDefs bool) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(doc))

	var b strings.Builder
	block := defsBlock(spec)

	depth := 0
	defsReplaced := false
	fillBound := false

	// One token of lookahead so empty elements can be collapsed back to the
	// self-closing form the input most likely used.
	var pending *xml.StartElement

	flushPending := func(selfClose bool) {
		if pending == nil {
			return
		}
		writeStartTag(&b, *pending, selfClose)
		if !selfClose && depth == 1 && !hasDefs && !defsReplaced {
			// Root opening tag just closed: this is where the generated
			// definitions go when the document had none.
			b.WriteString("\n" + block)
			defsReplaced = true
		}
		pending = nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			flushPending(false)
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			se := t.Copy()

			if se.Name.Local == "defs" && !defsReplaced {
				flushPending(false)
				b.WriteString(block)
				if err := skipSubtree(dec); err != nil {
					return "", err
				}
				defsReplaced = true
				continue
			}

			if se.Name.Local == string(spec.TargetShape) && !fillBound {
				se.Attr = setFillAttr(se.Attr)
				fillBound = true
			}

			flushPending(false)
			depth++
			pending = &se

		case xml.EndElement:
			if pending != nil {
				// Empty element: collapse to self-closing, except for the
				// root, which must keep the generated defs inside it.
				if depth == 1 && !hasDefs && !defsReplaced {
					flushPending(false)
					b.WriteString("\n</" + t.Name.Local + ">")
				} else {
					flushPending(true)
				}
				depth--
				continue
			}
			depth--
			b.WriteString("</" + t.Name.Local + ">")

		case xml.CharData:
			flushPending(false)
			// xml.EscapeText would also entity-encode newlines, destroying
			// the document's formatting; escape only the markup characters.
			b.WriteString(textEscaper.Replace(string(t)))

		case xml.Comment:
			flushPending(false)
			b.WriteString("<!--" + string(t) + "-->")

		case xml.ProcInst:
			flushPending(false)
			b.WriteString("<?" + t.Target + " " + string(t.Inst) + "?>")

		case xml.Directive:
			flushPending(false)
			b.WriteString("<!" + string(t) + ">")
		}
	}
}

// skipSubtree consumes tokens until the element the decoder is currently
// inside has been fully closed.
func skipSubtree(dec *xml.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// setFillAttr replaces the value of an existing fill attribute, or appends
// one, binding the element to the generated gradient.
func setFillAttr(attrs []xml.Attr) []xml.Attr {
	for i, a := range attrs {
		if a.Name.Local == "fill" && a.Name.Space == "" {
			attrs[i].Value = fillRef()
			return attrs
		}
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: "fill"}, Value: fillRef()})
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// writeStartTag serializes a start element. Namespace prefixes other than
// xmlns declarations are not reconstructed; this is part of the documented
// normalization.
func writeStartTag(b *strings.Builder, se xml.StartElement, selfClose bool) {
	b.WriteString("<" + se.Name.Local)
	for _, a := range se.Attr {
		b.WriteString(" " + attrName(a.Name) + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	if selfClose {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
}

func attrName(n xml.Name) string {
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return n.Local
}
