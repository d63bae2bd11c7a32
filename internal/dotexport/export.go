package dotexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

// Export writes nodes as a DOT digraph to w. nodes is the output of a
// traversal; relations to nodes outside of it are not drawn.
func Export(w io.Writer, nodes []genealogy.Node, opts Options) error {
	var b strings.Builder
	b.WriteString("// Generated by ged2dot.\n")
	b.WriteString("digraph\n{\n")
	b.WriteString("splines = ortho;\n\n")

	writeIndividuals(&b, nodes, opts)
	b.WriteString("\n")
	writeFamilies(&b, nodes, opts)
	b.WriteString("\n")
	writeEdges(&b, nodes)

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeIndividuals(b *strings.Builder, nodes []genealogy.Node, opts Options) {
	for _, n := range nodes {
		ind, ok := n.(*genealogy.Individual)
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%s [shape=box, label=<%s>, color=%s];\n",
			quoteID(ind.ID()), opts.individualLabel(ind), ind.Color())
	}
}

func writeFamilies(b *strings.Builder, nodes []genealogy.Node, opts Options) {
	for _, n := range nodes {
		fam, ok := n.(*genealogy.Family)
		if !ok {
			continue
		}
		// ordering=out keeps children left to right in input order.
		fmt.Fprintf(b, "%s [shape=circle, margin=\"0,0\", label=<%s>, ordering=out];\n",
			quoteID(fam.ID()), opts.familyLabel(fam))
	}
}

func writeEdges(b *strings.Builder, nodes []genealogy.Node) {
	included := make(map[genealogy.Node]struct{}, len(nodes))
	for _, n := range nodes {
		included[n] = struct{}{}
	}
	has := func(n genealogy.Node) bool {
		_, ok := included[n]
		return ok
	}

	for _, n := range nodes {
		fam, ok := n.(*genealogy.Family)
		if !ok {
			continue
		}
		if fam.Wife != nil && has(fam.Wife) {
			writeEdge(b, fam.Wife.ID(), fam.ID())
		}
		if fam.Husb != nil && has(fam.Husb) {
			writeEdge(b, fam.Husb.ID(), fam.ID())
		}
		for _, child := range fam.ChildList {
			if has(child) {
				writeEdge(b, fam.ID(), child.ID())
			}
		}
	}
}

func writeEdge(b *strings.Builder, from, to string) {
	fmt.Fprintf(b, "%s -> %s [dir=none];\n", quoteID(from), quoteID(to))
}

// quoteID returns id bare when DOT accepts it as an identifier or a numeral,
// and double-quoted otherwise.
func quoteID(id string) string {
	if id == "" {
		return `""`
	}
	numeral, identifier := true, true
	for i, c := range id {
		isDigit := c >= '0' && c <= '9'
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		if !isDigit {
			numeral = false
		}
		if !(isLetter || (isDigit && i > 0)) {
			identifier = false
		}
	}
	if numeral || identifier {
		return id
	}
	return fmt.Sprintf("%q", id)
}
