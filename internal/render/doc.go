// Package render turns DOT text into SVG or PNG by piping it through the
// graphviz dot command, and can make the resulting SVG self-contained by
// inlining the images it links to.
package render
