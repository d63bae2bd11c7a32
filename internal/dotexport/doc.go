// Package dotexport renders an extracted family tree neighbourhood as a
// Graphviz DOT document.
//
// Individuals become boxes with an HTML-like label holding a portrait, the
// name and the life span. Families become small circles labelled with the
// marriage year or a marriage icon. Spouses are joined to their family and
// families to their children with undirected edges; an edge is only written
// when both of its ends are part of the exported node list.
package dotexport
