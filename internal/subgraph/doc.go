// Package subgraph selects the part of a family tree that gets drawn: a
// breadth-first neighbourhood of a root family, bounded by a number of
// generations and optionally restricted to descendants.
package subgraph
