// Package genealogy holds the in-memory family tree: individuals and families
// linked to each other through GEDCOM cross references.
//
// # Lifecycle
//
// Nodes are created by the GEDCOM importer with their references held as plain
// identifier strings (FamcID, FamsIDs, HusbID, WifeID, ChildIDs). Once every
// node has been appended to the Graph, a single call to Graph.Resolve turns
// those strings into direct links (Famc, FamsList, Husb, Wife, ChildList).
// Resolution only reads identifier fields and can be repeated; each call
// rebuilds the links from scratch.
//
// # Node kinds
//
// Node is a closed sum type: the only implementations are *Individual and
// *Family. Callers switch on the concrete type when they need kind specific
// data:
//
//	switch n := node.(type) {
//	case *genealogy.Individual:
//	    // n.Forename, n.Surname, ...
//	case *genealogy.Family:
//	    // n.Husb, n.Wife, n.ChildList
//	}
//
// # Depth
//
// Depth is scratch state owned by a single traversal. Graph.ResetDepths clears
// it before a graph is traversed again.
package genealogy
