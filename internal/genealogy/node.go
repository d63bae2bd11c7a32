package genealogy

import "fmt"

// Direction filters the neighbours of a node during traversal.
type Direction string

const (
	// DirectionBoth follows links to parents and to descendants.
	DirectionBoth Direction = "both"
	// DirectionChild suppresses the link from an individual to the family it
	// was born into, so traversal only walks down the tree.
	DirectionChild Direction = "child"
)

// ParseDirection validates a direction name. An empty string means DirectionBoth.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionBoth:
		return DirectionBoth, nil
	case DirectionChild:
		return DirectionChild, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be %q or %q", s, DirectionBoth, DirectionChild)
	}
}

// Node is a vertex of the family tree. It is implemented by *Individual and
// *Family only.
type Node interface {
	// ID returns the GEDCOM identifier without the surrounding '@' characters.
	ID() string
	// Depth returns the distance from the root set by the last traversal.
	Depth() int
	// SetDepth records the distance from the root during a traversal.
	SetDepth(depth int)
	// Neighbours returns the resolved adjacent nodes in a fixed order.
	Neighbours(direction Direction) []Node

	resolve(g *Graph) error
}
