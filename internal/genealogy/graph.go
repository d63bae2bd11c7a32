package genealogy

// Graph is an append-only, ordered collection of nodes indexed by identifier.
// It is not safe for concurrent use; every conversion owns its own graph.
type Graph struct {
	nodes []Node
	index map[string][]int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string][]int)}
}

// Append adds a node at the end of the graph. Duplicate identifiers are
// accepted here and reported by Find.
func (g *Graph) Append(n Node) {
	if g.index == nil {
		g.index = make(map[string][]int)
	}
	g.index[n.ID()] = append(g.index[n.ID()], len(g.nodes))
	g.nodes = append(g.nodes, n)
}

// Nodes returns all nodes in insertion order. The slice must not be modified.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Find looks up a node by identifier. A miss returns (nil, false, nil); an
// identifier shared by several nodes returns an *AmbiguousIdentifierError.
func (g *Graph) Find(id string) (Node, bool, error) {
	if id == "" {
		return nil, false, nil
	}
	positions := g.index[id]
	switch len(positions) {
	case 0:
		return nil, false, nil
	case 1:
		return g.nodes[positions[0]], true, nil
	default:
		return nil, false, &AmbiguousIdentifierError{ID: id, Count: len(positions)}
	}
}

// Individuals returns the individuals in insertion order.
func (g *Graph) Individuals() []*Individual {
	var ret []*Individual
	for _, n := range g.nodes {
		if i, ok := n.(*Individual); ok {
			ret = append(ret, i)
		}
	}
	return ret
}

// Families returns the families in insertion order.
func (g *Graph) Families() []*Family {
	var ret []*Family
	for _, n := range g.nodes {
		if f, ok := n.(*Family); ok {
			ret = append(ret, f)
		}
	}
	return ret
}

// FirstFamily returns the first family in insertion order, or nil.
func (g *Graph) FirstFamily() *Family {
	for _, n := range g.nodes {
		if f, ok := n.(*Family); ok {
			return f
		}
	}
	return nil
}

// Resolve turns the identifier references of every node into direct links.
// It must be called once all nodes have been appended.
func (g *Graph) Resolve() error {
	for _, n := range g.nodes {
		if err := n.resolve(g); err != nil {
			return err
		}
	}
	return nil
}

// ResetDepths sets the depth of every node back to zero.
func (g *Graph) ResetDepths() {
	for _, n := range g.nodes {
		n.SetDepth(0)
	}
}

// findFamily resolves a reference made by node `from` through tag `field`.
func (g *Graph) findFamily(from, field, ref string, mandatory bool) (*Family, error) {
	n, err := g.findRef(from, field, ref, mandatory)
	if err != nil || n == nil {
		return nil, err
	}
	f, ok := n.(*Family)
	if !ok {
		return nil, &DanglingReferenceError{From: from, Field: field, Ref: ref, Reason: "not a family"}
	}
	return f, nil
}

// findIndividual resolves a reference made by node `from` through tag `field`.
func (g *Graph) findIndividual(from, field, ref string, mandatory bool) (*Individual, error) {
	n, err := g.findRef(from, field, ref, mandatory)
	if err != nil || n == nil {
		return nil, err
	}
	i, ok := n.(*Individual)
	if !ok {
		return nil, &DanglingReferenceError{From: from, Field: field, Ref: ref, Reason: "not an individual"}
	}
	return i, nil
}

func (g *Graph) findRef(from, field, ref string, mandatory bool) (Node, error) {
	n, ok, err := g.Find(ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		if mandatory {
			return nil, &DanglingReferenceError{From: from, Field: field, Ref: ref, Reason: "no such node"}
		}
		return nil, nil
	}
	return n, nil
}
