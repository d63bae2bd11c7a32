package genealogy

// Family joins a husband and a wife, both optional, with their children.
type Family struct {
	Identifier string

	HusbID string
	Husb   *Individual
	WifeID string
	Wife   *Individual

	// ChildIDs keeps the CHIL order of the input.
	ChildIDs  []string
	ChildList []*Individual

	// Marriage is the marriage year, empty when unknown.
	Marriage string

	depth int
}

// NewFamily returns a family with the given identifier.
func NewFamily(id string) *Family {
	return &Family{Identifier: id}
}

func (f *Family) ID() string { return f.Identifier }

func (f *Family) Depth() int { return f.depth }

func (f *Family) SetDepth(depth int) { f.depth = depth }

// Neighbours returns the wife, the husband and then the children. Direction
// does not apply to families.
func (f *Family) Neighbours(Direction) []Node {
	ret := make([]Node, 0, len(f.ChildList)+2)
	if f.Wife != nil {
		ret = append(ret, f.Wife)
	}
	if f.Husb != nil {
		ret = append(ret, f.Husb)
	}
	for _, child := range f.ChildList {
		ret = append(ret, child)
	}
	return ret
}

func (f *Family) resolve(g *Graph) error {
	f.Wife = nil
	f.Husb = nil
	f.ChildList = nil

	wife, err := g.findIndividual(f.Identifier, "WIFE", f.WifeID, false)
	if err != nil {
		return err
	}
	f.Wife = wife

	husb, err := g.findIndividual(f.Identifier, "HUSB", f.HusbID, false)
	if err != nil {
		return err
	}
	f.Husb = husb

	for _, id := range f.ChildIDs {
		child, err := g.findIndividual(f.Identifier, "CHIL", id, true)
		if err != nil {
			return err
		}
		f.ChildList = append(f.ChildList, child)
	}
	return nil
}
