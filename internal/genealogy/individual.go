package genealogy

import "strings"

// IndividualAttrs holds the free-form details of an individual that are only
// used for display.
type IndividualAttrs struct {
	// Birth is the birth year, taken verbatim from the last token of the DATE line.
	Birth string
	// Death is the death year, taken verbatim from the last token of the DATE line.
	Death string
	// Note is the text of the individual's NOTE line.
	Note string
}

// Individual is a person. An individual is a child in at most one family and
// a spouse in any number of families.
type Individual struct {
	Identifier string
	Forename   string
	Surname    string
	// Sex is "M", "F" or empty when unknown.
	Sex string

	// FamcID is the family this individual was born into. Only the first FAMC
	// of a record is kept.
	FamcID string
	// Famc is FamcID after resolution, nil when absent.
	Famc *Family

	// FamsIDs lists the families this individual is a spouse in, in input order.
	FamsIDs []string
	// FamsList is FamsIDs after resolution.
	FamsList []*Family

	Attrs IndividualAttrs

	depth int
}

// NewIndividual returns an individual with the given identifier.
func NewIndividual(id string) *Individual {
	return &Individual{Identifier: id}
}

func (i *Individual) ID() string { return i.Identifier }

func (i *Individual) Depth() int { return i.depth }

func (i *Individual) SetDepth(depth int) { i.depth = depth }

// Neighbours returns the parent family (unless direction is DirectionChild)
// followed by the spouse families.
func (i *Individual) Neighbours(direction Direction) []Node {
	ret := make([]Node, 0, len(i.FamsList)+1)
	if i.Famc != nil && direction != DirectionChild {
		ret = append(ret, i.Famc)
	}
	for _, fams := range i.FamsList {
		ret = append(ret, fams)
	}
	return ret
}

// Color returns the graphviz color used to frame this individual.
func (i *Individual) Color() string {
	switch strings.ToUpper(i.Sex) {
	case "M":
		return "blue"
	case "F":
		return "pink"
	default:
		return "black"
	}
}

func (i *Individual) resolve(g *Graph) error {
	i.Famc = nil
	i.FamsList = nil

	famc, err := g.findFamily(i.Identifier, "FAMC", i.FamcID, false)
	if err != nil {
		return err
	}
	i.Famc = famc

	for _, id := range i.FamsIDs {
		fams, err := g.findFamily(i.Identifier, "FAMS", id, true)
		if err != nil {
			return err
		}
		i.FamsList = append(i.FamsList, fams)
	}
	return nil
}
