package gedcom

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

// importer is the state machine that turns scanned lines into graph nodes.
type importer struct {
	graph *genealogy.Graph

	// individual and family are the records currently being filled in. At
	// most one of them is set; they are appended to graph at the next level 0
	// line or at the end of input.
	individual *genealogy.Individual
	family     *genealogy.Family

	// Set by a level 1 BIRT/DEAT/MARR line, consumed by the level 2 DATE below it.
	inBirth    bool
	inDeath    bool
	inMarriage bool
}

// Import builds an unresolved graph from GEDCOM input. The caller is expected
// to call Resolve on the result, see Load.
func Import(buf []byte) (*genealogy.Graph, error) {
	lines, err := Scan(buf)
	if err != nil {
		return nil, err
	}

	imp := &importer{graph: genealogy.NewGraph()}
	for _, line := range lines {
		if err := imp.handle(line); err != nil {
			return nil, &LineError{Number: line.Number, Raw: line.Raw, Err: err}
		}
	}
	imp.flush()
	return imp.graph, nil
}

// Load imports GEDCOM input and resolves all cross references.
func Load(buf []byte) (*genealogy.Graph, error) {
	g, err := Import(buf)
	if err != nil {
		return nil, err
	}
	if err := g.Resolve(); err != nil {
		return nil, fmt.Errorf("failed to resolve references: %w", err)
	}
	return g, nil
}

func (imp *importer) handle(line Line) error {
	switch line.Level {
	case 0:
		return imp.handleLevel0(line)
	case 1:
		return imp.handleLevel1(line)
	case 2:
		imp.handleLevel2(line)
	}
	return nil
}

func (imp *importer) flush() {
	if imp.individual != nil {
		imp.graph.Append(imp.individual)
		imp.individual = nil
	}
	if imp.family != nil {
		imp.graph.Append(imp.family)
		imp.family = nil
	}
}

func (imp *importer) resetFlags() {
	imp.inBirth = false
	imp.inDeath = false
	imp.inMarriage = false
}

func (imp *importer) handleLevel0(line Line) error {
	imp.flush()
	imp.resetFlags()

	rest := line.Rest
	if !strings.HasPrefix(rest, "@") {
		// HEAD, TRLR and friends.
		return nil
	}

	switch {
	case strings.HasSuffix(rest, "INDI"):
		id, err := parsePointer("INDI", line.Tag())
		if err != nil {
			return err
		}
		imp.individual = genealogy.NewIndividual(id)
	case strings.HasSuffix(rest, "FAM"):
		id, err := parsePointer("FAM", line.Tag())
		if err != nil {
			return err
		}
		imp.family = genealogy.NewFamily(id)
	}
	return nil
}

func (imp *importer) handleLevel1(line Line) error {
	imp.resetFlags()

	tag, value := line.Tag(), line.Value()
	switch {
	case imp.individual != nil:
		return imp.handleIndividual(tag, value)
	case imp.family != nil:
		return imp.handleFamily(tag, value)
	}
	return nil
}

func (imp *importer) handleIndividual(tag, value string) error {
	ind := imp.individual
	switch tag {
	case "SEX":
		// A bare "1 SEX" line leaves the sex unknown.
		sex, _, _ := strings.Cut(value, " ")
		ind.Sex = sex
	case "NAME":
		ind.Forename, ind.Surname = parseName(value)
	case "FAMC":
		id, err := parsePointer(tag, value)
		if err != nil {
			return err
		}
		// Some exporters write several FAMC lines; the first one wins.
		if ind.FamcID == "" {
			ind.FamcID = id
		}
	case "FAMS":
		id, err := parsePointer(tag, value)
		if err != nil {
			return err
		}
		ind.FamsIDs = append(ind.FamsIDs, id)
	case "BIRT":
		imp.inBirth = true
	case "DEAT":
		imp.inDeath = true
	case "NOTE":
		ind.Attrs.Note = value
	}
	return nil
}

func (imp *importer) handleFamily(tag, value string) error {
	fam := imp.family
	switch tag {
	case "HUSB", "WIFE", "CHIL":
		id, err := parsePointer(tag, value)
		if err != nil {
			return err
		}
		switch tag {
		case "HUSB":
			fam.HusbID = id
		case "WIFE":
			fam.WifeID = id
		default:
			fam.ChildIDs = append(fam.ChildIDs, id)
		}
	case "MARR":
		imp.inMarriage = true
	case "BIRT":
		imp.inBirth = true
	case "DEAT":
		imp.inDeath = true
	}
	return nil
}

func (imp *importer) handleLevel2(line Line) {
	if line.Tag() != "DATE" {
		return
	}
	value := line.Value()
	if value == "" {
		return
	}
	// No calendar parsing: "12 MAR 1901", "ABT 1901" and "1901" all yield "1901".
	year := value[strings.LastIndex(value, " ")+1:]

	switch {
	case imp.individual != nil && imp.inBirth:
		imp.individual.Attrs.Birth = year
	case imp.individual != nil && imp.inDeath:
		imp.individual.Attrs.Death = year
	case imp.family != nil && imp.inMarriage:
		imp.family.Marriage = year
	}
}

// parsePointer strips the '@' delimiters from a cross reference like "@F1@".
func parsePointer(tag, value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) < 3 || !strings.HasPrefix(value, "@") || !strings.HasSuffix(value, "@") {
		return "", &MalformedPointerError{Tag: tag, Value: value}
	}
	return value[1 : len(value)-1], nil
}

// parseName splits a NAME value of the form "forename /surname/ suffix". A
// non-empty suffix is appended to the surname.
func parseName(value string) (forename, surname string) {
	parts := strings.Split(value, "/")
	forename = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		surname = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		if suffix := strings.TrimSpace(parts[2]); suffix != "" {
			surname = strings.TrimSpace(surname + " " + suffix)
		}
	}
	return forename, surname
}
