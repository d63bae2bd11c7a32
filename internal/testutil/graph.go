package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/ged2dot/internal/gedcom"
	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

// Couple is a minimal tree: P1 and P2 married in F1.
var Couple = GEDCOM(
	"0 HEAD",
	"0 @P1@ INDI",
	"1 SEX M",
	"1 FAMS @F1@",
	"0 @P2@ INDI",
	"1 SEX F",
	"1 FAMS @F1@",
	"0 @F1@ FAM",
	"1 HUSB @P1@",
	"1 WIFE @P2@",
	"0 TRLR",
)

// ThreeGenerations is a tree with grandparents (F1), parents (F2, where P3
// married in P4 from F3) and grandchildren (P5, P6):
//
//	F1: P1 + P2 -> P3
//	F3: -- + P7 -> P4
//	F2: P3 + P4 -> P5, P6
var ThreeGenerations = GEDCOM(
	"0 HEAD",
	"0 @P1@ INDI",
	"1 NAME Adam /Old/",
	"1 SEX M",
	"1 FAMS @F1@",
	"0 @P2@ INDI",
	"1 NAME Eve /Old/",
	"1 SEX F",
	"1 FAMS @F1@",
	"0 @P3@ INDI",
	"1 NAME Abel /Old/",
	"1 SEX M",
	"1 FAMC @F1@",
	"1 FAMS @F2@",
	"0 @P4@ INDI",
	"1 NAME Ada /Other/",
	"1 SEX F",
	"1 FAMC @F3@",
	"1 FAMS @F2@",
	"0 @P5@ INDI",
	"1 NAME Kid /Old/",
	"1 FAMC @F2@",
	"0 @P6@ INDI",
	"1 NAME Kim /Old/",
	"1 FAMC @F2@",
	"0 @P7@ INDI",
	"1 NAME Mum /Other/",
	"1 SEX F",
	"1 FAMS @F3@",
	"0 @F1@ FAM",
	"1 HUSB @P1@",
	"1 WIFE @P2@",
	"1 CHIL @P3@",
	"0 @F2@ FAM",
	"1 HUSB @P3@",
	"1 WIFE @P4@",
	"1 CHIL @P5@",
	"1 CHIL @P6@",
	"0 @F3@ FAM",
	"1 WIFE @P7@",
	"1 CHIL @P4@",
	"0 TRLR",
)

// LoadGraph imports and resolves a GEDCOM document, failing the test on error.
func LoadGraph(t *testing.T, doc string) *genealogy.Graph {
	t.Helper()

	g, err := gedcom.Load([]byte(doc))
	require.NoError(t, err)
	return g
}

// MustFind returns the node with the given identifier, failing the test when
// it is missing.
func MustFind(t *testing.T, g *genealogy.Graph, id string) genealogy.Node {
	t.Helper()

	n, ok, err := g.Find(id)
	require.NoError(t, err)
	require.True(t, ok, "node %s not found", id)
	return n
}

// IDs returns the identifiers of nodes, in order.
func IDs(nodes []genealogy.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID())
	}
	return ids
}
