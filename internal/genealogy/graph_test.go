package genealogy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCouple builds F1 with husband P1, wife P2 and child P3.
func newCouple(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()

	husb := NewIndividual("P1")
	husb.Sex = "M"
	husb.FamsIDs = []string{"F1"}
	wife := NewIndividual("P2")
	wife.Sex = "F"
	wife.FamsIDs = []string{"F1"}
	child := NewIndividual("P3")
	child.FamcID = "F1"

	fam := NewFamily("F1")
	fam.HusbID = "P1"
	fam.WifeID = "P2"
	fam.ChildIDs = []string{"P3"}

	g.Append(husb)
	g.Append(wife)
	g.Append(child)
	g.Append(fam)
	require.NoError(t, g.Resolve())
	return g
}

func TestFind_Miss(t *testing.T) {
	g := newCouple(t)

	n, ok, err := g.Find("P42")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, n)

	n, ok, err = g.Find("")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestFind_Ambiguous(t *testing.T) {
	g := NewGraph()
	g.Append(NewIndividual("P1"))
	g.Append(NewIndividual("P1"))

	_, _, err := g.Find("P1")
	var ambiguous *AmbiguousIdentifierError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, "P1", ambiguous.ID)
	assert.Equal(t, 2, ambiguous.Count)
}

func TestResolve_Links(t *testing.T) {
	g := newCouple(t)

	n, ok, err := g.Find("F1")
	require.NoError(t, err)
	require.True(t, ok)
	fam := n.(*Family)
	require.NotNil(t, fam.Husb)
	require.NotNil(t, fam.Wife)
	assert.Equal(t, "P1", fam.Husb.ID())
	assert.Equal(t, "P2", fam.Wife.ID())
	require.Len(t, fam.ChildList, 1)
	assert.Same(t, fam, fam.ChildList[0].Famc)
}

func TestResolve_Idempotent(t *testing.T) {
	g := newCouple(t)
	require.NoError(t, g.Resolve())

	fam := g.FirstFamily()
	require.NotNil(t, fam)
	assert.Len(t, fam.ChildList, 1)
	for _, i := range g.Individuals() {
		assert.LessOrEqual(t, len(i.FamsList), 1)
	}
}

func TestResolve_DanglingReferences(t *testing.T) {
	testCases := []struct {
		name  string
		nodes func() []Node
		field string
	}{
		{
			name: "missing spouse family",
			nodes: func() []Node {
				i := NewIndividual("P1")
				i.FamsIDs = []string{"F9"}
				return []Node{i}
			},
			field: "FAMS",
		},
		{
			name: "missing child",
			nodes: func() []Node {
				f := NewFamily("F1")
				f.ChildIDs = []string{"P9"}
				return []Node{f}
			},
			field: "CHIL",
		},
		{
			name: "child reference to a family",
			nodes: func() []Node {
				f := NewFamily("F1")
				f.ChildIDs = []string{"F2"}
				return []Node{f, NewFamily("F2")}
			},
			field: "CHIL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGraph()
			for _, n := range tc.nodes() {
				g.Append(n)
			}
			err := g.Resolve()
			var dangling *DanglingReferenceError
			require.True(t, errors.As(err, &dangling), "got %v", err)
			assert.Equal(t, tc.field, dangling.Field)
		})
	}
}

func TestResolve_OptionalReferences(t *testing.T) {
	g := NewGraph()
	i := NewIndividual("P1")
	i.FamcID = "F9"
	f := NewFamily("F1")
	f.HusbID = "P1"
	f.WifeID = "P9"
	g.Append(i)
	g.Append(f)

	require.NoError(t, g.Resolve())
	assert.Nil(t, i.Famc)
	assert.Nil(t, f.Wife)
	assert.Same(t, i, f.Husb)
}

func TestResolve_AmbiguousReference(t *testing.T) {
	g := NewGraph()
	f := NewFamily("F1")
	f.HusbID = "P1"
	g.Append(f)
	g.Append(NewIndividual("P1"))
	g.Append(NewIndividual("P1"))

	var ambiguous *AmbiguousIdentifierError
	assert.True(t, errors.As(g.Resolve(), &ambiguous))
}

func TestNeighbours(t *testing.T) {
	g := NewGraph()
	parents := NewFamily("F1")
	parents.ChildIDs = []string{"P1"}
	own := NewFamily("F2")
	own.HusbID = "P1"
	person := NewIndividual("P1")
	person.FamcID = "F1"
	person.FamsIDs = []string{"F2"}
	g.Append(person)
	g.Append(parents)
	g.Append(own)
	require.NoError(t, g.Resolve())

	both := person.Neighbours(DirectionBoth)
	require.Len(t, both, 2)
	assert.Equal(t, "F1", both[0].ID())
	assert.Equal(t, "F2", both[1].ID())

	child := person.Neighbours(DirectionChild)
	require.Len(t, child, 1)
	assert.Equal(t, "F2", child[0].ID())

	// F2 has no WIFE tag.
	famNeighbours := own.Neighbours(DirectionBoth)
	require.Len(t, famNeighbours, 1)
	assert.Equal(t, "P1", famNeighbours[0].ID())
	assert.Nil(t, own.Wife)
}

func TestFamilyNeighbourOrder(t *testing.T) {
	g := newCouple(t)
	fam := g.FirstFamily()

	var ids []string
	for _, n := range fam.Neighbours(DirectionChild) {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"P2", "P1", "P3"}, ids)
}

func TestResetDepths(t *testing.T) {
	g := newCouple(t)
	for i, n := range g.Nodes() {
		n.SetDepth(i + 1)
	}
	g.ResetDepths()
	for _, n := range g.Nodes() {
		assert.Zero(t, n.Depth(), n.ID())
	}
}

func TestParseDirection(t *testing.T) {
	testCases := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "", want: DirectionBoth},
		{in: "both", want: DirectionBoth},
		{in: "child", want: DirectionChild},
		{in: "parent", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDirection(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIndividualColor(t *testing.T) {
	assert.Equal(t, "blue", (&Individual{Sex: "M"}).Color())
	assert.Equal(t, "pink", (&Individual{Sex: "f"}).Color())
	assert.Equal(t, "black", (&Individual{}).Color())
}
