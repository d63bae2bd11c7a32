package dotexport

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/genealogy"
	"github.com/specialistvlad/ged2dot/internal/subgraph"
	"github.com/specialistvlad/ged2dot/internal/testutil"
)

// fakeImages reports only the listed paths as existing.
type fakeImages map[string]bool

func (f fakeImages) Exists(path string) bool { return f[path] }

func testOptions() Options {
	return Options{
		ImageDir:    "/photos",
		NameOrder:   config.NameOrderLittle,
		BirthFormat: "{}-",
		AssetDir:    "/assets",
		Images:      fakeImages{},
	}
}

func export(t *testing.T, nodes []genealogy.Node, opts Options) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Export(&b, nodes, opts))
	return b.String()
}

func TestExport_Couple(t *testing.T) {
	g := testutil.LoadGraph(t, testutil.Couple)
	nodes, err := subgraph.Extract(g, "F1", subgraph.Options{FamilyDepth: 0})
	require.NoError(t, err)

	out := export(t, nodes, testOptions())

	assert.True(t, strings.HasPrefix(out, "// Generated by ged2dot.\ndigraph\n{\nsplines = ortho;\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "P1 -> F1 [dir=none];\n")
	assert.Contains(t, out, "P2 -> F1 [dir=none];\n")
	assert.Equal(t, 2, strings.Count(out, " -> "))
	assert.Contains(t, out, "P1 [shape=box, label=<")
	assert.Contains(t, out, "color=blue];")
	assert.Contains(t, out, "color=pink];")
	assert.Contains(t, out, `F1 [shape=circle, margin="0,0", label=<`)
	assert.Contains(t, out, "ordering=out];")
}

func TestExport_SkipsEdgesToExcludedNodes(t *testing.T) {
	g := testutil.LoadGraph(t, testutil.ThreeGenerations)
	nodes, err := subgraph.Extract(g, "F2", subgraph.Options{FamilyDepth: 0})
	require.NoError(t, err)
	require.Equal(t, []string{"F2", "P4", "P3", "P5", "P6"}, testutil.IDs(nodes))

	out := export(t, nodes, testOptions())

	assert.Contains(t, out, "P4 -> F2 [dir=none];")
	assert.Contains(t, out, "P3 -> F2 [dir=none];")
	assert.Contains(t, out, "F2 -> P5 [dir=none];")
	assert.Contains(t, out, "F2 -> P6 [dir=none];")
	assert.NotContains(t, out, "F1")
	assert.NotContains(t, out, "F3")
	assert.Equal(t, 4, strings.Count(out, " -> "))
}

func TestExport_EdgeOrder(t *testing.T) {
	g := testutil.LoadGraph(t, testutil.ThreeGenerations)
	nodes, err := subgraph.Extract(g, "F2", subgraph.Options{FamilyDepth: 0})
	require.NoError(t, err)

	out := export(t, nodes, testOptions())
	wife := strings.Index(out, "P4 -> F2")
	husb := strings.Index(out, "P3 -> F2")
	first := strings.Index(out, "F2 -> P5")
	second := strings.Index(out, "F2 -> P6")
	assert.True(t, wife < husb && husb < first && first < second, out)
}

func TestIndividualLabel(t *testing.T) {
	testCases := []struct {
		name     string
		ind      *genealogy.Individual
		mutate   func(*Options)
		contains []string
	}{
		{
			name:     "little endian names",
			ind:      &genealogy.Individual{Forename: "Alice", Surname: "A"},
			contains: []string{"Alice<br/>A<br/>"},
		},
		{
			name:     "big endian names",
			ind:      &genealogy.Individual{Forename: "Alice", Surname: "A"},
			mutate:   func(o *Options) { o.NameOrder = config.NameOrderBig },
			contains: []string{"A<br/>Alice<br/>"},
		},
		{
			name:     "birth only uses the birth format",
			ind:      &genealogy.Individual{Attrs: genealogy.IndividualAttrs{Birth: "1942"}},
			mutate:   func(o *Options) { o.BirthFormat = "* {}" },
			contains: []string{"* 1942</font>"},
		},
		{
			name:     "death only",
			ind:      &genealogy.Individual{Attrs: genealogy.IndividualAttrs{Death: "1999"}},
			contains: []string{"† 1999</font>"},
		},
		{
			name:     "both years",
			ind:      &genealogy.Individual{Attrs: genealogy.IndividualAttrs{Birth: "1900", Death: "1980"}},
			contains: []string{"1900-1980</font>"},
		},
		{
			name:     "markup is escaped",
			ind:      &genealogy.Individual{Forename: "Tom & Jerry", Surname: "<Cat>"},
			contains: []string{"Tom &amp; Jerry<br/>&lt;Cat&gt;<br/>"},
		},
		{
			name:     "placeholder by sex",
			ind:      &genealogy.Individual{Sex: "F"},
			contains: []string{`src="/assets/placeholder-f.svg"`},
		},
		{
			name:     "unknown sex placeholder",
			ind:      &genealogy.Individual{Sex: "X"},
			contains: []string{`src="/assets/placeholder-u.svg"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := testOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			label := opts.individualLabel(tc.ind)
			for _, want := range tc.contains {
				assert.Contains(t, label, want)
			}
		})
	}
}

func TestImagePath(t *testing.T) {
	ind := &genealogy.Individual{Forename: "Alice", Surname: "A", Sex: "F",
		Attrs: genealogy.IndividualAttrs{Birth: "1900"}}

	testCases := []struct {
		name     string
		existing []string
		basePath string
		want     string
	}{
		{
			name:     "dated portrait",
			existing: []string{"/photos/Alice A 1900.png", "/photos/Alice A.jpg"},
			want:     "/photos/Alice A 1900.png",
		},
		{
			name:     "undated portrait",
			existing: []string{"/photos/Alice A.jpg"},
			want:     "/photos/Alice A.jpg",
		},
		{
			name: "placeholder",
			want: "/assets/placeholder-f.svg",
		},
		{
			name:     "relative to output",
			existing: []string{"/photos/Alice A.jpg"},
			basePath: "/out",
			want:     "../photos/Alice A.jpg",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			images := fakeImages{}
			for _, p := range tc.existing {
				images[filepath.FromSlash(p)] = true
			}
			opts := testOptions()
			opts.Images = images
			opts.BasePath = filepath.FromSlash(tc.basePath)
			assert.Equal(t, filepath.FromSlash(tc.want), opts.imagePath(ind))
		})
	}
}

func TestFamilyLabel(t *testing.T) {
	opts := testOptions()
	assert.Equal(t, "1925", opts.familyLabel(&genealogy.Family{Marriage: "1925"}))
	assert.Contains(t, opts.familyLabel(&genealogy.Family{}), `<img src="/assets/marriage.svg"/>`)
}

func TestOptionsFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Input = filepath.Join(dir, "tree.ged")
	cfg.Output = filepath.Join(dir, "out", "tree.dot")
	cfg.RelPath = true

	opts, err := OptionsFromConfig(cfg, "/assets")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "images"), opts.ImageDir)
	assert.Equal(t, filepath.Join(dir, "out"), opts.BasePath)
	assert.Equal(t, "/assets", opts.AssetDir)

	cfg.Output = config.StdStream
	opts, err = OptionsFromConfig(cfg, "/assets")
	require.NoError(t, err)
	assert.Empty(t, opts.BasePath)
}

func TestQuoteID(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "P1", want: "P1"},
		{in: "I_0001", want: "I_0001"},
		{in: "42", want: "42"},
		{in: "1P", want: `"1P"`},
		{in: "F-1", want: `"F-1"`},
		{in: "", want: `""`},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, quoteID(tc.in))
		})
	}
}
