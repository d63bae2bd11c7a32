package subgraph

import (
	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

// Options bounds a traversal.
type Options struct {
	// FamilyDepth is the number of generations to include around the root.
	FamilyDepth int
	// Direction filters which neighbours of an individual are followed.
	Direction genealogy.Direction
}

// OptionsFromConfig extracts the traversal bounds from a conversion config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		FamilyDepth: cfg.FamilyDepth,
		Direction:   cfg.Direction,
	}
}

// maxDepth converts generations into node hops. Families and individuals
// alternate along any path and the root is always a family.
func (o Options) maxDepth() int {
	return o.FamilyDepth*2 + 1
}

// BFS walks the graph breadth-first from root and returns the visited nodes
// in discovery order, each stamped with its distance from root.
//
// The walk stops as a whole at the first dequeued node deeper than the bound;
// everything queued after it is dropped too. root must have depth 0 and no
// other traversal may have touched the graph since the last ResetDepths.
func BFS(root genealogy.Node, opts Options) []genealogy.Node {
	visited := map[genealogy.Node]struct{}{root: {}}
	queue := []genealogy.Node{root}
	var ret []genealogy.Node

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.Depth() > opts.maxDepth() {
			return ret
		}
		ret = append(ret, node)

		for _, neighbour := range node.Neighbours(opts.Direction) {
			if _, ok := visited[neighbour]; ok {
				continue
			}
			visited[neighbour] = struct{}{}
			neighbour.SetDepth(node.Depth() + 1)
			queue = append(queue, neighbour)
		}
	}
	return ret
}

// Extract looks up the root family by identifier, clears depths left over by
// earlier traversals and runs BFS from it.
func Extract(g *genealogy.Graph, rootID string, opts Options) ([]genealogy.Node, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	n, ok, err := g.Find(rootID)
	if err != nil {
		return nil, err
	}
	root, isFamily := n.(*genealogy.Family)
	if !ok || !isFamily {
		notFound := &RootNotFoundError{Root: rootID}
		if first := g.FirstFamily(); first != nil {
			notFound.FirstFamily = first.ID()
		}
		return nil, notFound
	}

	g.ResetDepths()
	return BFS(root, opts), nil
}
