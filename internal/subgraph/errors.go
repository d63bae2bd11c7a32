package subgraph

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned when the input holds no individuals or families.
var ErrEmptyGraph = errors.New("graph is empty: the input contains no individuals or families")

// RootNotFoundError reports a root family identifier that is absent from a
// non-empty graph.
type RootNotFoundError struct {
	Root string
	// FirstFamily is the first family of the input, empty if there is none.
	FirstFamily string
}

func (e *RootNotFoundError) Error() string {
	msg := fmt.Sprintf("root family %q is not found", e.Root)
	if e.FirstFamily != "" {
		msg += fmt.Sprintf(", first valid family would be %q", e.FirstFamily)
	}
	return msg
}
