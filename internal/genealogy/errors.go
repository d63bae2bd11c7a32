package genealogy

import "fmt"

// AmbiguousIdentifierError reports an identifier shared by more than one node.
type AmbiguousIdentifierError struct {
	ID    string
	Count int
}

func (e *AmbiguousIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q matches %d nodes", e.ID, e.Count)
}

// DanglingReferenceError reports a mandatory reference that does not resolve
// to a node of the expected kind.
type DanglingReferenceError struct {
	// From is the identifier of the node holding the reference.
	From string
	// Field is the GEDCOM tag the reference came from, e.g. "FAMS" or "CHIL".
	Field string
	// Ref is the identifier that failed to resolve.
	Ref    string
	Reason string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s of %q refers to %q: %s", e.Field, e.From, e.Ref, e.Reason)
}
