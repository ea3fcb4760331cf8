package cli

import "fmt"

type notFoundError struct {
	kind string
	ref  string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.ref)
}

func errNotFound(kind, ref string) error {
	return notFoundError{kind: kind, ref: ref}
}

// errNeedsYes guards cascade deletes: the server removes dependent
// records along with the row, so the flag is an explicit opt-in.
func errNeedsYes(what string) error {
	return fmt.Errorf("refusing to delete %s without --yes (dependent records go with it)", what)
}
