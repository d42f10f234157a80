package builder

import (
	"fmt"
	"strings"
)

// Resolution describes what the builder did with a node it could not attach where the
// construct requires.
type Resolution uint8

const (
	// Appended means the node was added as an ordinary statement at the current
	// insertion target.
	Appended Resolution = iota
	// Dropped means the node was discarded.
	Dropped
)

func (r Resolution) String() string {
	switch r {
	case Appended:
		return "appended as a statement"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// MismatchError records a scope that closed without a compatible parent. The builder
// never returns it from the scoped operation itself; mismatches are collected and
// available through Builder.Err.
type MismatchError struct {
	// Kind is the keyword of the construct that closed, for example "else".
	Kind string
	// Parent describes the open node the construct closed under, or "top level".
	Parent string
	// Want lists the parent kinds the construct can attach to.
	Want       []string
	Resolution Resolution
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s closed under %s, want one of %s; %s",
		e.Kind, e.Parent, strings.Join(e.Want, ", "), e.Resolution)
}
