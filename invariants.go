// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "fmt"

// validateInvariants runs the O(|nodes|) sanity checks shared by both the
// debug build (which always runs them) and a release build configured with
// WithInvariantChecks (which runs them only on request). It is kept
// separate from checkInvariants, which is build-tag-gated, so the same
// check logic isn't duplicated between debug.go and release.go.
func (d *Diagram) validateInvariants() error {
	for key, n := range d.store.unique {
		if keyOf(n) != key {
			return fmt.Errorf("unique table entry out of sync with its key")
		}
		if n.IsInner() {
			if n.low != nil && !(n.low.varIndex > n.varIndex || n.low.varIndex == Terminal) {
				return fmt.Errorf("ordering violated at level %d", n.varIndex)
			}
			if n.high != nil && !(n.high.varIndex > n.varIndex || n.high.varIndex == Terminal) {
				return fmt.Errorf("ordering violated at level %d", n.varIndex)
			}
		}
	}
	return nil
}
