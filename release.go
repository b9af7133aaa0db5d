// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package mtrobdd

import "fmt"

const _DEBUG bool = false
const _LOGLEVEL int = 0

// checkInvariants is a no-op outside of debug builds unless the Diagram was
// built with WithInvariantChecks, since the O(|nodes|) checks are meant for
// development and tests, not production use by default.
func (d *Diagram) checkInvariants(op string) {
	if !d.cfg.invariantChecks {
		return
	}
	if err := d.validateInvariants(); err != nil {
		panic(fmt.Sprintf("mtrobdd: %s: %v", op, err))
	}
}
