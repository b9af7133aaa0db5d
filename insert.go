// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "fmt"

// InsertBitString augments the diagram so that the walk from root name that
// follows bits[0], bits[1], ..., bits[Varnum-1] (low on Lo, high on Hi)
// terminates at a terminal node with value. Existing paths that disagree
// with bits at some variable are left unchanged and continue to share
// subgraphs where possible. The result may not be reduced; running the
// canonicalization pipeline is the caller's responsibility.
//
// Inserting the same (bits, value) twice is a no-op, by hash-consing.
func (d *Diagram) InsertBitString(name RootName, bits BitString, value Value) error {
	if len(bits) == 0 {
		return newError(ShapeError, "InsertBitString", errEmptyBitString)
	}
	if len(bits) != d.varnum {
		return newError(ShapeError, "InsertBitString", fmt.Errorf("%w: got %d, want %d", errMismatchedVarnum, len(bits), d.varnum))
	}
	root, ok := d.roots[name]
	if !ok {
		return newError(RootError, "InsertBitString", fmt.Errorf("%w: %d", errUnknownRoot, name))
	}
	newRoot := d.insertBitStringRec(root, 0, bits, value)
	d.roots[name] = newRoot
	d.checkInvariants("InsertBitString")
	return nil
}

// insertBitStringRec is the recursive descent from the spec: at variable
// v == Varnum it creates the terminal; otherwise it threads the insertion
// through src (which may be nil, meaning this path does not exist yet),
// rebuilding only the nodes whose subtree actually changed so existing
// sharing is preserved.
func (d *Diagram) insertBitStringRec(src *Node, v int, bits BitString, value Value) *Node {
	if v == d.varnum {
		return d.store.createTerminal(value)
	}

	bit := bits[v]

	if src == nil {
		if bit == Lo {
			low := d.insertBitStringRec(nil, v+1, bits, value)
			return d.store.createNode(VarIndex(v), low, nil)
		}
		high := d.insertBitStringRec(nil, v+1, bits, value)
		return d.store.createNode(VarIndex(v), nil, high)
	}

	low, high := src.low, src.high
	if bit == Lo {
		low = d.insertBitStringRec(src.low, v+1, bits, value)
	} else {
		high = d.insertBitStringRec(src.high, v+1, bits, value)
	}

	if low == src.low && high == src.high {
		return src
	}
	return d.store.createNode(VarIndex(v), low, high)
}
