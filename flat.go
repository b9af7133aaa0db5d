// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "fmt"

// ForeignPtr is an opaque handle into a foreign node table — a BDD manager
// outside this package, such as the MONA node table the original bridge
// targets. This package never interprets its value; it only threads it
// through ForeignManager.
type ForeignPtr int

// FlatEntry is one row of a position-indexed flat node table, the exchange
// format used to move a subgraph across the foreign boundary. An entry with
// VarIndex == Terminal is a leaf: its value is carried in Low (High is
// unused), following the MONA convention of overloading a leaf's child
// field with its value rather than adding a dedicated field. An entry with
// any other VarIndex is an inner node whose Low/High name the table
// position of its children.
type FlatEntry struct {
	VarIndex  VarIndex
	Low, High ForeignPtr
}

// ForeignManager is the foreign side of the flat-table bridge. ExportRoots
// flattens a set of foreign subgraphs (reachable from roots) into a
// position-indexed table, mirroring the original bridge's renumbering pass;
// NewLeaf and NewInner do the reverse, materializing one foreign node at a
// time as this package walks its own diagram bottom-up.
type ForeignManager interface {
	ExportRoots(roots []ForeignPtr) (table []FlatEntry, rootPositions []int)
	NewLeaf(value Value) ForeignPtr
	NewInner(varIndex VarIndex, low, high ForeignPtr) ForeignPtr
}

// NewFromFlat builds a Diagram of varnum variables from the foreign
// subgraphs reachable from roots. The resulting diagram's root names are
// the contiguous range [0, len(roots)) — the position of each foreign root
// within the roots slice — matching the root-naming convention the rest of
// this package assumes (errNonContiguousRoots).
//
// Each table entry is inserted into the node store via InsertNode rather
// than CreateNode/CreateTerminal: the import is raw and is not required to
// be reduced, so two positions that happen to be structurally equivalent
// are not silently merged. Run Trim, RemoveRedundantTests, and MakeComplete
// afterward to canonicalize.
func NewFromFlat(varnum int, fm ForeignManager, roots []ForeignPtr) (*Diagram, error) {
	d, err := New(varnum)
	if err != nil {
		return nil, err
	}

	table, rootPositions := fm.ExportRoots(roots)
	if len(rootPositions) != len(roots) {
		return nil, newError(RootError, "NewFromFlat", fmt.Errorf("%w: %d roots, %d positions", errNonContiguousRoots, len(roots), len(rootPositions)))
	}

	built := make([]*Node, len(table))
	var build func(pos int) (*Node, error)
	build = func(pos int) (*Node, error) {
		if pos < 0 || pos >= len(table) {
			return nil, newError(ShapeError, "NewFromFlat", fmt.Errorf("%w: position %d out of range", errForeignNode, pos))
		}
		if built[pos] != nil {
			return built[pos], nil
		}
		entry := table[pos]
		var n *Node
		if entry.VarIndex == Terminal {
			n = &Node{varIndex: Terminal, value: Value(entry.Low), owner: d}
		} else {
			if entry.VarIndex < 0 || int(entry.VarIndex) >= varnum {
				return nil, newError(ShapeError, "NewFromFlat", fmt.Errorf("%w: %d", errBadVarIndex, entry.VarIndex))
			}
			low, err := build(int(entry.Low))
			if err != nil {
				return nil, err
			}
			high, err := build(int(entry.High))
			if err != nil {
				return nil, err
			}
			n = &Node{varIndex: entry.VarIndex, low: low, high: high, owner: d}
		}
		// Raw import: insert the freshly built node as-is rather than routing
		// it through CreateNode/CreateTerminal, so two flat-table positions
		// that happen to be structurally equivalent stay distinct nodes until
		// the caller runs the canonicalization pipeline, per the "raw import
		// is not required to be reduced" contract.
		d.InsertNode(n)
		built[pos] = n
		return n, nil
	}

	for i, pos := range rootPositions {
		n, err := build(pos)
		if err != nil {
			return nil, err
		}
		d.PromoteToRoot(n, RootName(i))
	}

	return d, nil
}

// ToFlat exports every root of d into the foreign manager, returning the
// foreign pointer bound to each root name. Nodes reachable from more than
// one root are materialized once and shared on the foreign side too,
// mirroring this package's own hash-consing. The diagram must be complete
// (MakeComplete) first: a nil child has no foreign representation. d's root
// names must be exactly the contiguous range [0, len(roots)); this is the
// caller's contract, mirrored from NewFromFlat, and a violation is reported
// rather than silently exporting a gap.
func (d *Diagram) ToFlat(fm ForeignManager) (map[RootName]ForeignPtr, error) {
	for i := 0; i < len(d.roots); i++ {
		if _, ok := d.roots[RootName(i)]; !ok {
			return nil, newError(RootError, "ToFlat", fmt.Errorf("%w: expected keys 0..%d, missing %d", errNonContiguousRoots, len(d.roots)-1, i))
		}
	}

	memo := make(map[*Node]ForeignPtr)
	var build func(n *Node) (ForeignPtr, error)
	build = func(n *Node) (ForeignPtr, error) {
		if p, ok := memo[n]; ok {
			return p, nil
		}
		var p ForeignPtr
		if n.IsTerminal() {
			p = fm.NewLeaf(n.value)
		} else {
			if n.low == nil || n.high == nil {
				return 0, newError(InternalError, "ToFlat", fmt.Errorf("incomplete node at variable %d: run MakeComplete first", n.varIndex))
			}
			low, err := build(n.low)
			if err != nil {
				return 0, err
			}
			high, err := build(n.high)
			if err != nil {
				return 0, err
			}
			p = fm.NewInner(n.varIndex, low, high)
		}
		memo[n] = p
		return p, nil
	}

	out := make(map[RootName]ForeignPtr, len(d.roots))
	for name, root := range d.roots {
		p, err := build(root)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}
