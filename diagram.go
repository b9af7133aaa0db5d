// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "fmt"

// Diagram is a shared MT-ROBDD: a fixed variable count, a hash-consed node
// store, and a root index mapping root names to entry-point nodes. A
// Diagram owns its node store exclusively; there is no state shared across
// diagrams, and nothing in this package blocks or does I/O.
type Diagram struct {
	varnum int
	store  *nodeStore
	roots  map[RootName]*Node
	cfg    *configs
}

// New creates an empty Diagram over varnum Boolean variables.
func New(varnum int, opts ...Option) (*Diagram, error) {
	if varnum < 0 {
		return nil, newError(ShapeError, "New", fmt.Errorf("negative Varnum (%d)", varnum))
	}
	cfg := defaultConfigs(varnum)
	for _, opt := range opts {
		opt(cfg)
	}
	d := &Diagram{
		varnum: varnum,
		roots:  make(map[RootName]*Node),
		cfg:    cfg,
	}
	d.store = newNodeStore(cfg.nodeHint, d)
	return d, nil
}

// Varnum returns the fixed number of variables of the diagram.
func (d *Diagram) Varnum() int {
	return d.varnum
}

// CreateNode returns the canonical inner node for (v, low, high). It fails
// if v is out of range or if either child violates the strict-ordering
// invariant.
func (d *Diagram) CreateNode(v VarIndex, low, high *Node) (*Node, error) {
	if v < 0 || VarIndex(v) >= VarIndex(d.varnum) {
		return nil, newError(ShapeError, "CreateNode", fmt.Errorf("%w: %d", errBadVarIndex, v))
	}
	if low != nil && !(low.varIndex > v || low.varIndex == Terminal) {
		return nil, newError(ShapeError, "CreateNode", errChildOrder)
	}
	if high != nil && !(high.varIndex > v || high.varIndex == Terminal) {
		return nil, newError(ShapeError, "CreateNode", errChildOrder)
	}
	n := d.store.createNode(v, low, high)
	d.checkInvariants("CreateNode")
	return n, nil
}

// CreateTerminal returns the canonical terminal node for value.
func (d *Diagram) CreateTerminal(value Value) *Node {
	return d.store.createTerminal(value)
}

// CreateRoot binds name to the canonical inner node at variable 0 with both
// children unset. On a diagram with Varnum 0 there is no variable to test,
// so it binds a terminal valued MaxValue instead, as a placeholder for
// PromoteToRoot (InsertBitString rejects the empty bit-string). It fails if
// name is already bound.
func (d *Diagram) CreateRoot(name RootName) (*Node, error) {
	if _, ok := d.roots[name]; ok {
		return nil, newError(RootError, "CreateRoot", fmt.Errorf("%w: %d", errDuplicateRoot, name))
	}
	var n *Node
	if d.varnum == 0 {
		n = d.store.createTerminal(MaxValue)
	} else {
		n = d.store.createNode(0, nil, nil)
	}
	d.roots[name] = n
	return n, nil
}

// PromoteToRoot binds an arbitrary existing node to name, replacing any
// prior binding for that name.
func (d *Diagram) PromoteToRoot(n *Node, name RootName) {
	d.roots[name] = n
}

// GetRoot looks up the node bound to name, if any.
func (d *Diagram) GetRoot(name RootName) (*Node, bool) {
	n, ok := d.roots[name]
	return n, ok
}

// InsertNode inserts a preconstructed node into the store, used by the
// flat-table bridge. It reports whether the node was new to the store.
func (d *Diagram) InsertNode(n *Node) bool {
	return d.store.insertNode(n)
}

// Roots returns the current root names, in no particular order.
func (d *Diagram) Roots() []RootName {
	names := make([]RootName, 0, len(d.roots))
	for name := range d.roots {
		names = append(names, name)
	}
	return names
}

// NodeCount returns the number of physical nodes currently in the store.
func (d *Diagram) NodeCount() int {
	return d.store.size()
}

// Stats returns a short textual summary of the diagram, in the vein of the
// node-table statistics its ancestry reports for a BDD implementation.
func (d *Diagram) Stats() string {
	return fmt.Sprintf(
		"Varnum:       %d\nNodes:        %d\nRoots:        %d\nUnique hit:   %d\nUnique miss:  %d\n",
		d.varnum, d.store.size(), len(d.roots), d.store.uniqueHit, d.store.uniqueMiss,
	)
}
