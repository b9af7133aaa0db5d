// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

// VarIndex is the level of a variable in [0, Varnum), or the Terminal
// sentinel for a leaf.
type VarIndex int32

// Terminal marks a leaf node. Its value (-1) sorts before every real
// variable index, so the ordering checks (child.VarIndex > node.VarIndex)
// special-case it and treat Terminal as +infinity.
const Terminal VarIndex = -1

// Value is the non-negative payload carried by a terminal node: a target
// state identifier, or one of the two reserved sentinels below.
type Value uint64

// MaxValue is the internal "unset" marker; real terminal values and root
// names must never collide with it.
const MaxValue Value = ^Value(0)

// Sink is the reserved terminal value used by MakeComplete to denote "no
// transition". It is also a legal root name once completion runs.
const Sink Value = MaxValue - 1

// RootName identifies one entry point into the diagram. Root names and
// terminal values share one universe: the root-coverage invariant (every
// terminal value appearing in the diagram is also a root name, after
// MakeComplete) only makes sense because of that.
type RootName = Value

// Bit is one position of a BitString: Lo selects the low branch, Hi the
// high branch.
type Bit uint8

// Lo and Hi are the two possible values of a Bit.
const (
	Lo Bit = 0
	Hi Bit = 1
)

// BitString is an assignment to every variable of a diagram, indexed by
// VarIndex. Its length must equal the diagram's Varnum wherever the engine
// requires a complete assignment.
type BitString []Bit

// Node is a vertex of an MT-ROBDD: either an inner node that tests one
// variable and branches to a low and a high child, or a terminal node
// carrying a value. Its fields are unexported so that a *Node is an opaque
// handle to external callers; the only operations on it are the accessors
// below and the construction primitives on Diagram.
//
// Canonical identity is pointer identity: the node store guarantees that at
// most one *Node exists per (kind, VarIndex, low, high, value) tuple, so two
// handles are "the same node" in the spec's sense exactly when they are the
// same Go pointer.
type Node struct {
	varIndex VarIndex
	low      *Node
	high     *Node
	value    Value
	owner    *Diagram
}

// IsTerminal reports whether n is a leaf.
func (n *Node) IsTerminal() bool {
	return n.varIndex == Terminal
}

// IsInner reports whether n branches on a variable.
func (n *Node) IsInner() bool {
	return n.varIndex != Terminal
}

// VarIndex returns the variable level tested by an inner node, or Terminal
// for a leaf.
func (n *Node) VarIndex() VarIndex {
	return n.varIndex
}

// Low returns the false branch of an inner node, or nil if it has not been
// set yet (possible on a diagram that has not been through MakeComplete).
func (n *Node) Low() *Node {
	return n.low
}

// High returns the true branch of an inner node, or nil if it has not been
// set yet.
func (n *Node) High() *Node {
	return n.high
}

// Value returns the payload of a terminal node. Calling it on an inner node
// returns the zero Value; check IsTerminal first.
func (n *Node) Value() Value {
	return n.value
}

// nodeKey is the hash-consing key: two nodes are equivalent, and therefore
// must be represented by the same physical Node, iff they agree on every
// field of nodeKey. Because low and high are themselves hash-consed *Node
// pointers, pointer equality on them is exactly the "pointer-identical
// children" clause of the spec's equivalence relation, and a plain Go map
// can use nodeKey directly without any manual hashing.
type nodeKey struct {
	varIndex VarIndex
	low      *Node
	high     *Node
	value    Value
}

func keyOf(n *Node) nodeKey {
	return nodeKey{varIndex: n.varIndex, low: n.low, high: n.high, value: n.value}
}
