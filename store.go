// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

// nodeStore is the hash-consed set of unique nodes for one Diagram. It
// guarantees that at most one physical *Node exists per equivalence class,
// by keying a Go map on nodeKey — which is exactly the spec's equivalence
// relation, made comparable for free by the fact that low/high are already
// hash-consed pointers.
type nodeStore struct {
	unique map[nodeKey]*Node
	owner  *Diagram // the Diagram every node created here is stamped with

	uniqueAccess int // total lookups (not reported by Stats)
	uniqueHit    int // lookups that found an existing node
	uniqueMiss   int // lookups that created a new node
}

func newNodeStore(hint int, owner *Diagram) *nodeStore {
	if hint < 0 {
		hint = 0
	}
	return &nodeStore{unique: make(map[nodeKey]*Node, hint), owner: owner}
}

// createNode returns the canonical inner node for (v, low, high), creating
// it if no equivalent node exists yet.
func (s *nodeStore) createNode(v VarIndex, low, high *Node) *Node {
	key := nodeKey{varIndex: v, low: low, high: high}
	s.uniqueAccess++
	if n, ok := s.unique[key]; ok {
		s.uniqueHit++
		return n
	}
	s.uniqueMiss++
	n := &Node{varIndex: v, low: low, high: high, owner: s.owner}
	s.unique[key] = n
	return n
}

// createTerminal returns the canonical terminal node for value.
func (s *nodeStore) createTerminal(value Value) *Node {
	key := nodeKey{varIndex: Terminal, value: value}
	s.uniqueAccess++
	if n, ok := s.unique[key]; ok {
		s.uniqueHit++
		return n
	}
	s.uniqueMiss++
	n := &Node{varIndex: Terminal, value: value, owner: s.owner}
	s.unique[key] = n
	return n
}

// insertNode inserts a preconstructed node into the store, as used by the
// flat-table bridge when importing nodes built outside of createNode. It
// reports whether the node was new to the store.
func (s *nodeStore) insertNode(n *Node) bool {
	key := keyOf(n)
	if _, ok := s.unique[key]; ok {
		return false
	}
	s.unique[key] = n
	return true
}

func (s *nodeStore) size() int {
	return len(s.unique)
}
