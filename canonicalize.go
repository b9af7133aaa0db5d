// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

// Trim performs reachability garbage collection: starting from every root,
// it marks every node reachable via low/high and replaces the node store
// with exactly the marked set. The root index is unchanged. Unlike the
// arena-and-refcount garbage collector this package's ancestry uses (which
// marks bits inside a fixed-size node table because its "pointers" are
// reused array slots), our nodes are ordinary Go pointers, so trim just
// walks the reachable set with a plain map and lets the old, now-unreferenced
// nodes and their map entries be collected by the Go runtime.
func (d *Diagram) Trim() *Diagram {
	reachable := make(map[*Node]bool)
	var worklist []*Node
	for _, root := range d.roots {
		if !reachable[root] {
			reachable[root] = true
			worklist = append(worklist, root)
		}
	}
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if n.low != nil && !reachable[n.low] {
			reachable[n.low] = true
			worklist = append(worklist, n.low)
		}
		if n.high != nil && !reachable[n.high] {
			reachable[n.high] = true
			worklist = append(worklist, n.high)
		}
	}

	newStore := newNodeStore(len(reachable), d)
	for n := range reachable {
		newStore.unique[keyOf(n)] = n
	}
	d.store = newStore
	d.checkInvariants("Trim")
	return d
}

// RemoveRedundantTests rewrites every root's subtree bottom-up, collapsing
// any inner node whose rewritten low and high children turn out to be
// pointer-identical into that common child. The rewrite builds a fresh node
// store, so any *Node handle held by a caller from before this call is
// invalidated — only handles returned afterwards (including the new root
// nodes) remain valid. This pass is idempotent: running it again on an
// already-reduced diagram rebuilds every node as a structurally identical
// copy, so the node count and shape are unchanged.
func (d *Diagram) RemoveRedundantTests() *Diagram {
	fresh := newNodeStore(d.store.size(), d)
	memo := make(map[*Node]*Node)

	var rewrite func(n *Node) *Node
	rewrite = func(n *Node) *Node {
		if n == nil {
			return nil
		}
		if cached, ok := memo[n]; ok {
			return cached
		}
		if n.IsTerminal() {
			out := fresh.createTerminal(n.value)
			memo[n] = out
			return out
		}
		low := rewrite(n.low)
		high := rewrite(n.high)
		var out *Node
		if low != nil && low == high {
			out = low
		} else {
			out = fresh.createNode(n.varIndex, low, high)
		}
		memo[n] = out
		return out
	}

	newRoots := make(map[RootName]*Node, len(d.roots))
	for name, root := range d.roots {
		newRoots[name] = rewrite(root)
	}

	d.store = fresh
	d.roots = newRoots
	d.checkInvariants("RemoveRedundantTests")
	return d
}

// MakeCompleteDefault runs MakeComplete with the spec's default arguments:
// sink value Sink, completing both holes and unrooted terminal values.
func (d *Diagram) MakeCompleteDefault() *Diagram {
	return d.MakeComplete(Sink, true)
}

// MakeComplete fills every missing child of an inner node with a shared
// sink terminal, and — when completeTerminalNodes is true — adds a root
// name -> sink binding for every terminal value that appears inside the
// diagram but is not already a root name. The sink terminal is only
// materialized (inserted into the store and bound to sinkValue) if at least
// one hole was filled or at least one terminal-completion root was added;
// an already-complete diagram with every value already rooted leaves the
// store untouched.
func (d *Diagram) MakeComplete(sinkValue Value, completeTerminalNodes bool) *Diagram {
	sink := &Node{varIndex: Terminal, value: sinkValue, owner: d}
	used := false

	if completeTerminalNodes {
		for _, n := range d.store.unique {
			if !n.IsTerminal() {
				continue
			}
			if _, ok := d.roots[n.value]; !ok {
				d.roots[n.value] = sink
				used = true
			}
		}
	}

	// Collect the inner nodes with a hole before mutating any of them: a
	// node's map key is derived from its low/high, so filling a hole
	// in place would leave it keyed under a now-stale entry if we rewrote
	// the map while ranging over it.
	var incomplete []*Node
	for _, n := range d.store.unique {
		if n.IsInner() && (n.low == nil || n.high == nil) {
			incomplete = append(incomplete, n)
		}
	}
	for _, n := range incomplete {
		delete(d.store.unique, keyOf(n))
		if n.low == nil {
			n.low = sink
			used = true
		}
		if n.high == nil {
			n.high = sink
			used = true
		}
		d.store.unique[keyOf(n)] = n
	}

	if used {
		d.store.unique[keyOf(sink)] = sink
		d.roots[sinkValue] = sink
	}

	d.checkInvariants("MakeComplete")
	return d
}
