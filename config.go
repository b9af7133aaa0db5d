// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

// configs holds the configurable parameters of a Diagram, following the
// same functional-options convention its ancestry used for the BDD node
// table (Nodesize, Cachesize, ...): New takes a variadic list of Option,
// each mutating a configs built from sane defaults.
type configs struct {
	nodeHint        int  // initial capacity hint for the unique table
	invariantChecks bool // validate invariants after CreateNode, InsertBitString and each canonicalization pass
}

func defaultConfigs(varnum int) *configs {
	return &configs{
		nodeHint:        2*varnum + 2,
		invariantChecks: _DEBUG,
	}
}

// Option configures a Diagram at construction time.
type Option func(*configs)

// WithNodeHint sets a preferred initial capacity for the node store's
// unique table. The table still grows on demand; this only avoids a few
// early reallocations for callers that know roughly how large their
// diagram will get.
func WithNodeHint(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.nodeHint = size
		}
	}
}

// WithInvariantChecks forces the O(|nodes|) invariant checks to run after
// CreateNode, InsertBitString and each canonicalization pass, regardless of
// the debug build tag. It is meant
// for tests; on a large diagram it dominates running time.
func WithInvariantChecks(on bool) Option {
	return func(c *configs) {
		c.invariantChecks = on
	}
}
