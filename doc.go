// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mtrobdd implements a shared, reduced, ordered Multi-Terminal Binary
Decision Diagram (MT-ROBDD): a hash-consed data structure that represents,
for each of several named roots, a function from fixed-length bit-strings to
non-negative terminal values.

The package is the kernel of a library that bridges two automaton backends:
each root corresponds to a source state of some automaton, and the decision
diagram rooted there maps a bit-encoded input symbol (plus, optionally, a few
extra "nondeterminism-choice" bits appended by an adapter) to a target state
identifier. Multiple roots share common subgraphs. Every construction
primitive keeps the diagram ordered; the canonicalization pipeline makes it
reduced.

Basics

Every Diagram has a fixed variable count, Varnum, declared at construction
(via New) and never changed afterwards. Variables are referenced by a level
in [0, Varnum), and along any root-to-leaf walk levels must strictly
increase. Most operations manipulate a *Node, an opaque handle to a vertex in
the diagram; two handles denote the same physical node if and only if they
are pointer-equal, which is the hash-consing invariant the store preserves
through every mutation.

Construction and canonicalization

Callers build a diagram by creating roots and inserting one bit-string path
at a time (InsertBitString). A freshly-inserted diagram is not required to be
reduced; running the canonicalization pipeline — Trim, then
RemoveRedundantTests, then MakeComplete — restores the reducedness and
totality invariants documented next to each method. AllPathsFrom then
recovers every (bits, value) pair the diagram represents, expanding any
variable that was never tested along a path into both of its values.

Flat-table bridge

ToFlat and NewFromFlat translate between this representation and a foreign,
index-based node table such as the one used by the MONA BDD package: nodes
become positions in an array, and low/high pointers become positions rather
than live references. The ForeignManager interface captures the two
primitives a foreign manager must expose for this to work.

Use of build tags

Compiling with the build tag `debug` runs the invariant checks after
CreateNode, InsertBitString and each canonicalization pass, and logs every
error the package returns; without it the checks run only on a Diagram
built with WithInvariantChecks(true), and nothing is logged. This follows
the same convention the original hashmap-based implementation this package
started from uses for its own diagnostics.

Non-goals

This package does not implement Boolean operations between diagrams
(apply/ite), variable reordering, or any automaton-level algorithmics such as
union, intersection, determinization, or minimization — those stay in the
foreign automaton backend and are reached, if at all, through the adapter
contract in the sibling adapter package.
*/
package mtrobdd
