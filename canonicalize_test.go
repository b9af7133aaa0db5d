// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "testing"

//********************************************************************************************

// bitEntry and bitEntries stand in for a map[BitString]Value in test setup:
// BitString is a slice, so it cannot be a map key.
type bitEntry struct {
	bits  BitString
	value Value
}

type bitEntries []bitEntry

func buildDiagram(t *testing.T, varnum int, paths bitEntries) *Diagram {
	d, err := New(varnum)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	for _, p := range paths {
		if err := d.InsertBitString(0, p.bits, p.value); err != nil {
			t.Fatalf("InsertBitString(%v, %d): %v", p.bits, p.value, err)
		}
	}
	return d
}

func TestTrimDropsUnreachableNodes(t *testing.T) {
	d := buildDiagram(t, 2, bitEntries{
		{BitString{Lo, Lo}, 1},
		{BitString{Lo, Hi}, 2},
	})
	// A node not reachable from any root, built directly against the store.
	d.CreateTerminal(99)
	before := d.NodeCount()

	d.Trim()
	after := d.NodeCount()
	if after >= before {
		t.Errorf("Trim after adding an orphan terminal: expected node count to shrink from %d, got %d", before, after)
	}
}

func TestRemoveRedundantTestsCollapsesIdenticalChildren(t *testing.T) {
	d := buildDiagram(t, 2, bitEntries{
		{BitString{Lo, Lo}, 7},
		{BitString{Lo, Hi}, 7},
		{BitString{Hi, Lo}, 7},
		{BitString{Hi, Hi}, 7},
	})
	d.Trim()
	d.RemoveRedundantTests()

	root, _ := d.GetRoot(0)
	if !root.IsTerminal() || root.Value() != 7 {
		t.Errorf("a diagram that always returns 7: expected RemoveRedundantTests to collapse it to terminal(7), got %+v", root)
	}
}

func TestRemoveRedundantTestsIsIdempotent(t *testing.T) {
	d := buildDiagram(t, 3, bitEntries{
		{BitString{Lo, Lo, Lo}, 1},
		{BitString{Lo, Lo, Hi}, 2},
		{BitString{Hi, Lo, Lo}, 3},
	})
	d.Trim().RemoveRedundantTests()
	first := d.NodeCount()
	d.RemoveRedundantTests()
	second := d.NodeCount()
	if first != second {
		t.Errorf("RemoveRedundantTests twice: expected node count unchanged (%d), got %d", first, second)
	}
}

func TestMakeCompleteFillsHolesWithSink(t *testing.T) {
	d := buildDiagram(t, 2, bitEntries{
		{BitString{Lo, Lo}, 1},
	})
	root, _ := d.GetRoot(0)
	if root.High() != nil {
		t.Fatalf("setup: expected an unset high child before MakeComplete")
	}

	d.MakeCompleteDefault()

	root, _ = d.GetRoot(0)
	if root.Low() == nil || root.High() == nil {
		t.Errorf("MakeComplete: expected every hole filled, got low=%v high=%v", root.Low(), root.High())
	}
	sinkRoot, ok := d.GetRoot(Sink)
	if !ok {
		t.Errorf("MakeComplete: expected a root bound to Sink")
	} else if !sinkRoot.IsTerminal() || sinkRoot.Value() != Sink {
		t.Errorf("MakeComplete: root Sink should point at terminal(Sink), got %+v", sinkRoot)
	}
}

func TestMakeCompleteAddsMissingTerminalRoots(t *testing.T) {
	d := buildDiagram(t, 2, bitEntries{
		{BitString{Lo, Lo}, 1},
		{BitString{Lo, Hi}, 2},
		{BitString{Hi, Lo}, 1},
		{BitString{Hi, Hi}, 2},
	})
	d.MakeComplete(Sink, true)

	if _, ok := d.GetRoot(1); !ok {
		t.Errorf("MakeComplete(completeTerminalNodes=true): expected a root bound to terminal value 1")
	}
	if _, ok := d.GetRoot(2); !ok {
		t.Errorf("MakeComplete(completeTerminalNodes=true): expected a root bound to terminal value 2")
	}
}

func TestMakeCompleteNoopWhenAlreadyComplete(t *testing.T) {
	d, err := New(0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A 0-variable root whose value is also its own root name already
	// satisfies the root-coverage invariant without any help from
	// MakeComplete.
	d.PromoteToRoot(d.CreateTerminal(5), 5)
	before := d.NodeCount()
	d.MakeComplete(Sink, true)
	after := d.NodeCount()
	if before != after {
		t.Errorf("MakeComplete on an already-complete 0-variable diagram: expected node count unchanged (%d), got %d", before, after)
	}
	if _, ok := d.GetRoot(Sink); ok {
		t.Errorf("MakeComplete on an already-complete diagram: expected no Sink root to be materialized")
	}
}
