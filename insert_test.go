// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "testing"

//********************************************************************************************

func TestInsertBitStringWalksToValue(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if err := d.InsertBitString(0, BitString{Lo, Hi, Lo}, 42); err != nil {
		t.Fatalf("InsertBitString: %v", err)
	}

	root, _ := d.GetRoot(0)
	n := root
	for _, b := range []Bit{Lo, Hi, Lo} {
		if n.IsTerminal() {
			t.Fatalf("walk hit a terminal early")
		}
		if b == Lo {
			n = n.Low()
		} else {
			n = n.High()
		}
		if n == nil {
			t.Fatalf("walk hit an unset child")
		}
	}
	if !n.IsTerminal() || n.Value() != 42 {
		t.Errorf("InsertBitString(Lo,Hi,Lo, 42): expected terminal(42) at the end of the walk, got %+v", n)
	}
}

func TestInsertBitStringPreservesSharing(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if err := d.InsertBitString(0, BitString{Lo, Lo, Lo}, 1); err != nil {
		t.Fatalf("InsertBitString: %v", err)
	}
	root, _ := d.GetRoot(0)
	before := root.Low()

	if err := d.InsertBitString(0, BitString{Hi, Lo, Lo}, 1); err != nil {
		t.Fatalf("InsertBitString: %v", err)
	}
	root, _ = d.GetRoot(0)
	after := root.Low()

	if before != after {
		t.Errorf("inserting a path under Hi: expected the untouched Lo subtree to be reused, got a rebuilt node")
	}
}

func TestInsertBitStringRejectsWrongLength(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if err := d.InsertBitString(0, BitString{Lo, Hi}, 1); err == nil {
		t.Errorf("InsertBitString with a 2-bit string on a 3-variable diagram: expected a shape error, got nil")
	}
}

func TestInsertBitStringRejectsUnknownRoot(t *testing.T) {
	d, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := d.InsertBitString(0, BitString{Lo, Hi}, 1); err == nil {
		t.Errorf("InsertBitString against a root that was never created: expected a root error, got nil")
	}
}

func TestInsertBitStringIdempotent(t *testing.T) {
	d, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if err := d.InsertBitString(0, BitString{Hi, Lo}, 9); err != nil {
		t.Fatalf("InsertBitString: %v", err)
	}
	before := d.NodeCount()
	if err := d.InsertBitString(0, BitString{Hi, Lo}, 9); err != nil {
		t.Fatalf("InsertBitString: %v", err)
	}
	after := d.NodeCount()
	if before != after {
		t.Errorf("inserting the same (bits, value) twice: expected node count unchanged by hash-consing, got %d then %d", before, after)
	}
}
