// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import "testing"

//********************************************************************************************

func TestCreateNodeHashConsing(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t0 := d.CreateTerminal(1)
	t1 := d.CreateTerminal(1)
	if t0 != t1 {
		t.Errorf("CreateTerminal(1) twice: expected the same *Node, got distinct pointers")
	}

	n0, err := d.CreateNode(1, t0, nil)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	n1, err := d.CreateNode(1, t0, nil)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	if n0 != n1 {
		t.Errorf("CreateNode(1, t0, nil) twice: expected the same *Node, got distinct pointers")
	}
}

func TestCreateNodeRejectsBadOrder(t *testing.T) {
	d, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	bad, _ := d.CreateNode(2, nil, nil)
	if _, err := d.CreateNode(1, nil, bad); err != nil {
		t.Fatalf("CreateNode(1, nil, bad-at-2): expected no error (2 > 1), got %v", err)
	}
	worse, _ := d.CreateNode(0, nil, nil)
	if _, err := d.CreateNode(1, nil, worse); err == nil {
		t.Errorf("CreateNode(1, nil, node-at-0): expected a child-order error, got nil")
	}
}

func TestCreateNodeRejectsBadVarIndex(t *testing.T) {
	d, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateNode(2, nil, nil); err == nil {
		t.Errorf("CreateNode(2, ...) on a 2-variable diagram: expected out-of-range error, got nil")
	}
	if _, err := d.CreateNode(-1, nil, nil); err == nil {
		t.Errorf("CreateNode(-1, ...): expected out-of-range error, got nil")
	}
}

func TestCreateRootZeroVarnum(t *testing.T) {
	d, err := New(0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	root, err := d.CreateRoot(7)
	if err != nil {
		t.Fatalf("CreateRoot: %v", err)
	}
	if !root.IsTerminal() {
		t.Errorf("CreateRoot on a 0-variable diagram: expected a terminal placeholder, got an inner node")
	}
}

func TestCreateRootRejectsDuplicate(t *testing.T) {
	d, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := d.CreateRoot(0); err != nil {
		t.Fatalf("CreateRoot(0): %v", err)
	}
	if _, err := d.CreateRoot(0); err == nil {
		t.Errorf("CreateRoot(0) twice: expected a duplicate-root error, got nil")
	}
}
