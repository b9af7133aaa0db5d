// Package adapter implements the contract between the mtrobdd engine and a
// foreign automaton backend: encoding a transition's symbol and
// disambiguating choice into a BitString, building a diagram from a stream
// of transitions, and remapping root names after a state renumbering pass
// on the foreign side.
//
// The automaton backends themselves — union, intersection, determinization,
// minimization — are out of scope here and stay on the foreign side,
// reached only through TransitionIterator and mtrobdd.ForeignManager.
package adapter

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/mamonata/mtrobdd"
)

// SymbolEncoder turns one alphabet symbol into its fixed-width encoding.
// NumAlphabetVars is the number of leading bits every encoding occupies.
type SymbolEncoder interface {
	NumAlphabetVars() int
	Encode(symbol byte) (mtrobdd.BitString, error)
}

// ChoiceEncoder turns a disambiguating choice index into its fixed-width
// encoding. NumChoiceVars is the number of trailing bits every encoding
// occupies.
type ChoiceEncoder interface {
	NumChoiceVars() int
	Encode(choice int) mtrobdd.BitString
}

// Transition is one foreign-side edge: Source reads Symbol and, among
// possibly several successors, picks Target via Choice.
type Transition struct {
	Source, Target uint64
	Symbol         byte
	Choice         int
}

// TransitionIterator streams the transitions of one foreign automaton.
// Next returns false once exhausted.
type TransitionIterator interface {
	Next() (Transition, bool)
}

// BuildDiagram drains it, inserting one bit-string per transition (alphabet
// bits first, choice bits last — so that projecting out the trailing choice
// bits, the performance-sensitive path for determinization, never touches
// the alphabet bits), and runs the canonicalization pipeline once at the
// end. Each transition's Source is the root name its bit-string is inserted
// under; Target is the terminal value at the end of the path.
func BuildDiagram(varnum int, se SymbolEncoder, ce ChoiceEncoder, it TransitionIterator) (*mtrobdd.Diagram, error) {
	if se.NumAlphabetVars()+ce.NumChoiceVars() != varnum {
		return nil, fmt.Errorf("adapter: encoder widths %d+%d do not match varnum %d", se.NumAlphabetVars(), ce.NumChoiceVars(), varnum)
	}

	d, err := mtrobdd.New(varnum)
	if err != nil {
		return nil, err
	}

	seen := make(map[mtrobdd.RootName]bool)
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		name := mtrobdd.RootName(t.Source)
		if !seen[name] {
			if _, err := d.CreateRoot(name); err != nil {
				return nil, err
			}
			seen[name] = true
		}

		symBits, err := se.Encode(t.Symbol)
		if err != nil {
			return nil, err
		}
		choiceBits := ce.Encode(t.Choice)

		bits := make(mtrobdd.BitString, 0, varnum)
		bits = append(bits, symBits...)
		bits = append(bits, choiceBits...)

		if err := d.InsertBitString(name, bits, mtrobdd.Value(t.Target)); err != nil {
			return nil, err
		}
	}

	d.Trim().RemoveRedundantTests().MakeCompleteDefault()
	return d, nil
}

// RemapStates rebuilds d with every root renamed according to remap,
// leaving node identity untouched. It fails if remap's image is not a
// bijection onto a contiguous range, matching the root-naming convention
// the rest of the engine assumes.
func RemapStates(d *mtrobdd.Diagram, remap map[mtrobdd.RootName]mtrobdd.RootName) (*mtrobdd.Diagram, error) {
	out, err := mtrobdd.New(d.Varnum())
	if err != nil {
		return nil, err
	}

	seen := make(map[mtrobdd.RootName]bool)
	for _, oldName := range d.Roots() {
		newName, ok := remap[oldName]
		if !ok {
			return nil, fmt.Errorf("adapter: no remapping for root %d", oldName)
		}
		if seen[newName] {
			return nil, fmt.Errorf("adapter: remap target %d used by more than one root", newName)
		}
		seen[newName] = true
		root, _ := d.GetRoot(oldName)
		out.PromoteToRoot(root, newName)
	}
	for i := 0; i < len(seen); i++ {
		if !seen[mtrobdd.RootName(i)] {
			return nil, fmt.Errorf("adapter: remap targets are not a contiguous range starting at 0: missing %d", i)
		}
	}
	out.Trim()
	return out, nil
}

// ByteSymbolEncoder encodes one byte per symbol as 8 big-endian bits, built
// on a bitset.BitSet for the byte-to-bits assembly.
type ByteSymbolEncoder struct{}

func (ByteSymbolEncoder) NumAlphabetVars() int { return 8 }

func (ByteSymbolEncoder) Encode(symbol byte) (mtrobdd.BitString, error) {
	bs := bitset.New(8)
	for i := uint(0); i < 8; i++ {
		if symbol&(1<<(7-i)) != 0 {
			bs.Set(i)
		}
	}
	bits := make(mtrobdd.BitString, 8)
	for i := uint(0); i < 8; i++ {
		if bs.Test(i) {
			bits[i] = mtrobdd.Hi
		} else {
			bits[i] = mtrobdd.Lo
		}
	}
	return bits, nil
}

// IndexChoiceEncoder encodes a non-negative choice index as width bits,
// big-endian, via a bitset.BitSet. It is the minimal disambiguator for a
// bounded number of parallel successors per (source, symbol) pair.
type IndexChoiceEncoder struct {
	Width int
}

func NewIndexChoiceEncoder(maxChoices int) IndexChoiceEncoder {
	width := 0
	for n := maxChoices; n > 0; n >>= 1 {
		width++
	}
	if width == 0 {
		width = 1
	}
	return IndexChoiceEncoder{Width: width}
}

func (e IndexChoiceEncoder) NumChoiceVars() int { return e.Width }

func (e IndexChoiceEncoder) Encode(choice int) mtrobdd.BitString {
	bs := bitset.New(uint(e.Width))
	for i := 0; i < e.Width; i++ {
		if choice&(1<<(e.Width-1-i)) != 0 {
			bs.Set(uint(i))
		}
	}
	bits := make(mtrobdd.BitString, e.Width)
	for i := 0; i < e.Width; i++ {
		if bs.Test(uint(i)) {
			bits[i] = mtrobdd.Hi
		} else {
			bits[i] = mtrobdd.Lo
		}
	}
	return bits
}
