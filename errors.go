// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtrobdd

import (
	"errors"
	"fmt"
	"log"
)

// Kind classifies the typed errors this package returns. It lets callers
// use errors.As to recover the taxonomy without string-matching messages.
type Kind int

const (
	// ShapeError reports a malformed bit-string, variable index, or
	// child-order violation.
	ShapeError Kind = iota
	// RootError reports a duplicate root creation, a non-contiguous root
	// naming on export, or a lookup of a root name that does not exist
	// where one is required.
	RootError
	// EncodingError reports an adapter-level failure to encode a symbol.
	EncodingError
	// InternalError reports a node from a different Diagram (AllPathsFrom),
	// an incomplete node met on export (ToFlat), or a failed file write
	// (SaveAsDot), in every build. An invariant violation found by
	// checkInvariants is not returned as an error: it panics (see debug.go
	// and release.go).
	InternalError
)

func (k Kind) String() string {
	switch k {
	case ShapeError:
		return "ShapeError"
	case RootError:
		return "RootError"
	case EncodingError:
		return "EncodingError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Error is the typed error every fallible operation in this package
// returns. Operations validate their inputs before mutating the diagram, so
// an Error never leaves the diagram in a partially-updated state.
type Error struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "InsertBitString"
	Err  error  // the underlying cause, or nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mtrobdd: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("mtrobdd: %s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, op string, err error) *Error {
	e := &Error{Kind: kind, Op: op, Err: err}
	if _DEBUG {
		log.Println(e)
	}
	return e
}

var (
	errMismatchedVarnum   = errors.New("bit-string length does not match Varnum")
	errEmptyBitString     = errors.New("bit-string must be non-empty")
	errChildOrder         = errors.New("child variable index must be strictly greater than parent's")
	errBadVarIndex        = errors.New("variable index out of range")
	errDuplicateRoot      = errors.New("root name already present")
	errUnknownRoot        = errors.New("root name not found")
	errNonContiguousRoots = errors.New("root names are not a contiguous range starting at 0")
	errForeignNode        = errors.New("node does not belong to this diagram")
	errUnknownSymbol      = errors.New("symbol absent from encoder's dictionary")
)
