package parser

import (
	"errors"
)

var (
	// ErrReservedChar is returned when a reserved character appears
	// where a node is expected.
	ErrReservedChar = errors.New("reserved character")

	// ErrBadList is returned when a list opened with "(" has no
	// matching ")" before an unparseable token or end of input.
	ErrBadList = errors.New("bad list")

	// ErrMaxDepth is returned when list nesting exceeds the fixed
	// depth bound. Legitimate programs never get near it.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)
