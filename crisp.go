// Package crisp parses a minimal S-expression language into an
// immutable syntax tree whose list nodes are backed by a persistent,
// structurally shared list.
//
// The subpackages carry the real work: parser holds the recursive
// descent, ast the node variants and canonical printer, and list the
// persistent list. This package re-exports the common entry points so
// typical callers need a single import:
//
//	nodes, err := crisp.ParseString("(+ 1 2)")
package crisp

import (
	"github.com/crisp-lang/crisp/ast"
	"github.com/crisp-lang/crisp/parser"
)

// Parse returns the top-level nodes of the source text in, in order,
// or a parse error. See package parser for the grammar and the error
// kinds.
func Parse(in []byte) ([]*ast.Node, error) {
	return parser.Parse(in)
}

// ParseString is Parse for a string input.
func ParseString(s string) ([]*ast.Node, error) {
	return parser.ParseString(s)
}

// Encode returns the canonical textual form of n.
func Encode(n *ast.Node) []byte {
	return ast.Encode(n)
}
