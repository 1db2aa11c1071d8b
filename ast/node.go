// Package ast defines the syntax tree produced by the parser: a
// closed set of immutable node variants, with list nodes backed by the
// persistent list type.
package ast

import (
	"github.com/crisp-lang/crisp/list"
)

// Node is a single element of the syntax tree. A Node is immutable
// once constructed; constructors take already-validated payloads and
// perform no validation of their own.
type Node struct {
	nt NodeType

	num  int64
	text string
	l    list.List[*Node]
}

// True and False are the two boolean literal nodes. They are shared;
// immutability makes that safe.
var (
	True  = &Node{nt: NodeTypeTrue}
	False = &Node{nt: NodeTypeFalse}
)

// NewList returns a list node backed by l. The node shares l's chain;
// it does not copy it.
func NewList(l list.List[*Node]) *Node {
	return &Node{nt: NodeTypeList, l: l}
}

// NewListFromSlice returns a list node holding the given children in
// order.
func NewListFromSlice(children []*Node) *Node {
	return NewList(list.FromSlice(children))
}

// NewNumber returns a number node holding v.
func NewNumber(v int64) *Node {
	return &Node{nt: NodeTypeNumber, num: v}
}

// NewAtom returns an atom node holding the symbolic token s.
func NewAtom(s string) *Node {
	return &Node{nt: NodeTypeAtom, text: s}
}

// NewText returns a text node holding s. Text nodes print as quoted
// strings but have no source form the parser accepts.
func NewText(s string) *Node {
	return &Node{nt: NodeTypeText, text: s}
}

// Type returns the variant of the node.
func (n *Node) Type() NodeType {
	return n.nt
}

// List returns the children of a list node. It is only meaningful
// when Type is NodeTypeList; for any other variant it returns an
// empty list.
func (n *Node) List() list.List[*Node] {
	return n.l
}

// Number returns the value of a number node.
func (n *Node) Number() int64 {
	return n.num
}

// Atom returns the token of an atom node.
func (n *Node) Atom() string {
	return n.text
}

// Text returns the payload of a text node.
func (n *Node) Text() string {
	return n.text
}

// Equal reports whether n and o are structurally equal: same variant,
// same payload, and for lists the same children in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt {
		return false
	}
	switch n.nt {
	case NodeTypeList:
		return list.EqualFunc(n.l, o.l, (*Node).Equal)
	case NodeTypeNumber:
		return n.num == o.num
	case NodeTypeAtom, NodeTypeText:
		return n.text == o.text
	}
	return true
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return string(Encode(n))
}
