package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the canonical textual form of n to w. Writes are
// unbuffered; the first error from w aborts the walk and is returned
// unchanged.
func Fprint(w io.Writer, n *Node) error {
	switch n.Type() {
	case NodeTypeTrue:
		return writeString(w, "true")
	case NodeTypeFalse:
		return writeString(w, "false")
	case NodeTypeNumber:
		return writeString(w, strconv.FormatInt(n.Number(), 10))
	case NodeTypeAtom:
		return writeString(w, n.Atom())
	case NodeTypeText:
		return writeString(w, quote(n.Text()))
	case NodeTypeList:
		return fprintList(w, n)
	}
	return fmt.Errorf("unknown node type %d", n.Type())
}

func fprintList(w io.Writer, n *Node) error {
	if err := writeString(w, "("); err != nil {
		return err
	}
	first := true
	for it := n.List().Iter(); ; {
		child, ok := it.Next()
		if !ok {
			break
		}
		if !first {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		first = false
		if err := Fprint(w, child); err != nil {
			return err
		}
	}
	return writeString(w, ")")
}

// quote wraps s in double quotes, escaping backslash and double-quote
// characters. Everything else passes through verbatim.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Encode returns the canonical textual form of n.
func Encode(n *Node) []byte {
	var buf bytes.Buffer
	// a bytes.Buffer never fails to write
	_ = Fprint(&buf, n)
	return buf.Bytes()
}

// Print dumps a human-readable view of the tree rooted at n to
// stdout, one node per line, indented by depth.
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Printf("%s:nil\n", indent)
		return
	}
	switch n.Type() {
	case NodeTypeList:
		fmt.Printf("%s(%s)[%d]\n", indent, n.Type(), n.List().Len())
		for it := n.List().Iter(); ; {
			child, ok := it.Next()
			if !ok {
				break
			}
			printLevel(child, level+1)
		}
	default:
		fmt.Printf("%s(%s): %s\n", indent, n.Type(), Encode(n))
	}
}
