// Package parser turns S-expression source text into syntax tree
// nodes by single-pass recursive descent with one character of
// lookahead.
//
// The grammar:
//
//	program  := ws* (node ws*)*
//	node     := atom | number | list
//	list     := '(' ws* (node ws*)* ')'
//	atom     := atom_start atom_char*
//	number   := digit+ ('.' digit+)?
//	ws       := ' '
//
// A reserved character (one of # [ ] { } " ' `) where a node is
// expected aborts the whole parse. Scanning an atom ends at any
// whitespace or control character, but only the plain space character
// is skipped between tokens; the asymmetry is long-standing behavior
// that callers round-trip against, so it is preserved.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/crisp-lang/crisp/ast"
)

// maxDepth bounds list nesting so adversarial input cannot exhaust
// the goroutine stack.
const maxDepth = 10000

// Parse reads the whole of in and returns its top-level nodes in
// order. There is no partial success: any error discards everything
// already parsed.
func Parse(in []byte) ([]*ast.Node, error) {
	return parseNodes(newScanner(in), 0)
}

// ParseString is Parse for a string input.
func ParseString(s string) ([]*ast.Node, error) {
	return Parse([]byte(s))
}

func parseNodes(s *scanner, depth int) ([]*ast.Node, error) {
	nodes := []*ast.Node{}
	for {
		chomp(s)
		node, ok, err := parseNode(s, depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// parseNode parses the node starting at the cursor. ok is false when
// the next character opens no production (end of program, or the
// closing ")" of an enclosing list).
func parseNode(s *scanner, depth int) (node *ast.Node, ok bool, err error) {
	if startsWithReserved(s) {
		return nil, false, ErrReservedChar
	}
	if node, ok := parseAtom(s); ok {
		return node, true, nil
	}
	if node, ok := parseNumber(s); ok {
		return node, true, nil
	}
	return parseList(s, depth)
}

var reserved = "#[]{}\"'`"

func startsWithReserved(s *scanner) bool {
	r, ok := s.peek()
	return ok && strings.ContainsRune(reserved, r)
}

func validAtomStart(s *scanner) bool {
	if startsWithReserved(s) {
		return false
	}
	r, ok := s.peek()
	if !ok || r == '(' || r == ')' {
		return false
	}
	return !unicode.IsSpace(r) && !unicode.IsControl(r) && !isDigit(r)
}

// parseAtom scans an atom token and folds it into a boolean literal
// on an exact, full-token match against "true" or "false". The
// comparison happens after scanning so tokens that merely start with
// a literal stay atoms.
func parseAtom(s *scanner) (*ast.Node, bool) {
	if !validAtomStart(s) {
		return nil, false
	}
	var buf strings.Builder
	for {
		r, ok := s.peek()
		if !ok || r == '(' || r == ')' || unicode.IsSpace(r) || unicode.IsControl(r) {
			break
		}
		buf.WriteRune(r)
		s.next()
	}
	switch tok := buf.String(); tok {
	case "true":
		return ast.True, true
	case "false":
		return ast.False, true
	default:
		return ast.NewAtom(tok), true
	}
}

// parseNumber scans digit+ ('.' digit+)? and produces a number node
// from the digits before the point; a fractional part is consumed but
// truncated away. When no digits are consumed, or the integer part
// does not fit int64, no node is produced.
func parseNumber(s *scanner) (*ast.Node, bool) {
	var intPart strings.Builder
	point := false
	for {
		r, ok := s.peek()
		if !ok {
			break
		}
		if !point && r == '.' && intPart.Len() > 0 {
			point = true
			s.next()
		} else if isDigit(r) {
			if !point {
				intPart.WriteRune(r)
			}
			s.next()
		} else {
			break
		}
	}
	if intPart.Len() == 0 {
		return nil, false
	}
	v, err := strconv.ParseInt(intPart.String(), 10, 64)
	if err != nil {
		return nil, false
	}
	return ast.NewNumber(v), true
}

func parseList(s *scanner, depth int) (*ast.Node, bool, error) {
	if r, ok := s.peek(); !ok || r != '(' {
		return nil, false, nil
	}
	if depth >= maxDepth {
		return nil, false, ErrMaxDepth
	}
	s.next()
	chomp(s)
	elements, err := parseNodes(s, depth+1)
	if err != nil {
		return nil, false, err
	}
	if r, ok := s.peek(); !ok || r != ')' {
		return nil, false, ErrBadList
	}
	s.next()
	return ast.NewListFromSlice(elements), true, nil
}

// chomp drops plain spaces. Other whitespace is left in place; it
// terminates the enclosing production instead.
func chomp(s *scanner) {
	for {
		r, ok := s.peek()
		if !ok || r != ' ' {
			return
		}
		s.next()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
