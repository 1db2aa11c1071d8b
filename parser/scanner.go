package parser

// scanner is a read-only cursor over the decoded input. The cursor
// only ever advances; peek provides the single rune of lookahead the
// grammar needs.
type scanner struct {
	src []rune
	pos int
}

func newScanner(in []byte) *scanner {
	return &scanner{src: []rune(string(in))}
}

// peek returns the next unconsumed rune without advancing. The second
// return value is false at end of input.
func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// next consumes and returns the next rune.
func (s *scanner) next() (rune, bool) {
	r, ok := s.peek()
	if ok {
		s.pos++
	}
	return r, ok
}
