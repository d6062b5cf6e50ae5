package lispcalc

import (
	"strconv"
	"unicode/utf8"
)

// Expr = num | op | symbol | List
// List = '(' ws* [ Expr { ws+ Expr } ] ws* ')'
// num  = [ '+' | '-' ] ( digits [ '.' digits* ] | '.' digits ) [ ( 'e' | 'E' ) [ '+' | '-' ] digits ]
//      | '#' ( 'b' | 'o' | 'd' ) [ '+' | '-' ] digits
// op   = '<=' | '>=' | '*' | '/' | '+' | '-' | '%' | '>' | '<' | '='
//
// Alternatives are tried in that order, so "-1" is a number and "- 1" is an
// operator followed by a number.

// Parse parses a single expression. Whitespace around the expression is
// ignored; anything else left after it is an error. The given options are
// applied in order.
func Parse(src string, opts ...ParseOption) (Expr, error) {
	p := newparsectx(opts)
	s := scan(src)
	s.skipSpace()
	e, err := parseexpr(s, &p, 0)
	if err != nil {
		return nil, err
	}
	s.skipSpace()
	if r := s.peek(); r != eof {
		return nil, itShouldNotHaveEndedThisWay(s, r)
	}
	return e, nil
}

// ParsePrefix parses one expression at the start of src, after any leading
// whitespace, and returns it along with the remaining unparsed text.
func ParsePrefix(src string, opts ...ParseOption) (Expr, string, error) {
	p := newparsectx(opts)
	s := scan(src)
	s.skipSpace()
	e, err := parseexpr(s, &p, 0)
	if err != nil {
		return nil, "", err
	}
	return e, s.rest(), nil
}

// parseexpr parses one expression at the current position. depth is the
// number of lists enclosing it.
func parseexpr(s *scanner, p *parsectx, depth int) (Expr, error) {
	n, ok, err := s.scanNum(!p.noradix)
	if err != nil {
		return nil, err
	}
	if ok {
		return n, nil
	}
	if op, ok := s.scanOp(); ok {
		return op, nil
	}
	if sym, ok := s.scanSymbol(); ok {
		return sym, nil
	}
	switch r := s.peek(); r {
	case '(':
		return parselist(s, p, depth+1)
	case eof:
		return nil, &SyntaxError{Col: s.col, Desc: "no expression"}
	default:
		return nil, itShouldNotHaveEndedThisWay(s, r)
	}
}

// parselist parses a list. The current rune must be the open paren.
func parselist(s *scanner, p *parsectx, depth int) (Expr, error) {
	open := s.col
	if depth > p.maxdepth {
		return nil, &SyntaxError{Col: open, Text: "(", Desc: "lists nested more than " + strconv.Itoa(p.maxdepth) + " deep"}
	}
	s.advance(1)
	s.skipSpace()
	l := List{}
	sep := true
	for {
		switch r := s.peek(); r {
		case ')':
			s.advance(1)
			return l, nil
		case eof:
			return nil, &SyntaxError{Col: open, Text: "(", Desc: "open paren with no close paren"}
		default:
			if !sep {
				return nil, &SyntaxError{Col: s.col, Text: string(r), Desc: "missing whitespace before"}
			}
		}
		e, err := parseexpr(s, p, depth)
		if err != nil {
			return nil, err
		}
		l = append(l, e)
		sep = s.skipSpace() > 0
	}
}

// itShouldNotHaveEndedThisWay returns an error for an unexpected rune r at
// the current position.
func itShouldNotHaveEndedThisWay(s *scanner, r rune) error {
	switch r {
	case ')':
		return &SyntaxError{Col: s.col, Text: ")", Desc: "close paren with no open paren"}
	default:
		if r == utf8.RuneError {
			return &SyntaxError{Col: s.col, Text: string(r), Desc: "invalid UTF-8"}
		}
		return &SyntaxError{Col: s.col, Text: string(r), Desc: "unexpected character"}
	}
}
