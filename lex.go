package lispcalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// eof is the rune returned by peek at the end of the input.
const eof = -1

// scanner tracks a position in the source text. The parser tries each kind of
// term in turn at the current position; a scan method that does not match
// leaves the position where it was.
type scanner struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// col is the 1-based rune column of the next rune.
	col int
}

func scan(src string) *scanner {
	return &scanner{src: src, col: 1}
}

// rest returns the unscanned input.
func (s *scanner) rest() string {
	return s.src[s.off:]
}

// peek returns the next rune without consuming it, or eof.
func (s *scanner) peek() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return r
}

// advance consumes n bytes, which must end on a rune boundary.
func (s *scanner) advance(n int) {
	s.col += utf8.RuneCountInString(s.src[s.off : s.off+n])
	s.off += n
}

// skipSpace consumes whitespace and returns the number of runes skipped.
func (s *scanner) skipSpace() int {
	k := 0
	for {
		r, sz := utf8.DecodeRuneInString(s.src[s.off:])
		if sz == 0 || !unicode.IsSpace(r) {
			return k
		}
		s.off += sz
		s.col++
		k++
	}
}

// scanNum scans a numeric literal. If there is no number at the current
// position, the result is false with no error. A malformed or out-of-range
// literal is an error.
func (s *scanner) scanNum(radix bool) (Number, bool, error) {
	r := s.rest()
	if radix && strings.HasPrefix(r, "#") {
		return s.scanRadix()
	}
	i := 0
	if i < len(r) && (r[i] == '+' || r[i] == '-') {
		i++
	}
	dig := digits(r[i:], 10)
	i += dig
	if i < len(r) && r[i] == '.' {
		// 5. and .5 are numbers, but . is not.
		if frac := digits(r[i+1:], 10); dig > 0 || frac > 0 {
			dig += frac
			i += 1 + frac
		}
	}
	if dig == 0 {
		return 0, false, nil
	}
	if i < len(r) && (r[i] == 'e' || r[i] == 'E') {
		// An exponent marker without digits is not part of the number.
		j := i + 1
		if j < len(r) && (r[j] == '+' || r[j] == '-') {
			j++
		}
		if ed := digits(r[j:], 10); ed > 0 {
			i = j + ed
		}
	}
	text := r[:i]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, &ValueError{Kind: OutOfBounds, Text: text, Col: s.col}
		}
		panic("lispcalc: scanned invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	if f == 0 && underflows(text) {
		return 0, false, &ValueError{Kind: OutOfBounds, Text: text, Col: s.col}
	}
	s.advance(i)
	return Number(f), true, nil
}

// underflows reports whether a decimal literal that parsed to zero has a
// nonzero mantissa, meaning its exponent took it below the smallest float64.
func underflows(text string) bool {
	if k := strings.IndexAny(text, "eE"); k >= 0 {
		text = text[:k]
	}
	return strings.ContainsAny(text, "123456789")
}

// scanRadix scans a #b, #o, or #d literal. The current rune must be #.
func (s *scanner) scanRadix() (Number, bool, error) {
	r := s.rest()
	var base int
	if len(r) >= 2 {
		switch r[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'd', 'D':
			base = 10
		}
	}
	if base == 0 {
		text := r[:1]
		if len(r) >= 2 {
			_, sz := utf8.DecodeRuneInString(r[1:])
			text = r[:1+sz]
		}
		return 0, false, &ValueError{Kind: UnknownBase, Text: text, Col: s.col}
	}
	i := 2
	if i < len(r) && (r[i] == '+' || r[i] == '-') {
		i++
	}
	dig := digits(r[i:], base)
	if dig == 0 {
		return 0, false, &SyntaxError{Col: s.col, Text: r[:i], Desc: "radix literal with no digits"}
	}
	i += dig
	text := r[:i]
	n, err := strconv.ParseInt(text[2:], base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, &ValueError{Kind: OutOfBounds, Text: text, Col: s.col}
		}
		panic("lispcalc: scanned invalid number " + strconv.Quote(text) + ": " + err.Error())
	}
	s.advance(i)
	return Number(n), true, nil
}

// digits counts the leading digits of s in the given base, which is at
// most 10.
func digits(s string, base int) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] >= '0'+byte(base) {
			return i
		}
	}
	return len(s)
}

// optokens lists operator spellings. Longer spellings come before their
// prefixes so that <= never scans as < followed by =.
var optokens = [...]struct {
	text string
	op   Op
}{
	{"<=", OpLeq},
	{">=", OpGeq},
	{"*", OpMul},
	{"/", OpDiv},
	{"+", OpAdd},
	{"-", OpSub},
	{"%", OpMod},
	{">", OpGt},
	{"<", OpLt},
	{"=", OpEq},
}

// scanOp scans an operator.
func (s *scanner) scanOp() (Op, bool) {
	r := s.rest()
	for _, t := range optokens {
		if strings.HasPrefix(r, t.text) {
			s.advance(len(t.text))
			return t.op, true
		}
	}
	return OpNone, false
}

// scanSymbol scans a run of letters.
func (s *scanner) scanSymbol() (Symbol, bool) {
	r := s.rest()
	i := 0
	for i < len(r) {
		c, sz := utf8.DecodeRuneInString(r[i:])
		if !unicode.IsLetter(c) {
			break
		}
		i += sz
	}
	if i == 0 {
		return "", false
	}
	s.advance(i)
	return Symbol(r[:i]), true
}
