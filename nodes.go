package lispcalc

import (
	"strconv"
	"strings"
)

// Expr is a parsed or evaluated expression. It is one of Symbol, Op, Number,
// or List. Expressions are never modified after they are created.
type Expr interface {
	String() string
	format(b *strings.Builder)
}

// Symbol is an identifier.
type Symbol string

// Nil is the value of an empty list.
const Nil = Symbol("NIL")

// Number is a numeric value. All numbers are float64, no matter how they are
// written.
type Number float64

// List is a sequence of expressions. A non-empty list is an application of
// the operator in its first element to the rest. Evaluation never modifies a
// List, and neither should anything else.
type List []Expr

// Op is an arithmetic or comparison operator.
type Op int8

const (
	OpNone Op = iota

	OpAdd // +, variadic sum
	OpSub // -, a - b
	OpMul // *, variadic product
	OpDiv // /, truncated quotient
	OpMod // %, truncated remainder
	OpGt  // >
	OpLt  // <
	OpLeq // <=
	OpGeq // >=
	OpEq  // =
)

func (s Symbol) String() string { return string(s) }

func (s Symbol) format(b *strings.Builder) {
	b.WriteString(string(s))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n Number) format(b *strings.Builder) {
	b.WriteString(n.String())
}

func (o Op) String() string {
	if !o.valid() {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}
	return optable[o].text
}

func (o Op) format(b *strings.Builder) {
	b.WriteString(o.String())
}

func (o Op) valid() bool {
	return OpAdd <= o && o <= OpEq
}

func (l List) String() string {
	var b strings.Builder
	l.format(&b)
	return b.String()
}

func (l List) format(b *strings.Builder) {
	b.WriteByte('(')
	for i, e := range l {
		if i != 0 {
			b.WriteByte(' ')
		}
		if e == nil {
			// Only hand-built lists can have nil elements.
			b.WriteString("<nil>")
			continue
		}
		e.format(b)
	}
	b.WriteByte(')')
}

// Equal reports whether two expressions are structurally identical. Numbers
// compare with ==, so NaN is not equal to itself.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case Op:
		b, ok := b.(Op)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		panic("lispcalc: unknown expression type in Equal")
	}
}
