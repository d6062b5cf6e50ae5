package lispcalc

import (
	"math"
	"strconv"
)

// arity is the range of operand counts an operator accepts. A max of -1 means
// no upper bound.
type arity struct {
	min, max int
}

func (a arity) allows(n int) bool {
	return n >= a.min && (a.max < 0 || n <= a.max)
}

func (a arity) String() string {
	switch {
	case a.min == a.max:
		return "exactly " + strconv.Itoa(a.min)
	case a.max < 0:
		return "at least " + strconv.Itoa(a.min)
	default:
		return strconv.Itoa(a.min) + " to " + strconv.Itoa(a.max)
	}
}

// opinfo is the parsing and evaluation behavior of an operator. fn is only
// called with a number of operands that arity allows. Operands have been
// evaluated, but fn must still check that each is a Number.
type opinfo struct {
	text  string
	arity arity
	fn    func(op Op, args []Expr) (float64, error)
}

var (
	variadic = arity{0, -1}
	binary   = arity{2, 2}
	chained  = arity{2, -1}
)

var optable = [...]opinfo{
	OpNone: {},
	OpAdd:  {"+", variadic, add},
	OpSub:  {"-", binary, sub},
	OpMul:  {"*", variadic, mul},
	OpDiv:  {"/", binary, div},
	OpMod:  {"%", binary, mod},
	OpGt:   {">", chained, compare(func(a, b float64) bool { return a > b })},
	OpLt:   {"<", chained, compare(func(a, b float64) bool { return a < b })},
	OpLeq:  {"<=", chained, compare(func(a, b float64) bool { return a <= b })},
	OpGeq:  {">=", chained, compare(func(a, b float64) bool { return a >= b })},
	OpEq:   {"=", chained, compare(func(a, b float64) bool { return a == b })},
}

// apply applies op to evaluated operands.
func apply(op Op, args []Expr) (Expr, error) {
	if !op.valid() {
		return nil, &ArithError{Kind: BadOperator, Op: op, Operand: op}
	}
	in := &optable[op]
	if !in.arity.allows(len(args)) {
		return nil, &ArithError{Kind: Arity, Op: op, N: len(args)}
	}
	r, err := in.fn(op, args)
	if err != nil {
		return nil, err
	}
	return Number(r), nil
}

// operand gets args[i] as a float64.
func operand(op Op, args []Expr, i int) (float64, error) {
	n, ok := args[i].(Number)
	if !ok {
		return 0, &ArithError{Kind: NotNumber, Op: op, Operand: args[i], N: i + 1}
	}
	return float64(n), nil
}

func add(op Op, args []Expr) (float64, error) {
	var r float64
	for i := range args {
		x, err := operand(op, args, i)
		if err != nil {
			return 0, err
		}
		r += x
	}
	return r, nil
}

func sub(op Op, args []Expr) (float64, error) {
	a, err := operand(op, args, 0)
	if err != nil {
		return 0, err
	}
	b, err := operand(op, args, 1)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// mul returns 0 as soon as it reaches a zero operand. Operands after that are
// not checked, so (* 0 ()) is 0 rather than an error.
func mul(op Op, args []Expr) (float64, error) {
	r := 1.0
	for i := range args {
		x, err := operand(op, args, i)
		if err != nil {
			return 0, err
		}
		if x == 0 {
			return 0, nil
		}
		r *= x
	}
	return r, nil
}

func div(op Op, args []Expr) (float64, error) {
	a, b, err := divisor(op, args)
	if err != nil {
		return 0, err
	}
	return truncate(a / b), nil
}

func mod(op Op, args []Expr) (float64, error) {
	a, b, err := divisor(op, args)
	if err != nil {
		return 0, err
	}
	return math.Mod(a, b), nil
}

// divisor gets the two operands of a division and checks that the second is
// not zero.
func divisor(op Op, args []Expr) (a, b float64, err error) {
	a, err = operand(op, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err = operand(op, args, 1)
	if err != nil {
		return 0, 0, err
	}
	if b == 0 {
		return 0, 0, &ArithError{Kind: DivideByZero, Op: op, N: 2}
	}
	return a, b, nil
}

// truncate rounds x toward zero by way of int64. Values outside the range of
// int64 saturate, and NaN becomes zero.
func truncate(x float64) float64 {
	switch {
	case x != x:
		return 0
	case x >= 1<<63:
		return float64(math.MaxInt64)
	case x < -(1 << 63):
		return float64(math.MinInt64)
	}
	return float64(int64(x))
}

// compare creates a comparison that holds when every adjacent pair of
// operands satisfies cmp. The result is 1 if so and 0 otherwise. All operands
// are checked to be numbers before any are compared.
func compare(cmp func(a, b float64) bool) func(op Op, args []Expr) (float64, error) {
	return func(op Op, args []Expr) (float64, error) {
		v := make([]float64, len(args))
		for i := range args {
			x, err := operand(op, args, i)
			if err != nil {
				return 0, err
			}
			v[i] = x
		}
		for i := 1; i < len(v); i++ {
			if !cmp(v[i-1], v[i]) {
				return 0, nil
			}
		}
		return 1, nil
	}
}

// ArithErrorKind is the reason for an ArithError.
type ArithErrorKind int8

const (
	// DivideByZero is a division or remainder by zero.
	DivideByZero ArithErrorKind = iota + 1
	// Arity is an operator applied to the wrong number of operands.
	Arity
	// BadOperator is a list whose first element is not an operator.
	BadOperator
	// NotNumber is an operand that is not a number.
	NotNumber
)

func (k ArithErrorKind) String() string {
	switch k {
	case DivideByZero:
		return "DivideByZero"
	case Arity:
		return "Arity"
	case BadOperator:
		return "BadOperator"
	case NotNumber:
		return "NotNumber"
	default:
		return "ArithErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ArithError is an error from applying an operator.
type ArithError struct {
	Kind ArithErrorKind
	// Op is the operator being applied. It is OpNone for a BadOperator error
	// from a list head that is not an Op at all.
	Op Op
	// Operand is the offending value for BadOperator and NotNumber.
	Operand Expr
	// N is the number of operands for Arity, or the 1-based position of the
	// operand for NotNumber.
	N int
}

func (err *ArithError) Error() string {
	switch err.Kind {
	case DivideByZero:
		return "Illegal divide by zero operation."
	case Arity:
		return err.Op.String() + " takes " + optable[err.Op].arity.String() + " operands, not " + strconv.Itoa(err.N) + "."
	case BadOperator:
		return err.Operand.String() + " is not a valid operator."
	case NotNumber:
		return "operand " + strconv.Itoa(err.N) + " to " + err.Op.String() + " is " + err.Operand.String() + ", not a number."
	default:
		panic("lispcalc: invalid arith error kind " + err.Kind.String())
	}
}
