package lispcalc

import "strconv"

// SyntaxError is an error indicating text that does not form an expression.
// It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending text.
	Col int
	// Text is the offending text. It is empty if the input ended where an
	// expression was expected.
	Text string
	// Desc describes what is wrong.
	Desc string
}

func (err *SyntaxError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, err.Desc)
	}
	return errpos(err.Col, err.Desc+" "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// ValueErrorKind is the reason for a ValueError.
type ValueErrorKind int8

const (
	// UnknownBase is a radix literal with a base other than #b, #o, or #d.
	UnknownBase ValueErrorKind = iota + 1
	// OutOfBounds is a numeric literal too large to represent.
	OutOfBounds
	// Unbound is a symbol with no value.
	Unbound
)

func (k ValueErrorKind) String() string {
	switch k {
	case UnknownBase:
		return "UnknownBase"
	case OutOfBounds:
		return "OutOfBounds"
	case Unbound:
		return "Unbound"
	default:
		return "ValueErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ValueError is an error indicating a literal or symbol that has no value.
// Those produced by the parser implement InputError; those produced during
// evaluation have a Col of zero.
type ValueError struct {
	Kind ValueErrorKind
	// Text is the literal or symbol name.
	Text string
	// Col is the position of the literal, or 0 if not known.
	Col int
}

func (err *ValueError) Error() string {
	var msg string
	switch err.Kind {
	case UnknownBase:
		msg = "Only decimal, octal (#o), and binary (#b) are supported."
	case OutOfBounds:
		msg = "Number is too large to be supported."
	case Unbound:
		msg = err.Text + " is not bound to a value."
	default:
		panic("lispcalc: invalid value error kind " + err.Kind.String())
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg+" ("+strconv.Quote(err.Text)+")")
}

func (err *ValueError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to Parse implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the start of the text that
	// caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*ValueError)(nil)
)
