package lispcalc

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// DefaultMaxDepth is the list nesting depth allowed when no MaxDepth option
// is given.
const DefaultMaxDepth = 10000

type (
	depthopt int
	radixopt bool
)

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// maxdepth is the deepest list nesting allowed. Zero means the default.
	maxdepth int
	// noradix disables #b, #o, and #d literals.
	noradix bool
}

// MaxDepth limits how deeply lists may nest. An input like "((((1))))" has a
// depth of four. Panics if n is not positive.
func MaxDepth(n int) ParseOption {
	if n <= 0 {
		panic("lispcalc: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}

// DisableRadixLiterals makes the parser reject #b, #o, and #d literals as
// invalid characters.
func DisableRadixLiterals() ParseOption {
	return radixopt(true)
}

func (o radixopt) parseOption(p parsectx) parsectx {
	p.noradix = bool(o)
	return p
}

// ParsingPreset combines parse options into one. A preset panics when it
// would change any option from the default, but it is safe to apply other
// options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p != (parsectx{}) {
		panic("lispcalc: preset applied to non-default parse config")
	}
	return *o
}

func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.maxdepth == 0 {
		p.maxdepth = DefaultMaxDepth
	}
	return p
}
