package lispcalc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Constants is a Resolver for the symbols pi and e. The constants are
// computed to the context's precision and then rounded to the nearest
// Number.
var Constants Resolver = constants{}

type constants struct{}

func (constants) Resolve(ctx *Context, name string) (Expr, bool) {
	var r big.Float
	r.SetPrec(ctx.Prec())
	switch name {
	case "pi":
		bigfloat.Pi(&r)
	case "e":
		var one big.Float
		one.SetFloat64(1)
		bigfloat.Exp(&r, &one)
	default:
		return nil, false
	}
	f, _ := r.Float64()
	return Number(f), true
}
