package lispcalc

// Resolver supplies values for symbols.
type Resolver interface {
	// Resolve returns the value of a symbol and whether it has one. The value
	// is used as the result of evaluating the symbol without being evaluated
	// further. A nil value means the symbol is unbound.
	Resolve(ctx *Context, name string) (Expr, bool)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(ctx *Context, name string) (Expr, bool)

func (f ResolverFunc) Resolve(ctx *Context, name string) (Expr, bool) {
	return f(ctx, name)
}

// Context is a context for evaluating expressions. A Context holds only
// configuration, so it is safe to use concurrently.
type Context struct {
	res  Resolver
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	resopt  struct{ r Resolver }
	precopt uint
)

func (resopt) ctxOption()  {}
func (precopt) ctxOption() {}

// WithResolver sets the resolver for symbols. A nil resolver leaves every
// symbol unbound.
func WithResolver(r Resolver) ContextOption {
	return resopt{r}
}

// Prec sets the precision in bits that resolvers should use to compute
// values before rounding them to numbers. Zero selects the default of 64.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given, the
// default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case resopt:
			n.res = opt.r
		case precopt:
			if opt != 0 {
				n.prec = uint(opt)
			}
		default:
			panic("lispcalc: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision resolvers should use.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval reduces an expression. Numbers and operators evaluate to themselves,
// symbols to the value the context's resolver gives them, and the empty list
// to Nil. A non-empty list applies its first element, which must evaluate to
// an Op, to the values of the rest.
//
// Errors are always *ValueError or *ArithError.
func (ctx *Context) Eval(e Expr) (Expr, error) {
	switch e := e.(type) {
	case Number, Op:
		return e, nil
	case Symbol:
		if ctx.res != nil {
			if v, ok := ctx.res.Resolve(ctx, string(e)); ok && v != nil {
				return v, nil
			}
		}
		return nil, &ValueError{Kind: Unbound, Text: string(e)}
	case List:
		if len(e) == 0 {
			return Nil, nil
		}
		head, err := ctx.Eval(e[0])
		if err != nil {
			return nil, err
		}
		op, ok := head.(Op)
		if !ok {
			return nil, &ArithError{Kind: BadOperator, Operand: head}
		}
		args := make([]Expr, 0, len(e)-1)
		for _, x := range e[1:] {
			v, err := ctx.Eval(x)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return apply(op, args)
	case nil:
		panic("lispcalc: Eval of nil expression")
	default:
		panic("lispcalc: unknown expression type")
	}
}

// defaultctx is the context used by Eval and EvalString.
var defaultctx = NewContext()

// Eval is a shortcut to evaluate an expression in a context with no resolver.
func Eval(e Expr) (Expr, error) {
	return defaultctx.Eval(e)
}

// EvalString is a shortcut to parse and evaluate a string expression in a new
// context created with the given options.
func EvalString(src string, opts ...ContextOption) (Expr, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewContext(opts...).Eval(a)
}
