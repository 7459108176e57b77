package eve

// Context is a configuration for evaluating expressions. A Context holds no
// state between evaluations, so it is safe to use concurrently.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision in bits of floating-point calculations. Zero, the
// default, computes in float64. Any other precision computes with big.Float,
// which cannot represent NaN; operations that would produce NaN instead fail
// with a *DomainError.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

var defaultContext Context

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	return defaultContext.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Later options
// override earlier ones.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
		default:
			panic("eve: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision to which floats are computed in the context, or
// 0 for float64.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates an expression and returns its value. Arguments to each call
// are evaluated from left to right; the first error ends evaluation and is
// returned with no result.
//
// Eval does not detect cycles. e must be a finite tree.
func (ctx *Context) Eval(e *Expr) (Value, error) {
	if ctx == nil {
		ctx = &defaultContext
	}
	if e == nil {
		return Value{}, &OperatorError{Op: OpNone}
	}
	r, err := e.eval(ctx)
	if err != nil {
		return Value{}, err
	}
	if r.kind == KindNone {
		// Only possible for an empty literal at the root.
		return Value{}, &OperatorError{Op: OpNone}
	}
	return r, nil
}

// Eval evaluates an expression using the default context.
func Eval(e *Expr) (Value, error) {
	return defaultContext.Eval(e)
}

// eval computes the node's value. Nil arguments evaluate to the zero Value so
// that the contract check reports them.
func (e *Expr) eval(ctx *Context) (Value, error) {
	if e.op == OpNone {
		return e.val, nil
	}
	args := make([]Value, len(e.args))
	for i, a := range e.args {
		if a == nil {
			continue
		}
		v, err := a.eval(ctx)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	if !e.op.Valid() {
		return Value{}, &OperatorError{Op: e.op}
	}
	f := &funcs[e.op]
	if err := f.check(e.op, args); err != nil {
		return Value{}, err
	}
	return f.call(ctx, e.op, args)
}
