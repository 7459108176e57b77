package eve

import (
	"math"
	"math/big"
	"strings"
)

// contract is the arity and argument kinds an operator accepts, along with
// its implementation.
type contract struct {
	// arity is the exact number of arguments, or the minimum if variadic.
	arity    int
	variadic bool
	// kinds is the kind of each argument. For variadic operators, the last
	// kind applies to all remaining arguments.
	kinds []Kind
	// call applies the operator to arguments which have passed check.
	call func(ctx *Context, op Op, args []Value) (Value, error)
}

var (
	num1 = []Kind{KindNumber}
	num2 = []Kind{KindNumber, KindNumber}
	txt  = []Kind{KindText}
	txt3 = []Kind{KindText, KindText, KindText}
)

var funcs = [opCount]contract{
	OpAdd:          {arity: 2, kinds: num2, call: binary},
	OpSubtract:     {arity: 2, kinds: num2, call: binary},
	OpMultiply:     {arity: 2, kinds: num2, call: binary},
	OpDivide:       {arity: 2, kinds: num2, call: binary},
	OpRemainder:    {arity: 2, kinds: num2, call: binary},
	OpExponentiate: {arity: 2, kinds: num2, call: binary},
	OpSum:          {arity: 2, variadic: true, kinds: num1, call: sum},
	OpNegate:       {arity: 1, kinds: num1, call: negate},

	OpSin:   {arity: 1, kinds: num1, call: monadic(math.Sin)},
	OpCos:   {arity: 1, kinds: num1, call: monadic(math.Cos)},
	OpTan:   {arity: 1, kinds: num1, call: monadic(math.Tan)},
	OpATan2: {arity: 2, kinds: num2, call: atan2},
	OpSqrt:  {arity: 1, kinds: num1, call: monadic(math.Sqrt)},
	OpExp:   {arity: 1, kinds: num1, call: monadic(math.Exp)},
	OpLn:    {arity: 1, kinds: num1, call: monadic(math.Log)},
	OpLog:   {arity: 1, kinds: num1, call: monadic(math.Log10)},

	OpPi: {call: niladic(math.Pi)},
	OpE:  {call: niladic(math.E)},

	OpStrReplace: {arity: 3, kinds: txt3, call: strReplace},
	OpConcat:     {arity: 2, variadic: true, kinds: txt, call: concat},
}

// check validates arguments against the contract. Arity is checked before
// kinds, and kinds are checked from left to right.
func (c *contract) check(op Op, args []Value) error {
	if c.call == nil {
		return &OperatorError{Op: op}
	}
	if len(args) < c.arity || !c.variadic && len(args) != c.arity {
		return &ArityError{Op: op, Want: c.arity, Variadic: c.variadic, Got: len(args)}
	}
	for i, v := range args {
		k := c.kinds[len(c.kinds)-1]
		if i < len(c.kinds) {
			k = c.kinds[i]
		}
		if !k.accepts(v.kind) {
			return &TypeError{Op: op, Arg: i + 1, Want: k, Got: v.kind}
		}
	}
	return nil
}

func binary(ctx *Context, op Op, args []Value) (Value, error) {
	return ctx.arith(op, op, args[0], args[1])
}

// sum adds its arguments in order, as a left fold of Add.
func sum(ctx *Context, op Op, args []Value) (Value, error) {
	r := args[0]
	for _, v := range args[1:] {
		var err error
		r, err = ctx.arith(OpAdd, op, r, v)
		if err != nil {
			return Value{}, err
		}
	}
	return r, nil
}

func negate(ctx *Context, op Op, args []Value) (Value, error) {
	x := args[0]
	switch {
	case x.kind == KindInt:
		return Value{kind: KindInt, i: new(big.Int).Neg(x.i)}, nil
	case ctx.prec > 0:
		z, err := ctx.big(op, 1, x)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, bf: z.Neg(z)}, nil
	default:
		f, _ := x.Float64()
		return Float(-f), nil
	}
}

// monadic adapts a float64 function of one variable. In extended precision,
// the operator's big.Float implementation is used if there is one.
func monadic(f func(float64) float64) func(*Context, Op, []Value) (Value, error) {
	return func(ctx *Context, op Op, args []Value) (Value, error) {
		if ctx.prec > 0 {
			if g := bigfuncs[op]; g != nil {
				return ctx.bigMonadic(op, g, args[0])
			}
			return ctx.viaFloat64(op, func(x []float64) float64 { return f(x[0]) }, args)
		}
		x, _ := args[0].Float64()
		return Float(f(x)), nil
	}
}

func niladic(c float64) func(*Context, Op, []Value) (Value, error) {
	return func(ctx *Context, op Op, args []Value) (Value, error) {
		if ctx.prec > 0 {
			return ctx.bigConst(op), nil
		}
		return Float(c), nil
	}
}

// atan2 is the arctangent of args[0]/args[1], using the signs of both to
// choose the quadrant.
func atan2(ctx *Context, op Op, args []Value) (Value, error) {
	if ctx.prec > 0 {
		return ctx.viaFloat64(op, func(x []float64) float64 { return math.Atan2(x[0], x[1]) }, args)
	}
	y, _ := args[0].Float64()
	x, _ := args[1].Float64()
	return Float(math.Atan2(y, x)), nil
}

// strReplace replaces every non-overlapping occurrence of args[1] in args[0]
// with args[2], scanning from the left.
func strReplace(ctx *Context, op Op, args []Value) (Value, error) {
	return Text(strings.ReplaceAll(args[0].s, args[1].s, args[2].s)), nil
}

func concat(ctx *Context, op Op, args []Value) (Value, error) {
	var b strings.Builder
	for _, v := range args {
		b.WriteString(v.s)
	}
	return Text(b.String()), nil
}
