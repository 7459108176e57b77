package eve

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// arith applies a binary arithmetic operator. Exact integers stay exact while
// the result is an integer; otherwise both operands are promoted to floats.
// Errors name the operator name, which differs from op in folds.
func (ctx *Context) arith(op, name Op, x, y Value) (Value, error) {
	if x.kind == KindInt && y.kind == KindInt {
		r, ok, err := intArith(op, name, x.i, y.i)
		if ok || err != nil {
			return r, err
		}
	}
	if ctx.prec > 0 {
		return ctx.bigArith(op, name, x, y)
	}
	x, y = Promote(x), Promote(y)
	a, _ := x.Float64()
	b, _ := y.Float64()
	// Explicit conversions prevent fused multiply-add across operators.
	switch op {
	case OpAdd:
		return Float(float64(a + b)), nil
	case OpSubtract:
		return Float(float64(a - b)), nil
	case OpMultiply:
		return Float(float64(a * b)), nil
	case OpDivide:
		return Float(float64(a / b)), nil
	case OpRemainder:
		return Float(math.Mod(a, b)), nil
	case OpExponentiate:
		return Float(math.Pow(a, b)), nil
	default:
		panic("eve: arith on " + op.String())
	}
}

// intArith computes op on exact integers. ok is false if the operation has no
// integer result.
func intArith(op, name Op, x, y *big.Int) (r Value, ok bool, err error) {
	z := new(big.Int)
	switch op {
	case OpAdd:
		z.Add(x, y)
	case OpSubtract:
		z.Sub(x, y)
	case OpMultiply:
		z.Mul(x, y)
	case OpDivide:
		if y.Sign() == 0 {
			return Value{}, false, &DivisionByZeroError{Op: name}
		}
		var m big.Int
		z.QuoRem(x, y, &m)
		if m.Sign() != 0 {
			return Value{}, false, nil
		}
	case OpRemainder:
		if y.Sign() == 0 {
			return Value{}, false, &DivisionByZeroError{Op: name}
		}
		// Truncated, so the result has the sign of x.
		z.Rem(x, y)
	default:
		return Value{}, false, nil
	}
	return Value{kind: KindInt, i: z}, true, nil
}

// big converts a number to a big.Float at the context's precision. arg is the
// 1-based argument index reported if v is NaN.
func (ctx *Context) big(op Op, arg int, v Value) (*big.Float, error) {
	z := new(big.Float).SetPrec(ctx.prec)
	switch {
	case v.kind == KindInt:
		z.SetInt(v.i)
	case v.bf != nil:
		z.Set(v.bf)
	case math.IsNaN(v.f):
		return nil, &DomainError{Op: op, Arg: arg, X: v}
	default:
		z.SetFloat64(v.f)
	}
	return z, nil
}

func (ctx *Context) bigArith(op, name Op, x, y Value) (Value, error) {
	if op == OpRemainder {
		return ctx.viaFloat64(name, func(x []float64) float64 { return math.Mod(x[0], x[1]) }, []Value{x, y})
	}
	ax, bx := 1, 2
	if op != name {
		// Folding; argument positions aren't meaningful.
		ax, bx = 0, 0
	}
	a, err := ctx.big(name, ax, x)
	if err != nil {
		return Value{}, err
	}
	b, err := ctx.big(name, bx, y)
	if err != nil {
		return Value{}, err
	}
	if op == OpExponentiate {
		return ctx.bigPow(name, x, y, a, b)
	}
	z := new(big.Float).SetPrec(ctx.prec)
	err = guard(name, func() {
		switch op {
		case OpAdd:
			z.Add(a, b)
		case OpSubtract:
			z.Sub(a, b)
		case OpMultiply:
			z.Mul(a, b)
		case OpDivide:
			z.Quo(a, b)
		default:
			panic("eve: arith on " + op.String())
		}
	})
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindFloat, bf: z}, nil
}

// bigPow computes a^b. Negative bases are allowed only with integer exponents.
func (ctx *Context) bigPow(op Op, x, y Value, a, b *big.Float) (Value, error) {
	if a.IsInf() || b.IsInf() || a.Sign() == 0 || b.Sign() == 0 {
		// Results are exactly 0, 1, or ±Inf.
		return ctx.viaFloat64(op, func(x []float64) float64 { return math.Pow(x[0], x[1]) }, []Value{x, y})
	}
	neg := false
	if a.Sign() < 0 {
		if !b.IsInt() {
			return Value{}, &DomainError{Op: op, Arg: 1, X: x}
		}
		n, _ := b.Int(nil)
		neg = n.Bit(0) == 1
		a = new(big.Float).Abs(a)
	}
	// Pow doesn't always leave its result in its first argument, and may
	// change that argument's precision.
	var r *big.Float
	o := new(big.Float).SetPrec(ctx.prec)
	if err := guard(op, func() { r = bigfloat.Pow(o, a, b) }); err != nil {
		return Value{}, err
	}
	z := new(big.Float).SetPrec(ctx.prec).Set(r)
	if neg {
		z.Neg(z)
	}
	return Value{kind: KindFloat, bf: z}, nil
}

// bigfuncs are extended-precision implementations of monadic operators. Each
// sets z, which has the context's precision, to its result, or returns false
// if x is outside its domain.
var bigfuncs = map[Op]func(z, x *big.Float) bool{
	OpSqrt: func(z, x *big.Float) bool {
		if x.Sign() < 0 {
			return false
		}
		z.Sqrt(x)
		return true
	},
	OpExp: func(z, x *big.Float) bool {
		switch {
		case x.IsInf() && x.Signbit():
			z.SetInt64(0)
		case x.IsInf():
			z.SetInf(false)
		default:
			z.Set(bigfloat.Exp(z, x))
		}
		return true
	},
	OpLn:  bigLn,
	OpLog: bigLog10,
}

func bigLn(z, x *big.Float) bool {
	switch {
	case x.Sign() < 0:
		return false
	case x.Sign() == 0:
		z.SetInf(true)
	case x.IsInf():
		z.SetInf(false)
	default:
		bigfloat.Log(z, x)
	}
	return true
}

func bigLog10(z, x *big.Float) bool {
	if !bigLn(z, x) {
		return false
	}
	if z.IsInf() {
		return true
	}
	ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
	bigfloat.Log(ten, ten)
	z.Quo(z, ten)
	return true
}

func (ctx *Context) bigMonadic(op Op, g func(z, x *big.Float) bool, v Value) (Value, error) {
	x, err := ctx.big(op, 1, v)
	if err != nil {
		return Value{}, err
	}
	z := new(big.Float).SetPrec(ctx.prec)
	var ok bool
	if err := guard(op, func() { ok = g(z, x) }); err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, &DomainError{Op: op, Arg: 1, X: v}
	}
	return Value{kind: KindFloat, bf: z}, nil
}

func (ctx *Context) bigConst(op Op) Value {
	z := new(big.Float).SetPrec(ctx.prec)
	switch op {
	case OpPi:
		bigfloat.Pi(z)
	case OpE:
		one := new(big.Float).SetPrec(ctx.prec).SetInt64(1)
		z.Set(bigfloat.Exp(z, one))
	default:
		panic("eve: no constant " + op.String())
	}
	return Value{kind: KindFloat, bf: z}
}

// viaFloat64 computes f in float64 and converts the result to the context's
// precision, for operators with no arbitrary-precision implementation.
func (ctx *Context) viaFloat64(op Op, f func([]float64) float64, args []Value) (Value, error) {
	x := make([]float64, len(args))
	for i, v := range args {
		if v.kind == KindFloat && v.bf == nil && math.IsNaN(v.f) {
			return Value{}, &DomainError{Op: op, Arg: i + 1, X: v}
		}
		x[i], _ = v.Float64()
	}
	r := f(x)
	if math.IsNaN(r) {
		return Value{}, &DomainError{Op: op}
	}
	return Value{kind: KindFloat, bf: new(big.Float).SetPrec(ctx.prec).SetFloat64(r)}, nil
}

// guard runs f, converting a big.ErrNaN panic into a *DomainError.
func guard(op Op, f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		nan, ok := r.(big.ErrNaN)
		if !ok {
			panic(r)
		}
		err = &DomainError{Op: op, NaN: nan}
	}()
	f()
	return nil
}
