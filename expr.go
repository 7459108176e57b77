package eve

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Expr is a node in an expression tree: either a literal value or a call of
// an operator on argument expressions. Exprs are immutable once built, so a
// tree may be evaluated any number of times, concurrently.
//
// Nothing is validated when an Expr is built. Arity and argument kinds are
// checked during evaluation.
type Expr struct {
	// op is OpNone for literals.
	op   Op
	val  Value
	args []*Expr
}

// Lit creates a literal expression.
func Lit(v Value) *Expr {
	return &Expr{val: v}
}

// Call creates a call of op with the given arguments. The argument list is
// copied.
func Call(op Op, args ...*Expr) *Expr {
	return &Expr{op: op, args: append([]*Expr(nil), args...)}
}

// Apply creates a call of op, converting each argument to an expression.
// Arguments may be *Expr, Value, int, int64, float64, string, *big.Int, or
// *big.Float. Apply panics on any other argument type.
func Apply(op Op, args ...interface{}) *Expr {
	e := Expr{op: op, args: make([]*Expr, len(args))}
	for i, arg := range args {
		switch arg := arg.(type) {
		case *Expr:
			e.args[i] = arg
		case Value:
			e.args[i] = Lit(arg)
		case int:
			e.args[i] = Lit(Int(int64(arg)))
		case int64:
			e.args[i] = Lit(Int(arg))
		case float64:
			e.args[i] = Lit(Float(arg))
		case string:
			e.args[i] = Lit(Text(arg))
		case *big.Int:
			e.args[i] = Lit(BigInt(arg))
		case *big.Float:
			e.args[i] = Lit(BigFloat(arg))
		default:
			panic(fmt.Sprintf("eve: cannot use %T as an expression", arg))
		}
	}
	return &e
}

// Op returns the operator called by e, or OpNone if e is a literal.
func (e *Expr) Op() Op {
	return e.op
}

// Value returns e's value if e is a literal.
func (e *Expr) Value() (Value, bool) {
	if e.op != OpNone {
		return Value{}, false
	}
	return e.val, true
}

// NumArgs returns the number of arguments to e.
func (e *Expr) NumArgs() int {
	return len(e.args)
}

// Arg returns the i'th argument to e.
func (e *Expr) Arg(i int) *Expr {
	return e.args[i]
}

// Size returns the number of nodes in the tree rooted at e.
func (e *Expr) Size() int {
	if e == nil {
		return 0
	}
	n := 1
	for _, a := range e.args {
		n += a.Size()
	}
	return n
}

// Depth returns the number of nodes on the longest path from e to a leaf.
func (e *Expr) Depth() int {
	if e == nil {
		return 0
	}
	d := 0
	for _, a := range e.args {
		if k := a.Depth(); k > d {
			d = k
		}
	}
	return d + 1
}

func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	if e.op == OpNone {
		b.WriteString(e.val.literal())
		return
	}
	b.WriteString(e.op.String())
	b.WriteByte('(')
	for i, a := range e.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.fmt(b)
	}
	b.WriteByte(')')
}

// literal formats v so that floats and integers are distinguishable: floats
// always have a decimal point or exponent, and text is quoted.
func (v Value) literal() string {
	switch v.kind {
	case KindFloat:
		r := v.String()
		if strings.ContainsAny(r, ".eEnN") {
			// Has a fraction or exponent, or is Inf or NaN.
			return r
		}
		return r + ".0"
	case KindText:
		return strconv.Quote(v.s)
	default:
		return v.String()
	}
}
