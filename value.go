package eve

import (
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the variant of a Value.
type Kind int8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindText

	// KindNumber matches either KindInt or KindFloat. It appears in operator
	// contracts and errors; no Value has it.
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "nothing"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// accepts returns whether a value of kind v satisfies k.
func (k Kind) accepts(v Kind) bool {
	if k == KindNumber {
		return v == KindInt || v == KindFloat
	}
	return k == v && k != KindNone
}

// Value is a fully evaluated result: an exact integer, a floating-point
// number, or text. Values are immutable; the zero Value has KindNone.
type Value struct {
	kind Kind
	// i holds exact integers. It is never modified after construction.
	i *big.Int
	// f holds float64 values. bf holds extended-precision values instead,
	// and is likewise never modified.
	f  float64
	bf *big.Float
	s  string
}

// Int creates an exact integer value.
func Int(n int64) Value {
	return Value{kind: KindInt, i: big.NewInt(n)}
}

// BigInt creates an exact integer value from a copy of n.
func BigInt(n *big.Int) Value {
	if n == nil {
		panic("eve: BigInt(nil)")
	}
	return Value{kind: KindInt, i: new(big.Int).Set(n)}
}

// Float creates a float64 value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// BigFloat creates an extended-precision floating-point value from a copy of
// f, keeping its precision.
func BigFloat(f *big.Float) Value {
	if f == nil {
		panic("eve: BigFloat(nil)")
	}
	return Value{kind: KindFloat, bf: new(big.Float).Copy(f)}
}

// Text creates a text value.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber returns whether v is an integer or a float.
func (v Value) IsNumber() bool {
	return KindNumber.accepts(v.kind)
}

// Int returns a copy of v's integer value if v is an integer.
func (v Value) Int() (*big.Int, bool) {
	if v.kind != KindInt {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// Float64 returns the nearest float64 to v if v is a number. Integers are
// promoted as by Promote.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return Promote(v).f, true
	case KindFloat:
		if v.bf != nil {
			f, _ := v.bf.Float64()
			return f, true
		}
		return v.f, true
	default:
		return 0, false
	}
}

// BigFloat returns a copy of v's value as an extended-precision float if v is
// a float produced in extended precision.
func (v Value) BigFloat() (*big.Float, bool) {
	if v.kind != KindFloat || v.bf == nil {
		return nil, false
	}
	return new(big.Float).Copy(v.bf), true
}

// Text returns v's text if v is text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Any returns the underlying Go value of v: a *big.Int, float64, *big.Float,
// or string. The zero Value gives nil.
func (v Value) Any() interface{} {
	switch v.kind {
	case KindInt:
		return new(big.Int).Set(v.i)
	case KindFloat:
		if v.bf != nil {
			return new(big.Float).Copy(v.bf)
		}
		return v.f
	case KindText:
		return v.s
	default:
		return nil
	}
}

// String formats v. Text is returned as-is, without quotes.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return v.i.String()
	case KindFloat:
		if v.bf != nil {
			return v.bf.Text('g', -1)
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	default:
		return "<none>"
	}
}

// Equal returns whether v and w are the same value. Integers and floats are
// never equal to each other. Floats compare by representation, so all NaNs are
// equal and 0 does not equal -0.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindInt:
		return v.i.Cmp(w.i) == 0
	case KindFloat:
		switch {
		case v.bf == nil && w.bf == nil:
			if math.IsNaN(v.f) || math.IsNaN(w.f) {
				return math.IsNaN(v.f) && math.IsNaN(w.f)
			}
			return math.Float64bits(v.f) == math.Float64bits(w.f)
		case v.bf != nil && w.bf != nil:
			return v.bf.Cmp(w.bf) == 0 && v.bf.Signbit() == w.bf.Signbit()
		}
		// Mixed representations. big.Float can't hold NaN.
		a, b := v.bf, w.bf
		if a == nil {
			if math.IsNaN(v.f) {
				return false
			}
			a = new(big.Float).SetFloat64(v.f)
		}
		if b == nil {
			if math.IsNaN(w.f) {
				return false
			}
			b = new(big.Float).SetFloat64(w.f)
		}
		return a.Cmp(b) == 0 && a.Signbit() == b.Signbit()
	case KindText:
		return v.s == w.s
	default:
		return false
	}
}

// Promote converts an exact integer to the nearest float64. Any other value is
// returned unchanged. Every integer-to-float coercion during evaluation in
// float64 mode goes through Promote.
func Promote(v Value) Value {
	if v.kind != KindInt {
		return v
	}
	if v.i.IsInt64() {
		// Conversion of an int64 rounds to nearest even, same as big.Float.
		return Float(float64(v.i.Int64()))
	}
	f, _ := new(big.Float).SetInt(v.i).Float64()
	return Float(f)
}
