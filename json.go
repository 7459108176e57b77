package eve

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Expression trees encode to JSON as follows. A call is an array whose first
// element is the operator name, followed by the arguments. A string is Text.
// A number with a decimal point or exponent is a Float, and any other number
// is an exact Int. E.g., Add(1, Multiply(2, 3.5)) is
//
//	["Add", 1, ["Multiply", 2, 3.5]]
//
// Operator names are matched without regard to case.

// MarshalJSON encodes e.
func (e *Expr) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := e.marshal(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (e *Expr) marshal(b *bytes.Buffer) error {
	if e == nil {
		return errors.New("cannot encode nil expression")
	}
	if e.op == OpNone {
		r, err := e.val.MarshalJSON()
		if err != nil {
			return err
		}
		b.Write(r)
		return nil
	}
	if !e.op.Valid() {
		return &OperatorError{Op: e.op}
	}
	b.WriteString(`["`)
	b.WriteString(e.op.String())
	b.WriteByte('"')
	for _, a := range e.args {
		b.WriteByte(',')
		if err := a.marshal(b); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

// UnmarshalJSON decodes an expression into e. data must hold exactly one
// expression.
func (e *Expr) UnmarshalJSON(data []byte) error {
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	var v interface{}
	if err := d.Decode(&v); err != nil {
		return err
	}
	if _, err := d.Token(); err != io.EOF {
		return &DecodeError{Reason: "trailing data after expression"}
	}
	r, err := fromJSON(v, nil)
	if err != nil {
		return err
	}
	*e = *r
	return nil
}

// fromJSON converts a decoded JSON value to an expression. path is the
// argument indices leading to v.
func fromJSON(v interface{}, path []int) (*Expr, error) {
	switch v := v.(type) {
	case json.Number:
		r, err := numberValue(string(v))
		if err != nil {
			return nil, &DecodeError{Path: path, Reason: err.Error()}
		}
		return Lit(r), nil
	case string:
		return Lit(Text(v)), nil
	case []interface{}:
		if len(v) == 0 {
			return nil, &DecodeError{Path: path, Reason: "empty call"}
		}
		name, ok := v[0].(string)
		if !ok {
			return nil, &DecodeError{Path: path, Reason: fmt.Sprintf("operator must be a string, not %v", v[0])}
		}
		op, ok := ParseOp(name)
		if !ok {
			return nil, &NameError{Path: path, Name: name}
		}
		e := Expr{op: op, args: make([]*Expr, len(v)-1)}
		for i, a := range v[1:] {
			r, err := fromJSON(a, append(path[:len(path):len(path)], i+1))
			if err != nil {
				return nil, err
			}
			e.args[i] = r
		}
		return &e, nil
	case nil:
		return nil, &DecodeError{Path: path, Reason: "null is not an expression"}
	default:
		return nil, &DecodeError{Path: path, Reason: fmt.Sprintf("%T is not an expression", v)}
	}
}

// numberValue converts the text of a JSON number.
func numberValue(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Value{}, errors.New("invalid integer " + strconv.Quote(s))
		}
		return Value{kind: KindInt, i: n}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// ParseFloat gives ±Inf or ±0 as appropriate.
			return Float(f), nil
		}
		return Value{}, err
	}
	return Float(f), nil
}

// MarshalJSON encodes v as a JSON number or string. Floats always encode with
// a decimal point or exponent, so that they decode as floats. Extended
// precision floats keep their digits in the encoding but decode as float64.
// NaN and infinities cannot be encoded.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(v.i.String()), nil
	case KindFloat:
		if v.bf != nil && v.bf.IsInf() || v.bf == nil && (math.IsInf(v.f, 0) || math.IsNaN(v.f)) {
			return nil, errors.New("cannot encode " + v.String() + " as JSON")
		}
		return []byte(v.literal()), nil
	case KindText:
		return json.Marshal(v.s)
	default:
		return nil, errors.New("cannot encode empty value")
	}
}

// UnmarshalJSON decodes a JSON number or string into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	var e Expr
	if err := e.UnmarshalJSON(data); err != nil {
		return err
	}
	r, ok := e.Value()
	if !ok {
		return &DecodeError{Reason: "value must be a number or string, not a call"}
	}
	*v = r
	return nil
}

// EvalJSON is a shortcut to decode an expression and return its result.
func EvalJSON(data []byte, opts ...ContextOption) (Value, error) {
	var e Expr
	if err := e.UnmarshalJSON(data); err != nil {
		return Value{}, err
	}
	return NewContext(opts...).Eval(&e)
}

// DecodeError is an error from decoding a malformed expression.
type DecodeError struct {
	// Path is the argument indices leading to the malformed node.
	Path []int
	// Reason describes the problem.
	Reason string
}

func (err *DecodeError) Error() string {
	return errpath(err.Path, err.Reason)
}

// Pos returns the path to the malformed node.
func (err *DecodeError) Pos() []int {
	return err.Path
}

// NameError is an error decoding a call of an operator that doesn't exist.
type NameError struct {
	// Path is the argument indices leading to the call.
	Path []int
	// Name is the operator name that was not found.
	Name string
}

func (err *NameError) Error() string {
	return errpath(err.Path, "unknown operator "+strconv.Quote(err.Name))
}

// Pos returns the path to the call.
func (err *NameError) Pos() []int {
	return err.Path
}

// errpath is a shortcut to create an error message with a path.
func errpath(path []int, msg string) string {
	if len(path) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString("argument ")
	for i, k := range path {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(k))
	}
	b.WriteString(": ")
	b.WriteString(msg)
	return b.String()
}

// InputError is an error with the position of a malformed node. Every error
// resulting from invalid input to UnmarshalJSON, apart from invalid JSON
// syntax, implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based argument indices leading from the root to the
	// node that caused the error.
	Pos() []int
}

var (
	_ InputError = (*DecodeError)(nil)
	_ InputError = (*NameError)(nil)
)
