package eve

import (
	"errors"
	"math/big"
	"strconv"
)

// Sentinel errors for use with errors.Is. Every error returned by evaluation
// matches exactly one of them.
var (
	ErrArity          = errors.New("wrong number of arguments")
	ErrType           = errors.New("wrong argument kind")
	ErrDivisionByZero = errors.New("integer division by zero")
	ErrOperator       = errors.New("unknown operator")
	ErrDomain         = errors.New("argument outside domain")
)

// ArityError is an error from calling an operator with the wrong number of
// arguments.
type ArityError struct {
	// Op is the operator that was called.
	Op Op
	// Want is the number of arguments the operator takes. If Variadic is
	// true, it is the minimum.
	Want     int
	Variadic bool
	// Got is the number of arguments passed.
	Got int
}

func (err *ArityError) Error() string {
	r := err.Op.String() + ": want "
	if err.Variadic {
		r += "at least "
	}
	r += strconv.Itoa(err.Want) + " argument"
	if err.Want != 1 {
		r += "s"
	}
	return r + ", got " + strconv.Itoa(err.Got)
}

// Is returns whether target is ErrArity.
func (err *ArityError) Is(target error) bool {
	return target == ErrArity
}

// TypeError is an error from calling an operator with an argument of the
// wrong kind.
type TypeError struct {
	// Op is the operator that was called.
	Op Op
	// Arg is the 1-based index of the argument.
	Arg int
	// Want is the kind the operator takes at that position. Got is the kind
	// of the argument. Got is KindNone for nil argument expressions.
	Want, Got Kind
}

func (err *TypeError) Error() string {
	return err.Op.String() + ": argument " + strconv.Itoa(err.Arg) + " must be " + err.Want.String() + ", not " + err.Got.String()
}

// Is returns whether target is ErrType.
func (err *TypeError) Is(target error) bool {
	return target == ErrType
}

// DivisionByZeroError is an error from dividing an exact integer by exact
// integer zero. Division of floats by zero is not an error.
type DivisionByZeroError struct {
	Op Op
}

func (err *DivisionByZeroError) Error() string {
	return err.Op.String() + ": integer division by zero"
}

// Is returns whether target is ErrDivisionByZero.
func (err *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// OperatorError is an error from evaluating a call of an operator outside the
// closed set of operators, including OpNone.
type OperatorError struct {
	Op Op
}

func (err *OperatorError) Error() string {
	return "unknown operator " + err.Op.String()
}

// Is returns whether target is ErrOperator.
func (err *OperatorError) Is(target error) bool {
	return target == ErrOperator
}

// DomainError is an error returned in extended precision when an operator is
// called on arguments for which it has no representable result. It unwraps to
// big.ErrNaN. Float64 evaluation produces NaN values instead.
type DomainError struct {
	// Op is the operator that was called.
	Op Op
	// Arg is the 1-based index of the out-of-domain argument, or 0 if the
	// combination of arguments is the problem.
	Arg int
	// X is the out-of-domain argument, if Arg is nonzero.
	X Value
	// NaN is the error from math/big, if any.
	NaN big.ErrNaN
}

func (err *DomainError) Error() string {
	var r string
	if err.Arg > 0 {
		r = err.X.String() + " outside domain of " + err.Op.String() + " (argument " + strconv.Itoa(err.Arg) + ")"
	} else {
		r = "arguments outside domain of " + err.Op.String()
	}
	if err.NaN.Error() != "" {
		r += ": " + err.NaN.Error()
	}
	return r
}

// Is returns whether target is ErrDomain.
func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// Unwrap returns the math/big NaN error.
func (err *DomainError) Unwrap() error {
	return err.NaN
}
