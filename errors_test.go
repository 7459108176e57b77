package eve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/eve"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
		is   error
	}{
		{"arity", &eve.ArityError{Op: eve.OpAdd, Want: 2, Got: 1}, "Add: want 2 arguments, got 1", eve.ErrArity},
		{"arity-1", &eve.ArityError{Op: eve.OpSin, Want: 1, Got: 2}, "Sin: want 1 argument, got 2", eve.ErrArity},
		{"arity-variadic", &eve.ArityError{Op: eve.OpSum, Want: 2, Variadic: true, Got: 1}, "Sum: want at least 2 arguments, got 1", eve.ErrArity},
		{"arity-0", &eve.ArityError{Op: eve.OpPi, Got: 1}, "Pi: want 0 arguments, got 1", eve.ErrArity},
		{"type", &eve.TypeError{Op: eve.OpStrReplace, Arg: 2, Want: eve.KindText, Got: eve.KindInt}, "StrReplace: argument 2 must be text, not int", eve.ErrType},
		{"type-none", &eve.TypeError{Op: eve.OpAdd, Arg: 1, Want: eve.KindNumber, Got: eve.KindNone}, "Add: argument 1 must be number, not nothing", eve.ErrType},
		{"div", &eve.DivisionByZeroError{Op: eve.OpDivide}, "Divide: integer division by zero", eve.ErrDivisionByZero},
		{"op", &eve.OperatorError{Op: eve.Op(100)}, "unknown operator Op(100)", eve.ErrOperator},
		{"domain", &eve.DomainError{Op: eve.OpSqrt, Arg: 1, X: eve.Int(-1)}, "-1 outside domain of Sqrt (argument 1)", eve.ErrDomain},
		{"domain-args", &eve.DomainError{Op: eve.OpDivide}, "arguments outside domain of Divide", eve.ErrDomain},
	}
	sentinels := []error{eve.ErrArity, eve.ErrType, eve.ErrDivisionByZero, eve.ErrOperator, eve.ErrDomain}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.msg, c.err.Error())
			for _, s := range sentinels {
				assert.Equal(t, s == c.is, errors.Is(c.err, s), "errors.Is(%v, %v)", c.err, s)
			}
		})
	}
}

func TestDomainErrorFromBig(t *testing.T) {
	_, err := eve.NewContext(eve.Prec(64)).Eval(eve.Apply(eve.OpDivide, 0.0, 0.0))
	var de *eve.DomainError
	if assert.ErrorAs(t, err, &de) {
		assert.Equal(t, eve.OpDivide, de.Op)
		assert.Zero(t, de.Arg)
		assert.Contains(t, err.Error(), "Divide")
		assert.NotEmpty(t, de.NaN.Error())
	}
}
