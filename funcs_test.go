package eve_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/eve"
)

func TestContracts(t *testing.T) {
	cases := []struct {
		op       eve.Op
		arity    int
		variadic bool
		kind     eve.Kind
	}{
		{eve.OpAdd, 2, false, eve.KindNumber},
		{eve.OpSubtract, 2, false, eve.KindNumber},
		{eve.OpMultiply, 2, false, eve.KindNumber},
		{eve.OpDivide, 2, false, eve.KindNumber},
		{eve.OpExponentiate, 2, false, eve.KindNumber},
		{eve.OpSum, 2, true, eve.KindNumber},
		{eve.OpRemainder, 2, false, eve.KindNumber},
		{eve.OpNegate, 1, false, eve.KindNumber},
		{eve.OpSin, 1, false, eve.KindNumber},
		{eve.OpCos, 1, false, eve.KindNumber},
		{eve.OpTan, 1, false, eve.KindNumber},
		{eve.OpATan2, 2, false, eve.KindNumber},
		{eve.OpSqrt, 1, false, eve.KindNumber},
		{eve.OpExp, 1, false, eve.KindNumber},
		{eve.OpLn, 1, false, eve.KindNumber},
		{eve.OpLog, 1, false, eve.KindNumber},
		{eve.OpPi, 0, false, eve.KindNone},
		{eve.OpE, 0, false, eve.KindNone},
		{eve.OpStrReplace, 3, false, eve.KindText},
		{eve.OpConcat, 2, true, eve.KindText},
	}
	seen := make(map[eve.Op]bool)
	for _, c := range cases {
		seen[c.op] = true
		t.Run(c.op.String(), func(t *testing.T) {
			arg := func() interface{} {
				if c.kind == eve.KindText {
					return "a"
				}
				return 2
			}
			args := func(n int) []interface{} {
				r := make([]interface{}, n)
				for i := range r {
					r[i] = arg()
				}
				return r
			}
			r, err := eve.Eval(eve.Apply(c.op, args(c.arity)...))
			if err != nil {
				t.Errorf("%d arguments: %v", c.arity, err)
			}
			if r.Kind() == eve.KindNone {
				t.Errorf("%d arguments gave no result", c.arity)
			}

			bad := []int{c.arity + 1}
			if c.arity > 0 {
				bad = append(bad, c.arity-1)
			}
			if c.variadic {
				bad = bad[1:]
				if _, err := eve.Eval(eve.Apply(c.op, args(c.arity+3)...)); err != nil {
					t.Errorf("%d arguments: %v", c.arity+3, err)
				}
			}
			for _, n := range bad {
				_, err := eve.Eval(eve.Apply(c.op, args(n)...))
				var u *eve.ArityError
				if !errors.As(err, &u) {
					t.Errorf("%d arguments: error was %#v, not ArityError", n, err)
					continue
				}
				want := eve.ArityError{Op: c.op, Want: c.arity, Variadic: c.variadic, Got: n}
				if *u != want {
					t.Errorf("wrong error: want %+v, got %+v", want, *u)
				}
			}
		})
	}
	for op := eve.OpNone + 1; op.Valid(); op++ {
		if !seen[op] {
			t.Errorf("no contract case for %v", op)
		}
	}
}
