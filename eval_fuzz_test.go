package eve_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/eve"
)

func FuzzEval(f *testing.F) {
	f.Add(`["Add", 1, 2]`)
	f.Add(`["StrReplace", "Hello World", "l", "q"]`)
	f.Add(`["Exponentiate", ["Add", 1.3, 2], 2.5]`)
	f.Add(`["Divide", 1, 0]`)
	f.Fuzz(func(t *testing.T, s string) {
		eve.EvalJSON([]byte(s))
		eve.EvalJSON([]byte(s), eve.Prec(64))
	})
}

func FuzzIntArith(f *testing.F) {
	f.Add(int64(1), int64(2))
	f.Add(int64(-7), int64(3))
	f.Add(int64(1<<62), int64(1<<62))
	f.Fuzz(func(t *testing.T, a, b int64) {
		x, y := big.NewInt(a), big.NewInt(b)
		check := func(op eve.Op, want *big.Int) {
			t.Helper()
			r, err := eve.Eval(eve.Apply(op, a, b))
			if err != nil {
				t.Fatalf("%v(%d, %d): %v", op, a, b, err)
			}
			got, ok := r.Int()
			if !ok {
				t.Fatalf("%v(%d, %d) gave %v, not int", op, a, b, r.Kind())
			}
			if got.Cmp(want) != 0 {
				t.Errorf("%v(%d, %d): want %v, got %v", op, a, b, want, got)
			}
		}
		check(eve.OpAdd, new(big.Int).Add(x, y))
		check(eve.OpSubtract, new(big.Int).Sub(x, y))
		check(eve.OpMultiply, new(big.Int).Mul(x, y))
		if b != 0 {
			check(eve.OpRemainder, new(big.Int).Rem(x, y))
		}
	})
}
