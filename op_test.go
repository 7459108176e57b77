package eve_test

import (
	"testing"

	"github.com/zephyrtronium/eve"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		name string
		op   eve.Op
		ok   bool
	}{
		{"Add", eve.OpAdd, true},
		{"add", eve.OpAdd, true},
		{"ATAN2", eve.OpATan2, true},
		{"atan2", eve.OpATan2, true},
		{"StrReplace", eve.OpStrReplace, true},
		{"strreplace", eve.OpStrReplace, true},
		{"E", eve.OpE, true},
		{"None", eve.OpNone, false},
		{"", eve.OpNone, false},
		{"opCount", eve.OpNone, false},
		{"Sub", eve.OpNone, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			op, ok := eve.ParseOp(c.name)
			if op != c.op || ok != c.ok {
				t.Errorf("wrong result: want %v, %t; got %v, %t", c.op, c.ok, op, ok)
			}
		})
	}
}

func TestOpNames(t *testing.T) {
	// Every operator must be found by its own name and must evaluate to
	// something other than an unknown operator error.
	for op := eve.OpNone + 1; op.Valid(); op++ {
		t.Run(op.String(), func(t *testing.T) {
			r, ok := eve.ParseOp(op.String())
			if !ok || r != op {
				t.Errorf("%v parsed as %v, %t", op, r, ok)
			}
			_, err := eve.Eval(eve.Call(op))
			if _, ok := err.(*eve.OperatorError); ok {
				t.Errorf("%v has no implementation", op)
			}
		})
	}
	if s := eve.Op(100).String(); s != "Op(100)" {
		t.Errorf("wrong name for invalid op: %q", s)
	}
	if eve.OpNone.Valid() {
		t.Error("OpNone is valid")
	}
}
