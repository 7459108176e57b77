package eve_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/eve"
)

func ExampleApply() {
	e := eve.Apply(eve.OpStrReplace, "Hello World", "l", "q")
	r, err := eve.Eval(e)
	fmt.Println(e)
	fmt.Println(r, err)

	// Output:
	// StrReplace("Hello World", "l", "q")
	// Heqqo Worqd <nil>
}

func ExampleCall() {
	x := eve.Lit(eve.Int(9223372036854775807))
	e := eve.Call(eve.OpAdd, x, eve.Lit(eve.Int(1)))
	r, _ := eve.Eval(e)
	fmt.Println(r, r.Kind())

	// Output:
	// 9223372036854775808 int
}

func ExampleDivisionByZeroError() {
	_, err := eve.Eval(eve.Apply(eve.OpDivide, 1, 0))
	fmt.Println(err, errors.Is(err, eve.ErrDivisionByZero))

	r, err := eve.Eval(eve.Apply(eve.OpDivide, 1.0, 0))
	fmt.Println(r, err)

	// Output:
	// Divide: integer division by zero true
	// +Inf <nil>
}

func ExamplePrec() {
	ctx := eve.NewContext(eve.Prec(128))
	r, _ := ctx.Eval(eve.Apply(eve.OpDivide, 2, 8))
	fmt.Println(r)

	_, err := ctx.Eval(eve.Apply(eve.OpExponentiate, -8, 0.5))
	fmt.Println(err)

	// Output:
	// 0.25
	// -8 outside domain of Exponentiate (argument 1)
}
