package eve

import "strings"

// Op is a function symbol. The set of operators is closed.
type Op int8

const (
	OpNone Op = iota

	// arithmetic
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpExponentiate
	OpSum
	OpRemainder
	OpNegate

	// transcendental
	OpSin
	OpCos
	OpTan
	OpATan2
	OpSqrt
	OpExp
	OpLn
	OpLog

	// constants
	OpPi
	OpE

	// text
	OpStrReplace
	OpConcat

	opCount
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op

// opnames maps lower-case operator names to operators.
var opnames = func() map[string]Op {
	m := make(map[string]Op, opCount-1)
	for op := OpNone + 1; op < opCount; op++ {
		m[strings.ToLower(op.String())] = op
	}
	return m
}()

// ParseOp finds an operator by its name, ignoring case. OpNone is never
// found.
func ParseOp(name string) (Op, bool) {
	op, ok := opnames[strings.ToLower(name)]
	return op, ok
}

// Valid returns whether op is an operator that can be evaluated.
func (op Op) Valid() bool {
	return op > OpNone && op < opCount
}
