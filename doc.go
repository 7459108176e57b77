// Package eve evaluates trees of operator calls over numbers and text.
//
// A tree is built from literals and calls, e.g.
//
//	Apply(OpExponentiate, Apply(OpAdd, 1.3, 2), 2.5)
//
// and evaluated with Eval. Integers are exact and stay exact under Add,
// Subtract, Multiply, Remainder, and Divide when the quotient is an integer.
// Any float operand, inexact quotient, or transcendental operator promotes
// every operand to floating point first. Floating-point results follow
// IEEE-754, so division of a float by zero gives an infinity and a negative
// base to a fractional power gives NaN rather than an error. Contexts created
// with Prec compute floats with arbitrary precision instead.
//
// Arity and argument kinds are checked when a call is evaluated, not when it
// is built. Errors are returned as *ArityError, *TypeError,
// *DivisionByZeroError, *OperatorError, or *DomainError.
package eve
