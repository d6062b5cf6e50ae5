// Package lispcalc implements a calculator for prefix-notation arithmetic.
//
// An expression is a number, an operator, a symbol, or a parenthesized list
// of expressions separated by whitespace. "(+ 1 2 (* 3 4))" is 15. Every
// number is a float64, including ones written without a decimal point, so
// "(/ 7 2)" truncates a float64 quotient to 3 rather than doing integer
// division.
//
// Parse turns a line of text into an Expr, and Eval reduces it. Symbols have
// no value unless a Context is given a Resolver for them; Constants provides
// pi and e.
//
package lispcalc
