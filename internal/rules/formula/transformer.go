// Package formula implements the dual-mode formula combinators used by game
// rule tables.
//
// Every combinator evaluates in two modes from a single definition: a numeric
// mode that computes a value, and a symbolic mode that renders the same
// operation as a human-readable equation. Rule tables compose transformers
// onto accumulators so a derived stat and its displayed equation can never
// drift apart.
package formula

import (
	"fmt"
	"math"
)

// PartitionMark is appended to an equation where it may be word-wrapped.
// It renders as a zero-width space.
const PartitionMark = "​"

// Transformer is a composable unary operation with a numeric and a symbolic
// mode.
type Transformer struct {
	eval   func(float64) float64
	render func(string) string
}

// NewTransformer builds a transformer from its two modes.
func NewTransformer(eval func(float64) float64, render func(string) string) Transformer {
	return Transformer{eval: eval, render: render}
}

// Eval applies the numeric mode.
func (t Transformer) Eval(value float64) float64 {
	return t.eval(value)
}

// Render applies the symbolic mode.
func (t Transformer) Render(term string) string {
	return t.render(term)
}

// Then composes a transformer after this one. The symbolic side of the
// earlier step is parenthesized so operator precedence in the rendered
// equation matches the evaluation order.
func (t Transformer) Then(next Transformer) Transformer {
	return Transformer{
		eval: func(value float64) float64 {
			return next.eval(t.eval(value))
		},
		render: func(term string) string {
			return next.render("(" + t.render(term) + ")")
		},
	}
}

// Partition marks a wrap point in the rendered equation and leaves the value
// untouched.
var Partition = Transformer{
	eval:   func(value float64) float64 { return value },
	render: func(term string) string { return term + PartitionMark },
}

// Floor rounds the value down. Equations render floored terms as-is.
var Floor = Transformer{
	eval:   math.Floor,
	render: func(term string) string { return term },
}

// Add returns a transformer that adds a constant.
func Add(c int) Transformer {
	return Transformer{
		eval:   func(value float64) float64 { return value + float64(c) },
		render: func(term string) string { return fmt.Sprintf("%s+%d", term, c) },
	}
}

// Mul returns a transformer that multiplies by a constant.
func Mul(c int) Transformer {
	return Transformer{
		eval:   func(value float64) float64 { return value * float64(c) },
		render: func(term string) string { return fmt.Sprintf("%s×%d", term, c) },
	}
}

// Div returns a transformer that divides by a constant. Division is exact;
// compose Floor after it when the rule calls for rounding down.
func Div(c int) Transformer {
	return Transformer{
		eval:   func(value float64) float64 { return value / float64(c) },
		render: func(term string) string { return fmt.Sprintf("%s÷%d", term, c) },
	}
}
