package formula

import (
	"strconv"
	"strings"
)

// Accumulator reduces an ordered sequence of values to a single value, with
// a symbolic mode that reduces the corresponding terms to an equation.
type Accumulator struct {
	eval   func([]float64) float64
	render func([]string) string
}

// NewAccumulator builds an accumulator from its two modes.
func NewAccumulator(eval func([]float64) float64, render func([]string) string) Accumulator {
	return Accumulator{eval: eval, render: render}
}

// Eval reduces the values numerically. The result is truncated to an
// integer; rule formulas are expected to compose Floor before any division
// can leave a fraction.
func (a Accumulator) Eval(values []int) int {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return int(a.eval(floats))
}

// Render reduces the terms symbolically into an equation string.
func (a Accumulator) Render(terms []string) string {
	return a.render(terms)
}

// Then composes a transformer onto the accumulator. When group is true and
// the accumulator reduced more than one term, the symbolic side is wrapped
// in parentheses first, keeping equations like (3+4+5)×5 unambiguous.
func (a Accumulator) Then(next Transformer, group bool) Accumulator {
	return Accumulator{
		eval: func(values []float64) float64 {
			return next.eval(a.eval(values))
		},
		render: func(terms []string) string {
			rendered := a.render(terms)
			if group && len(terms) > 1 && rendered != "" {
				rendered = "(" + rendered + ")"
			}
			return next.render(rendered)
		},
	}
}

// Sum adds the values and joins the terms with "+".
var Sum = Accumulator{
	eval: func(values []float64) float64 {
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total
	},
	render: func(terms []string) string {
		return strings.Join(terms, "+")
	},
}

// Constant ignores its inputs and always produces n.
func Constant(n int) Accumulator {
	return Accumulator{
		eval:   func([]float64) float64 { return float64(n) },
		render: func([]string) string { return strconv.Itoa(n) },
	}
}
