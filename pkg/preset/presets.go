package preset

import (
	"math"

	"github.com/wildfunctions/autodiff/pkg/expr"
)

func init() {
	Register(Preset{
		Name:    "halfcubic",
		Formula: "x^3/2 + sin(2x)",
		Build: func() expr.Expr {
			return expr.Add(
				expr.Div(expr.Pow(expr.X(), 3), expr.Const(2)),
				expr.Sin(expr.Mul(expr.Const(2), expr.X())))
		},
	})

	Register(Preset{
		Name:    "quartic",
		Formula: "0.8x^4 - 1.5x^3 - x^2 + 2x + 2.5",
		Build: func() expr.Expr {
			return expr.Add(
				expr.Add(
					expr.Sub(
						expr.Sub(
							expr.Mul(expr.Const(0.8), expr.Pow(expr.X(), 4)),
							expr.Mul(expr.Const(1.5), expr.Pow(expr.X(), 3))),
						expr.Pow(expr.X(), 2)),
					expr.Mul(expr.Const(2), expr.X())),
				expr.Const(2.5))
		},
	})

	// Cost whose minimum solves x^2 = 2^x, with 2^x written as e^(x ln 2).
	Register(Preset{
		Name:    "crossing",
		Formula: "(x^2 - e^(x ln 2))^2",
		Build: func() expr.Expr {
			diff := expr.Sub(
				expr.Pow(expr.X(), 2),
				expr.Exp(expr.Mul(expr.X(), expr.Const(math.Log(2)))))
			return expr.Pow(diff, 2)
		},
	})

	Register(Preset{
		Name:     "wave",
		Formula:  "sin(x) + cos(x)",
		Maximize: true,
		Build: func() expr.Expr {
			return expr.Add(expr.Sin(expr.X()), expr.Cos(expr.X()))
		},
	})

	// (x^3/2 + sin(2x)) composed with (x/3 - 5).
	Register(Preset{
		Name:    "chained",
		Formula: "f(g(x)), f = x^3/2 + sin(2x), g = x/3 - 5",
		Build: func() expr.Expr {
			f := expr.Add(
				expr.Div(expr.Pow(expr.X(), 3), expr.Const(2)),
				expr.Sin(expr.Mul(expr.Const(2), expr.X())))
			g := expr.Sub(expr.Div(expr.X(), expr.Const(3)), expr.Const(5))
			return expr.Compose(f, g)
		},
	})
}
