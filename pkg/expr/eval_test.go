package expr

import (
	"math"
	"testing"
)

func assertEval(t *testing.T, e Expr, x, wantVal, wantDeriv, tol float64) {
	t.Helper()
	v, d := e.Eval(x)
	if math.Abs(v-wantVal) > tol {
		t.Errorf("Eval(x=%v) value = %v, want %v (tol=%v)", x, v, wantVal, tol)
	}
	if math.Abs(d-wantDeriv) > tol {
		t.Errorf("Eval(x=%v) deriv = %v, want %v (tol=%v)", x, d, wantDeriv, tol)
	}
}

func TestVarNode(t *testing.T) {
	// f(x) = x, f'(x) = 1 at any point
	v := &VarNode{}
	assertEval(t, v, 5, 5, 1, 0)
	assertEval(t, v, 0, 0, 1, 0)
	assertEval(t, v, -2.5, -2.5, 1, 0)

	if v.NodeCount() != 1 {
		t.Errorf("VarNode.NodeCount() = %d, want 1", v.NodeCount())
	}
}

func TestConstNode(t *testing.T) {
	// f(x) = c, f'(x) = 0 regardless of x
	c := &ConstNode{Val: 7.5}
	assertEval(t, c, 99, 7.5, 0, 0)
	assertEval(t, c, -3, 7.5, 0, 0)
}

func TestBinaryOps(t *testing.T) {
	x := &VarNode{}
	two := &ConstNode{Val: 2}

	// x + 2
	add := &BinaryNode{Op: OpAdd, Left: x, Right: two}
	assertEval(t, add, 3, 5, 1, 0)

	// x - 2
	sub := &BinaryNode{Op: OpSub, Left: x, Right: two}
	assertEval(t, sub, 5, 3, 1, 0)

	// x * 2: product rule gives (6, 2) at x=3
	mul := &BinaryNode{Op: OpMul, Left: x, Right: two}
	assertEval(t, mul, 3, 6, 2, 0)

	// x / 2
	div := &BinaryNode{Op: OpDiv, Left: x, Right: two}
	assertEval(t, div, 10, 5, 0.5, 0)
}

func TestAddLinearity(t *testing.T) {
	// For arbitrary subtrees u, v: Add(u,v) is the sum of values and of
	// derivatives at every point.
	u := Mul(Sin(X()), X())
	v := Exp(Div(X(), Const(3)))
	sum := Add(u, v)

	for _, x := range []float64{-2, -0.5, 0, 0.7, 1, 3} {
		uv, ud := u.Eval(x)
		vv, vd := v.Eval(x)
		assertEval(t, sum, x, uv+vv, ud+vd, 1e-15)
	}
}

func TestProductRule(t *testing.T) {
	// (x * sin(x))' = sin(x) + x*cos(x)
	e := Mul(X(), Sin(X()))
	for _, x := range []float64{-1, 0, 0.5, 2} {
		assertEval(t, e, x, x*math.Sin(x), math.Sin(x)+x*math.Cos(x), 1e-15)
	}
}

func TestQuotientRule(t *testing.T) {
	// (sin(x)/x)' = (x*cos(x) - sin(x)) / x^2
	e := Div(Sin(X()), X())
	for _, x := range []float64{0.5, 1, 2, -3} {
		want := math.Sin(x) / x
		wantD := (x*math.Cos(x) - math.Sin(x)) / (x * x)
		assertEval(t, e, x, want, wantD, 1e-15)
	}
}

func TestPow(t *testing.T) {
	// x^3 at 2: (8, 12)
	assertEval(t, Pow(X(), 3), 2, 8, 12, 1e-12)

	// x^-1 at 2: (0.5, -0.25)
	assertEval(t, Pow(X(), -1), 2, 0.5, -0.25, 1e-15)

	// x^0.5 at 4: (2, 0.25)
	assertEval(t, Pow(X(), 0.5), 4, 2, 0.25, 1e-15)

	// Chain rule through the base: ((2x)^2)' = 8x
	e := Pow(Mul(Const(2), X()), 2)
	assertEval(t, e, 3, 36, 24, 1e-12)
}

func TestSqrt(t *testing.T) {
	e := Sqrt(X())
	assertEval(t, e, 4, 2, 0.25, 1e-15)
	assertEval(t, e, 9, 3, 1.0/6, 1e-15)

	// sqrt of a negative is NaN, not an error
	v, d := e.Eval(-1)
	if !math.IsNaN(v) || !math.IsNaN(d) {
		t.Errorf("Sqrt(-1) = (%v, %v), want (NaN, NaN)", v, d)
	}
}

func TestExp(t *testing.T) {
	// (e^u)' = u' e^u; with u = 2x at 1: value e^2, deriv 2e^2
	e := Exp(Mul(Const(2), X()))
	assertEval(t, e, 1, math.Exp(2), 2*math.Exp(2), 1e-12)
	assertEval(t, Exp(X()), 0, 1, 1, 0)
}

func TestTrig(t *testing.T) {
	assertEval(t, Sin(X()), 0, 0, 1, 0)
	assertEval(t, Sin(X()), math.Pi/2, 1, 0, 1e-15)
	assertEval(t, Cos(X()), 0, 1, 0, 0)
	assertEval(t, Cos(X()), math.Pi/2, 0, -1, 1e-15)

	// sin(x^2)' = 2x cos(x^2)
	e := Sin(Pow(X(), 2))
	assertEval(t, e, 1.3, math.Sin(1.69), 2.6*math.Cos(1.69), 1e-14)
}

func TestAtan(t *testing.T) {
	// atan'(x) = 1/(1+x^2)
	e := Atan(X())
	assertEval(t, e, 0, 0, 1, 0)
	assertEval(t, e, 1, math.Pi/4, 0.5, 1e-15)
	assertEval(t, e, -2, math.Atan(-2), 0.2, 1e-15)
}

func TestLn(t *testing.T) {
	e := Ln(X())
	assertEval(t, e, 1, 0, 1, 0)
	assertEval(t, e, math.E, 1, 1/math.E, 1e-15)

	// ln of a non-positive number flows through as -Inf / NaN
	v, d := e.Eval(0)
	if !math.IsInf(v, -1) {
		t.Errorf("Ln(0) value = %v, want -Inf", v)
	}
	if !math.IsInf(d, 1) {
		t.Errorf("Ln(0) deriv = %v, want +Inf", d)
	}
	v, _ = e.Eval(-1)
	if !math.IsNaN(v) {
		t.Errorf("Ln(-1) value = %v, want NaN", v)
	}
}

func TestNeg(t *testing.T) {
	e := Neg(Sin(X()))
	assertEval(t, e, 0.7, -math.Sin(0.7), -math.Cos(0.7), 1e-15)
}

func TestComposeChainRule(t *testing.T) {
	// sin o (2x) at 0: value 0, derivative 2 since (sin 2x)' = 2 cos 2x
	e := Compose(Sin(X()), Mul(Const(2), X()))
	assertEval(t, e, 0, 0, 2, 0)

	// Inner is evaluated at x, outer at inner's value: (ln o (x^2)) at 3
	e = Compose(Ln(X()), Pow(X(), 2))
	assertEval(t, e, 3, math.Log(9), 2.0/3, 1e-15)
}

func TestWorkedExample(t *testing.T) {
	// f(x) = x^3/2 + sin(2x); f(3) ~= 13.220585, f'(3) ~= 15.420341
	f := Add(Div(Pow(X(), 3), Const(2)), Sin(Mul(Const(2), X())))
	assertEval(t, f, 3, 13.220585, 15.420341, 1e-5)
}

func TestDivisionByZero(t *testing.T) {
	// 1/x at 0: value +Inf, derivative -1/0^2 = -Inf. No error, no panic.
	e := Div(Const(1), X())
	v, d := e.Eval(0)
	if !math.IsInf(v, 1) {
		t.Errorf("1/x at 0: value = %v, want +Inf", v)
	}
	if !math.IsInf(d, -1) {
		t.Errorf("1/x at 0: deriv = %v, want -Inf", d)
	}

	// Infinities keep propagating through enclosing nodes.
	outer := Add(e, Const(5))
	v, _ = outer.Eval(0)
	if !math.IsInf(v, 1) {
		t.Errorf("1/x + 5 at 0: value = %v, want +Inf", v)
	}
}

func TestDeterminism(t *testing.T) {
	build := func() Expr {
		return Add(Div(Pow(X(), 3), Const(2)), Sin(Mul(Const(2), X())))
	}
	a, b := build(), build()
	for _, x := range []float64{-1, 0, 0.5, 3, 7} {
		av, ad := a.Eval(x)
		bv, bd := b.Eval(x)
		if av != bv || ad != bd {
			t.Errorf("x=%v: (%v, %v) != (%v, %v)", x, av, ad, bv, bd)
		}
	}
}

func TestOutOfRangeOp(t *testing.T) {
	// The builder never produces ops outside the enum; a hand-built node
	// with one falls back to the zero pair.
	v, d := (&UnaryNode{Op: UnaryOp(99), Child: X()}).Eval(1)
	if v != 0 || d != 0 {
		t.Errorf("unary op 99 = (%v, %v), want (0, 0)", v, d)
	}
	v, d = (&BinaryNode{Op: BinaryOp(99), Left: X(), Right: X()}).Eval(1)
	if v != 0 || d != 0 {
		t.Errorf("binary op 99 = (%v, %v), want (0, 0)", v, d)
	}
}

func TestRepeatedEvaluation(t *testing.T) {
	// Evaluation is pure: the same tree evaluated twice at the same point
	// gives identical results, and evaluating elsewhere in between changes
	// nothing.
	e := Mul(Exp(X()), Atan(X()))
	v1, d1 := e.Eval(1.5)
	e.Eval(-40)
	v2, d2 := e.Eval(1.5)
	if v1 != v2 || d1 != d2 {
		t.Errorf("re-evaluation changed results: (%v, %v) vs (%v, %v)", v1, d1, v2, d2)
	}
}
