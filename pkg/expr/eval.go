package expr

import "math"

// Evaluation carries a (value, derivative) pair up the tree, combining the
// children's pairs with the calculus rule for each node kind. Domain
// violations (division by zero, ln of a non-positive number, sqrt of a
// negative) are not detected: they produce the IEEE-754 infinities and NaNs
// of ordinary float64 arithmetic and flow through unchanged.

// Eval for VarNode: f(x) = x, f'(x) = 1.
func (v *VarNode) Eval(x float64) (float64, float64) {
	return x, 1
}

// Eval for ConstNode: f(x) = c, f'(x) = 0.
func (c *ConstNode) Eval(x float64) (float64, float64) {
	return c.Val, 0
}

// Eval for UnaryNode dispatches on op, applying the chain rule through the child.
func (u *UnaryNode) Eval(x float64) (float64, float64) {
	cv, cd := u.Child.Eval(x)

	switch u.Op {
	case OpNeg:
		return -cv, -cd

	case OpSqrt:
		s := math.Sqrt(cv)
		return s, cd / (2 * s)

	case OpExp:
		e := math.Exp(cv)
		return e, e * cd

	case OpSin:
		s, c := math.Sincos(cv)
		return s, c * cd

	case OpCos:
		s, c := math.Sincos(cv)
		return c, -s * cd

	case OpAtan:
		return math.Atan(cv), cd / (1 + cv*cv)

	case OpLn:
		return math.Log(cv), cd / cv

	default:
		return 0, 0
	}
}

// Eval for BinaryNode evaluates both children at the same point and combines
// them with the sum, product, or quotient rule.
func (b *BinaryNode) Eval(x float64) (float64, float64) {
	lv, ld := b.Left.Eval(x)
	rv, rd := b.Right.Eval(x)

	switch b.Op {
	case OpAdd:
		return lv + rv, ld + rd

	case OpSub:
		return lv - rv, ld - rd

	case OpMul:
		return lv * rv, ld*rv + lv*rd

	case OpDiv:
		return lv / rv, (ld*rv - lv*rd) / (rv * rv)

	default:
		return 0, 0
	}
}

// Eval for PowNode: f = u^n, f' = n * u^(n-1) * u'.
func (p *PowNode) Eval(x float64) (float64, float64) {
	cv, cd := p.Child.Eval(x)
	return math.Pow(cv, p.Exponent), p.Exponent * math.Pow(cv, p.Exponent-1) * cd
}

// Eval for ComposeNode evaluates Inner at x, then Outer at Inner's value.
// This is the only node kind whose child sees a different point than the
// parent received; the derivative is the chain rule product.
func (c *ComposeNode) Eval(x float64) (float64, float64) {
	gv, gd := c.Inner.Eval(x)
	fv, fd := c.Outer.Eval(gv)
	return fv, fd * gd
}
