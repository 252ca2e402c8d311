package expr

// Construction is literal: no simplification happens here, so Add(X(), Const(0))
// keeps the zero term. Trees are never mutated after construction, so operands
// may be shared freely between expressions.

// X returns the free variable, the identity function. All variable nodes are
// interchangeable; X may be called any number of times.
func X() Expr { return &VarNode{} }

// Const converts a number to a constant expression.
func Const(c float64) Expr { return &ConstNode{Val: c} }

// Add builds u + v.
func Add(u, v Expr) Expr { return &BinaryNode{Op: OpAdd, Left: u, Right: v} }

// Sub builds u - v.
func Sub(u, v Expr) Expr { return &BinaryNode{Op: OpSub, Left: u, Right: v} }

// Mul builds u * v.
func Mul(u, v Expr) Expr { return &BinaryNode{Op: OpMul, Left: u, Right: v} }

// Div builds u / v.
func Div(u, v Expr) Expr { return &BinaryNode{Op: OpDiv, Left: u, Right: v} }

// Neg builds -u.
func Neg(u Expr) Expr { return &UnaryNode{Op: OpNeg, Child: u} }

// Pow builds u^n for a fixed real exponent n.
func Pow(u Expr, n float64) Expr { return &PowNode{Child: u, Exponent: n} }

// Sqrt builds the square root of u.
func Sqrt(u Expr) Expr { return &UnaryNode{Op: OpSqrt, Child: u} }

// Exp builds e^u.
func Exp(u Expr) Expr { return &UnaryNode{Op: OpExp, Child: u} }

// Sin builds sin(u).
func Sin(u Expr) Expr { return &UnaryNode{Op: OpSin, Child: u} }

// Cos builds cos(u).
func Cos(u Expr) Expr { return &UnaryNode{Op: OpCos, Child: u} }

// Atan builds arctan(u).
func Atan(u Expr) Expr { return &UnaryNode{Op: OpAtan, Child: u} }

// Ln builds the natural logarithm of u.
func Ln(u Expr) Expr { return &UnaryNode{Op: OpLn, Child: u} }

// Compose builds f after g, the function x -> f(g(x)).
func Compose(f, g Expr) Expr { return &ComposeNode{Outer: f, Inner: g} }
