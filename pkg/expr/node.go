package expr

// Expr is the interface for all expression tree nodes. An expression is an
// immutable tree over one free variable; evaluating it at a point yields the
// function value and first derivative together (forward-mode differentiation).
type Expr interface {
	Eval(x float64) (value, deriv float64)
	Clone() Expr
	NodeCount() int
	Depth() int
}

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpSqrt
	OpExp
	OpSin
	OpCos
	OpAtan
	OpLn
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// VarNode represents the variable x.
type VarNode struct{}

// ConstNode represents a real constant.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Expr
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Expr
}

// PowNode raises a child expression to a fixed real exponent. The exponent is
// a plain number baked in at construction, not a sub-expression.
type PowNode struct {
	Child    Expr
	Exponent float64
}

// ComposeNode is the function composition Outer after Inner: x -> Outer(Inner(x)).
type ComposeNode struct {
	Outer, Inner Expr
}
