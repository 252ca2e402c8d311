package expr

func (v *VarNode) Clone() Expr {
	return &VarNode{}
}

func (c *ConstNode) Clone() Expr {
	return &ConstNode{Val: c.Val}
}

func (u *UnaryNode) Clone() Expr {
	return &UnaryNode{
		Op:    u.Op,
		Child: u.Child.Clone(),
	}
}

func (b *BinaryNode) Clone() Expr {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

func (p *PowNode) Clone() Expr {
	return &PowNode{
		Child:    p.Child.Clone(),
		Exponent: p.Exponent,
	}
}

func (c *ComposeNode) Clone() Expr {
	return &ComposeNode{
		Outer: c.Outer.Clone(),
		Inner: c.Inner.Clone(),
	}
}
