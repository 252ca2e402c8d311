package expr

func (v *VarNode) NodeCount() int   { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}
func (p *PowNode) NodeCount() int { return 1 + p.Child.NodeCount() }
func (c *ComposeNode) NodeCount() int {
	return 1 + c.Outer.NodeCount() + c.Inner.NodeCount()
}

func (v *VarNode) Depth() int   { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
func (p *PowNode) Depth() int { return 1 + p.Child.Depth() }
func (c *ComposeNode) Depth() int {
	od := c.Outer.Depth()
	id := c.Inner.Depth()
	if od > id {
		return 1 + od
	}
	return 1 + id
}
