package syntax

// Pair is a node seen together with its parent during traversal. Parent is
// nil only for the root.
type Pair struct {
	Node   *Node
	Parent *Node
}

// InCondition reports whether the node is the test of an if, loop or
// ternary. With negated set, the operand of a `!` that is itself such a
// test also counts.
func (p Pair) InCondition(negated bool) bool {
	if p.Node == nil || p.Parent == nil {
		return false
	}

	if p.Node.Role == RoleCondition && p.Parent.Kind.IsBranch() {
		return true
	}

	if !negated {
		return false
	}

	return p.Parent.Kind == KindUnary &&
		p.Parent.Op == OpNot &&
		p.Parent.Role == RoleCondition
}

// IsDiscarded reports whether the node is the whole payload of an
// expression statement, so its value is thrown away.
func (p Pair) IsDiscarded() bool {
	return p.Node != nil && p.Parent != nil && p.Parent.Kind == KindExpressionStatement
}

// IsConsumed reports whether the node's value feeds an enclosing expression
// or a statement that uses it.
func (p Pair) IsConsumed() bool {
	if p.Node == nil || p.Parent == nil {
		return false
	}

	if p.Parent.Kind.IsExpression() {
		return true
	}

	switch p.Parent.Kind { //nolint:exhaustive
	case KindReturn, KindThrow, KindVariable, KindSwitch, KindForEach:
		return p.Node.Role == RoleValue
	default:
		return p.Node.Role == RoleCondition && p.Parent.Kind.IsBranch()
	}
}

// Walk visits every node under root in pre-order, left to right. Returning
// false from visit stops the walk. It uses an explicit stack so deeply nested
// trees cannot exhaust the goroutine stack.
func Walk(root *Node, visit func(Pair) bool) {
	if root == nil {
		return
	}

	stack := []Pair{{Node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(top) {
			return
		}

		children := top.Node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, Pair{Node: children[i], Parent: top.Node})
		}
	}
}

// Pairs collects the pre-order traversal of root.
func Pairs(root *Node) []Pair {
	var out []Pair

	Walk(root, func(p Pair) bool {
		out = append(out, p)
		return true
	})

	return out
}
