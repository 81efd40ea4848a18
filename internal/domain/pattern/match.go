package pattern

import "github.com/kmizu/JavaSee/internal/syntax"

// Test reports whether node has the shape described by e. The node's
// surroundings are not consulted; see Pattern.Matches for that.
//
//nolint:cyclop,gocyclo // one case per variant
func Test(e Expr, node *syntax.Node) bool {
	if e == nil || node == nil {
		return false
	}

	switch e := e.(type) {
	case *Wildcard:
		return true

	case *Ident:
		return node.Kind == syntax.KindIdentifier && node.Name == e.Name

	case *IntLiteral:
		return node.Kind == syntax.KindIntLiteral && node.Value.Int == e.Value

	case *DoubleLiteral:
		return node.Kind == syntax.KindDoubleLiteral && node.Value.Double == e.Value

	case *StringLiteral:
		return node.Kind == syntax.KindStringLiteral && node.Value.Str == e.Value

	case *BooleanLiteral:
		return node.Kind == syntax.KindBooleanLiteral && node.Value.Bool == e.Value

	case *LiteralWildcard:
		return node.Kind == e.Literal.syntaxKind()

	case *NullLiteral:
		return node.Kind == syntax.KindNullLiteral

	case *ThisLiteral:
		return node.Kind == syntax.KindThis

	case *FieldSelection:
		return node.Kind == syntax.KindFieldAccess &&
			node.Name == e.Name &&
			Test(e.Receiver, node.Child(syntax.RoleReceiver))

	case *MethodCall:
		if node.Kind != syntax.KindMethodCall || node.Name != e.Name {
			return false
		}

		recv := node.Child(syntax.RoleReceiver)
		if e.Receiver == nil {
			if recv != nil {
				return false
			}
		} else if !Test(e.Receiver, recv) {
			return false
		}

		return testArgs(e.Args, node.ChildrenWith(syntax.RoleArgument))

	case *FunctionCall:
		return node.Kind == syntax.KindMethodCall &&
			node.Name == e.Name &&
			node.Child(syntax.RoleReceiver) == nil &&
			testArgs(e.Args, node.ChildrenWith(syntax.RoleArgument))

	case *InstanceCreation:
		return node.Kind == syntax.KindNew &&
			node.Name == e.TypeName &&
			testArgs(e.Args, node.ChildrenWith(syntax.RoleArgument))

	case *InstanceOf:
		return node.Kind == syntax.KindInstanceOf &&
			node.Name == e.TypeName &&
			Test(e.Target, node.Child(syntax.RoleOperand))

	case *Unary:
		return node.Kind == syntax.KindUnary &&
			node.Op == e.Op &&
			Test(e.Operand, node.Child(syntax.RoleOperand))

	case *Binary:
		return node.Kind == syntax.KindBinary &&
			node.Op == e.Op &&
			Test(e.LHS, node.Child(syntax.RoleLeft)) &&
			Test(e.RHS, node.Child(syntax.RoleRight))

	case *Update:
		return node.Kind == syntax.KindUpdate &&
			node.Op == e.Op &&
			Test(e.Operand, node.Child(syntax.RoleOperand))

	case *ArrayAccess:
		return node.Kind == syntax.KindArrayAccess &&
			Test(e.Array, node.Child(syntax.RoleArray)) &&
			Test(e.Index, node.Child(syntax.RoleIndex))

	case *Lambda:
		return node.Kind == syntax.KindLambda

	case *Rest:
		return false

	default:
		return false
	}
}

// testArgs matches argument lists: a lone Rest accepts any arity, otherwise
// arities must agree and arguments match position by position.
func testArgs(patterns []Expr, args []*syntax.Node) bool {
	if len(patterns) == 1 {
		if _, ok := patterns[0].(*Rest); ok {
			return true
		}
	}

	if len(patterns) != len(args) {
		return false
	}

	for i, p := range patterns {
		if !Test(p, args[i]) {
			return false
		}
	}

	return true
}
