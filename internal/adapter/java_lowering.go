package adapter

import (
	"strings"

	"github.com/kmizu/JavaSee/internal/syntax"
	sitter "github.com/smacker/go-tree-sitter"
)

// skippedTypes never carry expressions worth matching: types, parameter
// lists and modifiers.
var skippedTypes = typeSet(
	"type_identifier",
	"scoped_type_identifier",
	"generic_type",
	"integral_type",
	"floating_point_type",
	"boolean_type",
	"void_type",
	"array_type",
	"annotated_type",
	"type_arguments",
	"type_parameters",
	"wildcard",
	"dimensions",
	"formal_parameters",
	"formal_parameter",
	"spread_parameter",
	"receiver_parameter",
	"catch_formal_parameter",
	"inferred_parameters",
	"throws",
	"superclass",
	"super_interfaces",
	"extends_interfaces",
	"permits",
	"modifiers",
	"marker_annotation",
	"annotation",
	"line_comment",
	"block_comment",
	"comment",
	"package_declaration",
	"import_declaration",
	"module_declaration",
	"scoped_identifier",
	"class_literal",
	"break_statement",
	"continue_statement",
	"empty_statement",
	"asterisk",
	"type_list",
	"interface_type_list",
	"annotation_type_element_declaration",
)

var containerTypes = typeSet(
	"class_body",
	"interface_body",
	"enum_body",
	"enum_body_declarations",
	"annotation_type_body",
	"static_initializer",
	"switch_block",
	"switch_block_statement_group",
	"switch_rule",
	"try_statement",
	"try_with_resources_statement",
	"resource_specification",
	"catch_clause",
	"finally_clause",
	"synchronized_statement",
)

var typeDeclTypes = typeSet(
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
)

func typeSet(types ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}

	return set
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	default:
		return false
	}
}

func sameNode(a, b *sitter.Node) bool {
	return a != nil && b != nil &&
		a.StartByte() == b.StartByte() &&
		a.EndByte() == b.EndByte() &&
		a.Type() == b.Type()
}

// lowerer converts a tree-sitter Java tree into syntax nodes.
type lowerer struct {
	src       []byte
	comments  []syntax.Comment
	firstDecl int
}

func (l *lowerer) text(n *sitter.Node) string {
	return text(n, l.src)
}

func (l *lowerer) fieldText(n *sitter.Node, field string) string {
	if c := n.ChildByFieldName(field); c != nil {
		return l.text(c)
	}

	return ""
}

func (l *lowerer) node(n *sitter.Node, kind syntax.Kind, role syntax.Role) *syntax.Node {
	return &syntax.Node{Kind: kind, Role: role, Span: span(n)}
}

func (l *lowerer) add(parent *syntax.Node, child *sitter.Node, role syntax.Role) {
	if child == nil {
		return
	}

	if c := l.lower(child, role); c != nil {
		parent.Children = append(parent.Children, c)
	}
}

func named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)

	for i := range count {
		c := n.NamedChild(i)
		if c != nil && !isComment(c) {
			out = append(out, c)
		}
	}

	return out
}

func (l *lowerer) addNamed(parent *syntax.Node, n *sitter.Node, role syntax.Role, except ...*sitter.Node) {
	for _, c := range named(n) {
		skip := false

		for _, e := range except {
			if sameNode(c, e) {
				skip = true
				break
			}
		}

		if !skip {
			l.add(parent, c, role)
		}
	}
}

func (l *lowerer) collectComments(root *sitter.Node) {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isComment(n) {
			l.comments = append(l.comments, syntax.Comment{Text: l.text(n), Span: span(n)})
			continue
		}

		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.Child(i))
		}
	}
}

//nolint:cyclop,funlen,gocyclo // one case per tree-sitter node type
func (l *lowerer) lower(n *sitter.Node, role syntax.Role) *syntax.Node {
	typ := n.Type()

	if _, ok := skippedTypes[typ]; ok {
		return nil
	}

	if _, ok := containerTypes[typ]; ok {
		out := l.node(n, syntax.KindOther, role)
		l.addNamed(out, n, syntax.RoleBody)

		return out
	}

	if _, ok := typeDeclTypes[typ]; ok {
		out := l.node(n, syntax.KindClassDecl, role)
		name := n.ChildByFieldName("name")
		out.Name = l.text(name)
		l.addNamed(out, n, syntax.RoleBody, name)

		return out
	}

	switch typ {
	case "program":
		l.collectComments(n)

		if decls := named(n); len(decls) > 0 {
			l.firstDecl = int(decls[0].StartByte())
		}

		out := l.node(n, syntax.KindCompilationUnit, role)
		l.addNamed(out, n, syntax.RoleBody)

		return out

	case "parenthesized_expression":
		if inner := named(n); len(inner) > 0 {
			return l.lower(inner[0], role)
		}

		return nil

	case "labeled_statement":
		if stmts := named(n); len(stmts) > 0 {
			return l.lower(stmts[len(stmts)-1], role)
		}

		return nil

	case "method_declaration", "constructor_declaration", "compact_constructor_declaration":
		out := l.node(n, syntax.KindMethodDecl, role)
		out.Name = l.fieldText(n, "name")
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "field_declaration", "constant_declaration":
		out := l.node(n, syntax.KindFieldDecl, role)
		l.addNamed(out, n, syntax.RoleBody)

		return out

	case "local_variable_declaration":
		out := l.node(n, syntax.KindLocalVar, role)
		l.addNamed(out, n, syntax.RoleBody)

		return out

	case "variable_declarator", "resource":
		out := l.node(n, syntax.KindVariable, role)
		out.Name = l.fieldText(n, "name")

		value := n.ChildByFieldName("value")
		if value == nil && typ == "resource" {
			if parts := named(n); len(parts) == 1 {
				value = parts[0]
			}
		}

		l.add(out, value, syntax.RoleValue)

		return out

	case "block", "constructor_body":
		out := l.node(n, syntax.KindBlock, role)
		l.addNamed(out, n, syntax.RoleBody)

		return out

	case "expression_statement":
		out := l.node(n, syntax.KindExpressionStatement, role)
		if parts := named(n); len(parts) > 0 {
			l.add(out, parts[0], syntax.RoleExpression)
		}

		return out

	case "if_statement":
		out := l.node(n, syntax.KindIf, role)
		l.add(out, n.ChildByFieldName("condition"), syntax.RoleCondition)
		l.add(out, n.ChildByFieldName("consequence"), syntax.RoleThen)
		l.add(out, n.ChildByFieldName("alternative"), syntax.RoleElse)

		return out

	case "while_statement":
		out := l.node(n, syntax.KindWhile, role)
		l.add(out, n.ChildByFieldName("condition"), syntax.RoleCondition)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "do_statement":
		out := l.node(n, syntax.KindDoWhile, role)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)
		l.add(out, n.ChildByFieldName("condition"), syntax.RoleCondition)

		return out

	case "for_statement":
		return l.lowerFor(n, role)

	case "enhanced_for_statement":
		out := l.node(n, syntax.KindForEach, role)
		l.add(out, n.ChildByFieldName("value"), syntax.RoleValue)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "return_statement", "throw_statement":
		kind := syntax.KindReturn
		if typ == "throw_statement" {
			kind = syntax.KindThrow
		}

		out := l.node(n, kind, role)
		if parts := named(n); len(parts) > 0 {
			l.add(out, parts[0], syntax.RoleValue)
		}

		return out

	case "switch_expression", "switch_statement":
		out := l.node(n, syntax.KindSwitch, role)
		l.add(out, n.ChildByFieldName("condition"), syntax.RoleValue)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "lambda_expression":
		out := l.node(n, syntax.KindLambda, role)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "method_invocation":
		out := l.node(n, syntax.KindMethodCall, role)
		out.Name = l.fieldText(n, "name")
		l.add(out, n.ChildByFieldName("object"), syntax.RoleReceiver)
		l.addArguments(out, n)

		return out

	case "explicit_constructor_invocation":
		out := l.node(n, syntax.KindOther, role)
		l.addArguments(out, n)

		return out

	case "field_access":
		out := l.node(n, syntax.KindFieldAccess, role)
		out.Name = l.fieldText(n, "field")
		l.add(out, n.ChildByFieldName("object"), syntax.RoleReceiver)

		return out

	case "array_access":
		out := l.node(n, syntax.KindArrayAccess, role)
		l.add(out, n.ChildByFieldName("array"), syntax.RoleArray)
		l.add(out, n.ChildByFieldName("index"), syntax.RoleIndex)

		return out

	case "object_creation_expression":
		out := l.node(n, syntax.KindNew, role)
		out.Name = syntax.SimpleTypeName(l.fieldText(n, "type"))
		l.addArguments(out, n)

		for _, c := range named(n) {
			if c.Type() == "class_body" {
				l.add(out, c, syntax.RoleBody)
			}
		}

		return out

	case "enum_constant":
		out := l.node(n, syntax.KindOther, role)
		out.Name = l.fieldText(n, "name")
		l.addArguments(out, n)
		l.add(out, n.ChildByFieldName("body"), syntax.RoleBody)

		return out

	case "instanceof_expression":
		return l.lowerInstanceOf(n, role)

	case "unary_expression":
		out := l.node(n, syntax.KindUnary, role)
		out.Op, _ = syntax.UnaryOp(l.fieldText(n, "operator"))
		l.add(out, n.ChildByFieldName("operand"), syntax.RoleOperand)

		return out

	case "update_expression":
		return l.lowerUpdate(n, role)

	case "binary_expression":
		out := l.node(n, syntax.KindBinary, role)
		out.Op, _ = syntax.BinaryOp(l.fieldText(n, "operator"))
		l.add(out, n.ChildByFieldName("left"), syntax.RoleLeft)
		l.add(out, n.ChildByFieldName("right"), syntax.RoleRight)

		return out

	case "ternary_expression":
		out := l.node(n, syntax.KindTernary, role)
		l.add(out, n.ChildByFieldName("condition"), syntax.RoleCondition)
		l.add(out, n.ChildByFieldName("consequence"), syntax.RoleThen)
		l.add(out, n.ChildByFieldName("alternative"), syntax.RoleElse)

		return out

	case "assignment_expression":
		out := l.node(n, syntax.KindAssignment, role)
		out.Name = l.fieldText(n, "operator")
		l.add(out, n.ChildByFieldName("left"), syntax.RoleLeft)
		l.add(out, n.ChildByFieldName("right"), syntax.RoleRight)

		return out

	case "cast_expression":
		out := l.node(n, syntax.KindCast, role)
		out.Name = syntax.SimpleTypeName(l.fieldText(n, "type"))
		l.add(out, n.ChildByFieldName("value"), syntax.RoleOperand)

		return out

	case "method_reference":
		out := l.node(n, syntax.KindExpression, role)
		if parts := named(n); len(parts) > 0 {
			out.Name = l.text(parts[len(parts)-1])
			l.add(out, parts[0], syntax.RoleReceiver)
		}

		return out

	case "identifier":
		out := l.node(n, syntax.KindIdentifier, role)
		out.Name = l.text(n)

		return out

	case "this":
		return l.node(n, syntax.KindThis, role)

	case "super":
		return l.node(n, syntax.KindSuper, role)

	case "null_literal":
		return l.node(n, syntax.KindNullLiteral, role)

	case "true", "false":
		out := l.node(n, syntax.KindBooleanLiteral, role)
		out.Value.Bool = typ == "true"

		return out

	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		v, err := syntax.ParseIntLiteral(l.text(n))
		if err != nil {
			return l.node(n, syntax.KindExpression, role)
		}

		out := l.node(n, syntax.KindIntLiteral, role)
		out.Value.Int = v

		return out

	case "decimal_floating_point_literal", "hex_floating_point_literal":
		v, err := syntax.ParseDoubleLiteral(l.text(n))
		if err != nil {
			return l.node(n, syntax.KindExpression, role)
		}

		out := l.node(n, syntax.KindDoubleLiteral, role)
		out.Value.Double = v

		return out

	case "string_literal", "text_block":
		s, err := syntax.UnquoteString(l.text(n))
		if err != nil {
			return l.node(n, syntax.KindExpression, role)
		}

		out := l.node(n, syntax.KindStringLiteral, role)
		out.Value.Str = s

		return out

	case "character_literal":
		s, err := syntax.UnquoteChar(l.text(n))
		if err != nil {
			return l.node(n, syntax.KindExpression, role)
		}

		out := l.node(n, syntax.KindCharLiteral, role)
		out.Value.Str = s

		return out
	}

	kind := syntax.KindOther
	if strings.HasSuffix(typ, "_expression") {
		kind = syntax.KindExpression
	}

	out := l.node(n, kind, role)
	l.addNamed(out, n, syntax.RoleOther)

	return out
}

func (l *lowerer) addArguments(out *syntax.Node, n *sitter.Node) {
	args := n.ChildByFieldName("arguments")
	if args == nil {
		return
	}

	for _, a := range named(args) {
		l.add(out, a, syntax.RoleArgument)
	}
}

// lowerFor splits the header by its last top-level semicolon: named children
// before it are initialisers, after it updates.
func (l *lowerer) lowerFor(n *sitter.Node, role syntax.Role) *syntax.Node {
	out := l.node(n, syntax.KindFor, role)
	cond := n.ChildByFieldName("condition")
	body := n.ChildByFieldName("body")

	lastSemi := -1

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if !c.IsNamed() && c.Type() == ";" {
			lastSemi = i
		}
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if !c.IsNamed() || isComment(c) {
			continue
		}

		switch {
		case sameNode(c, cond):
			l.add(out, c, syntax.RoleCondition)
		case sameNode(c, body):
			l.add(out, c, syntax.RoleBody)
		case i > lastSemi:
			l.add(out, c, syntax.RoleUpdate)
		default:
			l.add(out, c, syntax.RoleInit)
		}
	}

	return out
}

func (l *lowerer) lowerInstanceOf(n *sitter.Node, role syntax.Role) *syntax.Node {
	out := l.node(n, syntax.KindInstanceOf, role)
	left := n.ChildByFieldName("left")
	l.add(out, left, syntax.RoleOperand)

	target := n.ChildByFieldName("right")
	if target == nil {
		target = n.ChildByFieldName("pattern")
	}

	if target == nil {
		for _, c := range named(n) {
			if !sameNode(c, left) {
				target = c
				break
			}
		}
	}

	if target != nil {
		if strings.HasSuffix(target.Type(), "_pattern") {
			if parts := named(target); len(parts) > 0 {
				target = parts[0]
			}
		}

		out.Name = syntax.SimpleTypeName(l.text(target))
	}

	return out
}

func (l *lowerer) lowerUpdate(n *sitter.Node, role syntax.Role) *syntax.Node {
	out := l.node(n, syntax.KindUpdate, role)

	var operand *sitter.Node

	prefix := false
	symbol := ""

	for i := range int(n.ChildCount()) {
		c := n.Child(i)

		switch {
		case c.IsNamed() && !isComment(c):
			operand = c
		case c.Type() == "++" || c.Type() == "--":
			symbol = c.Type()
			prefix = operand == nil
		}
	}

	switch {
	case prefix && symbol == "++":
		out.Op = syntax.OpPreInc
	case prefix:
		out.Op = syntax.OpPreDec
	case symbol == "++":
		out.Op = syntax.OpPostInc
	default:
		out.Op = syntax.OpPostDec
	}

	l.add(out, operand, syntax.RoleOperand)

	return out
}
