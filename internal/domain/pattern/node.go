// Package pattern implements the JavaSee pattern language: a closed set of
// expression shapes that are compared structurally against Java syntax trees.
package pattern

import (
	"strconv"
	"strings"

	"github.com/kmizu/JavaSee/internal/syntax"
)

// Location is the 1-based column range a pattern node was parsed from. Nodes
// built through the constructors have a zero Location.
type Location struct {
	Start int
	End   int
}

// Expr is a pattern node.
//
//sumtype:decl
type Expr interface {
	Location() Location
	String() string
	sealed()
}

type at struct {
	Loc Location
}

func (a at) Location() Location { return a.Loc }
func (at) sealed()              {}

// LiteralKind names the literal families a pattern can test for.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota + 1
	LiteralDouble
	LiteralString
	LiteralBoolean
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralDouble:
		return "double"
	case LiteralString:
		return "string"
	case LiteralBoolean:
		return "boolean"
	default:
		return "literal"
	}
}

func (k LiteralKind) syntaxKind() syntax.Kind {
	switch k {
	case LiteralInt:
		return syntax.KindIntLiteral
	case LiteralDouble:
		return syntax.KindDoubleLiteral
	case LiteralString:
		return syntax.KindStringLiteral
	case LiteralBoolean:
		return syntax.KindBooleanLiteral
	default:
		return syntax.KindInvalid
	}
}

// Wildcard matches any node.
type Wildcard struct{ at }

// Ident matches a bare identifier with the same name.
type Ident struct {
	at
	Name string
}

// IntLiteral matches an integer literal with the same value.
type IntLiteral struct {
	at
	Value int64
}

// DoubleLiteral matches a floating point literal with exactly the same value.
type DoubleLiteral struct {
	at
	Value float64
}

// StringLiteral matches a string literal with the same decoded contents.
type StringLiteral struct {
	at
	Value string
}

// BooleanLiteral matches true or false.
type BooleanLiteral struct {
	at
	Value bool
}

// LiteralWildcard matches any literal of one kind: `:int`, `:double`,
// `:string` or `:boolean`.
type LiteralWildcard struct {
	at
	Literal LiteralKind
}

// NullLiteral matches null.
type NullLiteral struct{ at }

// ThisLiteral matches this.
type ThisLiteral struct{ at }

// FieldSelection matches `receiver.name`.
type FieldSelection struct {
	at
	Receiver Expr
	Name     string
}

// MethodCall matches a call by name. A nil Receiver only matches calls
// without one.
type MethodCall struct {
	at
	Receiver Expr
	Name     string
	Args     []Expr
}

// FunctionCall matches `name(args)` written without a receiver.
type FunctionCall struct {
	at
	Name string
	Args []Expr
}

// InstanceCreation matches `new T(args)` by simple type name.
type InstanceCreation struct {
	at
	TypeName string
	Args     []Expr
}

// InstanceOf matches `target instanceof T` by simple type name.
type InstanceOf struct {
	at
	Target   Expr
	TypeName string
}

// Unary matches `+x`, `-x` and `!x`.
type Unary struct {
	at
	Op      syntax.Op
	Operand Expr
}

// Binary matches arithmetic, shift, equality and relational operators.
type Binary struct {
	at
	Op  syntax.Op
	LHS Expr
	RHS Expr
}

// Update matches prefix and postfix increments and decrements.
type Update struct {
	at
	Op      syntax.Op
	Operand Expr
}

// ArrayAccess matches `array[index]`.
type ArrayAccess struct {
	at
	Array Expr
	Index Expr
}

// Lambda matches any lambda expression.
type Lambda struct{ at }

// Rest is `...`: as the only argument it matches any argument list. It never
// matches a node on its own.
type Rest struct{ at }

// NewWildcard returns `_`.
func NewWildcard() *Wildcard { return &Wildcard{} }

// NewIdent returns an identifier pattern.
func NewIdent(name string) *Ident { return &Ident{Name: name} }

// NewInt returns an integer literal pattern.
func NewInt(v int64) *IntLiteral { return &IntLiteral{Value: v} }

// NewDouble returns a floating point literal pattern.
func NewDouble(v float64) *DoubleLiteral { return &DoubleLiteral{Value: v} }

// NewString returns a string literal pattern.
func NewString(v string) *StringLiteral { return &StringLiteral{Value: v} }

// NewBoolean returns a boolean literal pattern.
func NewBoolean(v bool) *BooleanLiteral { return &BooleanLiteral{Value: v} }

// NewLiteralWildcard returns a pattern matching any literal of kind k.
func NewLiteralWildcard(k LiteralKind) *LiteralWildcard { return &LiteralWildcard{Literal: k} }

// NewNull returns `null`.
func NewNull() *NullLiteral { return &NullLiteral{} }

// NewThis returns `this`.
func NewThis() *ThisLiteral { return &ThisLiteral{} }

// NewFieldSelection returns `receiver.name`.
func NewFieldSelection(receiver Expr, name string) *FieldSelection {
	return &FieldSelection{Receiver: receiver, Name: name}
}

// NewMethodCall returns a method call pattern. A nil receiver matches only
// calls that have none.
func NewMethodCall(receiver Expr, name string, args ...Expr) *MethodCall {
	return &MethodCall{Receiver: receiver, Name: name, Args: args}
}

// NewFunctionCall returns `name(args)`.
func NewFunctionCall(name string, args ...Expr) *FunctionCall {
	return &FunctionCall{Name: name, Args: args}
}

// NewInstanceCreation returns `new typeName(args)`.
func NewInstanceCreation(typeName string, args ...Expr) *InstanceCreation {
	return &InstanceCreation{TypeName: syntax.SimpleTypeName(typeName), Args: args}
}

// NewInstanceOf returns `target instanceof typeName`.
func NewInstanceOf(target Expr, typeName string) *InstanceOf {
	return &InstanceOf{Target: target, TypeName: syntax.SimpleTypeName(typeName)}
}

// NewUnary returns a unary pattern; op must be OpPlus, OpMinus or OpNot.
func NewUnary(op syntax.Op, operand Expr) *Unary {
	return &Unary{Op: op, Operand: operand}
}

// NewBinary returns a binary pattern.
func NewBinary(op syntax.Op, lhs, rhs Expr) *Binary {
	return &Binary{Op: op, LHS: lhs, RHS: rhs}
}

// NewUpdate returns an increment or decrement pattern.
func NewUpdate(op syntax.Op, operand Expr) *Update {
	return &Update{Op: op, Operand: operand}
}

// NewArrayAccess returns `array[index]`.
func NewArrayAccess(array, index Expr) *ArrayAccess {
	return &ArrayAccess{Array: array, Index: index}
}

// NewLambda returns `:lambda`.
func NewLambda() *Lambda { return &Lambda{} }

// NewRest returns `...`.
func NewRest() *Rest { return &Rest{} }

func (*Wildcard) String() string         { return "_" }
func (e *Ident) String() string          { return e.Name }
func (e *IntLiteral) String() string     { return strconv.FormatInt(e.Value, 10) }
func (e *StringLiteral) String() string  { return strconv.Quote(e.Value) }
func (e *BooleanLiteral) String() string { return strconv.FormatBool(e.Value) }
func (e *LiteralWildcard) String() string {
	return ":" + e.Literal.String()
}
func (*NullLiteral) String() string { return "null" }
func (*ThisLiteral) String() string { return "this" }
func (*Lambda) String() string      { return ":lambda" }
func (*Rest) String() string        { return "..." }

func (e *DoubleLiteral) String() string {
	s := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += ".0"
	}

	return s
}

func (e *FieldSelection) String() string {
	return e.Receiver.String() + "." + e.Name
}

func (e *MethodCall) String() string {
	if e.Receiver == nil {
		return e.Name + "(" + joinArgs(e.Args) + ")"
	}

	return e.Receiver.String() + "." + e.Name + "(" + joinArgs(e.Args) + ")"
}

func (e *FunctionCall) String() string {
	return e.Name + "(" + joinArgs(e.Args) + ")"
}

func (e *InstanceCreation) String() string {
	return "new " + e.TypeName + "(" + joinArgs(e.Args) + ")"
}

func (e *InstanceOf) String() string {
	return "(" + e.Target.String() + " instanceof " + e.TypeName + ")"
}

func (e *Unary) String() string {
	return e.Op.String() + e.Operand.String()
}

func (e *Binary) String() string {
	return "(" + e.LHS.String() + " " + e.Op.String() + " " + e.RHS.String() + ")"
}

func (e *Update) String() string {
	if e.Op.IsPrefix() {
		return e.Op.String() + e.Operand.String()
	}

	return e.Operand.String() + e.Op.String()
}

func (e *ArrayAccess) String() string {
	return e.Array.String() + "[" + e.Index.String() + "]"
}

func joinArgs(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}

	return strings.Join(parts, ", ")
}
