// Package syntax holds the read-only Java source tree the linter matches patterns against.
package syntax

import "fmt"

// Kind is the syntactic category of a Node.
type Kind uint8

const (
	KindInvalid Kind = iota

	// Expressions.
	KindIdentifier
	KindIntLiteral
	KindDoubleLiteral
	KindStringLiteral
	KindCharLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindThis
	KindSuper
	KindFieldAccess
	KindMethodCall
	KindNew
	KindInstanceOf
	KindUnary
	KindBinary
	KindUpdate
	KindArrayAccess
	KindLambda
	KindTernary
	KindAssignment
	KindCast
	KindExpression

	// Statements and declarations.
	KindCompilationUnit
	KindClassDecl
	KindMethodDecl
	KindFieldDecl
	KindVariable
	KindBlock
	KindExpressionStatement
	KindIf
	KindWhile
	KindDoWhile
	KindFor
	KindForEach
	KindReturn
	KindThrow
	KindLocalVar
	KindSwitch
	KindOther
)

var kindNames = [...]string{
	KindInvalid:             "Invalid",
	KindIdentifier:          "Identifier",
	KindIntLiteral:          "IntLiteral",
	KindDoubleLiteral:       "DoubleLiteral",
	KindStringLiteral:       "StringLiteral",
	KindCharLiteral:         "CharLiteral",
	KindBooleanLiteral:      "BooleanLiteral",
	KindNullLiteral:         "NullLiteral",
	KindThis:                "This",
	KindSuper:               "Super",
	KindFieldAccess:         "FieldAccess",
	KindMethodCall:          "MethodCall",
	KindNew:                 "New",
	KindInstanceOf:          "InstanceOf",
	KindUnary:               "Unary",
	KindBinary:              "Binary",
	KindUpdate:              "Update",
	KindArrayAccess:         "ArrayAccess",
	KindLambda:              "Lambda",
	KindTernary:             "Ternary",
	KindAssignment:          "Assignment",
	KindCast:                "Cast",
	KindExpression:          "Expression",
	KindCompilationUnit:     "CompilationUnit",
	KindClassDecl:           "ClassDecl",
	KindMethodDecl:          "MethodDecl",
	KindFieldDecl:           "FieldDecl",
	KindVariable:            "Variable",
	KindBlock:               "Block",
	KindExpressionStatement: "ExpressionStatement",
	KindIf:                  "If",
	KindWhile:               "While",
	KindDoWhile:             "DoWhile",
	KindFor:                 "For",
	KindForEach:             "ForEach",
	KindReturn:              "Return",
	KindThrow:               "Throw",
	KindLocalVar:            "LocalVar",
	KindSwitch:              "Switch",
	KindOther:               "Other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// IsExpression reports whether nodes of this kind produce a value.
func (k Kind) IsExpression() bool {
	return k >= KindIdentifier && k <= KindExpression
}

// IsLiteral reports whether k is one of the literal kinds.
func (k Kind) IsLiteral() bool {
	return k >= KindIntLiteral && k <= KindNullLiteral
}

// IsBranch reports whether k owns a Condition child.
func (k Kind) IsBranch() bool {
	switch k { //nolint:exhaustive
	case KindIf, KindWhile, KindDoWhile, KindFor, KindTernary:
		return true
	default:
		return false
	}
}

// Role is the position a node occupies inside its parent.
type Role uint8

const (
	RoleNone Role = iota
	RoleReceiver
	RoleArgument
	RoleOperand
	RoleLeft
	RoleRight
	RoleArray
	RoleIndex
	RoleCondition
	RoleThen
	RoleElse
	RoleBody
	RoleExpression
	RoleValue
	RoleInit
	RoleUpdate
	RoleOther
)

var roleNames = [...]string{
	RoleNone:       "None",
	RoleReceiver:   "Receiver",
	RoleArgument:   "Argument",
	RoleOperand:    "Operand",
	RoleLeft:       "Left",
	RoleRight:      "Right",
	RoleArray:      "Array",
	RoleIndex:      "Index",
	RoleCondition:  "Condition",
	RoleThen:       "Then",
	RoleElse:       "Else",
	RoleBody:       "Body",
	RoleExpression: "Expression",
	RoleValue:      "Value",
	RoleInit:       "Init",
	RoleUpdate:     "Update",
	RoleOther:      "Other",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}

	return fmt.Sprintf("Role(%d)", r)
}

// Op tags unary, binary and update operators.
type Op uint8

const (
	OpNone Op = iota

	// Unary.
	OpPlus
	OpMinus
	OpNot
	OpComplement

	// Binary.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNe
	OpGe
	OpGt
	OpLe
	OpLt
	OpShl
	OpShr
	OpUShr
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpXor

	// Update.
	OpPreInc
	OpPreDec
	OpPostInc
	OpPostDec
)

var opSymbols = [...]string{
	OpNone:       "",
	OpPlus:       "+",
	OpMinus:      "-",
	OpNot:        "!",
	OpComplement: "~",
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpRem:        "%",
	OpEq:         "==",
	OpNe:         "!=",
	OpGe:         ">=",
	OpGt:         ">",
	OpLe:         "<=",
	OpLt:         "<",
	OpShl:        "<<",
	OpShr:        ">>",
	OpUShr:       ">>>",
	OpAnd:        "&&",
	OpOr:         "||",
	OpBitAnd:     "&",
	OpBitOr:      "|",
	OpXor:        "^",
	OpPreInc:     "++",
	OpPreDec:     "--",
	OpPostInc:    "++",
	OpPostDec:    "--",
}

// String returns the operator's source symbol.
func (o Op) String() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}

	return fmt.Sprintf("Op(%d)", o)
}

// IsPrefix reports whether o is a prefix update.
func (o Op) IsPrefix() bool {
	return o == OpPreInc || o == OpPreDec
}

var binaryOps = map[string]Op{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "%": OpRem,
	"==": OpEq, "!=": OpNe, ">=": OpGe, ">": OpGt, "<=": OpLe, "<": OpLt,
	"<<": OpShl, ">>": OpShr, ">>>": OpUShr,
	"&&": OpAnd, "||": OpOr, "&": OpBitAnd, "|": OpBitOr, "^": OpXor,
}

var unaryOps = map[string]Op{
	"+": OpPlus, "-": OpMinus, "!": OpNot, "~": OpComplement,
}

// BinaryOp looks up a binary operator by its symbol.
func BinaryOp(symbol string) (Op, bool) {
	op, ok := binaryOps[symbol]
	return op, ok
}

// UnaryOp looks up a unary operator by its symbol.
func UnaryOp(symbol string) (Op, bool) {
	op, ok := unaryOps[symbol]
	return op, ok
}

// Value is the decoded payload of a literal node. Only the field that
// matches the node's Kind is meaningful.
type Value struct {
	Int    int64
	Double float64
	Str    string
	Bool   bool
}

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a node's source text. End.Column is the column of the last
// character, End.Offset is exclusive.
type Span struct {
	Start Position
	End   Position
}

// Node is one element of the source tree. Nodes are never mutated once the
// adapter has built them.
type Node struct {
	Kind     Kind
	Role     Role
	Name     string
	Op       Op
	Value    Value
	Span     Span
	Children []*Node
}

// Child returns the first child occupying role, or nil.
func (n *Node) Child(role Role) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.Children {
		if c.Role == role {
			return c
		}
	}

	return nil
}

// ChildrenWith returns every child occupying role, in source order.
func (n *Node) ChildrenWith(role Role) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node

	for _, c := range n.Children {
		if c.Role == role {
			out = append(out, c)
		}
	}

	return out
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	switch {
	case n.Name != "":
		return fmt.Sprintf("%s(%s)@%s", n.Kind, n.Name, n.Span.Start)
	case n.Op != OpNone:
		return fmt.Sprintf("%s(%s)@%s", n.Kind, n.Op, n.Span.Start)
	default:
		return fmt.Sprintf("%s@%s", n.Kind, n.Span.Start)
	}
}

// Comment is a source comment kept aside from the tree.
type Comment struct {
	Text string
	Span Span
}

// File is a parsed compilation unit.
type File struct {
	Path     string
	Root     *Node
	Comments []Comment
	Source   []byte

	// FirstDecl is the offset of the first package, import or type
	// declaration, or len(Source) when there is none.
	FirstDecl int

	lineStarts []int
}

// NewFile builds a File and indexes the starts of its lines.
func NewFile(path string, root *Node, comments []Comment, source []byte, firstDecl int) *File {
	return &File{
		Path:       path,
		Root:       root,
		Comments:   comments,
		Source:     source,
		FirstDecl:  firstDecl,
		lineStarts: LineStarts(source),
	}
}

// Line returns the text of the 1-based line n without its terminator.
func (f *File) Line(n int) string {
	if f == nil || n < 1 || n > len(f.lineStarts) {
		return ""
	}

	start := f.lineStarts[n-1]
	end := len(f.Source)

	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}

	line := f.Source[start:end]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return string(line)
}

// LineCount returns the number of lines in the source.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// LineStarts returns the byte offset at which every line of src begins.
func LineStarts(src []byte) []int {
	starts := []int{0}

	for i, b := range src {
		if b == '\n' && i+1 <= len(src) {
			starts = append(starts, i+1)
		}
	}

	return starts
}
