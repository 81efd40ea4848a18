package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string, role Role) *Node {
	return &Node{Kind: KindIdentifier, Name: name, Role: role}
}

// if (!(x == null)) { foo(); } else return a + b;
func sampleTree() (*Node, map[string]*Node) {
	eq := &Node{Kind: KindBinary, Op: OpEq, Role: RoleOperand, Children: []*Node{
		ident("x", RoleLeft),
		{Kind: KindNullLiteral, Role: RoleRight},
	}}
	not := &Node{Kind: KindUnary, Op: OpNot, Role: RoleCondition, Children: []*Node{eq}}
	call := &Node{Kind: KindMethodCall, Name: "foo", Role: RoleExpression}
	stmt := &Node{Kind: KindExpressionStatement, Role: RoleBody, Children: []*Node{call}}
	then := &Node{Kind: KindBlock, Role: RoleThen, Children: []*Node{stmt}}
	sum := &Node{Kind: KindBinary, Op: OpAdd, Role: RoleValue, Children: []*Node{
		ident("a", RoleLeft),
		ident("b", RoleRight),
	}}
	ret := &Node{Kind: KindReturn, Role: RoleElse, Children: []*Node{sum}}
	ifs := &Node{Kind: KindIf, Children: []*Node{not, then, ret}}

	return ifs, map[string]*Node{
		"if": ifs, "not": not, "eq": eq, "call": call, "stmt": stmt, "sum": sum, "ret": ret,
	}
}

func TestWalk_PreOrder(t *testing.T) {
	root, _ := sampleTree()

	var got []string

	Walk(root, func(p Pair) bool {
		got = append(got, p.Node.Kind.String())
		return true
	})

	assert.Equal(t, []string{
		"If", "Unary", "Binary", "Identifier", "NullLiteral",
		"Block", "ExpressionStatement", "MethodCall",
		"Return", "Binary", "Identifier", "Identifier",
	}, got)
}

func TestWalk_Stop(t *testing.T) {
	root, _ := sampleTree()
	count := 0

	Walk(root, func(Pair) bool {
		count++
		return count < 3
	})

	assert.Equal(t, 3, count)
}

func TestWalk_Parents(t *testing.T) {
	root, nodes := sampleTree()

	parents := map[*Node]*Node{}
	for _, p := range Pairs(root) {
		parents[p.Node] = p.Parent
	}

	assert.Nil(t, parents[root])
	assert.Same(t, nodes["not"], parents[nodes["eq"]])
	assert.Same(t, nodes["stmt"], parents[nodes["call"]])
}

func TestPair_InCondition(t *testing.T) {
	_, nodes := sampleTree()

	notPair := Pair{Node: nodes["not"], Parent: nodes["if"]}
	eqPair := Pair{Node: nodes["eq"], Parent: nodes["not"]}
	callPair := Pair{Node: nodes["call"], Parent: nodes["stmt"]}

	assert.True(t, notPair.InCondition(false))
	assert.True(t, notPair.InCondition(true))
	assert.False(t, eqPair.InCondition(false))
	assert.True(t, eqPair.InCondition(true))
	assert.False(t, callPair.InCondition(true))
	assert.False(t, Pair{Node: nodes["if"]}.InCondition(true))
}

func TestPair_DiscardedAndConsumed(t *testing.T) {
	_, nodes := sampleTree()

	callPair := Pair{Node: nodes["call"], Parent: nodes["stmt"]}
	sumPair := Pair{Node: nodes["sum"], Parent: nodes["ret"]}
	eqPair := Pair{Node: nodes["eq"], Parent: nodes["not"]}
	notPair := Pair{Node: nodes["not"], Parent: nodes["if"]}

	assert.True(t, callPair.IsDiscarded())
	assert.False(t, callPair.IsConsumed())

	assert.False(t, sumPair.IsDiscarded())
	assert.True(t, sumPair.IsConsumed())

	assert.True(t, eqPair.IsConsumed())
	assert.True(t, notPair.IsConsumed())
}

func TestFile_Line(t *testing.T) {
	f := NewFile("A.java", nil, nil, []byte("class A {\r\n  int x;\n}"), 0)

	assert.Equal(t, 3, f.LineCount())
	assert.Equal(t, "class A {", f.Line(1))
	assert.Equal(t, "  int x;", f.Line(2))
	assert.Equal(t, "}", f.Line(3))
	assert.Empty(t, f.Line(4))
	assert.Empty(t, f.Line(0))
}

func TestKind_Classes(t *testing.T) {
	assert.True(t, KindMethodCall.IsExpression())
	assert.False(t, KindReturn.IsExpression())
	assert.True(t, KindNullLiteral.IsLiteral())
	assert.False(t, KindThis.IsLiteral())
	assert.True(t, KindTernary.IsBranch())
	assert.False(t, KindSwitch.IsBranch())
	assert.Equal(t, "MethodCall", KindMethodCall.String())
	assert.Equal(t, ">>>", OpUShr.String())
}
