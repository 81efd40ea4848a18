package pattern

import (
	"context"
	"testing"

	"github.com/kmizu/JavaSee/internal/adapter"
	"github.com/kmizu/JavaSee/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseStatements wraps body in a method and returns every traversal pair.
func parseStatements(t *testing.T, body string) []syntax.Pair {
	t.Helper()

	src := "class T {\n  void m() {\n" + body + "\n  }\n}\n"

	file, err := adapter.NewLocalJavaFileAdapter().Parse(context.Background(), "T.java", []byte(src))
	require.NoError(t, err)

	return syntax.Pairs(file.Root)
}

// matches returns the source text of every node the pattern matches.
func matches(t *testing.T, pat, body string) []string {
	t.Helper()

	p, err := Compile(pat)
	require.NoError(t, err)

	src := "class T {\n  void m() {\n" + body + "\n  }\n}\n"

	var out []string

	for _, pair := range parseStatements(t, body) {
		if p.Matches(pair) {
			out = append(out, src[pair.Node.Span.Start.Offset:pair.Node.Span.End.Offset])
		}
	}

	return out
}

func sampleNodes() []*syntax.Node {
	return []*syntax.Node{
		{Kind: syntax.KindIdentifier, Name: "x"},
		{Kind: syntax.KindIntLiteral, Value: syntax.Value{Int: 1}},
		{Kind: syntax.KindDoubleLiteral, Value: syntax.Value{Double: 1}},
		{Kind: syntax.KindStringLiteral, Value: syntax.Value{Str: "x"}},
		{Kind: syntax.KindBooleanLiteral, Value: syntax.Value{Bool: true}},
		{Kind: syntax.KindCharLiteral, Value: syntax.Value{Str: "x"}},
		{Kind: syntax.KindNullLiteral},
		{Kind: syntax.KindThis},
		{Kind: syntax.KindFieldAccess, Name: "x", Children: []*syntax.Node{{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleReceiver}}},
		{Kind: syntax.KindMethodCall, Name: "x"},
		{Kind: syntax.KindNew, Name: "x"},
		{Kind: syntax.KindInstanceOf, Name: "x", Children: []*syntax.Node{{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleOperand}}},
		{Kind: syntax.KindUnary, Op: syntax.OpMinus, Children: []*syntax.Node{{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleOperand}}},
		{Kind: syntax.KindBinary, Op: syntax.OpAdd, Children: []*syntax.Node{
			{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleLeft},
			{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleRight},
		}},
		{Kind: syntax.KindUpdate, Op: syntax.OpPostInc, Children: []*syntax.Node{{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleOperand}}},
		{Kind: syntax.KindArrayAccess, Children: []*syntax.Node{
			{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleArray},
			{Kind: syntax.KindIdentifier, Name: "x", Role: syntax.RoleIndex},
		}},
		{Kind: syntax.KindLambda},
		{Kind: syntax.KindAssignment},
		{Kind: syntax.KindBlock},
		{Kind: syntax.KindReturn},
	}
}

func TestTest_VariantsRejectOtherKinds(t *testing.T) {
	variants := []struct {
		expr Expr
		kind syntax.Kind
	}{
		{NewIdent("x"), syntax.KindIdentifier},
		{NewInt(1), syntax.KindIntLiteral},
		{NewDouble(1), syntax.KindDoubleLiteral},
		{NewString("x"), syntax.KindStringLiteral},
		{NewBoolean(true), syntax.KindBooleanLiteral},
		{NewLiteralWildcard(LiteralInt), syntax.KindIntLiteral},
		{NewLiteralWildcard(LiteralDouble), syntax.KindDoubleLiteral},
		{NewLiteralWildcard(LiteralString), syntax.KindStringLiteral},
		{NewLiteralWildcard(LiteralBoolean), syntax.KindBooleanLiteral},
		{NewNull(), syntax.KindNullLiteral},
		{NewThis(), syntax.KindThis},
		{NewFieldSelection(NewWildcard(), "x"), syntax.KindFieldAccess},
		{NewMethodCall(nil, "x", NewRest()), syntax.KindMethodCall},
		{NewFunctionCall("x", NewRest()), syntax.KindMethodCall},
		{NewInstanceCreation("x", NewRest()), syntax.KindNew},
		{NewInstanceOf(NewWildcard(), "x"), syntax.KindInstanceOf},
		{NewUnary(syntax.OpMinus, NewWildcard()), syntax.KindUnary},
		{NewBinary(syntax.OpAdd, NewWildcard(), NewWildcard()), syntax.KindBinary},
		{NewUpdate(syntax.OpPostInc, NewWildcard()), syntax.KindUpdate},
		{NewArrayAccess(NewWildcard(), NewWildcard()), syntax.KindArrayAccess},
		{NewLambda(), syntax.KindLambda},
	}

	for _, v := range variants {
		t.Run(v.expr.String(), func(t *testing.T) {
			matched := 0

			for _, node := range sampleNodes() {
				got := Test(v.expr, node)
				if node.Kind != v.kind {
					assert.Falsef(t, got, "%s matched %s", v.expr, node.Kind)
				} else if got {
					matched++
				}
			}

			assert.Equal(t, 1, matched, "the sample of its own kind should match")
		})
	}
}

func TestTest_WildcardMatchesEveryKind(t *testing.T) {
	for _, node := range sampleNodes() {
		assert.True(t, Test(NewWildcard(), node), node.Kind.String())
	}

	assert.False(t, Test(NewWildcard(), nil))
}

func TestTest_RestNeverMatchesANode(t *testing.T) {
	for _, node := range sampleNodes() {
		assert.False(t, Test(NewRest(), node), node.Kind.String())
	}
}

func TestTest_Literals(t *testing.T) {
	one := &syntax.Node{Kind: syntax.KindIntLiteral, Value: syntax.Value{Int: 1}}
	two := &syntax.Node{Kind: syntax.KindIntLiteral, Value: syntax.Value{Int: 2}}
	oneDouble := &syntax.Node{Kind: syntax.KindDoubleLiteral, Value: syntax.Value{Double: 1}}

	assert.True(t, Test(NewInt(1), one))
	assert.False(t, Test(NewInt(1), two))
	assert.False(t, Test(NewDouble(1), one))
	assert.True(t, Test(NewDouble(1), oneDouble))
	assert.False(t, Test(NewInt(1), oneDouble))
}

func TestMatches_RestArgumentAnyArity(t *testing.T) {
	got := matches(t, "foo(...)", "foo(); foo(1); foo(1, 2); foo(1, 2, 3); bar(1);")

	assert.Equal(t, []string{"foo()", "foo(1)", "foo(1, 2)", "foo(1, 2, 3)"}, got)
}

func TestMatches_ArgumentsArePositional(t *testing.T) {
	got := matches(t, `foo(_, "b")`, `foo("a", "b"); foo("b", "a"); foo("a"); foo("a", "b", "c");`)

	assert.Equal(t, []string{`foo("a", "b")`}, got)
}

func TestMatches_DebugPrint(t *testing.T) {
	body := `out.println("debug"); out.println("debug", 1); log.println("debug"); out.println("info");`

	assert.Equal(t,
		[]string{`out.println("debug")`, `log.println("debug")`},
		matches(t, `_.println("debug")`, body))

	assert.Equal(t,
		[]string{`out.println("debug")`},
		matches(t, `out.println("debug")`, body))
}

func TestMatches_FunctionCallRequiresNoReceiver(t *testing.T) {
	body := `foo(1); this.foo(1); x.foo(1);`

	assert.Equal(t, []string{"foo(1)"}, matches(t, "foo(1)", body))
	assert.Equal(t, []string{"this.foo(1)"}, matches(t, "this.foo(1)", body))
	assert.Equal(t, []string{"this.foo(1)", "x.foo(1)"}, matches(t, "_.foo(1)", body))
}

func TestMatches_MethodCallWithoutReceiverViaAPI(t *testing.T) {
	p := Any(NewMethodCall(nil, "foo", NewRest()))

	var got []string

	for _, pair := range parseStatements(t, `foo(1); x.foo(1);`) {
		if p.Matches(pair) {
			got = append(got, pair.Node.Name)
		}
	}

	assert.Equal(t, []string{"foo"}, got)
}

func TestMatches_FieldSelection(t *testing.T) {
	got := matches(t, "System.out", `System.out.println(1); System.err.println(2); out.println(3);`)

	assert.Equal(t, []string{"System.out"}, got)
}

func TestMatches_InstanceCreation(t *testing.T) {
	body := `Object a = new ArrayList<>(); Object b = new java.util.ArrayList<String>(10); Object c = new HashMap<>();`

	assert.Equal(t,
		[]string{"new ArrayList<>()", "new java.util.ArrayList<String>(10)"},
		matches(t, "new ArrayList(...)", body))
	assert.Equal(t,
		[]string{"new java.util.ArrayList<String>(10)"},
		matches(t, "new ArrayList(:int)", body))
}

func TestMatches_InstanceOfChecksTargetAndType(t *testing.T) {
	body := `boolean a = x instanceof String; boolean b = y instanceof String; boolean c = x instanceof Integer;`

	assert.Equal(t, []string{"x instanceof String"}, matches(t, "x instanceof String", body))
	assert.Equal(t,
		[]string{"x instanceof String", "y instanceof String"},
		matches(t, "_ instanceof String", body))
}

func TestMatches_UnaryTestsItsOperand(t *testing.T) {
	body := `boolean a = !done; boolean b = !ready; int c = -1; int d = +x;`

	assert.Equal(t, []string{"!done"}, matches(t, "!done", body))
	assert.Equal(t, []string{"-1"}, matches(t, "-1", body))
	assert.Equal(t, []string{"-1"}, matches(t, "-:int", body))
	assert.Equal(t, []string{"+x"}, matches(t, "+_", body))
	assert.Empty(t, matches(t, "-x", body))
}

func TestMatches_Updates(t *testing.T) {
	body := `i++; ++i; i--; --i;`

	assert.Equal(t, []string{"i++"}, matches(t, "i++", body))
	assert.Equal(t, []string{"++i"}, matches(t, "++i", body))
	assert.Equal(t, []string{"i--"}, matches(t, "_--", body))
	assert.Equal(t, []string{"--i"}, matches(t, "--_", body))
}

func TestMatches_BinaryOperators(t *testing.T) {
	body := `int a = x + 1; int b = x - 1; int c = x << 2; int d = x >>> 2; boolean e = x >= 3; int f = x % 2;`

	assert.Equal(t, []string{"x + 1"}, matches(t, "x + :int", body))
	assert.Equal(t, []string{"x << 2"}, matches(t, "_ << _", body))
	assert.Equal(t, []string{"x >>> 2"}, matches(t, "_ >>> 2", body))
	assert.Equal(t, []string{"x >= 3"}, matches(t, "x >= 3", body))
	assert.Equal(t, []string{"x % 2"}, matches(t, "_ % 2", body))
	assert.Empty(t, matches(t, "1 + x", body))
}

func TestMatches_ParenthesesAreTransparent(t *testing.T) {
	body := `int a = ((x + 1)) * 2;`

	assert.Equal(t, []string{"x + 1"}, matches(t, "x + 1", body))
	assert.Equal(t, []string{"((x + 1)) * 2"}, matches(t, "(x + 1) * 2", body))
	assert.Equal(t, []string{"((x + 1)) * 2"}, matches(t, "((x + 1) * (2))", body))
}

func TestMatches_ArrayAccessAndLambda(t *testing.T) {
	body := `String s = args[0]; Runnable r = () -> run(); list.forEach(x -> print(x));`

	assert.Equal(t, []string{"args[0]"}, matches(t, "args[:int]", body))
	assert.Equal(t, []string{"list.forEach(x -> print(x))"}, matches(t, "_.forEach(:lambda)", body))
	assert.Len(t, matches(t, ":lambda", body), 2)
}

func TestMatches_LiteralKindsAreNotCoerced(t *testing.T) {
	body := `int a = 1; double b = 1.0; String c = "1"; boolean d = true;`

	assert.Equal(t, []string{"1"}, matches(t, "1", body))
	assert.Equal(t, []string{"1.0"}, matches(t, "1.0", body))
	assert.Equal(t, []string{`"1"`}, matches(t, `"1"`, body))
	assert.Equal(t, []string{"true"}, matches(t, ":boolean", body))
	assert.Equal(t, []string{`"1"`}, matches(t, ":string", body))
}

func TestMatches_Conditional(t *testing.T) {
	body := `if (x == null) { a(); }
while (!(x == null)) { b(); }
boolean v = x == null;
int w = x == null ? 1 : 2;
for (; x == null;) { c(); }`

	assert.Len(t, matches(t, "_ == null", body), 5)
	assert.Len(t, matches(t, "_ == null [conditional]", body), 3)
	assert.Len(t, matches(t, "_ == null [!conditional]", body), 4)
}

func TestMatches_Discarded(t *testing.T) {
	body := `s.trim();
String t = s.trim();
int n = s.trim().length();
return s.trim();`

	assert.Equal(t, []string{"s.trim()"}, matches(t, "_.trim() [discarded]", body))
	assert.Len(t, matches(t, "_.trim() [!discarded]", body), 3)
	assert.Len(t, matches(t, "_.trim()", body), 4)
}

func TestMatches_DiscardedOnlyWholeStatement(t *testing.T) {
	body := `x = foo() + 1; foo();`

	got := matches(t, "foo() [discarded]", body)
	assert.Equal(t, []string{"foo()"}, got)
	assert.Len(t, matches(t, "foo() [!discarded]", body), 1)
}
