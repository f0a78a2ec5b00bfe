package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/format"
	"github.com/dhamidi/corona/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRule(t *testing.T, rule, src string, opts ...Option) string {
	t.Helper()
	p, err := FromSource([]byte(src), opts...)
	require.NoError(t, err)
	n, err := p.Rule(rule)
	require.NoError(t, err)
	return format.SExpr(n, p.Tokens())
}

func parseProgram(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	prog, tokens, err := ParseSource([]byte(src), opts...)
	require.NoError(t, err)
	return format.SExpr(prog, tokens)
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"5 - 5 * 3", "(BinaryExpr 5 - (BinaryExpr 5 * 3))"},
		{"0xff + 3 - 4", "(BinaryExpr (BinaryExpr 0xff + 3) - 4)"},
		{"√5²", "(UnaryExpr √ (UnaryExpr ² 5))"},
		{"2 ^ 3 ^ 2", "(BinaryExpr 2 ^ (BinaryExpr 3 ^ 2))"},
		{"-2 ^ 2", "(UnaryExpr - (BinaryExpr 2 ^ 2))"},
		{"- - x", "(UnaryExpr - (UnaryExpr - x))"},
		{"5 is not 3", "(BinaryExpr 5 is not 3)"},
		{"5 not in [3]", "(BinaryExpr 5 not in (List 3))"},
		{"a < b == c", "(BinaryExpr (BinaryExpr a < b) == c)"},
		{"a | b || c & d << 1", "(BinaryExpr a | (BinaryExpr b || (BinaryExpr c & (BinaryExpr d << 1))))"},
		{"a @ b // c % d", "(BinaryExpr (BinaryExpr (BinaryExpr a @ b) // c) % d)"},
		{"not a and b", "(BinaryExpr (UnaryExpr not a) and b)"},
		{"a or b and c", "(BinaryExpr a or (BinaryExpr b and c))"},
		{"not not a", "(UnaryExpr not (UnaryExpr not a))"},
		{"a if b else c", "(IfExpr a b c)"},
		{"a if b else c if d else e", "(IfExpr a b (IfExpr c d e))"},
		{"f(x)(y)[0].z", "(Field (Subscript (Call (Call f (Argument _ x)) (Argument _ y)) (SubscriptIndex 0 _ _)) z)"},
		{"a[1:2]", "(Subscript a (SubscriptIndex:slice 1 _ 2))"},
		{"a[1:2:3]", "(Subscript a (SubscriptIndex:slice 1 2 3))"},
		{"a[::2]", "(Subscript a (SubscriptIndex:slice _ _ 2))"},
		{"a[:]", "(Subscript a (SubscriptIndex:slice _ _ _))"},
		{"a[i, j]", "(Subscript a (SubscriptIndex i _ _) (SubscriptIndex j _ _))"},
		{"f()", "(Call f)"},
		{"f(a, b=2, *c, **d)", "(Call f (Argument _ a) (Argument b 2) (Argument _ (TupleRestExpr c)) (Argument _ (NamedTupleRestExpr d)))"},
		{"f(x for x in y)", "(Call f (Argument _ (Comprehension:generator _ x (ComprehensionFor x y _ _))))"},
		{"await f()", "(AwaitedExpr (Call f))"},
		{"lambda x, y=1: x", "(FuncExpr (FuncParams (FuncParam x _ _) (FuncParam y _ 1) _ _) x)"},
		{"lambda: 0", "(FuncExpr _ 0)"},
		{"lambda *args, **kw: args", "(FuncExpr (FuncParams (FuncParam args _ _) (FuncParam kw _ _)) args)"},
		{"lambda (a, b): a", "(FuncExpr (FuncParams (FuncParam a _ _) (FuncParam b _ _) _ _) a)"},
		{"(x := 5)", "(NamedExpression x 5)"},
		{"a.b.c", "(Field (Field a b) c)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRule(t, "expr", tt.input))
		})
	}
}

func TestParseAtom(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"()", "(Tuple)"},
		{"(1,)", "(Tuple 1)"},
		{"(1, 2)", "(Tuple 1 2)"},
		{"(1)", "1"},
		{"{}", "(Set)"},
		{"{1: 2}", "(Dict (KeyValue 1 2))"},
		{"{1: 2, 3: 4,}", "(Dict (KeyValue 1 2) (KeyValue 3 4))"},
		{"{1, 2}", "(Set 1 2)"},
		{"{x}", "(Set x)"},
		{"[]", "(List)"},
		{"[1, *a]", "(List 1 (TupleRestExpr a))"},
		{"[x for x in y]", "(Comprehension:list _ x (ComprehensionFor x y _ _))"},
		{"{x for x in y where x}", "(Comprehension:set _ x (ComprehensionFor x y x _))"},
		{"{k: v for k, v in items}", "(Comprehension:dict k v (ComprehensionFor (TupleLHS k v) items _ _))"},
		{"(x for x in a for y in b)", "(Comprehension:generator _ x (ComprehensionFor x a _ (ComprehensionFor y b _ _)))"},
		{"[x async for x in a]", "(Comprehension:list _ x (ComprehensionFor:async x a _ _))"},
		{"(yield x)", "(Yield x)"},
		{"(yield from x)", "(Yield:from x)"},
		{`"a" "b"`, `(StringList "a" "b")`},
		{`"a"`, `"a"`},
		{`b"a"`, `b"a"`},
		{"None", "None"},
		{"True", "True"},
		{"1.5", "1.5"},
		{"2im", "2im"},
		{"x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRule(t, "atom", tt.input))
		})
	}
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"int", "(Type int)"},
		{"None", "(Type None)"},
		{"int | None", "(UnionType (Type int) (Type None))"},
		{"A & B | C", "(UnionType (IntersectionType (Type A) (Type B)) (Type C))"},
		{"list[int]", "(GenericType list (Type int))"},
		{"[int, str]", "(ListType (Type int) (Type str))"},
		{"(int, str)", "(TupleType (Type int) (Type str))"},
		{"(int) -> str", "(FunctionType (Type int) (Type str))"},
		{"() -> None", "(FunctionType (Type None))"},
		{"dict[str, (int) -> int]", "(GenericType dict (Type str) (FunctionType (Type int) (Type int)))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRule(t, "type_annotation", tt.input))
		})
	}
}

func TestParseSimpleStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 1", "(Program (AssignmentStatement x _ = 1))"},
		{"x, y = 1, 2", "(Program (AssignmentStatement (TupleLHS x y) _ = (Tuple 1 2)))"},
		{"(x,) = t", "(Program (AssignmentStatement x _ = t))"},
		{"[x] = t", "(Program (AssignmentStatement x _ = t))"},
		{"[a, *b] = c", "(Program (AssignmentStatement (ListLHS a (TupleRestExpr b)) _ = c))"},
		{"a = b = c", "(Program (AssignmentStatement a b _ = c))"},
		{"x += 1", "(Program (AssignmentStatement x _ += 1))"},
		{"x ||= y", "(Program (AssignmentStatement x _ ||= y))"},
		{"x: int = 5", "(Program (AssignmentStatement x (Type int) = 5))"},
		{"x: list[int]", "(Program (AssignmentStatement x (GenericType list (Type int)) _))"},
		{"a.b[0] = 1", "(Program (AssignmentStatement (Subscript (Field a b) (SubscriptIndex 0 _ _)) _ = 1))"},
		{"x = yield", "(Program (AssignmentStatement x _ = (Yield)))"},
		{"f(x)", "(Program (ExprStatement (Call f (Argument _ x))))"},
		{"1, 2", "(Program (ExprStatement (Tuple 1 2)))"},
		{"pass; break", "(Program pass break)"},
		{"continue;", "(Program continue)"},
		{"return", "(Program (ReturnStatement))"},
		{"return 1, 2", "(Program (ReturnStatement 1 2))"},
		{"raise", "(Program (RaiseStatement _ _))"},
		{"raise E from e", "(Program (RaiseStatement E e))"},
		{"global a, b", "(Program (Globals a b))"},
		{"nonlocal a", "(Program (NonLocals a))"},
		{`assert x, "m"`, `(Program (AssertStatement x "m"))`},
		{"del a, b[0]", "(Program (DelStatement a (Subscript b (SubscriptIndex 0 _ _))))"},
		{"import a.b as c", "(Program (ImportStatement (MainPath a b c)))"},
		{"import a, b.c as d", "(Program (ImportStatement (MainPath a _) (MainPath b c d)))"},
		{"from ..a import b as c, d", "(Program (ImportStatement (MainPath:level=2 a _) (SubPath b c) (SubPath d _)))"},
		{"from . import *", "(Program (ImportStatement (MainPath:level=1 _) (SubPath:all _)))"},
		{"from a import (b, c,)", "(Program (ImportStatement (MainPath a _) (SubPath b _) (SubPath c _)))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseProgram(t, tt.input))
		})
	}
}

func TestParseCompoundStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"if elif else",
			"if a:\n  b\nelif c:\n  d\nelse:\n  e\n",
			"(Program (IfStatement a (Block (ExprStatement b)) (Elif c (Block (ExprStatement d))) (Block (ExprStatement e))))",
		},
		{
			"for",
			"for x in y: pass",
			"(Program (ForStatement x y _ (Block pass) _))",
		},
		{
			"for where else",
			"for k, v in items where k:\n  pass\nelse:\n  pass\n",
			"(Program (ForStatement (TupleLHS k v) items k (Block pass) (Block pass)))",
		},
		{
			"while",
			"while x where y: pass\nelse: pass\n",
			"(Program (WhileStatement x y (Block pass) (Block pass)))",
		},
		{
			"try",
			"try:\n  a\nexcept E as e:\n  b\nexcept:\n  c\nelse:\n  d\nfinally:\n  f\n",
			"(Program (TryStatement (Block (ExprStatement a)) (Except E e (Block (ExprStatement b))) (Except _ _ (Block (ExprStatement c))) (Block (ExprStatement d)) (Block (ExprStatement f))))",
		},
		{
			"try finally",
			"try: a\nfinally: b\n",
			"(Program (TryStatement (Block (ExprStatement a)) _ (Block (ExprStatement b))))",
		},
		{
			"with",
			"with a as b, c: pass",
			"(Program (WithStatement (WithArgument a b) (WithArgument c _) (Block pass)))",
		},
		{
			"with parenthesized target",
			"with a as (b, c): pass",
			"(Program (WithStatement (WithArgument a (TupleLHS b c)) (Block pass)))",
		},
		{
			"def",
			"def f[T](a: T, /, b=1, *args, c, **kw) -> T:\n  return a\n",
			"(Program (Function f (GenericsAnnotation (Type T)) (FuncParams (FuncParam a (Type T) _) / (FuncParam b _ 1) (FuncParam args _ _) (FuncParam c _ _) (FuncParam kw _ _)) (Type T) (Block (ReturnStatement a))))",
		},
		{
			"def without params",
			"def f(): pass",
			"(Program (Function f _ _ _ (Block pass)))",
		},
		{
			"class",
			"class A(B, C):\n  x = 1\n",
			"(Program (Class A _ (Type B) (Type C) (Block (AssignmentStatement x _ = 1))))",
		},
		{
			"decorated",
			"@dec\n@mod.deco(1)\ndef f(): pass\n",
			"(Program (Function (Decorator dec) (Decorator:call mod deco (Argument _ 1)) f _ _ _ (Block pass)))",
		},
		{
			"async def",
			"async def f(): pass",
			"(Program (Function:async f _ _ _ (Block pass)))",
		},
		{
			"async for",
			"async for x in y: pass",
			"(Program (ForStatement:async x y _ (Block pass) _))",
		},
		{
			"block lambda",
			"f = lambda x:\n    return x\ny = 1\n",
			"(Program (AssignmentStatement f _ = (FuncExpr:block (FuncParams (FuncParam x _ _) _ _) (ReturnStatement x))) (AssignmentStatement y _ = 1))",
		},
		{
			"nested blocks",
			"def f():\n  if x:\n    return 1\n  return 2\n",
			"(Program (Function f _ _ _ (Block (IfStatement x (Block (ReturnStatement 1)) _) (ReturnStatement 2))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseProgram(t, tt.input))
		})
	}
}

func TestSuiteEquivalence(t *testing.T) {
	inline, inlineTokens, err := ParseSource([]byte("if x: y; z"))
	require.NoError(t, err)
	block, blockTokens, err := ParseSource([]byte("if x:\n    y\n    z\n"))
	require.NoError(t, err)

	a := inline.Statements[0].(*ast.IfStatement).Body
	b := block.Statements[0].(*ast.IfStatement).Body
	assert.IsType(t, &ast.Block{}, a)
	assert.Equal(t, format.SExpr(a, inlineTokens), format.SExpr(b, blockTokens))
}

func TestSingletonTargetIsBare(t *testing.T) {
	prog, _, err := ParseSource([]byte("x = 1\nx, y = 1, 2\n"))
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)

	single := prog.Statements[0].(*ast.AssignmentStatement)
	assert.IsType(t, &ast.Identifier{}, single.Targets[0])

	pair := prog.Statements[1].(*ast.AssignmentStatement)
	tuple, ok := pair.Targets[0].(*ast.TupleLHS)
	require.True(t, ok)
	assert.Len(t, tuple.Exprs, 2)
}

func TestOmittedClauseIsNull(t *testing.T) {
	prog, _, err := ParseSource([]byte("for x in y: pass"))
	require.NoError(t, err)

	stmt := prog.Statements[0].(*ast.ForStatement)
	assert.IsType(t, &ast.Null{}, stmt.Else)

	nulls := 0
	ast.Inspect(prog, func(n ast.Node) bool {
		if _, ok := n.(*ast.Null); ok {
			nulls++
		}
		return true
	})
	assert.Equal(t, 2, nulls)
}

func TestTwoTokenOperator(t *testing.T) {
	p, err := FromSource([]byte("5 not in xs"))
	require.NoError(t, err)
	n, ok := p.Comparison()
	require.True(t, ok)

	bin, ok := n.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, 1, bin.Op.Op)
	assert.Equal(t, 2, bin.Op.Rem)

	tokens := p.Tokens()
	kind, ok := ast.BinaryOp(tokens[bin.Op.Op].Data, tokens[bin.Op.Rem].Data)
	require.True(t, ok)
	assert.Equal(t, ast.OpNotIn, kind)
}

var sources = []string{
	"x = 1",
	"x, y = (1, 2), [3, {4: 5}]",
	"5 - 5 * 3 + f(a)[b].c",
	"def f(a, *b, c=1, **d) -> int:\n  return [x for x in a where x > c]\n",
	"class A(B):\n  @property\n  def x(self): return self._x\n",
	"try:\n  a()\nexcept E as e:\n  raise\nfinally:\n  b()\n",
	"with open(f) as h, lock: data = h.read()",
	"if a:\n  pass\nelif b: pass\nelse:\n  while c where d: c -= 1\n",
	"f = lambda x:\n  return x\ng = lambda: (yield)\n",
	"from .mod import (a as b, c)\nimport d.e\n",
	"x: dict[str, int | None] = {}\n",
}

func TestMemoizationTransparency(t *testing.T) {
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			withMemo, err := FromSource([]byte(src))
			require.NoError(t, err)
			withoutMemo, err := FromSource([]byte(src), WithoutMemoization())
			require.NoError(t, err)

			a, err := withMemo.Program()
			require.NoError(t, err)
			b, err := withoutMemo.Program()
			require.NoError(t, err)

			assert.Equal(t, a, b)
			ca, ra, cola := withMemo.Position()
			cb, rb, colb := withoutMemo.Position()
			assert.Equal(t, []int{ca, ra, cola}, []int{cb, rb, colb})
			assert.Zero(t, withoutMemo.Stats().Hits)
		})
	}
}

func TestMemoizationHits(t *testing.T) {
	p, err := FromSource([]byte("x = 1"))
	require.NoError(t, err)
	_, err = p.Program()
	require.NoError(t, err)

	stats := p.Stats()
	assert.Positive(t, stats.Hits)
	assert.Positive(t, stats.Entries)
}

func TestBacktrackExactness(t *testing.T) {
	inputs := []string{
		"x", "1 +", "(1, 2", "lambda x", "if", "def f(", "[x for", "a[1:",
		"{1: 2, 3}", "x = = 1", ") x", "not", "@", "import", "...",
	}
	for _, src := range inputs {
		for name, entry := range entryPoints {
			t.Run(name+"/"+src, func(t *testing.T) {
				p, err := FromSource([]byte(src), WithStrict(false))
				if err != nil {
					t.Skip("input does not tokenize")
				}
				_, ok := entry(p)
				if ok {
					return
				}
				cursor, row, column := p.Position()
				assert.Equal(t, []int{-1, 0, 0}, []int{cursor, row, column})
			})
		}
	}
}

func TestPartialTrailersAreRewound(t *testing.T) {
	tests := []struct {
		input  string
		rule   func(*Parser) (ast.Node, bool)
		cursor int
	}{
		{"1 +", (*Parser).SumExpr, 0},
		{"a if b", (*Parser).Test, 0},
		{"f(x).", (*Parser).AtomExpr, 3},
		{"a is not", (*Parser).Comparison, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := FromSource([]byte(tt.input))
			require.NoError(t, err)
			_, ok := tt.rule(p)
			require.True(t, ok)
			cursor, _, _ := p.Position()
			assert.Equal(t, tt.cursor, cursor)
		})
	}
}

func TestInitialPosition(t *testing.T) {
	p, err := FromSource([]byte("  \nx"))
	require.NoError(t, err)
	cursor, row, column := p.Position()
	assert.Equal(t, []int{-1, 0, 0}, []int{cursor, row, column})

	_, ok := p.Atom()
	require.True(t, ok)
	cursor, row, column = p.Position()
	assert.Equal(t, []int{0, 2, 1}, []int{cursor, row, column})
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		row     int
		column  int
	}{
		{"missing colon", "if x\n  pass\n", "expected ':'", 1, 5},
		{"unclosed params", "def f(x y): pass", "expected ')'", 1, 9},
		{"dangling operator", "x = 1 +", "expected end of statement", 1, 7},
		{"try without handler", "try:\n  pass\n", "expected 'except' or 'finally'", 3, 1},
		{"import without path", "import 1", "expected a module path", 1, 8},
		{"import list without path", "import a, 1", "expected a module path", 1, 11},
		{"bad assignment value", "x = def\n", "expected an expression after '='", 1, 5},
		{"bad chained assignment value", "a = b = if\n", "expected an expression after '='", 1, 9},
		{"bad annotated value", "x: int = def", "expected an expression after '='", 1, 10},
		{"annotated target list", "a, b: int\n", "expected end of statement", 1, 5},
		{"decorator without def", "@dec\nx = 1\n", "expected 'def' or 'class'", 2, 1},
		{"empty if body", "if x:\n", "expected an indented block", 1, 6},
		{"bad statement in block", "def f():\n  x = 1 2\n", "expected end of statement", 2, 9},
		{"stray token", "x = 1\n= 2\n", "invalid syntax", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseSource([]byte(tt.input))
			require.Error(t, err)
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v", err)
			assert.Contains(t, syntaxErr.Message, tt.message)
			assert.Equal(t, tt.row, syntaxErr.Row, syntaxErr.Error())
			assert.Equal(t, tt.column, syntaxErr.Column, syntaxErr.Error())
		})
	}
}

func TestLenientModeReportsInvalidSyntax(t *testing.T) {
	tests := []struct {
		input  string
		row    int
		column int
	}{
		{"if x\n  pass\n", 1, 5},
		{"x = 1 +", 1, 8},
		{"a = 1\ndef f(x y): pass", 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := ParseSource([]byte(tt.input), WithStrict(false))
			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr), "got %v", err)
			assert.Equal(t, "invalid syntax", syntaxErr.Message)
			assert.Equal(t, tt.row, syntaxErr.Row)
			assert.Equal(t, tt.column, syntaxErr.Column)
		})
	}
}

func TestDepthGuard(t *testing.T) {
	src := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40)

	_, _, err := ParseSource([]byte(src))
	require.NoError(t, err)

	deep := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	_, _, err = ParseSource([]byte("x = " + deep + "\n"))
	require.NoError(t, err)

	for _, strict := range []bool{true, false} {
		_, _, err = ParseSource([]byte(src), WithMaxDepth(100), WithStrict(strict))
		var syntaxErr *SyntaxError
		require.True(t, errors.As(err, &syntaxErr), "got %v", err)
		assert.Contains(t, syntaxErr.Message, "maximum nesting depth")
	}
}

func TestTokenizeErrorIsWrapped(t *testing.T) {
	_, _, err := ParseSource([]byte(`x = "open`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenize")
}

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "\n\n", "# only a comment\n"} {
		prog, _, err := ParseSource([]byte(src))
		require.NoError(t, err)
		assert.Empty(t, prog.Statements)
	}
}

func TestRuleRejectsLeftovers(t *testing.T) {
	p, err := FromSource([]byte("a b"))
	require.NoError(t, err)
	_, err = p.Rule("expr")
	require.Error(t, err)

	p, err = FromSource([]byte("a"))
	require.NoError(t, err)
	_, err = p.Rule("no_such_rule")
	require.Error(t, err)
}

func TestTokenExtraction(t *testing.T) {
	prog, tokens, err := ParseSource([]byte("x = a + b"))
	require.NoError(t, err)

	var data []string
	for _, i := range ast.TokenIndices(prog) {
		data = append(data, tokens[i].Data)
	}
	assert.Equal(t, []string{"x", "=", "a", "+", "b"}, data)
}

func TestLayoutTokensStayOutOfTheTree(t *testing.T) {
	src := "def f(x):\n  if x:\n    return 1\n  return 2\nclass A:\n  pass\n"
	prog, tokens, err := ParseSource([]byte(src))
	require.NoError(t, err)

	ast.Inspect(prog, func(n ast.Node) bool {
		assert.NotEqual(t, "Unknown", n.Kind().String(), "%T", n)
		return true
	})
	for _, i := range ast.TokenIndices(prog) {
		switch tokens[i].Kind {
		case lexer.TokenNewline, lexer.TokenIndent, lexer.TokenDedent:
			t.Errorf("token %d (%s) is a layout token", i, tokens[i].Kind)
		}
	}
}
