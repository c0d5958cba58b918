package ast

import (
	"strings"
	"testing"

	"github.com/gleamtools/gleamsyntax/internal/parse"
	"github.com/gleamtools/gleamsyntax/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseIn parses the code and returns the first node (root included, then in
// document order) that casts to T.
func parseIn[T Typed[T]](t *testing.T, code string) T {
	t.Helper()

	mod := parse.MustParseModule(code)
	root := mod.Root()

	if v, ok := Cast[T](root); ok {
		return v
	}

	var result T
	found := false
	syntax.Walk(root, func(child syntax.Child, parent syntax.Node, depth int, after bool) (syntax.TraversalAction, error) {
		node, ok := child.AsNode()
		if !ok {
			return syntax.ContinueTraversal, nil
		}
		if v, ok := Cast[T](node); ok {
			result = v
			found = true
			return syntax.StopTraversal, nil
		}
		return syntax.ContinueTraversal, nil
	}, nil)

	require.True(t, found, "no node of the requested type in %q", code)
	return result
}

func text(n Node) string {
	return strings.TrimSpace(n.Syntax().Text())
}

func tokenText(t *testing.T, n interface{ Token() (syntax.Token, bool) }) string {
	t.Helper()
	tok, ok := n.Token()
	require.True(t, ok)
	return tok.Text()
}

func TestModuleConstant(t *testing.T) {
	e := parseIn[ModuleConstant](t, `pub const a = "123"`)

	name, ok := e.Name()
	require.True(t, ok)
	assert.Equal(t, "a", text(name))
	assert.Equal(t, "a", tokenText(t, name))
	assert.True(t, e.IsPublic())

	value, ok := e.Value()
	require.True(t, ok)
	literal, ok := value.AsLiteral()
	require.True(t, ok)
	assert.Equal(t, `"123"`, text(literal))

	kind, ok := literal.LiteralKind()
	require.True(t, ok)
	assert.Equal(t, StringLiteral, kind)

	_, ok = e.Annotation()
	assert.False(t, ok)
}

func TestModuleConstantPrivate(t *testing.T) {
	e := parseIn[ModuleConstant](t, `const a = 1`)
	assert.False(t, e.IsPublic())
}

func TestConstTuple(t *testing.T) {
	e := parseIn[Tuple](t, `const a = #(#(2,3),2)`)

	iter := e.Elements()

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "#(2,3)", text(first))

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "2", text(second))

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestConstList(t *testing.T) {
	e := parseIn[List](t, `const a = [1, 2.5, "x"]`)

	elements := e.Elements()
	values := elements.Collect()
	require.Len(t, values, 3)

	kinds := make([]LiteralKind, 3)
	for i, v := range values {
		literal, ok := v.AsLiteral()
		require.True(t, ok)
		kinds[i], ok = literal.LiteralKind()
		require.True(t, ok)
	}
	assert.Equal(t, []LiteralKind{IntLiteral, FloatLiteral, StringLiteral}, kinds)
}

func TestSourceFileStatements(t *testing.T) {
	e := parseIn[SourceFile](t, "if erlang {const a = 1} const b = 2 if javascript {const c = 3}")

	iter := e.Statements()

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "if erlang {const a = 1}", text(first))

	_, ok = iter.Next()
	assert.True(t, ok)
	_, ok = iter.Next()
	assert.True(t, ok)
	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestTargetGroup(t *testing.T) {
	e := parseIn[TargetGroup](t, "if erlang {const a = 1} const b = 2 if javascript {const c = 3}")

	target, ok := e.Target()
	require.True(t, ok)
	assert.Equal(t, "erlang", text(target))

	iter := e.Statements()
	stmt, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "const a = 1", text(stmt))

	constant, ok := stmt.AsModuleConstant()
	require.True(t, ok)
	assert.Equal(t, "const a = 1", text(constant))
}

func TestBareTargetGroupHasNoTarget(t *testing.T) {
	e := parseIn[TargetGroup](t, "const b = 2")

	_, ok := e.Target()
	assert.False(t, ok)

	iter := e.Statements()
	stmt, ok := iter.Next()
	require.True(t, ok)

	variant := stmt.Variant()
	_, isConstant := variant.(ModuleConstant)
	assert.True(t, isConstant)
}

func TestFnTypeAnnotation(t *testing.T) {
	e := parseIn[FnType](t, "const a: fn(Int, String) -> Cat = 1")

	ret, ok := e.Return()
	require.True(t, ok)
	assert.Equal(t, "Cat", text(ret))

	paramList, ok := e.ParamList()
	require.True(t, ok)

	iter := paramList.Params()
	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "Int", text(first))

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "String", text(second))

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestTupleTypeAnnotation(t *testing.T) {
	e := parseIn[TupleType](t, "const a: #(Int, String) = 1")

	iter := e.FieldTypes()

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "Int", text(first))

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "String", text(second))

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestConstructorModuleType(t *testing.T) {
	e := parseIn[ModuleConstant](t, "const a: gleam.Int = 1")

	annotation, ok := e.Annotation()
	require.True(t, ok)
	assert.Equal(t, "gleam.Int", text(annotation))

	constructor, ok := annotation.AsConstructorType()
	require.True(t, ok)

	name, ok := constructor.Constructor()
	require.True(t, ok)
	assert.Equal(t, "Int", text(name))

	module, ok := constructor.Module()
	require.True(t, ok)
	assert.Equal(t, "gleam", text(module))
}

func TestVarTypeAnnotation(t *testing.T) {
	e := parseIn[VarType](t, "const a: b = 1")

	name, ok := e.Name()
	require.True(t, ok)
	assert.Equal(t, "b", tokenText(t, name))
}

func TestImportModulePath(t *testing.T) {
	e := parseIn[ImportModule](t, "import aa/a")

	iter := e.ModulePath()

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "aa", text(first))

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, "a", text(second))

	_, ok = iter.Next()
	assert.False(t, ok)

	_, ok = e.AsName()
	assert.False(t, ok)
}

func TestImportUnqualified(t *testing.T) {
	e := parseIn[ImportModule](t, "import aa/a.{m as a, M as A}")

	iter := e.Unqualified()
	fst, ok := iter.Next()
	require.True(t, ok)
	snd, ok := iter.Next()
	require.True(t, ok)

	name, ok := fst.Name()
	require.True(t, ok)
	assert.Equal(t, "m", text(name))
	asName, ok := fst.AsName()
	require.True(t, ok)
	assert.Equal(t, "a", text(asName))

	name, ok = snd.Name()
	require.True(t, ok)
	assert.Equal(t, "M", text(name))
	asName, ok = snd.AsName()
	require.True(t, ok)
	assert.Equal(t, "A", text(asName))

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestImportQualifiedAs(t *testing.T) {
	e := parseIn[ImportModule](t, "import aa/a.{m as a, M as A} as e")

	asName, ok := e.AsName()
	require.True(t, ok)
	assert.Equal(t, "e", text(asName))
}

func TestMalformedImportDoesNotPanic(t *testing.T) {
	mod, err := parse.ParseModuleSource("import aa/a.{m as a, M as A as e", "test")
	assert.Error(t, err)

	root, ok := Cast[SourceFile](mod.Root())
	require.True(t, ok)

	iter := root.Statements()
	group, ok := iter.Next()
	require.True(t, ok)

	stmts := group.Statements()
	stmt, ok := stmts.Next()
	require.True(t, ok)

	imp, ok := stmt.AsImport()
	require.True(t, ok)

	module, ok := imp.Module()
	require.True(t, ok)

	//the well-formed entries are still exposed
	entries := module.Unqualified()
	fst, ok := entries.Next()
	require.True(t, ok)
	asName, ok := fst.AsName()
	require.True(t, ok)
	assert.Equal(t, "a", text(asName))

	//the module-level rename is absent
	_, ok = module.AsName()
	assert.False(t, ok)
}

func TestIncompleteConstantAccessorsReturnAbsence(t *testing.T) {
	mod, err := parse.ParseModuleSource("const a =", "test")
	assert.Error(t, err)

	root, _ := Cast[SourceFile](mod.Root())
	groups := root.Statements()
	group, ok := groups.Next()
	require.True(t, ok)
	stmts := group.Statements()
	stmt, ok := stmts.Next()
	require.True(t, ok)
	constant, ok := stmt.AsModuleConstant()
	require.True(t, ok)

	name, ok := constant.Name()
	require.True(t, ok)
	assert.Equal(t, "a", text(name))

	_, ok = constant.Value()
	assert.False(t, ok)
	_, ok = constant.Annotation()
	assert.False(t, ok)
}
