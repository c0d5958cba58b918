package ast

import (
	"testing"

	"github.com/gleamtools/gleamsyntax/internal/parse"
	"github.com/gleamtools/gleamsyntax/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = `import aa/a.{m as a, M as A} as e
pub const a: fn(Int, String) -> Cat = 1
const b: #(Int, gleam.Int) = #(1, [2.5, "x"], b)
if erlang {const c = 1}
`

func allNodes(t *testing.T, code string) []syntax.Node {
	t.Helper()

	mod, _ := parse.ParseModuleSource(code, "test")
	nodes := []syntax.Node{mod.Root()}

	err := syntax.Walk(mod.Root(), func(child syntax.Child, parent syntax.Node, depth int, after bool) (syntax.TraversalAction, error) {
		if node, ok := child.AsNode(); ok {
			nodes = append(nodes, node)
		}
		return syntax.ContinueTraversal, nil
	}, nil)
	require.NoError(t, err)
	return nodes
}

// checkCastSoundness verifies that casting succeeds exactly on the wrapper's
// kind set and that re-casting a wrapper's own node yields an equal wrapper.
func checkCastSoundness[T Typed[T]](t *testing.T, nodes []syntax.Node, kinds syntax.KindSet) {
	t.Helper()

	var zero T
	for _, n := range nodes {
		assert.Equal(t, kinds.Has(n.Kind()), zero.CanCast(n.Kind()), "CanCast(%s)", n.Kind())

		w, ok := Cast[T](n)
		assert.Equal(t, kinds.Has(n.Kind()), ok, "cast %s", n)
		if !ok {
			continue
		}

		assert.Equal(t, n, w.Syntax())

		again, ok := Cast[T](w.Syntax())
		require.True(t, ok)
		assert.Equal(t, w, again)
	}
}

func TestCastSoundness(t *testing.T) {
	nodes := allNodes(t, corpus)

	checkCastSoundness[SourceFile](t, nodes, syntax.NewKindSet(syntax.SOURCE_FILE))
	checkCastSoundness[TargetGroup](t, nodes, syntax.NewKindSet(syntax.TARGET_GROUP))
	checkCastSoundness[Target](t, nodes, syntax.NewKindSet(syntax.TARGET))
	checkCastSoundness[ModuleConstant](t, nodes, syntax.NewKindSet(syntax.MODULE_CONSTANT))
	checkCastSoundness[Import](t, nodes, syntax.NewKindSet(syntax.IMPORT))
	checkCastSoundness[ImportModule](t, nodes, syntax.NewKindSet(syntax.IMPORT_MODULE))
	checkCastSoundness[UnqualifiedImport](t, nodes, syntax.NewKindSet(syntax.UNQUALIFIED_IMPORT))
	checkCastSoundness[ModuleName](t, nodes, syntax.NewKindSet(syntax.MODULE_NAME))
	checkCastSoundness[Name](t, nodes, syntax.NewKindSet(syntax.NAME))
	checkCastSoundness[Path](t, nodes, syntax.NewKindSet(syntax.PATH))
	checkCastSoundness[Literal](t, nodes, syntax.NewKindSet(syntax.LITERAL))
	checkCastSoundness[Tuple](t, nodes, syntax.NewKindSet(syntax.TUPLE))
	checkCastSoundness[List](t, nodes, syntax.NewKindSet(syntax.LIST))
	checkCastSoundness[Param](t, nodes, syntax.NewKindSet(syntax.PARAM))
	checkCastSoundness[ParamList](t, nodes, syntax.NewKindSet(syntax.PARAM_LIST))
	checkCastSoundness[FnType](t, nodes, syntax.NewKindSet(syntax.FN_TYPE))
	checkCastSoundness[VarType](t, nodes, syntax.NewKindSet(syntax.VAR_TYPE))
	checkCastSoundness[TupleType](t, nodes, syntax.NewKindSet(syntax.TUPLE_TYPE))
	checkCastSoundness[ConstructorType](t, nodes, syntax.NewKindSet(syntax.CONSTRUCTOR_TYPE))

	checkCastSoundness[Statement](t, nodes, syntax.NewKindSet(syntax.MODULE_CONSTANT, syntax.IMPORT))
	checkCastSoundness[ConstantValue](t, nodes, syntax.NewKindSet(syntax.LITERAL, syntax.TUPLE, syntax.LIST))
	checkCastSoundness[TypeAnnotation](t, nodes, syntax.NewKindSet(
		syntax.FN_TYPE, syntax.VAR_TYPE, syntax.TUPLE_TYPE, syntax.CONSTRUCTOR_TYPE))
}

func TestSumTypesResolveToExactlyOneVariant(t *testing.T) {
	for _, n := range allNodes(t, corpus) {
		if s, ok := Cast[Statement](n); ok {
			assert.NotNil(t, s.Variant())
		}
		if v, ok := Cast[ConstantValue](n); ok {
			assert.NotNil(t, v.Variant())
		}
		if a, ok := Cast[TypeAnnotation](n); ok {
			assert.NotNil(t, a.Variant())
		}
	}
}

func TestOrdinalStability(t *testing.T) {
	//nthChild must agree with manually filtering the child sequence
	mod := parse.MustParseModule(`const a = #(1, #(2), [3], "x", 5)`)

	var tupleNode syntax.Node
	syntax.Walk(mod.Root(), func(child syntax.Child, parent syntax.Node, depth int, after bool) (syntax.TraversalAction, error) {
		if node, ok := child.AsNode(); ok && node.Kind() == syntax.TUPLE && tupleNode.IsNil() {
			tupleNode = node
			return syntax.StopTraversal, nil
		}
		return syntax.ContinueTraversal, nil
	}, nil)
	require.False(t, tupleNode.IsNil())

	var manual []syntax.Node
	for it := tupleNode.Children(); ; {
		child, ok := it.Next()
		if !ok {
			break
		}
		node, ok := child.AsNode()
		if !ok {
			continue
		}
		var zero ConstantValue
		if zero.CanCast(node.Kind()) {
			manual = append(manual, node)
		}
	}
	require.Len(t, manual, 5)

	for i := 0; i < len(manual); i++ {
		v, ok := nthChild[ConstantValue](tupleNode, i)
		require.True(t, ok, "ordinal %d", i)
		assert.Equal(t, manual[i], v.Syntax())
	}

	_, ok := nthChild[ConstantValue](tupleNode, len(manual))
	assert.False(t, ok)
}

func TestNthToken(t *testing.T) {
	mod := parse.MustParseModule(`const a = #(1, 2, 3)`)

	var tupleNode syntax.Node
	syntax.Walk(mod.Root(), func(child syntax.Child, parent syntax.Node, depth int, after bool) (syntax.TraversalAction, error) {
		if node, ok := child.AsNode(); ok && node.Kind() == syntax.TUPLE {
			tupleNode = node
			return syntax.StopTraversal, nil
		}
		return syntax.ContinueTraversal, nil
	}, nil)
	require.False(t, tupleNode.IsNil())

	first, ok := nthToken(tupleNode, syntax.COMMA, 0)
	require.True(t, ok)
	second, ok := nthToken(tupleNode, syntax.COMMA, 1)
	require.True(t, ok)
	assert.Less(t, first.Span().Start, second.Span().Start)

	_, ok = nthToken(tupleNode, syntax.COMMA, 2)
	assert.False(t, ok)

	_, ok = token(tupleNode, syntax.EQUAL)
	assert.False(t, ok, "'=' belongs to the parent, not to the tuple")
}

func TestChildrenSequenceIsRestartable(t *testing.T) {
	e := parseIn[Tuple](t, `const a = #(1, 2)`)

	iter := e.Elements()
	_, ok := iter.Next()
	require.True(t, ok)

	//a fresh sequence restarts from the first element
	iter2 := e.Elements()
	all := iter2.Collect()
	assert.Len(t, all, 2)
}

func TestCastWrongKindFails(t *testing.T) {
	mod := parse.MustParseModule("const a = 1")
	group, ok := mod.Root().ChildAt(0).AsNode()
	require.True(t, ok)

	_, ok = Cast[SourceFile](group)
	assert.False(t, ok)
	_, ok = Cast[Import](group)
	assert.False(t, ok)
	_, ok = Cast[Statement](group)
	assert.False(t, ok)
}
