package ast

import (
	"fmt"

	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

// Sum-type wrappers: one of several alternative node shapes fills a
// grammatical slot. A sum wrapper resolves to exactly one variant; the
// member kinds of sibling variants are disjoint, which is checked once at
// package initialization.

func init() {
	mustBeDisjoint("Statement",
		syntax.NewKindSet(syntax.MODULE_CONSTANT),
		syntax.NewKindSet(syntax.IMPORT),
	)
	mustBeDisjoint("ConstantValue",
		syntax.NewKindSet(syntax.LITERAL),
		syntax.NewKindSet(syntax.TUPLE),
		syntax.NewKindSet(syntax.LIST),
	)
	mustBeDisjoint("TypeAnnotation",
		syntax.NewKindSet(syntax.FN_TYPE),
		syntax.NewKindSet(syntax.VAR_TYPE),
		syntax.NewKindSet(syntax.TUPLE_TYPE),
		syntax.NewKindSet(syntax.CONSTRUCTOR_TYPE),
	)
}

func mustBeDisjoint(name string, variants ...syntax.KindSet) {
	for i := range variants {
		for j := i + 1; j < len(variants); j++ {
			if variants[i].Intersects(variants[j]) {
				panic(fmt.Errorf("ast: variants %d and %d of sum type %s share a kind", i, j, name))
			}
		}
	}
}

var (
	statementKinds      = syntax.NewKindSet(syntax.MODULE_CONSTANT, syntax.IMPORT)
	constantValueKinds  = syntax.NewKindSet(syntax.LITERAL, syntax.TUPLE, syntax.LIST)
	typeAnnotationKinds = syntax.NewKindSet(syntax.FN_TYPE, syntax.VAR_TYPE, syntax.TUPLE_TYPE, syntax.CONSTRUCTOR_TYPE)
)

// Statement is a constant declaration or an import.
type Statement struct{ n syntax.Node }

// StatementVariant is the closed set of statement shapes; type-switch over
// it is exhaustive.
type StatementVariant interface {
	Node
	isStatementVariant()
}

func (ModuleConstant) isStatementVariant() {}
func (Import) isStatementVariant()         {}

func (Statement) CanCast(kind syntax.Kind) bool { return statementKinds.Has(kind) }

func (Statement) Cast(n syntax.Node) (Statement, bool) {
	if _, ok := Cast[ModuleConstant](n); ok {
		return Statement{n: n}, true
	}
	if _, ok := Cast[Import](n); ok {
		return Statement{n: n}, true
	}
	return Statement{}, false
}

func (s Statement) Syntax() syntax.Node { return s.n }

func (s Statement) Variant() StatementVariant {
	if v, ok := Cast[ModuleConstant](s.n); ok {
		return v
	}
	if v, ok := Cast[Import](s.n); ok {
		return v
	}
	return nil
}

func (s Statement) AsModuleConstant() (ModuleConstant, bool) { return Cast[ModuleConstant](s.n) }

func (s Statement) AsImport() (Import, bool) { return Cast[Import](s.n) }

// ConstantValue is a literal, a tuple or a list.
type ConstantValue struct{ n syntax.Node }

type ConstantValueVariant interface {
	Node
	isConstantValueVariant()
}

func (Literal) isConstantValueVariant() {}
func (Tuple) isConstantValueVariant()   {}
func (List) isConstantValueVariant()    {}

func (ConstantValue) CanCast(kind syntax.Kind) bool { return constantValueKinds.Has(kind) }

func (ConstantValue) Cast(n syntax.Node) (ConstantValue, bool) {
	if _, ok := Cast[Literal](n); ok {
		return ConstantValue{n: n}, true
	}
	if _, ok := Cast[Tuple](n); ok {
		return ConstantValue{n: n}, true
	}
	if _, ok := Cast[List](n); ok {
		return ConstantValue{n: n}, true
	}
	return ConstantValue{}, false
}

func (v ConstantValue) Syntax() syntax.Node { return v.n }

func (v ConstantValue) Variant() ConstantValueVariant {
	if w, ok := Cast[Literal](v.n); ok {
		return w
	}
	if w, ok := Cast[Tuple](v.n); ok {
		return w
	}
	if w, ok := Cast[List](v.n); ok {
		return w
	}
	return nil
}

func (v ConstantValue) AsLiteral() (Literal, bool) { return Cast[Literal](v.n) }

func (v ConstantValue) AsTuple() (Tuple, bool) { return Cast[Tuple](v.n) }

func (v ConstantValue) AsList() (List, bool) { return Cast[List](v.n) }

// TypeAnnotation is a fn type, a type variable, a tuple type or a
// constructor application.
type TypeAnnotation struct{ n syntax.Node }

type TypeAnnotationVariant interface {
	Node
	isTypeAnnotationVariant()
}

func (FnType) isTypeAnnotationVariant()          {}
func (VarType) isTypeAnnotationVariant()         {}
func (TupleType) isTypeAnnotationVariant()       {}
func (ConstructorType) isTypeAnnotationVariant() {}

func (TypeAnnotation) CanCast(kind syntax.Kind) bool { return typeAnnotationKinds.Has(kind) }

func (TypeAnnotation) Cast(n syntax.Node) (TypeAnnotation, bool) {
	if _, ok := Cast[FnType](n); ok {
		return TypeAnnotation{n: n}, true
	}
	if _, ok := Cast[VarType](n); ok {
		return TypeAnnotation{n: n}, true
	}
	if _, ok := Cast[TupleType](n); ok {
		return TypeAnnotation{n: n}, true
	}
	if _, ok := Cast[ConstructorType](n); ok {
		return TypeAnnotation{n: n}, true
	}
	return TypeAnnotation{}, false
}

func (a TypeAnnotation) Syntax() syntax.Node { return a.n }

func (a TypeAnnotation) Variant() TypeAnnotationVariant {
	if v, ok := Cast[FnType](a.n); ok {
		return v
	}
	if v, ok := Cast[VarType](a.n); ok {
		return v
	}
	if v, ok := Cast[TupleType](a.n); ok {
		return v
	}
	if v, ok := Cast[ConstructorType](a.n); ok {
		return v
	}
	return nil
}

func (a TypeAnnotation) AsFnType() (FnType, bool) { return Cast[FnType](a.n) }

func (a TypeAnnotation) AsVarType() (VarType, bool) { return Cast[VarType](a.n) }

func (a TypeAnnotation) AsTupleType() (TupleType, bool) { return Cast[TupleType](a.n) }

func (a TypeAnnotation) AsConstructorType() (ConstructorType, bool) {
	return Cast[ConstructorType](a.n)
}
