package ast

import (
	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

// SourceFile is the root view of a module: a sequence of target groups in
// source order.
type SourceFile struct{ n syntax.Node }

func (SourceFile) CanCast(kind syntax.Kind) bool { return kind == syntax.SOURCE_FILE }

func (SourceFile) Cast(n syntax.Node) (SourceFile, bool) {
	if n.Kind() != syntax.SOURCE_FILE {
		return SourceFile{}, false
	}
	return SourceFile{n: n}, true
}

func (f SourceFile) Syntax() syntax.Node { return f.n }

func (f SourceFile) Statements() Children[TargetGroup] { return children[TargetGroup](f.n) }

// TargetGroup is either an `if <target> { ... }` block or a single bare
// statement; in the latter case Target is absent.
type TargetGroup struct{ n syntax.Node }

func (TargetGroup) CanCast(kind syntax.Kind) bool { return kind == syntax.TARGET_GROUP }

func (TargetGroup) Cast(n syntax.Node) (TargetGroup, bool) {
	if n.Kind() != syntax.TARGET_GROUP {
		return TargetGroup{}, false
	}
	return TargetGroup{n: n}, true
}

func (g TargetGroup) Syntax() syntax.Node { return g.n }

func (g TargetGroup) Target() (Target, bool) { return child[Target](g.n) }

func (g TargetGroup) Statements() Children[Statement] { return children[Statement](g.n) }

type Target struct{ n syntax.Node }

func (Target) CanCast(kind syntax.Kind) bool { return kind == syntax.TARGET }

func (Target) Cast(n syntax.Node) (Target, bool) {
	if n.Kind() != syntax.TARGET {
		return Target{}, false
	}
	return Target{n: n}, true
}

func (t Target) Syntax() syntax.Node { return t.n }

func (t Target) Name() (Name, bool) { return child[Name](t.n) }

// ModuleConstant is a `[pub] const <name> [: <annotation>] = <value>`
// declaration. Every field accessor may report absence: the parse is
// error-tolerant and partially typed declarations still produce a node.
type ModuleConstant struct{ n syntax.Node }

func (ModuleConstant) CanCast(kind syntax.Kind) bool { return kind == syntax.MODULE_CONSTANT }

func (ModuleConstant) Cast(n syntax.Node) (ModuleConstant, bool) {
	if n.Kind() != syntax.MODULE_CONSTANT {
		return ModuleConstant{}, false
	}
	return ModuleConstant{n: n}, true
}

func (c ModuleConstant) Syntax() syntax.Node { return c.n }

func (c ModuleConstant) Name() (Name, bool) { return child[Name](c.n) }

func (c ModuleConstant) Value() (ConstantValue, bool) { return child[ConstantValue](c.n) }

func (c ModuleConstant) Annotation() (TypeAnnotation, bool) { return child[TypeAnnotation](c.n) }

// IsPublic reports the presence of the `pub` keyword among the declaration's
// direct tokens.
func (c ModuleConstant) IsPublic() bool {
	_, ok := token(c.n, syntax.PUB_KEYWORD)
	return ok
}

// Import is an import statement; its single field is the imported module
// description.
type Import struct{ n syntax.Node }

func (Import) CanCast(kind syntax.Kind) bool { return kind == syntax.IMPORT }

func (Import) Cast(n syntax.Node) (Import, bool) {
	if n.Kind() != syntax.IMPORT {
		return Import{}, false
	}
	return Import{n: n}, true
}

func (i Import) Syntax() syntax.Node { return i.n }

func (i Import) Module() (ImportModule, bool) { return child[ImportModule](i.n) }

// ImportModule describes `<path>/<path>... [.{ <unqualified> }] [as <name>]`.
type ImportModule struct{ n syntax.Node }

func (ImportModule) CanCast(kind syntax.Kind) bool { return kind == syntax.IMPORT_MODULE }

func (ImportModule) Cast(n syntax.Node) (ImportModule, bool) {
	if n.Kind() != syntax.IMPORT_MODULE {
		return ImportModule{}, false
	}
	return ImportModule{n: n}, true
}

func (m ImportModule) Syntax() syntax.Node { return m.n }

func (m ImportModule) ModulePath() Children[Path] { return children[Path](m.n) }

// AsName is the module-level rename (`as e`); the renames of unqualified
// imports are nested inside their own entries and are not seen here.
func (m ImportModule) AsName() (Name, bool) { return child[Name](m.n) }

func (m ImportModule) Unqualified() Children[UnqualifiedImport] {
	return children[UnqualifiedImport](m.n)
}

// UnqualifiedImport is one `<name> [as <name>]` entry of an unqualified
// import list. Entries are exposed in parse order, duplicates included.
type UnqualifiedImport struct{ n syntax.Node }

func (UnqualifiedImport) CanCast(kind syntax.Kind) bool { return kind == syntax.UNQUALIFIED_IMPORT }

func (UnqualifiedImport) Cast(n syntax.Node) (UnqualifiedImport, bool) {
	if n.Kind() != syntax.UNQUALIFIED_IMPORT {
		return UnqualifiedImport{}, false
	}
	return UnqualifiedImport{n: n}, true
}

func (u UnqualifiedImport) Syntax() syntax.Node { return u.n }

func (u UnqualifiedImport) Name() (Name, bool) { return child[Name](u.n) }

// AsName is the second name of the entry.
func (u UnqualifiedImport) AsName() (Name, bool) { return nthChild[Name](u.n, 1) }

// Name is a terminal node wrapping a single name lexeme.
type Name struct{ n syntax.Node }

func (Name) CanCast(kind syntax.Kind) bool { return kind == syntax.NAME }

func (Name) Cast(n syntax.Node) (Name, bool) {
	if n.Kind() != syntax.NAME {
		return Name{}, false
	}
	return Name{n: n}, true
}

func (nm Name) Syntax() syntax.Node { return nm.n }

func (nm Name) Token() (syntax.Token, bool) { return firstToken(nm.n) }

// Path is one segment of a slash-separated module path.
type Path struct{ n syntax.Node }

func (Path) CanCast(kind syntax.Kind) bool { return kind == syntax.PATH }

func (Path) Cast(n syntax.Node) (Path, bool) {
	if n.Kind() != syntax.PATH {
		return Path{}, false
	}
	return Path{n: n}, true
}

func (p Path) Syntax() syntax.Node { return p.n }

func (p Path) Token() (syntax.Token, bool) { return firstToken(p.n) }

type ModuleName struct{ n syntax.Node }

func (ModuleName) CanCast(kind syntax.Kind) bool { return kind == syntax.MODULE_NAME }

func (ModuleName) Cast(n syntax.Node) (ModuleName, bool) {
	if n.Kind() != syntax.MODULE_NAME {
		return ModuleName{}, false
	}
	return ModuleName{n: n}, true
}

func (m ModuleName) Syntax() syntax.Node { return m.n }

func (m ModuleName) Token() (syntax.Token, bool) { return firstToken(m.n) }

// LiteralKind is the semantic category of a literal lexeme.
type LiteralKind uint8

const (
	IntLiteral LiteralKind = iota + 1
	FloatLiteral
	StringLiteral
)

type Literal struct{ n syntax.Node }

func (Literal) CanCast(kind syntax.Kind) bool { return kind == syntax.LITERAL }

func (Literal) Cast(n syntax.Node) (Literal, bool) {
	if n.Kind() != syntax.LITERAL {
		return Literal{}, false
	}
	return Literal{n: n}, true
}

func (l Literal) Syntax() syntax.Node { return l.n }

func (l Literal) Token() (syntax.Token, bool) { return firstToken(l.n) }

// LiteralKind re-derives the category from the live token: false is returned
// both for a tokenless (error-recovered) literal and for a token kind with
// no literal mapping.
func (l Literal) LiteralKind() (LiteralKind, bool) {
	tok, ok := l.Token()
	if !ok {
		return 0, false
	}
	switch tok.Kind() {
	case syntax.INTEGER:
		return IntLiteral, true
	case syntax.FLOAT:
		return FloatLiteral, true
	case syntax.STRING:
		return StringLiteral, true
	}
	return 0, false
}

type Tuple struct{ n syntax.Node }

func (Tuple) CanCast(kind syntax.Kind) bool { return kind == syntax.TUPLE }

func (Tuple) Cast(n syntax.Node) (Tuple, bool) {
	if n.Kind() != syntax.TUPLE {
		return Tuple{}, false
	}
	return Tuple{n: n}, true
}

func (t Tuple) Syntax() syntax.Node { return t.n }

func (t Tuple) Elements() Children[ConstantValue] { return children[ConstantValue](t.n) }

type List struct{ n syntax.Node }

func (List) CanCast(kind syntax.Kind) bool { return kind == syntax.LIST }

func (List) Cast(n syntax.Node) (List, bool) {
	if n.Kind() != syntax.LIST {
		return List{}, false
	}
	return List{n: n}, true
}

func (l List) Syntax() syntax.Node { return l.n }

func (l List) Elements() Children[ConstantValue] { return children[ConstantValue](l.n) }

// Param is one parameter of a fn type.
type Param struct{ n syntax.Node }

func (Param) CanCast(kind syntax.Kind) bool { return kind == syntax.PARAM }

func (Param) Cast(n syntax.Node) (Param, bool) {
	if n.Kind() != syntax.PARAM {
		return Param{}, false
	}
	return Param{n: n}, true
}

func (p Param) Syntax() syntax.Node { return p.n }

func (p Param) Type() (TypeAnnotation, bool) { return child[TypeAnnotation](p.n) }

type ParamList struct{ n syntax.Node }

func (ParamList) CanCast(kind syntax.Kind) bool { return kind == syntax.PARAM_LIST }

func (ParamList) Cast(n syntax.Node) (ParamList, bool) {
	if n.Kind() != syntax.PARAM_LIST {
		return ParamList{}, false
	}
	return ParamList{n: n}, true
}

func (l ParamList) Syntax() syntax.Node { return l.n }

func (l ParamList) Params() Children[Param] { return children[Param](l.n) }

// FnType is a `fn(<params>) -> <return>` annotation. The return type is the
// first type annotation that is a direct child: parameter annotations are
// nested inside the param list.
type FnType struct{ n syntax.Node }

func (FnType) CanCast(kind syntax.Kind) bool { return kind == syntax.FN_TYPE }

func (FnType) Cast(n syntax.Node) (FnType, bool) {
	if n.Kind() != syntax.FN_TYPE {
		return FnType{}, false
	}
	return FnType{n: n}, true
}

func (f FnType) Syntax() syntax.Node { return f.n }

func (f FnType) ParamList() (ParamList, bool) { return child[ParamList](f.n) }

func (f FnType) Return() (TypeAnnotation, bool) { return child[TypeAnnotation](f.n) }

// VarType is a type variable annotation.
type VarType struct{ n syntax.Node }

func (VarType) CanCast(kind syntax.Kind) bool { return kind == syntax.VAR_TYPE }

func (VarType) Cast(n syntax.Node) (VarType, bool) {
	if n.Kind() != syntax.VAR_TYPE {
		return VarType{}, false
	}
	return VarType{n: n}, true
}

func (v VarType) Syntax() syntax.Node { return v.n }

func (v VarType) Name() (Name, bool) { return child[Name](v.n) }

type TupleType struct{ n syntax.Node }

func (TupleType) CanCast(kind syntax.Kind) bool { return kind == syntax.TUPLE_TYPE }

func (TupleType) Cast(n syntax.Node) (TupleType, bool) {
	if n.Kind() != syntax.TUPLE_TYPE {
		return TupleType{}, false
	}
	return TupleType{n: n}, true
}

func (t TupleType) Syntax() syntax.Node { return t.n }

func (t TupleType) FieldTypes() Children[TypeAnnotation] { return children[TypeAnnotation](t.n) }

// ConstructorType is a `[module.]Constructor` annotation; Module is absent
// for unqualified constructors.
type ConstructorType struct{ n syntax.Node }

func (ConstructorType) CanCast(kind syntax.Kind) bool { return kind == syntax.CONSTRUCTOR_TYPE }

func (ConstructorType) Cast(n syntax.Node) (ConstructorType, bool) {
	if n.Kind() != syntax.CONSTRUCTOR_TYPE {
		return ConstructorType{}, false
	}
	return ConstructorType{n: n}, true
}

func (c ConstructorType) Syntax() syntax.Node { return c.n }

func (c ConstructorType) Constructor() (Name, bool) { return child[Name](c.n) }

func (c ConstructorType) Module() (ModuleName, bool) { return child[ModuleName](c.n) }
