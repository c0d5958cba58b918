package ast

import (
	"github.com/gleamtools/gleamsyntax/internal/syntax"
)

// A Node is a typed view over one untyped syntax node. Wrappers store
// nothing but the wrapped handle: every accessor re-queries the tree, and
// two wrappers over the same handle are equal.
type Node interface {
	Syntax() syntax.Node
}

// Typed is implemented by every wrapper type. CanCast and Cast are callable
// on the zero value: they only look at the candidate node's kind, never at
// its children.
type Typed[T any] interface {
	Node
	CanCast(syntax.Kind) bool
	Cast(syntax.Node) (T, bool)
}

// Cast reinterprets an arbitrary untyped node as a typed view. It succeeds
// if and only if the node's kind belongs to the wrapper's kind set.
func Cast[T Typed[T]](n syntax.Node) (T, bool) {
	var w T
	return w.Cast(n)
}

// child returns the first direct child that casts to T, in document order.
func child[T Typed[T]](parent syntax.Node) (T, bool) {
	return nthChild[T](parent, 0)
}

// nthChild returns the nth (0-based) direct child that casts to T. Children
// of other kinds are skipped, not counted.
func nthChild[T Typed[T]](parent syntax.Node, nth int) (T, bool) {
	var w T
	for it := parent.Children(); ; {
		c, ok := it.Next()
		if !ok {
			break
		}
		sub, ok := c.AsNode()
		if !ok {
			continue
		}
		v, ok := w.Cast(sub)
		if !ok {
			continue
		}
		if nth == 0 {
			return v, true
		}
		nth--
	}
	var zero T
	return zero, false
}

// children returns a lazy sequence over all direct children that cast to T,
// in document order. It never recurses into grandchildren.
func children[T Typed[T]](parent syntax.Node) Children[T] {
	return Children[T]{cursor: parent.Children()}
}

// Children is a lazy, finite sequence of typed wrappers. Obtaining the
// sequence again from its accessor restarts it; consuming it partially is
// safe.
type Children[T Typed[T]] struct {
	cursor syntax.ChildCursor
}

func (c *Children[T]) Next() (T, bool) {
	var w T
	for {
		child, ok := c.cursor.Next()
		if !ok {
			var zero T
			return zero, false
		}
		sub, ok := child.AsNode()
		if !ok {
			continue
		}
		if v, ok := w.Cast(sub); ok {
			return v, true
		}
	}
}

// Collect drains the rest of the sequence.
func (c *Children[T]) Collect() []T {
	var elements []T
	for {
		v, ok := c.Next()
		if !ok {
			return elements
		}
		elements = append(elements, v)
	}
}

// token returns the first direct token child of the given kind.
func token(parent syntax.Node, kind syntax.Kind) (syntax.Token, bool) {
	return nthToken(parent, kind, 0)
}

// nthToken returns the nth (0-based) direct token child of the given kind,
// in document order.
func nthToken(parent syntax.Node, kind syntax.Kind, nth int) (syntax.Token, bool) {
	for it := parent.Children(); ; {
		c, ok := it.Next()
		if !ok {
			break
		}
		tok, ok := c.AsToken()
		if !ok || tok.Kind() != kind {
			continue
		}
		if nth == 0 {
			return tok, true
		}
		nth--
	}
	return syntax.Token{}, false
}

// firstToken returns the first direct token child whatever its kind, for
// terminal nodes wrapping exactly one lexeme.
func firstToken(parent syntax.Node) (syntax.Token, bool) {
	for it := parent.Children(); ; {
		c, ok := it.Next()
		if !ok {
			return syntax.Token{}, false
		}
		if tok, ok := c.AsToken(); ok {
			return tok, true
		}
	}
}
