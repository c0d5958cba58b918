package syntax

import "fmt"

// NodeSpan is a half-open byte range into the source of a tree.
type NodeSpan struct {
	Start int32 `json:"start"`
	End   int32 `json:"end"` //exclusive
}

func (s NodeSpan) Len() int32 {
	return s.End - s.Start
}

func (s NodeSpan) HasPositionEndIncluded(i int32) bool {
	return i >= s.Start && i <= s.End
}

type elemID int32

const nilElem elemID = -1

type element struct {
	kind     Kind
	span     NodeSpan
	parent   elemID
	children []elemID //nil for tokens
	token    bool
}

// A Tree is an arena owning every node and token produced by one parse.
// It is immutable once built and safe to share between goroutines. Handles
// (Node, Token, Child) are cheap references into the arena; they stay valid
// as long as the tree is reachable.
type Tree struct {
	source string
	elems  []element
	root   elemID
}

// Source returns the text the tree was built from.
func (t *Tree) Source() string {
	return t.source
}

// Root returns the root node, conventionally of kind SOURCE_FILE.
func (t *Tree) Root() Node {
	return Node{tree: t, id: t.root}
}

// A Node identifies a non-leaf position in a tree. Two Node values referring
// to the same position are equal.
type Node struct {
	tree *Tree
	id   elemID
}

// IsNil returns true for the zero Node, which belongs to no tree.
func (n Node) IsNil() bool {
	return n.tree == nil
}

func (n Node) Kind() Kind {
	return n.tree.elems[n.id].kind
}

func (n Node) Span() NodeSpan {
	return n.tree.elems[n.id].span
}

// Text returns the exact source text covered by the node, trivia included.
func (n Node) Text() string {
	span := n.Span()
	return n.tree.source[span.Start:span.End]
}

func (n Node) Tree() *Tree {
	return n.tree
}

func (n Node) Parent() (Node, bool) {
	parent := n.tree.elems[n.id].parent
	if parent == nilElem {
		return Node{}, false
	}
	return Node{tree: n.tree, id: parent}, true
}

// NumChildren returns the number of direct children, tokens included.
func (n Node) NumChildren() int {
	return len(n.tree.elems[n.id].children)
}

// ChildAt returns the i-th direct child in document order.
func (n Node) ChildAt(i int) Child {
	return Child{tree: n.tree, id: n.tree.elems[n.id].children[i]}
}

// Children returns a cursor over the direct children in document order.
// Each call returns a fresh cursor.
func (n Node) Children() ChildCursor {
	return ChildCursor{tree: n.tree, ids: n.tree.elems[n.id].children}
}

func (n Node) String() string {
	return fmt.Sprintf("%s@%d..%d", n.Kind(), n.Span().Start, n.Span().End)
}

// A Token identifies a leaf: a kind tag plus its literal text.
type Token struct {
	tree *Tree
	id   elemID
}

func (t Token) IsNil() bool {
	return t.tree == nil
}

func (t Token) Kind() Kind {
	return t.tree.elems[t.id].kind
}

func (t Token) Span() NodeSpan {
	return t.tree.elems[t.id].span
}

func (t Token) Text() string {
	span := t.Span()
	return t.tree.source[span.Start:span.End]
}

func (t Token) Parent() (Node, bool) {
	parent := t.tree.elems[t.id].parent
	if parent == nilElem {
		return Node{}, false
	}
	return Node{tree: t.tree, id: parent}, true
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d..%d %q", t.Kind(), t.Span().Start, t.Span().End, t.Text())
}

// A Child is a direct child of a node: either a sub-node or a token.
type Child struct {
	tree *Tree
	id   elemID
}

func (c Child) Kind() Kind {
	return c.tree.elems[c.id].kind
}

func (c Child) Span() NodeSpan {
	return c.tree.elems[c.id].span
}

func (c Child) Text() string {
	span := c.Span()
	return c.tree.source[span.Start:span.End]
}

func (c Child) IsToken() bool {
	return c.tree.elems[c.id].token
}

func (c Child) AsNode() (Node, bool) {
	if c.tree.elems[c.id].token {
		return Node{}, false
	}
	return Node{tree: c.tree, id: c.id}, true
}

func (c Child) AsToken() (Token, bool) {
	if !c.tree.elems[c.id].token {
		return Token{}, false
	}
	return Token{tree: c.tree, id: c.id}, true
}

// A ChildCursor iterates over the direct children of one node, in document
// order. The zero value is an exhausted cursor.
type ChildCursor struct {
	tree *Tree
	ids  []elemID
	i    int
}

func (c *ChildCursor) Next() (Child, bool) {
	if c.i >= len(c.ids) {
		return Child{}, false
	}
	child := Child{tree: c.tree, id: c.ids[c.i]}
	c.i++
	return child, true
}
