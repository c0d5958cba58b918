package syntax

import "fmt"

// A Builder assembles a Tree from start-node/finish-node/token events emitted
// by the parser, in document order. Node spans are derived from the spans of
// the tokens they cover; a node that covers no token gets an empty span at
// the current position.
type Builder struct {
	tree  *Tree
	stack []elemID //open nodes
	pos   int32
}

func NewBuilder(source string) *Builder {
	return &Builder{
		tree: &Tree{
			source: source,
			elems:  make([]element, 0, len(source)/4),
			root:   nilElem,
		},
	}
}

func (b *Builder) StartNode(kind Kind) {
	id := b.push(element{
		kind:   kind,
		span:   NodeSpan{Start: b.pos, End: b.pos},
		parent: nilElem,
	})
	if len(b.stack) > 0 {
		b.attach(id)
	}
	b.stack = append(b.stack, id)
}

func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic(fmt.Errorf("syntax: FinishNode without matching StartNode"))
	}
	id := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.tree.elems[id].span.End = b.pos
}

// Token appends a token covering the given span to the innermost open node.
// Spans must be emitted in document order and be contiguous for the final
// tree to round-trip to the source.
func (b *Builder) Token(kind Kind, span NodeSpan) {
	if len(b.stack) == 0 {
		panic(fmt.Errorf("syntax: Token outside of any node"))
	}
	id := b.push(element{
		kind:   kind,
		span:   span,
		parent: nilElem,
		token:  true,
	})
	b.attach(id)
	b.pos = span.End
}

// Finish closes the builder and returns the completed tree. All started
// nodes must have been finished.
func (b *Builder) Finish() *Tree {
	if len(b.stack) != 0 {
		panic(fmt.Errorf("syntax: Finish with %d unfinished node(s)", len(b.stack)))
	}
	if b.tree.root == nilElem {
		panic(fmt.Errorf("syntax: Finish on an empty builder"))
	}
	tree := b.tree
	b.tree = nil
	return tree
}

func (b *Builder) push(elem element) elemID {
	id := elemID(len(b.tree.elems))
	b.tree.elems = append(b.tree.elems, elem)
	if b.tree.root == nilElem {
		b.tree.root = id
	}
	return id
}

func (b *Builder) attach(id elemID) {
	parent := b.stack[len(b.stack)-1]
	b.tree.elems[id].parent = parent
	b.tree.elems[parent].children = append(b.tree.elems[parent].children, id)
}
