package syntax

import (
	"fmt"
	"strings"
)

// Dump renders the subtree rooted at node as an indented listing, one
// element per line, tokens with their literal text. Intended for debugging
// and tests.
func Dump(node Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s@%d..%d\n", indent, node.Kind(), node.Span().Start, node.Span().End)

	for it := node.Children(); ; {
		child, ok := it.Next()
		if !ok {
			return
		}
		if sub, ok := child.AsNode(); ok {
			dumpNode(b, sub, depth+1)
			continue
		}
		tok, _ := child.AsToken()
		fmt.Fprintf(b, "%s  %s@%d..%d %q\n", indent, tok.Kind(), tok.Span().Start, tok.Span().End, tok.Text())
	}
}
