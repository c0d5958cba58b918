package syntax

import (
	"fmt"
	"runtime/debug"
)

type TraversalAction int

const (
	ContinueTraversal TraversalAction = iota
	Prune
	StopTraversal
)

type ChildHandler = func(child Child, parent Node, depth int, after bool) (TraversalAction, error)

// Walk performs a pre-order traversal of all descendants of node (depth
// first). postHandle is called on a child after all its descendants have
// been visited; either handler may be nil.
func Walk(node Node, handle, postHandle ChildHandler) (err error) {
	defer func() {
		v := recover()

		switch val := v.(type) {
		case error:
			err = fmt.Errorf("%s:%w", debug.Stack(), val)
		case nil:
		case TraversalAction:
		default:
			panic(v)
		}
	}()

	walk(node, 0, handle, postHandle)
	return
}

func walk(node Node, depth int, fn, afterFn ChildHandler) {
	for it := node.Children(); ; {
		child, ok := it.Next()
		if !ok {
			break
		}

		if fn != nil {
			action, err := fn(child, node, depth, false)
			if err != nil {
				panic(err)
			}

			switch action {
			case StopTraversal:
				panic(StopTraversal)
			case Prune:
				continue
			}
		}

		if sub, ok := child.AsNode(); ok {
			walk(sub, depth+1, fn, afterFn)
		}

		if afterFn != nil {
			action, err := afterFn(child, node, depth, true)
			if err != nil {
				panic(err)
			}

			if action == StopTraversal {
				panic(StopTraversal)
			}
		}
	}
}
