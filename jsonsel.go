/*
Package jsonsel implements a CSS-inspired selector language over JSON
documents.

A selector is a comma-separated group of compound selectors built from
type atoms (object, array, string, number, boolean, null), the
universal atom *, key atoms (.name or ."quoted name"), pseudo-classes
(:root, :first-child, :last-child, :nth-child(n), :nth-last-child(n),
:only-child, :empty, :val(v), :contains(s), :has(selector),
:expr(x op n)), and the descendant, child (>), and general sibling (~)
combinators.

Selectors compiled by this package search through
github.com/ericchiang/jsonsel/internal/domnode trees, which wrap
github.com/tidwall/gjson results so a document's object members keep
their original source order.

	plan, err := jsonsel.Compile(".items > number")
	if err != nil {
		// handle error
	}
	root := domnode.Parse(`{"items": [1, "two", 3]}`)
	handle, err := plan.Bind(root)
	if err != nil {
		// handle error
	}
	for {
		n, ok, err := handle.Next()
		if err != nil {
			// handle error
		}
		if !ok {
			break
		}
		fmt.Println(n.Raw())
	}
*/
package jsonsel

import "github.com/ericchiang/jsonsel/internal/domnode"

// Plan is a compiled selector, ready to be bound to any number of
// documents. A Plan is safe for concurrent use by multiple goroutines,
// each binding its own Handle.
type Plan struct {
	group *compiledGroup
}

// All compiles no further work than Bind followed by draining every
// match; it is a convenience for callers that don't need the
// streaming contract Bind/Next provides.
func (p *Plan) All(root *domnode.Node) ([]*domnode.Node, error) {
	h, err := p.Bind(root)
	if err != nil {
		return nil, err
	}
	return h.All()
}
