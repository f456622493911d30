package jsonsel

import (
	"errors"

	"github.com/ericchiang/jsonsel/internal/domnode"
)

// handleState names where a Handle sits in its Unbound -> Bound ->
// Exhausted lifecycle.
type handleState int

const (
	stateUnbound handleState = iota
	stateBound
	stateExhausted
)

// ErrNotBound is returned by Handle methods that require a bound
// document.
var ErrNotBound = errors.New("jsonsel: handle is not bound to a document")

// ErrNilRoot is returned by Plan.Bind when given a nil root. Binding a
// JSON null value is not an error -- only a nil *domnode.Node is.
var ErrNilRoot = errors.New("jsonsel: cannot bind a nil document root")

// Handle is a stateful, resumable match iterator over one bound
// document. It is not safe for concurrent use; bind one Handle per
// goroutine that needs to walk a document concurrently with others.
type Handle struct {
	plan  *Plan
	root  *domnode.Node
	state handleState

	w *walker

	pendingNode *domnode.Node
	pendingLeft int
}

// Bind attaches plan to root and returns a Handle positioned before
// the first match. root must be non-nil.
func (p *Plan) Bind(root *domnode.Node) (*Handle, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	h := &Handle{plan: p}
	h.rewind(root)
	return h, nil
}

func (h *Handle) rewind(root *domnode.Node) {
	h.root = root
	h.w = newWalker(root)
	h.pendingNode = nil
	h.pendingLeft = 0
	h.state = stateBound
}

// Next advances the iterator and returns the next matching node in
// document order. ok is false once every node has been visited; the
// Handle is then Exhausted and further calls to Next continue to
// return ok=false rather than erroring.
func (h *Handle) Next() (*domnode.Node, bool, error) {
	if h.state == stateUnbound {
		return nil, false, ErrNotBound
	}
	for {
		if h.pendingLeft > 0 {
			h.pendingLeft--
			return h.pendingNode, true, nil
		}
		if h.state == stateExhausted {
			return nil, false, nil
		}
		n, ok := h.w.next()
		if !ok {
			h.state = stateExhausted
			return nil, false, nil
		}
		matches := h.plan.group.matchingMembers(n)
		if len(matches) == 0 {
			continue
		}
		h.pendingNode = n
		h.pendingLeft = len(matches)
	}
}

// Reset rewinds the Handle to the start of its bound document without
// re-binding; the same document instance is reused.
func (h *Handle) Reset() error {
	if h.state == stateUnbound {
		return ErrNotBound
	}
	h.rewind(h.root)
	return nil
}

// Release detaches the Handle from its document, returning it to the
// Unbound state and dropping its references so the document can be
// garbage collected independently of the Handle.
func (h *Handle) Release() {
	h.root = nil
	h.w = nil
	h.pendingNode = nil
	h.pendingLeft = 0
	h.state = stateUnbound
}

// All drains every remaining match into a slice. It is a convenience
// for callers that don't need the streaming contract.
func (h *Handle) All() ([]*domnode.Node, error) {
	var out []*domnode.Node
	for {
		n, ok, err := h.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, n)
	}
}
