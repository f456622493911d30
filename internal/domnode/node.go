/*
Package domnode implements a minimal, read-only view over a parsed JSON
document, suitable for walking with a selector engine.

A Node wraps a github.com/tidwall/gjson.Result. gjson scans the raw
JSON bytes directly rather than building a Go map, so object members
keep their original source order — exactly the guarantee a selector
engine needs and exactly what encoding/json's map[string]any discards.

Parent and sibling-position links are not stored in the JSON itself;
they are attached lazily, the first time a node's children are asked
for, mirroring the way the engine descends into the document.
*/
package domnode

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies the JSON type tag of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// String renders the kind the way selector type atoms spell it.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a borrowed, read-only view into a JSON document. Its lifetime
// is bound to the gjson.Result it was built from; callers must not
// retain a Node past the lifetime of the source document text.
type Node struct {
	result gjson.Result
	kind   Kind

	parent *Node
	pos    int    // index among the parent's entries, -1 for the root
	key    string // enclosing object key, only meaningful if parent is an object
	hasKey bool

	childrenBuilt bool
	children      []*Node
}

// New wraps the root value of a parsed document.
func New(root gjson.Result) *Node {
	return newNode(root, nil, -1, "", false)
}

// Parse parses raw JSON text and returns its root node.
func Parse(json string) *Node {
	return New(gjson.Parse(json))
}

func newNode(result gjson.Result, parent *Node, pos int, key string, hasKey bool) *Node {
	n := &Node{result: result, parent: parent, pos: pos, key: key, hasKey: hasKey}
	switch result.Type {
	case gjson.Null:
		n.kind = KindNull
	case gjson.False, gjson.True:
		n.kind = KindBoolean
	case gjson.Number:
		n.kind = KindNumber
	case gjson.String:
		n.kind = KindString
	case gjson.JSON:
		if result.IsArray() {
			n.kind = KindArray
		} else {
			n.kind = KindObject
		}
	}
	return n
}

// Kind reports the node's JSON type tag.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the enclosing node, or nil at the document root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether n is parent-less.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Position returns n's 0-based index among its parent's entries.
// It is -1 for the root.
func (n *Node) Position() int { return n.pos }

// Key returns the object key n is stored under in its parent, if any.
func (n *Node) Key() (string, bool) { return n.key, n.hasKey }

// Len reports the number of entries for an object or array, 0 otherwise.
func (n *Node) Len() int {
	if n.kind != KindObject && n.kind != KindArray {
		return 0
	}
	return len(n.Children())
}

// Children returns, in document order, the object's values or the
// array's elements. Scalars return nil. The slice is built once and
// cached; callers must not mutate it.
func (n *Node) Children() []*Node {
	if n.childrenBuilt {
		return n.children
	}
	n.childrenBuilt = true
	switch n.kind {
	case KindObject:
		i := 0
		n.result.ForEach(func(key, value gjson.Result) bool {
			n.children = append(n.children, newNode(value, n, i, key.Str, true))
			i++
			return true
		})
	case KindArray:
		for i, v := range n.result.Array() {
			n.children = append(n.children, newNode(v, n, i, "", false))
		}
	}
	return n.children
}

// String returns the scalar string value, if n is a JSON string.
func (n *Node) String() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.result.Str, true
}

// Float returns the scalar numeric value, if n is a JSON number.
func (n *Node) Float() (float64, bool) {
	if n.kind != KindNumber {
		return 0, false
	}
	return n.result.Num, true
}

// Bool returns the scalar boolean value, if n is a JSON boolean.
func (n *Node) Bool() (bool, bool) {
	if n.kind != KindBoolean {
		return false, false
	}
	return n.result.Type == gjson.True, true
}

// Raw returns the node's raw JSON text, as found in the source document.
func (n *Node) Raw() string { return n.result.Raw }

// LiteralKind tags the kind of value a :val/:expr argument carries.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
)

// Literal is a parsed pseudo-class argument compared against a node's
// scalar value.
type Literal struct {
	Kind LiteralKind
	Str  string
	Num  float64
	Bool bool
}

// Equal reports whether n is a scalar equal to lit, comparing by the
// literal's own type: strings compare byte-for-byte, numbers compare
// by standard JSON numeric equality, booleans compare directly.
// A type mismatch between n and lit is not an error: it simply fails
// to match.
func (n *Node) Equal(lit Literal) bool {
	switch lit.Kind {
	case LiteralString:
		s, ok := n.String()
		return ok && s == lit.Str
	case LiteralNumber:
		f, ok := n.Float()
		return ok && f == lit.Num
	case LiteralBool:
		b, ok := n.Bool()
		return ok && b == lit.Bool
	}
	return false
}

// Contains reports whether n is a string containing sub as a substring.
func (n *Node) Contains(sub string) bool {
	s, ok := n.String()
	if !ok {
		return false
	}
	return containsSubstring(s, sub)
}

func containsSubstring(s, sub string) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

// CompareNumber reports the result of comparing n's numeric value
// against want using op (one of "<", "<=", ">", ">=", "==", "!=").
// A non-number node never satisfies any comparison.
func (n *Node) CompareNumber(op string, want float64) bool {
	got, ok := n.Float()
	if !ok {
		return false
	}
	switch op {
	case "<":
		return got < want
	case "<=":
		return got <= want
	case ">":
		return got > want
	case ">=":
		return got >= want
	case "==":
		return got == want
	case "!=":
		return got != want
	}
	return false
}

// GoString renders a debug form of the node's value (what %#v prints):
// strings quoted, every other kind as its raw JSON text. It is not part
// of the selector contract.
func (n *Node) GoString() string {
	switch n.kind {
	case KindString:
		s, _ := n.String()
		return strconv.Quote(s)
	default:
		return n.Raw()
	}
}
