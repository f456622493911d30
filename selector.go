package jsonsel

import (
	"github.com/ericchiang/jsonsel/internal/domnode"
)

// matcher tests a single node against one compiled condition: an atom
// test or a pseudo-class.
type matcher interface {
	matches(n *domnode.Node) bool
}

type universalMatcher struct{}

func (universalMatcher) matches(n *domnode.Node) bool { return true }

type typeMatcher struct{ name string }

func (m typeMatcher) matches(n *domnode.Node) bool { return n.Kind().String() == m.name }

type keyMatcher struct{ name string }

func (m keyMatcher) matches(n *domnode.Node) bool {
	key, ok := n.Key()
	return ok && key == m.name
}

// matcherFunc adapts a plain function to the matcher interface, for
// the pseudo-classes that need no stored argument.
type matcherFunc func(n *domnode.Node) bool

func (f matcherFunc) matches(n *domnode.Node) bool { return f(n) }

func isRoot(n *domnode.Node) bool { return n.IsRoot() }

func isFirstChild(n *domnode.Node) bool {
	return !n.IsRoot() && n.Position() == 0
}

func isLastChild(n *domnode.Node) bool {
	if n.IsRoot() {
		return false
	}
	return n.Position() == n.Parent().Len()-1
}

func isOnlyChild(n *domnode.Node) bool {
	return isFirstChild(n) && isLastChild(n)
}

func isEmpty(n *domnode.Node) bool {
	switch n.Kind() {
	case domnode.KindObject, domnode.KindArray:
		return n.Len() == 0
	default:
		return false
	}
}

// nthMatcher implements :nth-child(n) and :nth-last-child(n), both
// restricted to a plain 1-based position (no an+b expressions).
type nthMatcher struct {
	pos      int
	fromLast bool
}

func (m nthMatcher) matches(n *domnode.Node) bool {
	if n.IsRoot() {
		return false
	}
	count := n.Parent().Len()
	idx := n.Position() + 1
	if m.fromLast {
		idx = count - n.Position()
	}
	return idx == m.pos
}

// valMatcher implements :val(literal): the node must be a scalar
// exactly equal to the literal, by the literal's own type. A type
// mismatch is simply a non-match, never an error.
type valMatcher struct{ lit domnode.Literal }

func (m valMatcher) matches(n *domnode.Node) bool { return n.Equal(m.lit) }

// containsMatcher implements :contains("substring").
type containsMatcher struct{ sub string }

func (m containsMatcher) matches(n *domnode.Node) bool { return n.Contains(m.sub) }

// exprMatcher implements :expr(x op number), a numeric comparison.
type exprMatcher struct {
	op  string
	num float64
}

func (m exprMatcher) matches(n *domnode.Node) bool { return n.CompareNumber(m.op, m.num) }

// hasMatcher implements :has(group): n matches if some descendant of
// n (not including n itself) matches any member of the compiled
// group.
type hasMatcher struct{ group *compiledGroup }

func (m hasMatcher) matches(n *domnode.Node) bool {
	for _, c := range n.Children() {
		if m.group.matchesSubtree(c) {
			return true
		}
	}
	return false
}

func (g *compiledGroup) matchesSubtree(n *domnode.Node) bool {
	for i := range g.members {
		if g.members[i].matches(n) {
			return true
		}
	}
	for _, c := range n.Children() {
		if g.matchesSubtree(c) {
			return true
		}
	}
	return false
}

// compiledSimple is a conjunction of one or more atoms plus pseudo-class
// tests, ordered cheapest-first: the atom tests (single field
// comparisons) always run before the pseudo-class tests, which may
// recurse into siblings, ancestors, or subtrees. Stacking atoms that
// can never simultaneously hold of one node (e.g. two distinct key
// atoms) isn't rejected anywhere -- it just never matches, since every
// atom in the slice must match.
type compiledSimple struct {
	atoms   []matcher
	pseudos []matcher
}

func (s *compiledSimple) matches(n *domnode.Node) bool {
	for _, a := range s.atoms {
		if !a.matches(n) {
			return false
		}
	}
	for _, p := range s.pseudos {
		if !p.matches(n) {
			return false
		}
	}
	return true
}

// chainLink is one simple selector in a compound's combinator chain.
// comb names the combinator joining it to the previous link; it is
// unused on the first link.
type chainLink struct {
	comb combKind
	sel  compiledSimple
}

// compiledCompound is a full combinator chain, e.g. "object > .name".
// Matching tests the rightmost link against the candidate node, then
// walks left, requiring an ancestor or earlier sibling (per
// combinator) that satisfies each preceding link in turn -- the
// subject of the compound is always its last simple selector.
type compiledCompound struct {
	links []chainLink
}

func (c *compiledCompound) matches(n *domnode.Node) bool {
	return c.matchesAt(n, len(c.links)-1)
}

func (c *compiledCompound) matchesAt(n *domnode.Node, idx int) bool {
	if n == nil || !c.links[idx].sel.matches(n) {
		return false
	}
	if idx == 0 {
		return true
	}
	switch c.links[idx].comb {
	case combChild:
		return c.matchesAt(n.Parent(), idx-1)
	case combDescendant:
		for p := n.Parent(); p != nil; p = p.Parent() {
			if c.matchesAt(p, idx-1) {
				return true
			}
		}
		return false
	case combSibling:
		parent := n.Parent()
		if parent == nil {
			return false
		}
		for _, sib := range parent.Children() {
			if sib == n {
				break
			}
			if c.matchesAt(sib, idx-1) {
				return true
			}
		}
		return false
	}
	return false
}

// compiledGroup is a comma-separated list of compiled compound
// selectors. A node matches the group once per member it satisfies,
// in the group's source order -- no deduplication.
type compiledGroup struct {
	members []compiledCompound
}

func (g *compiledGroup) matches(n *domnode.Node) bool {
	for i := range g.members {
		if g.members[i].matches(n) {
			return true
		}
	}
	return false
}

// matchingMembers returns the indices of the group's members that n
// satisfies, in source order. Used by the evaluator to emit one match
// per satisfied compound, per spec.
func (g *compiledGroup) matchingMembers(n *domnode.Node) []int {
	var idxs []int
	for i := range g.members {
		if g.members[i].matches(n) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
