package jsonsel

// combKind identifies how two simple selectors in a compound selector
// are related.
type combKind int

const (
	// combDescendant is the implicit whitespace combinator: the right
	// operand may be any descendant of a node matching the left one.
	combDescendant combKind = iota
	// combChild is '>': the right operand must be a direct child.
	combChild
	// combSibling is '~': the right operand must be a later sibling of
	// some node matching the left operand (any earlier sibling, not
	// just the immediately preceding one).
	combSibling
)

// atomKind identifies what a single selector atom tests.
type atomKind int

const (
	atomUniversal atomKind = iota // *
	atomType                      // object | array | string | number | boolean | null
	atomKey                       // .name or ."quoted name"
)

type atomNode struct {
	kind atomKind
	name string // populated for atomType and atomKey
}

// pseudoKind names a pseudo-class.
type pseudoKind int

const (
	pseudoRoot pseudoKind = iota
	pseudoFirstChild
	pseudoLastChild
	pseudoOnlyChild
	pseudoEmpty
	pseudoNthChild
	pseudoNthLastChild
	pseudoVal
	pseudoContains
	pseudoHas
	pseudoExpr
)

// literalKind tags the type of a literal argument to :val/:expr.
type literalKind int

const (
	literalString literalKind = iota
	literalNumber
	literalBool
)

type literalNode struct {
	kind literalKind
	str  string
	num  float64
	b    bool
}

// pseudoNode is a single pseudo-class with its argument, if any.
type pseudoNode struct {
	kind pseudoKind
	pos  int // byte offset, for error reporting of nested parses

	// nth-child / nth-last-child
	a, b int

	// :val / :contains
	lit literalNode

	// :expr -- a comparison against a numeric literal
	exprOp string // one of "<" "<=" ">" ">=" "==" "!="

	// :has
	group *groupNode
}

// simpleSelectorNode is one unit of a compound selector: a conjunction
// of one or more atoms (type/universal/key) plus pseudo-classes, e.g.
// "object.name:first-child" or the stacked-key-atom "string.favoriteColor".
// A node must satisfy every atom simultaneously, so stacking two atoms
// that can never both hold of the same node (e.g. ".a.b", two distinct
// key atoms) compiles fine and simply never matches anything -- it is
// not a parse error.
type simpleSelectorNode struct {
	atoms   []atomNode
	pseudos []pseudoNode
}

// combStep is one combinator-joined simple selector following the
// first in a compound selector.
type combStep struct {
	comb combKind
	sel  simpleSelectorNode
}

// compoundSelectorNode is a full combinator chain, e.g.
// "object > .name ~ string".
type compoundSelectorNode struct {
	first simpleSelectorNode
	rest  []combStep
}

// groupNode is a comma-separated list of compound selectors. Matches
// are unioned across the group without deduplication.
type groupNode struct {
	members []compoundSelectorNode
}
