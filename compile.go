package jsonsel

import (
	"strconv"

	"github.com/ericchiang/jsonsel/internal/domnode"
)

// Compile parses and compiles a selector expression into a reusable
// Plan. The same Plan may be bound to many documents.
func Compile(expr string) (*Plan, error) {
	lexer, err := newLexer(expr)
	if err != nil {
		return nil, err
	}
	go lexer.run()
	group, err := newParser(lexer).parseGroup(false)
	if err != nil {
		return nil, err
	}
	compiled, err := newCompiler().compileGroup(group)
	if err != nil {
		return nil, err
	}
	return &Plan{group: compiled}, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// selectors known at compile time, e.g. package-level variables.
func MustCompile(expr string) *Plan {
	plan, err := Compile(expr)
	if err != nil {
		panic(`jsonsel: Compile(` + strconv.Quote(expr) + `): ` + err.Error())
	}
	return plan
}

// SyntaxError reports a malformed selector expression, naming the byte
// offset into the original expression string where the problem was
// found.
type SyntaxError struct {
	msg    string
	Offset int
}

func (s *SyntaxError) Error() string { return s.msg }

// compiler lowers a parsed AST into the matcher tree the evaluator
// walks. It is a distinct pass from the parser so the AST stays a
// plain, inspectable description of the grammar (useful for the `parse`
// CLI subcommand) while the compiled Plan stays purely about matching.
type compiler struct{}

func newCompiler() *compiler { return &compiler{} }

func (c *compiler) compileGroup(g *groupNode) (*compiledGroup, error) {
	out := &compiledGroup{members: make([]compiledCompound, len(g.members))}
	for i, m := range g.members {
		compiled, err := c.compileCompound(m)
		if err != nil {
			return nil, err
		}
		out.members[i] = compiled
	}
	return out, nil
}

func (c *compiler) compileCompound(n compoundSelectorNode) (compiledCompound, error) {
	first, err := c.compileSimple(n.first)
	if err != nil {
		return compiledCompound{}, err
	}
	links := []chainLink{{sel: first}}
	for _, step := range n.rest {
		sel, err := c.compileSimple(step.sel)
		if err != nil {
			return compiledCompound{}, err
		}
		links = append(links, chainLink{comb: step.comb, sel: sel})
	}
	return compiledCompound{links: links}, nil
}

func (c *compiler) compileSimple(n simpleSelectorNode) (compiledSimple, error) {
	out := compiledSimple{}
	for _, a := range n.atoms {
		m, err := c.compileAtom(a)
		if err != nil {
			return compiledSimple{}, err
		}
		out.atoms = append(out.atoms, m)
	}
	for _, p := range n.pseudos {
		m, err := c.compilePseudo(p)
		if err != nil {
			return compiledSimple{}, err
		}
		out.pseudos = append(out.pseudos, m)
	}
	return out, nil
}

func (c *compiler) compileAtom(n atomNode) (matcher, error) {
	switch n.kind {
	case atomUniversal:
		return universalMatcher{}, nil
	case atomType:
		return typeMatcher{name: n.name}, nil
	case atomKey:
		return keyMatcher{name: n.name}, nil
	}
	return nil, &SyntaxError{msg: "Syntax error. Unexpected end of the query string"}
}

func (c *compiler) compilePseudo(n pseudoNode) (matcher, error) {
	switch n.kind {
	case pseudoRoot:
		return matcherFunc(isRoot), nil
	case pseudoFirstChild:
		return matcherFunc(isFirstChild), nil
	case pseudoLastChild:
		return matcherFunc(isLastChild), nil
	case pseudoOnlyChild:
		return matcherFunc(isOnlyChild), nil
	case pseudoEmpty:
		return matcherFunc(isEmpty), nil
	case pseudoNthChild:
		return nthMatcher{pos: n.b}, nil
	case pseudoNthLastChild:
		return nthMatcher{pos: n.b, fromLast: true}, nil
	case pseudoVal:
		return valMatcher{lit: toDomLiteral(n.lit)}, nil
	case pseudoContains:
		return containsMatcher{sub: n.lit.str}, nil
	case pseudoExpr:
		return exprMatcher{op: n.exprOp, num: n.lit.num}, nil
	case pseudoHas:
		g, err := c.compileGroup(n.group)
		if err != nil {
			return nil, err
		}
		return hasMatcher{group: g}, nil
	}
	return nil, &SyntaxError{msg: "Syntax error. Unexpected end of the query string", Offset: n.pos}
}

func toDomLiteral(l literalNode) domnode.Literal {
	switch l.kind {
	case literalNumber:
		return domnode.Literal{Kind: domnode.LiteralNumber, Num: l.num}
	case literalBool:
		return domnode.Literal{Kind: domnode.LiteralBool, Bool: l.b}
	default:
		return domnode.Literal{Kind: domnode.LiteralString, Str: l.str}
	}
}
