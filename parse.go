package jsonsel

import "strconv"

// tokenEmitter is satisfied by *lexer; the parser depends on the
// interface rather than the concrete type so tests can feed it canned
// token sequences.
type tokenEmitter interface {
	token() token
}

var typeNames = map[string]bool{
	"object": true, "array": true, "string": true,
	"number": true, "boolean": true, "null": true,
}

// parser turns a token stream into an AST. It buffers the lookahead
// token in a queue so peek can inspect it without consuming input; the
// peeked token's spaceBefore flag is what tells a descendant combinator
// from padding before a comma or ')'.
type parser struct {
	t   tokenEmitter
	buf *queue
}

func newParser(t tokenEmitter) *parser {
	return &parser{t: t, buf: newQueue(8)}
}

func lexError(tok token) *SyntaxError {
	return &SyntaxError{msg: tok.val, Offset: tok.start}
}

func unexpectedToken(tok token) *SyntaxError {
	if tok.typ == tokEOF {
		return &SyntaxError{msg: "Syntax error. Unexpected end of the query string", Offset: tok.start}
	}
	return &SyntaxError{
		msg:    "Syntax error. Unexpected token '" + tok.val + "' in the query string",
		Offset: tok.start,
	}
}

func unknownPseudo(colon token, name string) *SyntaxError {
	return &SyntaxError{msg: "Unknown pseudo-class ':" + name + "'", Offset: colon.start}
}

func (p *parser) fill(n int) {
	for p.buf.len() <= n {
		p.buf.push(p.t.token())
	}
}

// peek returns the next token without consuming it.
func (p *parser) peek() token {
	p.fill(0)
	return p.buf.get(0)
}

// next consumes and returns the next token.
func (p *parser) next() token {
	p.fill(0)
	return p.buf.pop()
}

// parseGroup parses a comma-separated selector group. stopAtParen, when
// true, stops at an unconsumed ')' instead of requiring EOF; used to
// parse the nested group argument of :has(...).
func (p *parser) parseGroup(stopAtParen bool) (*groupNode, error) {
	first, err := p.parseCompoundSelector()
	if err != nil {
		return nil, err
	}
	g := &groupNode{members: []compoundSelectorNode{first}}
	for {
		t := p.peek()
		switch t.typ {
		case tokComma:
			p.next()
			next, err := p.parseCompoundSelector()
			if err != nil {
				return nil, err
			}
			g.members = append(g.members, next)
		case tokEOF:
			// Trailing whitespace right before the end of the string
			// reads as an incomplete implied descendant combinator, not
			// harmless padding, so it is still a syntax error even
			// though a whitespace-free EOF here is a normal end.
			if stopAtParen || t.spaceBefore {
				return nil, unexpectedToken(t)
			}
			return g, nil
		case tokRightParen:
			if stopAtParen {
				return g, nil
			}
			return nil, unexpectedToken(t)
		case tokErr:
			return nil, lexError(t)
		default:
			return nil, unexpectedToken(t)
		}
	}
}

func (p *parser) parseCompoundSelector() (compoundSelectorNode, error) {
	first, err := p.parseSimpleSelector()
	if err != nil {
		return compoundSelectorNode{}, err
	}
	sel := compoundSelectorNode{first: first}
	for {
		t := p.peek()
		var comb combKind
		switch {
		case t.typ == tokGreater:
			p.next()
			comb = combChild
		case t.typ == tokTilde:
			p.next()
			comb = combSibling
		case t.spaceBefore && isAtomStart(t):
			comb = combDescendant
		default:
			return sel, nil
		}
		next, err := p.parseSimpleSelector()
		if err != nil {
			return compoundSelectorNode{}, err
		}
		sel.rest = append(sel.rest, combStep{comb: comb, sel: next})
	}
}

// isAtomStart reports whether t can begin a simple selector, used to
// decide whether whitespace before it is a descendant combinator or
// just padding before a comma/paren/EOF.
func isAtomStart(t token) bool {
	switch t.typ {
	case tokAstr, tokIdent, tokDot, tokColon:
		return true
	default:
		return false
	}
}

// isBareAtomToken reports whether t itself is a type/universal/key
// atom token, excluding the pseudo-class colon. Used to recognize
// stacked atoms within one simple selector (e.g. "string.favoriteColor",
// ".a.b"), which must be contiguous -- whitespace before an atom-start
// token instead begins a new simple selector joined by the descendant
// combinator.
func isBareAtomToken(t token) bool {
	switch t.typ {
	case tokAstr, tokIdent, tokDot:
		return true
	default:
		return false
	}
}

func (p *parser) parseSimpleSelector() (simpleSelectorNode, error) {
	// A simple selector may omit its atom entirely, in which case it
	// binds to any node -- equivalent to a leading '*'.
	var atoms []atomNode
	if p.peek().typ == tokColon {
		atoms = append(atoms, atomNode{kind: atomUniversal})
	} else {
		atom, err := p.parseAtom()
		if err != nil {
			return simpleSelectorNode{}, err
		}
		atoms = append(atoms, atom)
	}
	// A simple selector is a conjunction of one or more atoms: further
	// atom tokens immediately following (no whitespace) stack onto the
	// same simple selector rather than starting a new one.
	for isBareAtomToken(p.peek()) && !p.peek().spaceBefore {
		atom, err := p.parseAtom()
		if err != nil {
			return simpleSelectorNode{}, err
		}
		atoms = append(atoms, atom)
	}
	sel := simpleSelectorNode{atoms: atoms}
	for p.peek().typ == tokColon {
		ps, err := p.parsePseudo()
		if err != nil {
			return simpleSelectorNode{}, err
		}
		sel.pseudos = append(sel.pseudos, ps)
	}
	return sel, nil
}

func (p *parser) parseAtom() (atomNode, error) {
	t := p.next()
	switch t.typ {
	case tokAstr:
		return atomNode{kind: atomUniversal}, nil
	case tokIdent:
		if !typeNames[t.val] {
			return atomNode{}, unexpectedToken(t)
		}
		return atomNode{kind: atomType, name: t.val}, nil
	case tokDot:
		name, err := p.parseKeyName()
		if err != nil {
			return atomNode{}, err
		}
		return atomNode{kind: atomKey, name: name}, nil
	case tokErr:
		return atomNode{}, lexError(t)
	default:
		return atomNode{}, unexpectedToken(t)
	}
}

func (p *parser) parseKeyName() (string, error) {
	t := p.next()
	switch t.typ {
	case tokIdent:
		return t.val, nil
	case tokString:
		return unquote(t.val), nil
	case tokErr:
		return "", lexError(t)
	default:
		return "", unexpectedToken(t)
	}
}

// unquote strips the surrounding quote characters from a lexed string
// token and resolves backslash escapes. The lexer guarantees the
// surrounding quotes match and any trailing backslash is followed by
// another character, so no further validation is needed here.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	body := s[1 : len(s)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		out = append(out, body[i])
	}
	return string(out)
}

var noArgPseudo = map[string]pseudoKind{
	"root":        pseudoRoot,
	"first-child": pseudoFirstChild,
	"last-child":  pseudoLastChild,
	"only-child":  pseudoOnlyChild,
	"empty":       pseudoEmpty,
}

func (p *parser) parsePseudo() (pseudoNode, error) {
	colon := p.next() // tokColon
	t := p.next()
	switch t.typ {
	case tokIdent:
		if kind, ok := noArgPseudo[t.val]; ok {
			return pseudoNode{kind: kind, pos: colon.start}, nil
		}
		return pseudoNode{}, unknownPseudo(colon, t.val)
	case tokFunc:
		name := t.val[:len(t.val)-1] // strip trailing '('
		ps, err := p.parsePseudoArgs(name, colon.start)
		if err != nil {
			return pseudoNode{}, err
		}
		if end := p.next(); end.typ != tokRightParen {
			return pseudoNode{}, unexpectedToken(end)
		}
		return ps, nil
	case tokErr:
		return pseudoNode{}, lexError(t)
	default:
		return pseudoNode{}, unexpectedToken(t)
	}
}

func (p *parser) parsePseudoArgs(name string, pos int) (pseudoNode, error) {
	switch name {
	case "nth-child", "nth-last-child":
		a, b, err := p.parseNth()
		if err != nil {
			return pseudoNode{}, err
		}
		kind := pseudoNthChild
		if name == "nth-last-child" {
			kind = pseudoNthLastChild
		}
		return pseudoNode{kind: kind, pos: pos, a: a, b: b}, nil
	case "val":
		lit, err := p.parseLiteral()
		if err != nil {
			return pseudoNode{}, err
		}
		return pseudoNode{kind: pseudoVal, pos: pos, lit: lit}, nil
	case "contains":
		t := p.next()
		if t.typ != tokString {
			return pseudoNode{}, unexpectedToken(t)
		}
		return pseudoNode{kind: pseudoContains, pos: pos, lit: literalNode{kind: literalString, str: unquote(t.val)}}, nil
	case "has":
		g, err := p.parseGroup(true)
		if err != nil {
			return pseudoNode{}, err
		}
		return pseudoNode{kind: pseudoHas, pos: pos, group: g}, nil
	case "expr":
		xTok := p.next()
		if xTok.typ != tokIdent || xTok.val != "x" {
			return pseudoNode{}, unexpectedToken(xTok)
		}
		op, err := p.parseCompareOp()
		if err != nil {
			return pseudoNode{}, err
		}
		t := p.next()
		if t.typ != tokNum {
			return pseudoNode{}, unexpectedToken(t)
		}
		num, numErr := parseFloat(t.val)
		if numErr != nil {
			return pseudoNode{}, &SyntaxError{msg: numErr.Error(), Offset: t.start}
		}
		return pseudoNode{kind: pseudoExpr, pos: pos, exprOp: op, lit: literalNode{kind: literalNumber, num: num}}, nil
	default:
		return pseudoNode{}, &SyntaxError{msg: "Unknown pseudo-class ':" + name + "'", Offset: pos}
	}
}

func (p *parser) parseCompareOp() (string, error) {
	t := p.next()
	switch t.typ {
	case tokLess:
		if p.peek().typ == tokEquals {
			p.next()
			return "<=", nil
		}
		return "<", nil
	case tokGreater:
		if p.peek().typ == tokEquals {
			p.next()
			return ">=", nil
		}
		return ">", nil
	case tokEquals:
		if p.peek().typ == tokEquals {
			p.next()
		}
		return "==", nil
	case tokBang:
		if p.peek().typ == tokEquals {
			p.next()
			return "!=", nil
		}
		return "", unexpectedToken(t)
	default:
		return "", unexpectedToken(t)
	}
}

func (p *parser) parseLiteral() (literalNode, error) {
	t := p.next()
	switch t.typ {
	case tokString:
		return literalNode{kind: literalString, str: unquote(t.val)}, nil
	case tokNum:
		f, err := parseFloat(t.val)
		if err != nil {
			return literalNode{}, &SyntaxError{msg: err.Error(), Offset: t.start}
		}
		return literalNode{kind: literalNumber, num: f}, nil
	case tokIdent:
		switch t.val {
		case "true":
			return literalNode{kind: literalBool, b: true}, nil
		case "false":
			return literalNode{kind: literalBool, b: false}, nil
		}
		return literalNode{}, unexpectedToken(t)
	case tokErr:
		return literalNode{}, lexError(t)
	default:
		return literalNode{}, unexpectedToken(t)
	}
}

// parseNth parses the an+b argument to :nth-child()/:nth-last-child(),
// restricted to the permissive subset this grammar supports: a bare
// positive integer (1-based position).
func (p *parser) parseNth() (a, b int, err error) {
	t := p.next()
	if t.typ != tokNum {
		return 0, 0, unexpectedToken(t)
	}
	n, convErr := parseInt(t.val)
	if convErr != nil {
		return 0, 0, &SyntaxError{msg: convErr.Error(), Offset: t.start}
	}
	if n < 1 {
		return 0, 0, unexpectedToken(t)
	}
	return 0, n, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
