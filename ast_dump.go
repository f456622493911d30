package jsonsel

import (
	"fmt"
	"strconv"
	"strings"
)

// dump renders the group's AST as an indented tree, for the jsonsel
// CLI's "parse" debug subcommand.
func (g *groupNode) dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Group (%d member(s))\n", len(g.members))
	for i, m := range g.members {
		fmt.Fprintf(&b, "  Compound[%d]\n", i)
		m.writeDump(&b, 2)
	}
	return b.String()
}

func (c *compoundSelectorNode) writeDump(b *strings.Builder, indent int) {
	writeSimple(b, indent, combDescendant, c.first)
	for _, step := range c.rest {
		writeSimple(b, indent, step.comb, step.sel)
	}
}

func writeSimple(b *strings.Builder, indent int, comb combKind, s simpleSelectorNode) {
	pad := strings.Repeat("  ", indent)
	combStr := ""
	switch comb {
	case combChild:
		combStr = "> "
	case combSibling:
		combStr = "~ "
	}
	atomStrs := make([]string, len(s.atoms))
	for i, a := range s.atoms {
		atomStrs[i] = a.dump()
	}
	fmt.Fprintf(b, "%s%s%s\n", pad, combStr, strings.Join(atomStrs, ""))
	for _, p := range s.pseudos {
		fmt.Fprintf(b, "%s  %s\n", pad, p.dump())
	}
}

func (a atomNode) dump() string {
	switch a.kind {
	case atomUniversal:
		return "*"
	case atomType:
		return "type(" + a.name + ")"
	case atomKey:
		return "key(" + a.name + ")"
	}
	return "?"
}

func (p pseudoNode) dump() string {
	switch p.kind {
	case pseudoRoot:
		return ":root"
	case pseudoFirstChild:
		return ":first-child"
	case pseudoLastChild:
		return ":last-child"
	case pseudoOnlyChild:
		return ":only-child"
	case pseudoEmpty:
		return ":empty"
	case pseudoNthChild:
		return fmt.Sprintf(":nth-child(%dn%+d)", p.a, p.b)
	case pseudoNthLastChild:
		return fmt.Sprintf(":nth-last-child(%dn%+d)", p.a, p.b)
	case pseudoVal:
		return ":val(" + p.lit.dump() + ")"
	case pseudoContains:
		return ":contains(" + p.lit.dump() + ")"
	case pseudoExpr:
		return fmt.Sprintf(":expr(x%s%s)", p.exprOp, p.lit.dump())
	case pseudoHas:
		inner := p.group.dump()
		return ":has(\n" + inner + ")"
	}
	return "?"
}

func (l literalNode) dump() string {
	switch l.kind {
	case literalString:
		return strconv.Quote(l.str)
	case literalNumber:
		return strconv.FormatFloat(l.num, 'g', -1, 64)
	case literalBool:
		return strconv.FormatBool(l.b)
	}
	return "?"
}

// ParseDebug parses expr and returns a printable dump of its AST,
// without compiling it. It exists for the jsonsel CLI's "parse"
// subcommand, which inspects the parser's output directly.
func ParseDebug(expr string) (string, error) {
	l, err := newLexer(expr)
	if err != nil {
		return "", err
	}
	go l.run()
	group, err := newParser(l).parseGroup(false)
	if err != nil {
		return "", err
	}
	return group.dump(), nil
}
