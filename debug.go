package jsonsel

// DebugToken is a lexeme of a selector expression, exported for the
// jsonsel CLI's "lex" debug subcommand.
type DebugToken struct {
	Type        string
	Value       string
	Start       int
	SpaceBefore bool
}

func (t DebugToken) String() string {
	return token{typ: typeForName(t.Type), val: t.Value, start: t.Start, spaceBefore: t.SpaceBefore}.String()
}

// IsTerminal reports whether t ends a token stream: either EOF or a
// lexical error.
func (t DebugToken) IsTerminal() bool {
	return t.Type == tokEOF.String() || t.Type == tokErr.String()
}

var nameToType = func() map[string]tokenType {
	m := make(map[string]tokenType, len(tokenStr))
	for typ, name := range tokenStr {
		m[name] = typ
	}
	return m
}()

func typeForName(name string) tokenType {
	return nameToType[name]
}

// Lex tokenises expr and returns every token produced, including the
// terminal EOF or ERROR token. It does not run the parser, so it
// accepts any input the lexer alone can tokenise.
func Lex(expr string) ([]DebugToken, error) {
	l, err := newLexer(expr)
	if err != nil {
		return nil, err
	}
	go l.run()

	var toks []DebugToken
	for {
		t := l.token()
		toks = append(toks, DebugToken{
			Type:        t.typ.String(),
			Value:       t.val,
			Start:       t.start,
			SpaceBefore: t.spaceBefore,
		})
		if t.typ == tokEOF || t.typ == tokErr {
			break
		}
	}
	return toks, nil
}
