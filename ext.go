package crossplane

// Extension lets external code take over handling of specific directives.
// An extension claims directive names (each with the contexts it may appear
// in) and may additionally implement ExtLexer, ExtParser or ExtBuilder to
// override the corresponding stage for those directives. A directive claimed
// by a registered extension is accepted by Analyze without knowledge-base
// checks; the directive tables themselves are never mutated.
type Extension interface {
	// Directives maps each claimed directive name to the list of contexts
	// in which the extension considers it legal.
	Directives() map[string][]string
}

// ExtLexer tokenizes the remainder of a claimed directive's statement. It is
// handed the rune stream positioned just after the directive name.
type ExtLexer interface {
	Lex(it IterLine, directive string) ([]Token, error)
}

// ExtParser parses a statement for a claimed directive. stmt holds the
// directive name and line, cfg accumulates the surrounding file's results,
// it is the remaining token stream, ctx is the enclosing context, and
// consume mirrors the parser's block-skipping mode.
type ExtParser interface {
	Parse(stmt *Stmt, cfg *Config, it *TokenIter, ctx []string, consume bool) ([]*Stmt, error)
}

// ExtBuilder renders a statement for a claimed directive back into text,
// appending to buf.
type ExtBuilder interface {
	Build(buf string, stmt *Stmt, padding, depth int) string
}

// BaseExtension claims no directives and overrides nothing. Embed it to
// build an extension that only overrides some of the stages.
type BaseExtension struct{}

func (BaseExtension) Directives() map[string][]string { return nil }

var extensions = []Extension{LuaBlockExtension{}}

// RegisterExtension adds e to the process-wide registry consulted by the
// lexer, parser, builder and analyzer. Register before any parsing starts;
// the registry is not synchronized.
func RegisterExtension(e Extension) {
	extensions = append(extensions, e)
}

func claimedByExtension(directive string) bool {
	for _, e := range extensions {
		if _, ok := e.Directives()[directive]; ok {
			return true
		}
	}
	return false
}

func lexExtensions() map[string]ExtLexer {
	m := make(map[string]ExtLexer)
	for _, e := range extensions {
		lx, ok := e.(ExtLexer)
		if !ok {
			continue
		}
		for name := range e.Directives() {
			m[name] = lx
		}
	}
	return m
}

func parseExtensions() map[string]ExtParser {
	m := make(map[string]ExtParser)
	for _, e := range extensions {
		p, ok := e.(ExtParser)
		if !ok {
			continue
		}
		for name := range e.Directives() {
			m[name] = p
		}
	}
	return m
}

func buildExtensions() map[string]ExtBuilder {
	m := make(map[string]ExtBuilder)
	for _, e := range extensions {
		b, ok := e.(ExtBuilder)
		if !ok {
			continue
		}
		for name := range e.Directives() {
			m[name] = b
		}
	}
	return m
}
