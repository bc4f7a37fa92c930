package crossplane

import (
	"fmt"
	"io"
	"unicode"
)

// LuaBlockExtension handles the OpenResty *_by_lua_block directives, whose
// bodies are Lua chunks rather than nginx statements. The whole chunk is
// lexed into a single argument token so the rest of the pipeline can treat
// the directive as an ordinary statement.
type LuaBlockExtension struct {
	BaseExtension
}

var _ ExtLexer = LuaBlockExtension{}
var _ ExtBuilder = LuaBlockExtension{}

func (LuaBlockExtension) Directives() map[string][]string {
	ctx := []string{"http", "server", "location"}
	return map[string][]string{
		"access_by_lua_block":            ctx,
		"balancer_by_lua_block":          {"upstream"},
		"body_filter_by_lua_block":       ctx,
		"content_by_lua_block":           ctx,
		"header_filter_by_lua_block":     ctx,
		"init_by_lua_block":              {"http"},
		"init_worker_by_lua_block":       {"http"},
		"log_by_lua_block":               ctx,
		"rewrite_by_lua_block":           ctx,
		"set_by_lua_block":               {"server", "location"},
		"ssl_certificate_by_lua_block":   {"server"},
		"ssl_session_fetch_by_lua_block": {"http"},
		"ssl_session_store_by_lua_block": {"http"},
	}
}

func (LuaBlockExtension) Lex(it IterLine, directive string) ([]Token, error) {
	var tokens []Token
	ch, line, err := consumeSpace(it)
	if err != nil {
		return nil, newSyntaxErr("unexpected end of file, expecting lua block", "", line)
	}
	if directive == "set_by_lua_block" {
		// the first argument is the variable being set
		arg := ""
		for err == nil && !unicode.IsSpace(ch) && ch != '{' {
			arg += string(ch)
			ch, line, err = it.Next()
		}
		tokens = append(tokens, Token{Text: arg, Line: line})
		if err == nil && unicode.IsSpace(ch) {
			ch, line, err = consumeSpace(it)
		}
		if err != nil {
			return nil, newSyntaxErr("unexpected end of file, expecting lua block", "", line)
		}
	}
	if ch != '{' {
		return nil, newSyntaxErr(fmt.Sprintf("expected { to start lua block in %q directive", directive), "", line)
	}
	depth := 1
	chunk := ""
	for {
		ch, line, err = it.Next()
		if err == io.EOF {
			return nil, newSyntaxErr("unexpected end of file, expecting closing lua block", "", line)
		}
		if err != nil {
			return nil, err
		}
		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				tokens = append(tokens, Token{Text: chunk, Line: line, Quoted: true})
				tokens = append(tokens, Token{Text: ";", Line: line})
				return tokens, nil
			}
		case '"', '\'':
			// braces inside lua strings do not count
			quote := ch
			chunk += string(ch)
			for {
				ch, line, err = it.Next()
				if err != nil {
					return nil, newSyntaxErr("unexpected end of file, expecting closing lua block", "", line)
				}
				chunk += string(ch)
				if ch == quote {
					break
				}
			}
			continue
		}
		chunk += string(ch)
	}
}

func (LuaBlockExtension) Build(buf string, stmt *Stmt, padding, depth int) string {
	buf += stmt.Directive
	if stmt.Directive == "set_by_lua_block" {
		if len(stmt.Args) > 0 {
			buf += " " + stmt.Args[0]
		}
		if len(stmt.Args) > 1 {
			buf += " {" + stmt.Args[1] + "}"
		}
		return buf
	}
	if len(stmt.Args) > 0 {
		buf += " {" + stmt.Args[0] + "}"
	}
	return buf
}

func consumeSpace(it IterLine) (ch rune, line int, err error) {
	for ch, line, err = it.Next(); err == nil && unicode.IsSpace(ch); ch, line, err = it.Next() {
	}
	return
}
