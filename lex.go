package crossplane

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Token is one lexical unit of a configuration file. Quoted records whether
// the text came from a quoted string, since argument validation and
// re-serialization both need to tell `on` apart from `"on"`.
type Token struct {
	Text   string
	Line   int
	Quoted bool
}

// Iter reads one rune at a time and returns io.EOF at the end of the
// stream.
type Iter interface {
	Next() (rune, error)
}

// IterLine is an Iter that also reports the line the rune was read on.
type IterLine interface {
	Next() (rune, int, error)
}

type lineCounter struct {
	Iter
	line int
}

func (lc *lineCounter) Next() (rune, int, error) {
	ch, err := lc.Iter.Next()
	if err != nil {
		return 0, lc.line, err
	}
	if ch == '\n' {
		lc.line++
	}
	return ch, lc.line, nil
}

type wrapBufio struct {
	*bufio.Reader
}

func (w *wrapBufio) Next() (r rune, err error) {
	r, _, err = w.ReadRune()
	return
}

func newIter(rd io.Reader) Iter {
	return &wrapBufio{Reader: bufio.NewReader(rd)}
}

type lexer struct {
	filename      string
	token         string
	line          int
	tokens        []Token
	nextDirective bool
	iter          IterLine
	external      map[string]ExtLexer
}

func newLexer(it Iter, filename string, external map[string]ExtLexer) *lexer {
	return &lexer{
		filename:      filename,
		iter:          &lineCounter{Iter: it, line: 1},
		external:      external,
		nextDirective: true,
	}
}

// Lex tokenizes a configuration read from r. filename is only used in error
// messages. The returned tokens are brace-balanced; an unterminated quote or
// an unmatched brace is a KindSyntax ParseError.
func Lex(r io.Reader, filename string) ([]Token, error) {
	lx := newLexer(newIter(r), filename, lexExtensions())
	if err := lx.run(); err != nil {
		return nil, err
	}
	if err := balanceBraces(lx.tokens, filename); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}

func (lx *lexer) run() error {
	it := lx.iter
	for {
		ch, line, err := it.Next()
		if err == io.EOF {
			// flush a trailing bare token so the parser can report the
			// missing terminator
			return lx.flush(false)
		}
		if err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(ch):
			if err := lx.flush(true); err != nil {
				return err
			}
		case lx.token == "" && ch == '#':
			comment := "#"
			for {
				ch, _, err = it.Next()
				if err == io.EOF || ch == '\n' {
					break
				}
				if err != nil {
					return err
				}
				comment += string(ch)
			}
			lx.tokens = append(lx.tokens, Token{Text: comment, Line: line})
		case ch == '\\':
			// escapes outside quotes survive verbatim
			if lx.token == "" {
				lx.line = line
			}
			lx.token += string(ch)
			ch, _, err = it.Next()
			if err == io.EOF {
				return lx.flush(false)
			}
			if err != nil {
				return err
			}
			lx.token += string(ch)
		case ch == '{' && strings.HasSuffix(lx.token, "$"):
			// ${var} never splits, even though { is normally structure
			lx.token += string(ch)
			for {
				ch, _, err = it.Next()
				if err == io.EOF {
					return lx.flush(false)
				}
				if err != nil {
					return err
				}
				if unicode.IsSpace(ch) {
					if err := lx.flush(true); err != nil {
						return err
					}
					break
				}
				lx.token += string(ch)
				if ch == '}' {
					break
				}
			}
		case ch == '"' || ch == '\'':
			if lx.token != "" {
				// a quote inside a token is just another character
				lx.token += string(ch)
				continue
			}
			if err := lx.lexQuoted(ch, line); err != nil {
				return err
			}
		case ch == '{' || ch == '}' || ch == ';':
			lx.flushBare()
			lx.tokens = append(lx.tokens, Token{Text: string(ch), Line: line})
			lx.nextDirective = true
		default:
			if lx.token == "" {
				lx.line = line
			}
			lx.token += string(ch)
		}
	}
}

func (lx *lexer) lexQuoted(quote rune, start int) error {
	it := lx.iter
	for {
		ch, _, err := it.Next()
		if err == io.EOF {
			return newSyntaxErr("unexpected end of file, expecting closing quote", lx.filename, start)
		}
		if err != nil {
			return err
		}
		if ch == quote {
			break
		}
		if ch == '\\' {
			nx, _, err := it.Next()
			if err == io.EOF {
				return newSyntaxErr("unexpected end of file, expecting closing quote", lx.filename, start)
			}
			if err != nil {
				return err
			}
			if nx == quote || nx == '\\' {
				lx.token += string(nx)
			} else {
				lx.token += "\\" + string(nx)
			}
			continue
		}
		lx.token += string(ch)
	}
	lx.tokens = append(lx.tokens, Token{Text: lx.token, Line: start, Quoted: true})
	name := lx.token
	lx.token = ""
	return lx.lexExternal(name)
}

// flush emits the pending bare token, running the extension lexer hook when
// the token sits in directive position.
func (lx *lexer) flush(hook bool) error {
	if lx.token == "" {
		return nil
	}
	lx.tokens = append(lx.tokens, Token{Text: lx.token, Line: lx.line})
	name := lx.token
	lx.token = ""
	if !hook {
		lx.nextDirective = false
		return nil
	}
	return lx.lexExternal(name)
}

func (lx *lexer) flushBare() {
	if lx.token != "" {
		lx.tokens = append(lx.tokens, Token{Text: lx.token, Line: lx.line})
		lx.token = ""
	}
}

func (lx *lexer) lexExternal(name string) error {
	if lx.nextDirective && lx.external != nil {
		if ext, ok := lx.external[name]; ok {
			toks, err := ext.Lex(lx.iter, name)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) && pe.File == "" {
					pe.File = lx.filename
				}
				return err
			}
			lx.tokens = append(lx.tokens, toks...)
			lx.nextDirective = true
			return nil
		}
	}
	lx.nextDirective = false
	return nil
}

func balanceBraces(tokens []Token, filename string) error {
	var depth, line int
	for i := range tokens {
		t := &tokens[i]
		line = t.Line
		if t.Quoted {
			continue
		}
		switch t.Text {
		case "}":
			depth--
		case "{":
			depth++
		}
		if depth < 0 {
			return newSyntaxErr(`unexpected "}"`, filename, t.Line)
		}
	}
	if depth > 0 {
		return newSyntaxErr(`unexpected end of file, expecting "}"`, filename, line)
	}
	return nil
}

func isTerminal(txt string) bool {
	switch txt {
	case "{", "}", ";":
		return true
	default:
		return false
	}
}
