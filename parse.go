package crossplane

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
)

// Stmt is one configuration statement. Blocks is non-nil exactly when the
// statement is a block directive (it may be empty). Comment holds the text
// of "#" statements without the leading hash. File is only populated in
// combine mode, Includes only on expanded include statements.
type Stmt struct {
	File      string   `json:"file,omitempty"`
	Directive string   `json:"directive"`
	Line      int      `json:"line"`
	Args      []string `json:"args"`
	Includes  []int    `json:"includes,omitempty"`
	Blocks    []*Stmt  `json:"block,omitempty"`
	Comment   string   `json:"comment,omitempty"`
}

// MarshalJSON keeps args present even when empty, block present (as []) for
// empty block directives, and comment present for "#" statements with empty
// text. The field names are the exchange format and are load-bearing.
func (s *Stmt) MarshalJSON() ([]byte, error) {
	obj := struct {
		File      string   `json:"file,omitempty"`
		Directive string   `json:"directive"`
		Line      int      `json:"line"`
		Args      []string `json:"args"`
		Includes  []int    `json:"includes,omitempty"`
		Blocks    *[]*Stmt `json:"block,omitempty"`
		Comment   *string  `json:"comment,omitempty"`
	}{
		File:      s.File,
		Directive: s.Directive,
		Line:      s.Line,
		Args:      s.Args,
		Includes:  s.Includes,
	}
	if obj.Args == nil {
		obj.Args = []string{}
	}
	if s.Blocks != nil {
		obj.Blocks = &s.Blocks
	}
	if s.Directive == "#" {
		comment := s.Comment
		obj.Comment = &comment
	}
	return json.Marshal(obj)
}

// Config is the parse result for one file.
type Config struct {
	File   string        `json:"file"`
	Status string        `json:"status"`
	Errors []*ParseError `json:"errors"`
	Parsed []*Stmt       `json:"parsed"`
}

// Payload aggregates every file touched by one Parse call, in the order
// they were reached.
type Payload struct {
	Status string        `json:"status"`
	Errors []*ParseError `json:"errors"`
	Config []*Config     `json:"config"`
}

// TokenIter walks a token slice; Next returns nil at the end.
type TokenIter struct {
	tokens []Token
	idx    int
}

// NewTokenIter returns an iterator over tokens.
func NewTokenIter(tokens []Token) *TokenIter {
	return &TokenIter{tokens: tokens}
}

func (t *TokenIter) Next() *Token {
	if t.idx < len(t.tokens) {
		t.idx++
		return &t.tokens[t.idx-1]
	}
	return nil
}

// ParseOptions control parsing. The zero value disables every check; use
// DefaultParseOptions as a starting point.
type ParseOptions struct {
	// CatchErrors records semantic errors per file and keeps parsing
	// instead of aborting on the first one.
	CatchErrors bool
	// Ignore lists directive names to drop from the output, including
	// their blocks.
	Ignore []string
	// SingleFile disables include expansion.
	SingleFile bool
	// Strict makes unknown directive names an error.
	Strict bool
	// Comments keeps "#" statements in the output.
	Comments bool
	// Combine inlines every included file into one combined config.
	Combine bool
	// CheckCtx and CheckArgs toggle the analyzer's context-membership and
	// argument-count checks.
	CheckCtx  bool
	CheckArgs bool
	// FS is the file system configuration is read through; nil means the
	// host file system.
	FS FileSystem
}

// DefaultParseOptions mirrors the CLI defaults: catch errors, run every
// check, skip comments.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{
		CatchErrors: true,
		CheckCtx:    true,
		CheckArgs:   true,
	}
}

type fileCtx struct {
	name string
	ctx  []string
}

type parser struct {
	opts      *ParseOptions
	fs        FileSystem
	payload   *Payload
	configDir string
	includes  []fileCtx
	included  map[string]int
	ignore    map[string]bool
	external  map[string]ExtParser
}

// Parse reads filename (and, unless SingleFile is set, everything it
// includes) and returns the aggregate payload. With CatchErrors enabled the
// returned error is always nil and failures are reported inside the
// payload; without it, the first fatal error is returned alongside the
// partial payload.
func Parse(filename string, opts *ParseOptions) (*Payload, error) {
	if opts == nil {
		opts = DefaultParseOptions()
	}
	p := &parser{
		opts:      opts,
		fs:        opts.FS,
		configDir: filepath.Dir(filename),
		includes:  []fileCtx{{name: filename}},
		included:  map[string]int{filename: 0},
		ignore:    make(map[string]bool, len(opts.Ignore)),
		external:  parseExtensions(),
	}
	if p.fs == nil {
		p.fs = OSFileSystem
	}
	for _, name := range opts.Ignore {
		p.ignore[name] = true
	}
	p.payload = &Payload{Status: "ok", Errors: []*ParseError{}}

	// the include queue grows while files are parsed; payload order is the
	// order files were reached, not completion order
	for i := 0; i < len(p.includes); i++ {
		f := p.includes[i]
		cfg := &Config{File: f.name, Status: "ok", Errors: []*ParseError{}, Parsed: []*Stmt{}}
		p.payload.Config = append(p.payload.Config, cfg)
		if err := p.parseFile(cfg, f); err != nil {
			p.handleErr(cfg, err)
			if !opts.CatchErrors {
				return p.payload, err
			}
		}
	}
	if opts.Combine {
		return combineParsedConfig(p.payload), nil
	}
	return p.payload, nil
}

func (p *parser) parseFile(cfg *Config, f fileCtx) error {
	file, err := p.fs.Open(f.name)
	if err != nil {
		return err
	}
	defer file.Close()
	tokens, err := Lex(file, f.name)
	if err != nil {
		return err
	}
	parsed, err := p.parseStatements(cfg, NewTokenIter(tokens), f.ctx)
	if err != nil {
		// discard the partial tree, keep only the error
		cfg.Parsed = []*Stmt{}
		return err
	}
	cfg.Parsed = parsed
	return nil
}

// frame is one level of the parser's explicit block stack. owner is the
// statement whose block is being filled; nil at file level.
type frame struct {
	ctx   []string
	owner *Stmt
	list  []*Stmt
}

func (p *parser) parseStatements(cfg *Config, it *TokenIter, ctx []string) ([]*Stmt, error) {
	stack := []*frame{{ctx: ctx, list: []*Stmt{}}}
	for tok := it.Next(); tok != nil; tok = it.Next() {
		top := stack[len(stack)-1]
		if tok.Text == "}" && !tok.Quoted {
			if len(stack) == 1 {
				return nil, newSyntaxErr(`unexpected "}"`, cfg.File, tok.Line)
			}
			top.owner.Blocks = top.list
			stack = stack[:len(stack)-1]
			continue
		}

		stmt := &Stmt{Directive: tok.Text, Line: tok.Line}
		if p.opts.Combine {
			stmt.File = cfg.File
		}
		if strings.HasPrefix(tok.Text, "#") && !tok.Quoted {
			if p.opts.Comments {
				stmt.Directive = "#"
				stmt.Comment = tok.Text[1:]
				top.list = append(top.list, stmt)
			}
			continue
		}

		var commentsInArgs []string
		tok = it.Next()
		for tok != nil && (!isTerminal(tok.Text) || tok.Quoted) {
			if strings.HasPrefix(tok.Text, "#") && !tok.Quoted {
				commentsInArgs = append(commentsInArgs, tok.Text[1:])
			} else {
				stmt.Args = append(stmt.Args, tok.Text)
			}
			tok = it.Next()
		}
		if tok == nil {
			return nil, newSyntaxErr(`unexpected end of file, expecting ";" or "}"`, cfg.File, stmt.Line)
		}

		if p.ignore[stmt.Directive] {
			if tok.Text == "{" && !tok.Quoted {
				skipBlock(it)
			}
			continue
		}

		if stmt.Directive == "if" {
			prepareIfArgs(stmt)
		}

		if ext, ok := p.external[stmt.Directive]; ok {
			sub, err := ext.Parse(stmt, cfg, it, top.ctx, false)
			if err != nil {
				if !p.opts.CatchErrors {
					return nil, err
				}
				p.handleErr(cfg, err)
			}
			if sub != nil {
				top.list = append(top.list, sub...)
				continue
			}
		}

		if err := Analyze(cfg.File, stmt, tok.Text, top.ctx, p.opts.Strict, p.opts.CheckCtx, p.opts.CheckArgs); err != nil {
			if !p.opts.CatchErrors {
				return nil, err
			}
			p.handleErr(cfg, err)
		}

		if !p.opts.SingleFile && stmt.Directive == "include" && len(stmt.Args) > 0 {
			if err := p.expandInclude(cfg, stmt, top.ctx); err != nil {
				if !p.opts.CatchErrors {
					return nil, err
				}
				p.handleErr(cfg, err)
			}
		}

		top.list = append(top.list, stmt)
		if tok.Text == "{" && !tok.Quoted {
			stack = append(stack, &frame{
				ctx:   enterBlockCtx(stmt, top.ctx),
				owner: stmt,
				list:  []*Stmt{},
			})
		}
		if p.opts.Comments {
			for _, comment := range commentsInArgs {
				top.list = append(top.list, &Stmt{
					Directive: "#",
					Line:      stmt.Line,
					Comment:   comment,
				})
			}
		}
	}
	if len(stack) != 1 {
		fr := stack[len(stack)-1]
		return nil, newSyntaxErr(`unexpected end of file, expecting "}"`, cfg.File, fr.owner.Line)
	}
	return stack[0].list, nil
}

// expandInclude resolves an include statement's pattern and queues every
// matched file for parsing under the including context.
func (p *parser) expandInclude(cfg *Config, stmt *Stmt, ctx []string) error {
	pattern := stmt.Args[0]
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(p.configDir, pattern)
	}
	var filenames []string
	if strings.ContainsAny(pattern, "*?[") {
		names, err := p.fs.Glob(pattern)
		if err != nil {
			return newSyntaxErr(err.Error(), cfg.File, stmt.Line)
		}
		sort.Strings(names)
		filenames = names
	} else {
		// nginx fails hard on a missing plain include
		f, err := p.fs.Open(pattern)
		if err != nil {
			return newSyntaxErr(err.Error(), cfg.File, stmt.Line)
		}
		f.Close()
		filenames = []string{pattern}
	}
	for _, name := range filenames {
		idx, ok := p.included[name]
		if !ok {
			idx = len(p.includes)
			p.included[name] = idx
			p.includes = append(p.includes, fileCtx{name: name, ctx: ctx})
		}
		stmt.Includes = append(stmt.Includes, idx)
	}
	return nil
}

func (p *parser) handleErr(cfg *Config, err error) {
	pe, ok := err.(*ParseError)
	if !ok {
		pe = &ParseError{What: err.Error(), File: cfg.File, Kind: KindSyntax}
	}
	cfg.Status = "failed"
	cfg.Errors = append(cfg.Errors, pe)
	p.payload.Status = "failed"
	p.payload.Errors = append(p.payload.Errors, pe)
}

// skipBlock consumes tokens through the matching close brace of a block
// whose open brace was just read.
func skipBlock(it *TokenIter) {
	depth := 1
	for tok := it.Next(); tok != nil; tok = it.Next() {
		if tok.Quoted {
			continue
		}
		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
		}
		if depth == 0 {
			return
		}
	}
}

// prepareIfArgs strips the outer parentheses off an if directive's
// condition so the args round-trip through the builder.
func prepareIfArgs(stmt *Stmt) {
	args := stmt.Args
	if len(args) > 0 && strings.HasPrefix(args[0], "(") && strings.HasSuffix(args[len(args)-1], ")") {
		args[0] = strings.TrimLeft(args[0], "(")
		args[len(args)-1] = strings.TrimRight(args[len(args)-1], ")")
		n := 0
		for _, v := range args {
			if v != "" {
				args[n] = v
				n++
			}
		}
		stmt.Args = args[:n]
	}
}

// combineParsedConfig folds every included file into the first one, the way
// nginx sees the configuration after inlining.
func combineParsedConfig(p *Payload) *Payload {
	combined := &Config{
		File:   p.Config[0].File,
		Status: "ok",
		Errors: []*ParseError{},
		Parsed: []*Stmt{},
	}
	for _, cfg := range p.Config {
		combined.Errors = append(combined.Errors, cfg.Errors...)
		if cfg.Status == "failed" {
			combined.Status = "failed"
		}
	}
	combined.Parsed = performInclude(p, p.Config[0].Parsed)
	return &Payload{
		Status: p.Status,
		Errors: p.Errors,
		Config: []*Config{combined},
	}
}

func performInclude(p *Payload, block []*Stmt) []*Stmt {
	out := []*Stmt{}
	for _, stmt := range block {
		if stmt.Blocks != nil {
			stmt.Blocks = performInclude(p, stmt.Blocks)
		}
		if stmt.Includes != nil {
			for _, idx := range stmt.Includes {
				out = append(out, performInclude(p, p.Config[idx].Parsed)...)
			}
			continue
		}
		out = append(out, stmt)
	}
	return out
}
