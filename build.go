package crossplane

import (
	"strconv"
	"strings"
	"unicode"
)

// BuildOptions configure rendering. Indent is the number of spaces per
// nesting level (ignored with Tabs, which indents one tab per level);
// Header prepends the generated-file banner.
type BuildOptions struct {
	Indent int
	Tabs   bool
	Header bool
}

const buildHeader = `# This config was built from JSON using NGINX crossplane.
# If you encounter any bugs please report them here:
# https://github.com/nginxinc/crossplane/issues

`

// Build renders a statement tree back into configuration text. It is the
// inverse of Parse: re-parsing the output yields an equal tree.
func Build(stmts []*Stmt, opts *BuildOptions) string {
	if opts == nil {
		opts = &BuildOptions{Indent: 4}
	}
	indent := opts.Indent
	if indent <= 0 && !opts.Tabs {
		indent = 4
	}
	body := buildBlock("", buildExtensions(), stmts, indent, opts.Tabs, 0, 0)
	if opts.Header {
		return buildHeader + body
	}
	return body
}

func buildBlock(output string, custom map[string]ExtBuilder, block []*Stmt, indent int, tabs bool, depth, lastLine int) string {
	m := margin(indent, tabs, depth)
	for _, stmt := range block {
		var built string
		switch {
		case stmt.Directive == "#" && stmt.Line == lastLine:
			// comment trailing the statement it was lexed after
			output += " #" + stmt.Comment
			continue
		case stmt.Directive == "#":
			built = "#" + stmt.Comment
		default:
			if ext, ok := custom[stmt.Directive]; ok {
				built = ext.Build("", stmt, indent, depth)
				break
			}
			directive := Enquote(stmt.Directive)
			args := make([]string, len(stmt.Args))
			for i, a := range stmt.Args {
				args[i] = Enquote(a)
			}
			if directive == "if" {
				built = "if (" + strings.Join(args, " ") + ")"
			} else if len(args) > 0 {
				built = directive + " " + strings.Join(args, " ")
			} else {
				built = directive
			}
			if stmt.Blocks != nil {
				built += " {"
				built = buildBlock(built, custom, stmt.Blocks, indent, tabs, depth+1, stmt.Line)
				built += "\n" + m + "}"
			} else {
				built += ";"
			}
		}
		if output != "" {
			output += "\n"
		}
		output += m + built
		lastLine = stmt.Line
	}
	return output
}

func margin(indent int, tabs bool, depth int) string {
	if tabs {
		return strings.Repeat("\t", depth)
	}
	return strings.Repeat(" ", indent*depth)
}

// Enquote re-quotes an argument that would not survive re-lexing bare.
func Enquote(arg string) string {
	if !needsQuote(arg) {
		return arg
	}
	return strings.ReplaceAll(strconv.Quote(arg), `\\`, `\`)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	chunks := escapeChunks(s)
	first := chunks[0]
	if first == "${" || isUnsafeChunk(first) || first == "}" {
		return true
	}
	last := first
	expanding := false
	for _, ch := range chunks[1:] {
		last = ch
		if isUnsafeChunk(ch) {
			return true
		}
		// a stray } outside an expansion, or a nested ${, breaks re-lexing
		if (expanding && ch == "${") || (!expanding && ch == "}") {
			return true
		}
		if (expanding && ch == "}") || (!expanding && ch == "${") {
			expanding = !expanding
		}
	}
	return last == "\\" || last == "$" || expanding
}

// escapeChunks splits s into lexer-atomic pieces: escape pairs and the ${
// opener stay together so needsQuote can treat them as single units.
func escapeChunks(s string) []string {
	var out []string
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '\\' && i+1 < len(rs):
			out = append(out, string(rs[i:i+2]))
			i++
		case rs[i] == '$' && i+1 < len(rs) && rs[i+1] == '{':
			out = append(out, "${")
			i++
		default:
			out = append(out, string(rs[i]))
		}
	}
	return out
}

func isUnsafeChunk(ch string) bool {
	r := []rune(ch)
	if len(r) != 1 {
		// escaped pairs and ${ are handled by the expansion rules
		return false
	}
	return unicode.IsSpace(r[0]) || strings.ContainsRune(`{;"'#`, r[0])
}
