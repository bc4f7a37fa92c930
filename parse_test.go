package crossplane

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSimple(t *testing.T) {
	file := "testdata/configs/simple/nginx.conf"
	payload, err := Parse(file, nil)
	require.NoError(t, err)

	expect := &Payload{
		Status: "ok",
		Errors: []*ParseError{},
		Config: []*Config{{
			File:   file,
			Status: "ok",
			Errors: []*ParseError{},
			Parsed: []*Stmt{
				{
					Directive: "events",
					Line:      1,
					Blocks: []*Stmt{
						{Directive: "worker_connections", Line: 2, Args: []string{"1024"}},
					},
				},
				{
					Directive: "http",
					Line:      5,
					Blocks: []*Stmt{
						{
							Directive: "server",
							Line:      6,
							Blocks: []*Stmt{
								{Directive: "listen", Line: 7, Args: []string{"127.0.0.1:8080"}},
								{Directive: "server_name", Line: 8, Args: []string{"default_server"}},
								{
									Directive: "location",
									Line:      9,
									Args:      []string{"/"},
									Blocks: []*Stmt{
										{Directive: "return", Line: 10, Args: []string{"200", "foo bar baz"}},
									},
								},
							},
						},
					},
				},
			},
		}},
	}
	if diff := cmp.Diff(expect, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWithComments(t *testing.T) {
	file := "testdata/configs/with-comments/nginx.conf"
	opts := DefaultParseOptions()
	opts.Comments = true
	payload, err := Parse(file, opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)

	parsed := payload.Config[0].Parsed
	require.Equal(t, "#", parsed[1].Directive)
	require.Equal(t, "comment", parsed[1].Comment)
	require.Equal(t, 4, parsed[1].Line)

	server := parsed[2].Blocks[0]
	require.Equal(t, "listen", server.Blocks[0].Directive)
	require.Equal(t, "#", server.Blocks[1].Directive)
	require.Equal(t, "listen", server.Blocks[1].Comment)

	location := server.Blocks[3]
	require.Equal(t, "location", location.Directive)
	require.Equal(t, "# this is brace", location.Blocks[0].Comment)
	require.Equal(t, " location /", location.Blocks[1].Comment)
}

func TestParseCommentsExcludedByDefault(t *testing.T) {
	file := "testdata/configs/with-comments/nginx.conf"
	payload, err := Parse(file, nil)
	require.NoError(t, err)
	var walk func(block []*Stmt)
	walk = func(block []*Stmt) {
		for _, stmt := range block {
			require.NotEqual(t, "#", stmt.Directive)
			walk(stmt.Blocks)
		}
	}
	walk(payload.Config[0].Parsed)
}

func TestParseCatchErrors(t *testing.T) {
	fs := MapFS{"nginx.conf": `events {
    worker_connections;
    accept_mutex maybe;
}
`}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "failed", payload.Status)
	require.Len(t, payload.Errors, 2)
	require.Equal(t, `invalid number of arguments in "worker_connections" directive in nginx.conf:2`,
		payload.Errors[0].Error())
	require.Equal(t, KindArguments, payload.Errors[0].Kind)
	require.Equal(t, `invalid value "maybe" in "accept_mutex" directive, it must be "on" or "off" in nginx.conf:3`,
		payload.Errors[1].Error())

	// the statements themselves survive in the tree
	require.Len(t, payload.Config[0].Parsed[0].Blocks, 2)
}

func TestParseNoCatch(t *testing.T) {
	fs := MapFS{"nginx.conf": `events {
    worker_connections;
    accept_mutex maybe;
}
`}
	opts := DefaultParseOptions()
	opts.FS = fs
	opts.CatchErrors = false
	payload, err := Parse("nginx.conf", opts)
	require.Error(t, err)
	require.Equal(t, `invalid number of arguments in "worker_connections" directive in nginx.conf:2`, err.Error())
	require.Equal(t, "failed", payload.Status)
	require.Len(t, payload.Errors, 1)
}

func TestParseMissingSemicolon(t *testing.T) {
	fs := MapFS{"nginx.conf": "user nobody"}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "failed", payload.Status)
	require.Equal(t, `unexpected end of file, expecting ";" or "}" in nginx.conf:1`,
		payload.Errors[0].Error())
	require.Empty(t, payload.Config[0].Parsed)
}

func TestParseIgnoreDirectives(t *testing.T) {
	file := "testdata/configs/simple/nginx.conf"

	opts := DefaultParseOptions()
	opts.Ignore = []string{"events"}
	payload, err := Parse(file, opts)
	require.NoError(t, err)
	require.Len(t, payload.Config[0].Parsed, 1)
	require.Equal(t, "http", payload.Config[0].Parsed[0].Directive)

	opts = DefaultParseOptions()
	opts.Ignore = []string{"listen", "server_name"}
	payload, err = Parse(file, opts)
	require.NoError(t, err)
	server := payload.Config[0].Parsed[1].Blocks[0]
	require.Len(t, server.Blocks, 1)
	require.Equal(t, "location", server.Blocks[0].Directive)
}

func includesFS() MapFS {
	return MapFS{
		"nginx.conf": `events {}
http {
    include conf.d/backend.conf;
    include sites/*.conf;
}
`,
		"conf.d/backend.conf": `upstream backend {
    server 127.0.0.1:9000;
}
`,
		"sites/a.conf": `server {
    listen 8080;
}
`,
		"sites/b.conf": `server {
    listen 8081;
}
`,
	}
}

func TestParseIncludes(t *testing.T) {
	opts := DefaultParseOptions()
	opts.FS = includesFS()
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)
	require.Len(t, payload.Config, 4)
	require.Equal(t, "nginx.conf", payload.Config[0].File)
	require.Equal(t, "conf.d/backend.conf", payload.Config[1].File)
	require.Equal(t, "sites/a.conf", payload.Config[2].File)
	require.Equal(t, "sites/b.conf", payload.Config[3].File)

	httpBlock := payload.Config[0].Parsed[1]
	require.Equal(t, []int{1}, httpBlock.Blocks[0].Includes)
	require.Equal(t, []int{2, 3}, httpBlock.Blocks[1].Includes)

	// the included servers get the including context for validation
	require.Equal(t, "upstream", payload.Config[1].Parsed[0].Directive)
}

func TestParseIncludeMissingFile(t *testing.T) {
	fs := MapFS{"nginx.conf": "events {}\nhttp {\n    include missing.conf;\n}\n"}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "failed", payload.Status)
	require.Len(t, payload.Errors, 1)
	require.Equal(t, 3, payload.Errors[0].Line)
	require.Contains(t, payload.Errors[0].What, "missing.conf")
}

func TestParseSingleFile(t *testing.T) {
	opts := DefaultParseOptions()
	opts.FS = includesFS()
	opts.SingleFile = true
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Len(t, payload.Config, 1)
	httpBlock := payload.Config[0].Parsed[1]
	require.Nil(t, httpBlock.Blocks[0].Includes)
}

func TestParseCombine(t *testing.T) {
	opts := DefaultParseOptions()
	opts.FS = includesFS()
	opts.Combine = true
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Len(t, payload.Config, 1)

	httpBlock := payload.Config[0].Parsed[1]
	require.Equal(t, "http", httpBlock.Directive)
	directives := make([]string, 0, len(httpBlock.Blocks))
	files := make([]string, 0, len(httpBlock.Blocks))
	for _, stmt := range httpBlock.Blocks {
		directives = append(directives, stmt.Directive)
		files = append(files, stmt.File)
	}
	require.Equal(t, []string{"upstream", "server", "server"}, directives)
	require.Equal(t, []string{"conf.d/backend.conf", "sites/a.conf", "sites/b.conf"}, files)
}

func TestParseStrictUnknownDirective(t *testing.T) {
	fs := MapFS{"nginx.conf": "http {\n    fancy_module on;\n}\n"}

	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)

	opts = DefaultParseOptions()
	opts.FS = fs
	opts.Strict = true
	payload, err = Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "failed", payload.Status)
	require.Equal(t, `unknown directive "fancy_module" in nginx.conf:2`, payload.Errors[0].Error())
	require.Equal(t, KindUnknownDirective, payload.Errors[0].Kind)
}

func TestParseIfArgs(t *testing.T) {
	fs := MapFS{"nginx.conf": `http {
    server {
        location / {
            if ($request_method = POST) {
                return 405;
            }
        }
    }
}
`}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)
	ifStmt := payload.Config[0].Parsed[0].Blocks[0].Blocks[0].Blocks[0]
	require.Equal(t, "if", ifStmt.Directive)
	require.Equal(t, []string{"$request_method", "=", "POST"}, ifStmt.Args)
}

func TestParseEmptyBlock(t *testing.T) {
	fs := MapFS{"nginx.conf": "events {}\n"}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	events := payload.Config[0].Parsed[0]
	require.NotNil(t, events.Blocks)
	require.Empty(t, events.Blocks)
}

func TestParseUnbalancedConfig(t *testing.T) {
	fs := MapFS{"nginx.conf": "http {\n    server {\n}\n"}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "failed", payload.Status)
	require.True(t, strings.Contains(payload.Errors[0].What, `expecting "}"`))
	require.Empty(t, payload.Config[0].Parsed)
}
