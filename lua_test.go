package crossplane

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLuaBlockLex(t *testing.T) {
	src := `http {
    server {
        location / {
            content_by_lua_block {
                ngx.say("Hello, world!")
            }
        }
    }
}
`
	tokens, err := Lex(strings.NewReader(src), "nginx.conf")
	require.NoError(t, err)

	var chunk *Token
	for i := range tokens {
		if tokens[i].Text == "content_by_lua_block" {
			require.Equal(t, 4, tokens[i].Line)
			chunk = &tokens[i+1]
			break
		}
	}
	require.NotNil(t, chunk)
	require.True(t, chunk.Quoted)
	require.Contains(t, chunk.Text, `ngx.say("Hello, world!")`)
	// the chunk swallows the braces, a synthetic terminator follows
	require.NotContains(t, chunk.Text, "{")
}

func TestLuaBlockBracesInsideStrings(t *testing.T) {
	src := "location / {\n    content_by_lua_block {\n        ngx.say(\"}\")\n    }\n}\n"
	tokens, err := Lex(strings.NewReader(src), "nginx.conf")
	require.NoError(t, err)
	found := false
	for _, tok := range tokens {
		if tok.Quoted && strings.Contains(tok.Text, `ngx.say("}")`) {
			found = true
		}
	}
	require.True(t, found)
}

func TestLuaBlockParse(t *testing.T) {
	fs := MapFS{"nginx.conf": `http {
    server {
        location / {
            content_by_lua_block {
                ngx.say("Hello, world!")
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

	lua := payload.Config[0].Parsed[0].Blocks[0].Blocks[0].Blocks[0]
	require.Equal(t, "content_by_lua_block", lua.Directive)
	require.Len(t, lua.Args, 1)
	require.Contains(t, lua.Args[0], `ngx.say("Hello, world!")`)
	require.Nil(t, lua.Blocks)
}

func TestLuaSetBlockParse(t *testing.T) {
	fs := MapFS{"nginx.conf": `http {
    server {
        location / {
            set_by_lua_block $res { return 32 + math.cos(32) }
        }
    }
}
`}
	opts := DefaultParseOptions()
	opts.FS = fs
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)

	lua := payload.Config[0].Parsed[0].Blocks[0].Blocks[0].Blocks[0]
	require.Equal(t, "set_by_lua_block", lua.Directive)
	require.Len(t, lua.Args, 2)
	require.Equal(t, "$res", lua.Args[0])
	require.Contains(t, lua.Args[1], "math.cos(32)")
}

func TestLuaBlockBuildRoundTrip(t *testing.T) {
	src := `http {
    server {
        location / {
            content_by_lua_block {
                ngx.say("Hello, world!")
            }
        }
    }
}
`
	opts := DefaultParseOptions()
	opts.FS = MapFS{"nginx.conf": src}
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	first := Build(payload.Config[0].Parsed, nil)
	require.Contains(t, first, "content_by_lua_block {")

	reOpts := DefaultParseOptions()
	reOpts.FS = MapFS{"built.conf": first}
	re, err := Parse("built.conf", reOpts)
	require.NoError(t, err)
	require.Equal(t, first, Build(re.Config[0].Parsed, nil))
}

func TestLuaBlockUnterminated(t *testing.T) {
	src := "location / {\n    content_by_lua_block {\n        ngx.say('hi')\n"
	_, err := Lex(strings.NewReader(src), "nginx.conf")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, KindSyntax, pe.Kind)
	require.Equal(t, "nginx.conf", pe.File)
}
