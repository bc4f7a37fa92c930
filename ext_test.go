package crossplane

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExtension struct {
	BaseExtension
}

func (fakeExtension) Directives() map[string][]string {
	return map[string][]string{"fancy_pants": {"http"}}
}

func TestRegisterExtension(t *testing.T) {
	orig := extensions
	defer func() { extensions = orig }()
	RegisterExtension(fakeExtension{})

	require.True(t, claimedByExtension("fancy_pants"))
	require.False(t, claimedByExtension("sensible_shoes"))

	// claimed directives pass analysis even in strict mode
	stmt := &Stmt{Directive: "fancy_pants", Args: []string{"on"}, Line: 2}
	require.NoError(t, Analyze("nginx.conf", stmt, ";", []string{"http"}, true, true, true))

	// an extension without the optional interfaces registers no hooks
	require.NotContains(t, lexExtensions(), "fancy_pants")
	require.NotContains(t, parseExtensions(), "fancy_pants")
	require.NotContains(t, buildExtensions(), "fancy_pants")
}

func TestExtensionHooksDiscovered(t *testing.T) {
	require.Contains(t, lexExtensions(), "content_by_lua_block")
	require.Contains(t, buildExtensions(), "content_by_lua_block")
	require.NotContains(t, parseExtensions(), "content_by_lua_block")
}

func TestStrictParseWithExtension(t *testing.T) {
	fs := MapFS{"nginx.conf": `http {
    server {
        location / {
            content_by_lua_block {
                ngx.say("ok")
            }
        }
    }
}
`}
	opts := DefaultParseOptions()
	opts.FS = fs
	opts.Strict = true
	payload, err := Parse("nginx.conf", opts)
	require.NoError(t, err)
	require.Equal(t, "ok", payload.Status)
}
