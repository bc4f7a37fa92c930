package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	crossplane "github.com/dvershinin/crossplane"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp() *cli.App {
	return &cli.App{
		Commands: []*cli.Command{
			parseCommand(),
			buildCommand(),
			lexCommand(),
			minifyCommand(),
			formatCommand(),
		},
	}
}

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nginx.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCommand(t *testing.T) {
	conf := writeConf(t, "events {\n    worker_connections 1024;\n}\n")
	out := filepath.Join(filepath.Dir(conf), "payload.json")

	err := testApp().Run([]string{"crossplane", "parse", "--out", out, conf})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var payload crossplane.Payload
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Equal(t, "ok", payload.Status)
	require.Len(t, payload.Config, 1)
	require.Equal(t, "events", payload.Config[0].Parsed[0].Directive)
}

func TestParseCommandMissingFile(t *testing.T) {
	err := testApp().Run([]string{"crossplane", "parse"})
	require.Error(t, err)
}

func TestLexCommandLineNumbers(t *testing.T) {
	conf := writeConf(t, "user nobody;\n")
	out := filepath.Join(filepath.Dir(conf), "tokens.json")

	err := testApp().Run([]string{"crossplane", "lex", "--line-numbers", "--out", out, conf})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var pairs [][]interface{}
	require.NoError(t, json.Unmarshal(raw, &pairs))
	require.Equal(t, []interface{}{"user", float64(1)}, pairs[0])
	require.Equal(t, []interface{}{";", float64(1)}, pairs[2])
}

func TestMinifyCommand(t *testing.T) {
	conf := writeConf(t, "events {\n    worker_connections 1024;\n}\n")
	out := filepath.Join(filepath.Dir(conf), "min.conf")

	err := testApp().Run([]string{"crossplane", "minify", "--out", out, conf})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "events{worker_connections 1024;}", string(raw))
}

func TestFormatCommand(t *testing.T) {
	conf := writeConf(t, "events{worker_connections 1024;}")
	out := filepath.Join(filepath.Dir(conf), "fmt.conf")

	err := testApp().Run([]string{"crossplane", "format", "--out", out, conf})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "events {\n    worker_connections 1024;\n}", string(raw))
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	payload := filepath.Join(dir, "payload.json")
	body := `{"status":"ok","errors":[],"config":[{"file":"nginx.conf","status":"ok","errors":[],"parsed":[{"directive":"user","line":1,"args":["nobody"]},{"directive":"events","line":2,"args":[],"block":[]}]}]}`
	require.NoError(t, os.WriteFile(payload, []byte(body), 0o644))

	outDir := filepath.Join(dir, "out")
	err := testApp().Run([]string{"crossplane", "build", "--dir", outDir, "--force", "--no-headers", payload})
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(outDir, "nginx.conf"))
	require.NoError(t, err)
	require.Equal(t, "user nobody;\nevents {\n}", string(raw))
}
