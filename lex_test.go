package crossplane

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestLexSimple(t *testing.T) {
	file := "testdata/configs/simple/nginx.conf"
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tokens, err := Lex(f, file)
	if err != nil {
		t.Fatal(err)
	}
	expect := []Token{
		{Text: "events", Line: 1},
		{Text: "{", Line: 1},
		{Text: "worker_connections", Line: 2},
		{Text: "1024", Line: 2},
		{Text: ";", Line: 2},
		{Text: "}", Line: 3},
		{Text: "http", Line: 5},
		{Text: "{", Line: 5},
		{Text: "server", Line: 6},
		{Text: "{", Line: 6},
		{Text: "listen", Line: 7},
		{Text: "127.0.0.1:8080", Line: 7},
		{Text: ";", Line: 7},
		{Text: "server_name", Line: 8},
		{Text: "default_server", Line: 8},
		{Text: ";", Line: 8},
		{Text: "location", Line: 9},
		{Text: "/", Line: 9},
		{Text: "{", Line: 9},
		{Text: "return", Line: 10},
		{Text: "200", Line: 10},
		{Text: "foo bar baz", Line: 10, Quoted: true},
		{Text: ";", Line: 10},
		{Text: "}", Line: 11},
		{Text: "}", Line: 12},
		{Text: "}", Line: 13},
	}
	if !reflect.DeepEqual(tokens, expect) {
		t.Errorf("expected %#v\n got %#v", expect, tokens)
	}
}

func TestLexWithComments(t *testing.T) {
	file := "testdata/configs/with-comments/nginx.conf"
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	tokens, err := Lex(f, file)
	if err != nil {
		t.Fatal(err)
	}
	expect := []Token{
		{Text: "events", Line: 1},
		{Text: "{", Line: 1},
		{Text: "worker_connections", Line: 2},
		{Text: "1024", Line: 2},
		{Text: ";", Line: 2},
		{Text: "}", Line: 3},
		{Text: "#comment", Line: 4},
		{Text: "http", Line: 5},
		{Text: "{", Line: 5},
		{Text: "server", Line: 6},
		{Text: "{", Line: 6},
		{Text: "listen", Line: 7},
		{Text: "127.0.0.1:8080", Line: 7},
		{Text: ";", Line: 7},
		{Text: "#listen", Line: 7},
		{Text: "server_name", Line: 8},
		{Text: "default_server", Line: 8},
		{Text: ";", Line: 8},
		{Text: "location", Line: 9},
		{Text: "/", Line: 9},
		{Text: "{", Line: 9},
		{Text: "## this is brace", Line: 9},
		{Text: "# location /", Line: 10},
		{Text: "return", Line: 11},
		{Text: "200", Line: 11},
		{Text: "foo bar baz", Line: 11, Quoted: true},
		{Text: ";", Line: 11},
		{Text: "}", Line: 12},
		{Text: "}", Line: 13},
		{Text: "}", Line: 14},
	}
	if !reflect.DeepEqual(tokens, expect) {
		t.Errorf("expected %#v\n got %#v", expect, tokens)
	}
}

func TestLexQuotes(t *testing.T) {
	src := `log_format foo '[$time_local] "$request"';` + "\n" +
		`return 200 "Ser\" ver\\ \ $server_addr\n";` + "\n"
	tokens, err := Lex(strings.NewReader(src), "nginx.conf")
	if err != nil {
		t.Fatal(err)
	}
	expect := []Token{
		{Text: "log_format", Line: 1},
		{Text: "foo", Line: 1},
		{Text: `[$time_local] "$request"`, Line: 1, Quoted: true},
		{Text: ";", Line: 1},
		{Text: "return", Line: 2},
		{Text: "200", Line: 2},
		{Text: `Ser" ver\ \ $server_addr\n`, Line: 2, Quoted: true},
		{Text: ";", Line: 2},
	}
	if !reflect.DeepEqual(tokens, expect) {
		t.Errorf("expected %#v\n got %#v", expect, tokens)
	}
}

func TestLexVariableBraces(t *testing.T) {
	src := "try_files /abc/${uri} /abc/${uri}.html =404;\n"
	tokens, err := Lex(strings.NewReader(src), "nginx.conf")
	if err != nil {
		t.Fatal(err)
	}
	expect := []Token{
		{Text: "try_files", Line: 1},
		{Text: "/abc/${uri}", Line: 1},
		{Text: "/abc/${uri}.html", Line: 1},
		{Text: "=404", Line: 1},
		{Text: ";", Line: 1},
	}
	if !reflect.DeepEqual(tokens, expect) {
		t.Errorf("expected %#v\n got %#v", expect, tokens)
	}
}

func TestLexUnterminatedQuote(t *testing.T) {
	src := "user nobody;\nerror_log \"/var/log\nhttp {}\n"
	_, err := Lex(strings.NewReader(src), "nginx.conf")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if got, want := pe.Error(), `unexpected end of file, expecting closing quote in nginx.conf:2`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if pe.Kind != KindSyntax {
		t.Errorf("got kind %v, want %v", pe.Kind, KindSyntax)
	}
}

func TestLexExtraClosingBrace(t *testing.T) {
	src := "events {}\n}\n"
	_, err := Lex(strings.NewReader(src), "nginx.conf")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `unexpected "}" in nginx.conf:2`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLexMissingClosingBrace(t *testing.T) {
	src := "http {\nserver {\n}\n"
	_, err := Lex(strings.NewReader(src), "nginx.conf")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `unexpected end of file, expecting "}" in nginx.conf:3`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
