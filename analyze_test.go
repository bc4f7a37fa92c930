package crossplane

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAnalyzeStateDirective(t *testing.T) {
	fname := "/path/to/nginx.conf"
	stmt := &Stmt{Directive: "state", Args: []string{"/path/to/state/file.conf"}, Line: 5}

	// plain state directives are only allowed in upstream blocks
	for _, ctx := range [][]string{
		{"http", "upstream"},
		{"stream", "upstream"},
	} {
		if err := Analyze(fname, stmt, ";", ctx, true, true, true); err != nil {
			t.Errorf("ctx %v: unexpected error: %v", ctx, err)
		}
	}

	err := Analyze(fname, stmt, ";", []string{"http"}, true, true, true)
	if err == nil {
		t.Fatal("expected error in http context")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if want := `"state" directive is not allowed here in /path/to/nginx.conf:5`; pe.Error() != want {
		t.Errorf("got %q, want %q", pe.Error(), want)
	}
	if pe.Kind != KindContext {
		t.Errorf("got kind %v, want %v", pe.Kind, KindContext)
	}
}

func TestAnalyzeFlagArgs(t *testing.T) {
	fname := "/path/to/nginx.conf"
	ctx := []string{"events"}

	for _, arg := range []string{"on", "off", "On", "Off", "ON", "OFF"} {
		stmt := &Stmt{Directive: "accept_mutex", Args: []string{arg}, Line: 2}
		if err := Analyze(fname, stmt, ";", ctx, true, true, true); err != nil {
			t.Errorf("arg %q: unexpected error: %v", arg, err)
		}
	}

	for _, arg := range []string{"1", "0", "true", "okay", ""} {
		stmt := &Stmt{Directive: "accept_mutex", Args: []string{arg}, Line: 2}
		err := Analyze(fname, stmt, ";", ctx, true, true, true)
		if err == nil {
			t.Errorf("arg %q: expected error", arg)
			continue
		}
		pe := err.(*ParseError)
		want := fmt.Sprintf("invalid value %q in %q directive, it must be \"on\" or \"off\"", arg, "accept_mutex")
		if pe.What != want {
			t.Errorf("arg %q: got %q, want %q", arg, pe.What, want)
		}
		if pe.Kind != KindArguments {
			t.Errorf("arg %q: got kind %v, want %v", arg, pe.Kind, KindArguments)
		}
	}
}

func TestAnalyzeFreeformContexts(t *testing.T) {
	fname := "nginx.conf"
	cases := []struct {
		ctx  []string
		stmt *Stmt
	}{
		{[]string{"http", "map"}, &Stmt{Directive: "default", Args: []string{"0"}, Line: 3}},
		{[]string{"http", "map"}, &Stmt{Directive: "~^www\\.", Args: []string{"1"}, Line: 4}},
		{[]string{"http", "types"}, &Stmt{Directive: "text/html", Args: []string{"html", "htm"}, Line: 2}},
		{[]string{"http", "geo"}, &Stmt{Directive: "192.168.1.0/24", Args: []string{"local"}, Line: 2}},
		{[]string{"http", "charset_map"}, &Stmt{Directive: "B0", Args: []string{"D0"}, Line: 2}},
		{[]string{"stream", "map"}, &Stmt{Directive: "example.com", Args: []string{"backend_1"}, Line: 2}},
		{[]string{"stream", "geo"}, &Stmt{Directive: "10.0.0.0/8", Args: []string{"internal"}, Line: 2}},
	}
	for _, c := range cases {
		if err := Analyze(fname, c.stmt, ";", c.ctx, true, true, true); err != nil {
			t.Errorf("ctx %v stmt %q: unexpected error: %v", c.ctx, c.stmt.Directive, err)
		}
	}
}

func TestAnalyzeUnknownDirective(t *testing.T) {
	fname := "nginx.conf"
	stmt := &Stmt{Directive: "custom_directive", Args: []string{"value"}, Line: 7}

	if err := Analyze(fname, stmt, ";", []string{"http"}, false, true, true); err != nil {
		t.Errorf("non-strict: unexpected error: %v", err)
	}

	err := Analyze(fname, stmt, ";", []string{"http"}, true, true, true)
	if err == nil {
		t.Fatal("strict: expected error")
	}
	pe := err.(*ParseError)
	if want := `unknown directive "custom_directive"`; pe.What != want {
		t.Errorf("got %q, want %q", pe.What, want)
	}
	if pe.Kind != KindUnknownDirective {
		t.Errorf("got kind %v, want %v", pe.Kind, KindUnknownDirective)
	}
}

func TestAnalyzeUnregisteredContext(t *testing.T) {
	// contexts opened by third-party modules are not context-checked, but
	// argument counts still apply
	fname := "nginx.conf"
	stmt := &Stmt{Directive: "listen", Args: []string{"127.0.0.1:8080"}, Line: 2}
	if err := Analyze(fname, stmt, ";", []string{"custom_module"}, false, true, true); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := &Stmt{Directive: "listen", Args: nil, Line: 2}
	if err := Analyze(fname, bad, ";", []string{"custom_module"}, false, true, true); err == nil {
		t.Error("expected argument error")
	}
}

func TestAnalyzeContextCheck(t *testing.T) {
	fname := "nginx.conf"
	stmt := &Stmt{Directive: "worker_connections", Args: []string{"1024"}, Line: 2}

	if err := Analyze(fname, stmt, ";", []string{"events"}, true, true, true); err != nil {
		t.Errorf("events ctx: unexpected error: %v", err)
	}

	err := Analyze(fname, stmt, ";", []string{"http"}, true, true, true)
	if err == nil {
		t.Fatal("http ctx: expected error")
	}
	pe := err.(*ParseError)
	if want := `"worker_connections" directive is not allowed here`; pe.What != want {
		t.Errorf("got %q, want %q", pe.What, want)
	}
}

func TestAnalyzeArgCounts(t *testing.T) {
	fname := "nginx.conf"

	err := Analyze(fname, &Stmt{Directive: "worker_connections", Line: 2}, ";", []string{"events"}, true, true, true)
	if err == nil {
		t.Fatal("expected error for missing argument")
	}
	pe := err.(*ParseError)
	if want := `invalid number of arguments in "worker_connections" directive`; pe.What != want {
		t.Errorf("got %q, want %q", pe.What, want)
	}

	err = Analyze(fname, &Stmt{Directive: "ip_hash", Args: []string{"x"}, Line: 3}, ";", []string{"http", "upstream"}, true, true, true)
	if err == nil {
		t.Error("expected error for extra argument")
	}
}

func TestAnalyzeBlockShape(t *testing.T) {
	fname := "nginx.conf"

	err := Analyze(fname, &Stmt{Directive: "http", Line: 1}, ";", nil, true, true, true)
	if err == nil {
		t.Fatal("expected error for http terminated by semicolon")
	}
	pe := err.(*ParseError)
	if want := `directive "http" has no opening "{"`; pe.What != want {
		t.Errorf("got %q, want %q", pe.What, want)
	}
	if pe.Kind != KindArguments {
		t.Errorf("got kind %v, want %v", pe.Kind, KindArguments)
	}

	if err := Analyze(fname, &Stmt{Directive: "http", Line: 1}, "{", nil, true, true, true); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err = Analyze(fname, &Stmt{Directive: "listen", Args: []string{"80"}, Line: 2}, "{", []string{"http", "server"}, true, true, true)
	if err == nil {
		t.Fatal("expected error for listen opening a block")
	}
	pe = err.(*ParseError)
	if want := `directive "listen" is not terminated by ";"`; pe.What != want {
		t.Errorf("got %q, want %q", pe.What, want)
	}
}

func TestAnalyzeChecksDisabled(t *testing.T) {
	fname := "nginx.conf"
	stmt := &Stmt{Directive: "worker_connections", Args: []string{"1024"}, Line: 2}
	if err := Analyze(fname, stmt, ";", []string{"http"}, true, false, true); err != nil {
		t.Errorf("checkCtx off: unexpected error: %v", err)
	}

	bare := &Stmt{Directive: "worker_connections", Line: 2}
	if err := Analyze(fname, bare, ";", []string{"events"}, true, true, false); err != nil {
		t.Errorf("checkArgs off: unexpected error: %v", err)
	}
}

func TestEnterBlockCtx(t *testing.T) {
	cases := []struct {
		directive string
		ctx       []string
		want      []string
	}{
		{"http", nil, []string{"http"}},
		{"server", []string{"http"}, []string{"http", "server"}},
		{"location", []string{"http", "server"}, []string{"http", "location"}},
		{"location", []string{"http", "location"}, []string{"http", "location"}},
		{"if", []string{"http", "location"}, []string{"http", "location", "if"}},
		{"server", []string{"stream"}, []string{"stream", "server"}},
		{"upstream", []string{"stream"}, []string{"stream", "upstream"}},
	}
	for _, c := range cases {
		got := enterBlockCtx(&Stmt{Directive: c.directive}, c.ctx)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("enterBlockCtx(%q, %v) = %v, want %v", c.directive, c.ctx, got, c.want)
		}
	}
}

func TestDirectivesDatabase(t *testing.T) {
	// spot-check a few entries across modules
	for _, name := range []string{
		"listen", "server", "location", "worker_processes", "proxy_pass",
		"upstream", "state", "zone_sync", "js_include", "grpc_pass",
	} {
		if !InDirectives(name) {
			t.Errorf("missing directive %q", name)
		}
	}
	if InDirectives("not_a_real_directive") {
		t.Error("unexpected directive entry")
	}
	if !InContexts([]string{"http", "location", "limit_except"}) {
		t.Error("missing limit_except context")
	}
	if InContexts([]string{"http", "map"}) {
		t.Error("freeform contexts are not directive contexts")
	}
}
