package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	schemac "github.com/reoring/schemac"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func testConfig(stdio *bytes.Buffer) compileConfig {
	return compileConfig{
		wopt:  schemac.WriteOpt{Driver: schemac.DefaultJSONDriver()},
		stdio: stdio,
		logf:  func(string, ...any) {},
	}
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("invalid JSON %s: %v", b, err)
	}
	return m
}

func TestCompileFiles_SingleToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "flag.yaml", "root: {type: boolean}\n")
	var out bytes.Buffer
	if err := compileFiles(context.Background(), testConfig(&out), []string{in}); err != nil {
		t.Fatalf("compileFiles: %v", err)
	}
	got := decode(t, out.Bytes())
	want := map[string]any{"$schema": "https://json-schema.org/draft/2020-12/schema", "type": "boolean"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestCompileFiles_SeveralIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "user.yaml", `
root:
  type: object
  fields:
    name: {type: string}
    email: {type: optional, of: {type: string}}
`)
	b := writeFile(t, dir, "ids.json", `{"root": {"type": "array", "of": {"type": "uint64"}}}`)
	outDir := filepath.Join(dir, "out")
	cfg := testConfig(&bytes.Buffer{})
	cfg.out = outDir
	cfg.copt.OmitRequired = true
	if err := compileFiles(context.Background(), cfg, []string{a, b}); err != nil {
		t.Fatalf("compileFiles: %v", err)
	}
	user, err := os.ReadFile(filepath.Join(outDir, "user.schema.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := decode(t, user)["required"]; ok {
		t.Fatalf("-no-required should drop required: %s", user)
	}
	ids, err := os.ReadFile(filepath.Join(outDir, "ids.schema.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got := decode(t, ids)["items"]; !reflect.DeepEqual(got, map[string]any{"type": "integer"}) {
		t.Fatalf("items got=%v", got)
	}
}

func TestCompileFiles_SeveralNeedOutputDir(t *testing.T) {
	err := compileFiles(context.Background(), testConfig(&bytes.Buffer{}), []string{"a.yaml", "b.yaml"})
	if err == nil || !strings.Contains(err.Error(), "-o") {
		t.Fatalf("expected -o error, got %v", err)
	}
}

func TestCompileFiles_RejectsCollidingOutputs(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	first := writeFile(t, filepath.Join(dir, "a"), "user.yaml", "root: {type: string}\n")
	second := writeFile(t, filepath.Join(dir, "b"), "user.json", `{"root": {"type": "boolean"}}`)
	outDir := filepath.Join(dir, "out")
	cfg := testConfig(&bytes.Buffer{})
	cfg.out = outDir
	err := compileFiles(context.Background(), cfg, []string{first, second})
	if err == nil || !strings.Contains(err.Error(), "user.schema.json") {
		t.Fatalf("expected a collision error, got %v", err)
	}
	if !strings.Contains(err.Error(), first) || !strings.Contains(err.Error(), second) {
		t.Fatalf("error should name both inputs: %v", err)
	}
	if _, statErr := os.Stat(outDir); !os.IsNotExist(statErr) {
		t.Fatalf("nothing should be written on collision, stat err=%v", statErr)
	}
}

func TestCompileFiles_ReportsLoadIssues(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", "root: {type: string}\n")
	bad := writeFile(t, dir, "bad.yaml", "root:\n  type: strnig\n")
	cfg := testConfig(&bytes.Buffer{})
	cfg.out = filepath.Join(dir, "out")
	err := compileFiles(context.Background(), cfg, []string{good, bad})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := schemac.AsIssues(err); !ok {
		t.Fatalf("issues should survive errgroup: %v", err)
	}
	var buf bytes.Buffer
	printError(&buf, err)
	want := bad + ":2: invalid_enum at /root/type: "
	if !strings.HasPrefix(buf.String(), want) {
		t.Fatalf("printError got=%q want prefix %q", buf.String(), want)
	}
}

func TestCompileFiles_SingleToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "n.yaml", "root: {type: validated, of: {type: int32}, validation: {rule: equalTo, value: 7}}\n")
	out := filepath.Join(dir, "nested", "n.json")
	cfg := testConfig(&bytes.Buffer{})
	cfg.out = out
	cfg.wopt.Indent = "  "
	if err := compileFiles(context.Background(), cfg, []string{in}); err != nil {
		t.Fatalf("compileFiles: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n  \"allOf\": [") {
		t.Fatalf("expected indented allOf, got %s", b)
	}
}

func TestOutputName(t *testing.T) {
	cases := map[string]string{
		"user.yaml":        "user.schema.json",
		"dir/sub/ids.json": "ids.schema.json",
		"noext":            "noext.schema.json",
		"a.b.yml":          "a.b.schema.json",
	}
	for in, want := range cases {
		if got := outputName(in); got != want {
			t.Fatalf("outputName(%q) got=%s want=%s", in, got, want)
		}
	}
}

func TestSelectDriver(t *testing.T) {
	for name, want := range map[string]string{"": "go-json", "gojson": "go-json", "jsonv2": "jsontext", "jsoniter": "jsoniter"} {
		d, err := selectDriver(name)
		if err != nil || d.Name() != want {
			t.Fatalf("selectDriver(%q) got=%v,%v want=%s", name, d, err, want)
		}
	}
	if _, err := selectDriver("xml"); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestPrintError_PlainError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, os.ErrPermission)
	if got := buf.String(); got != os.ErrPermission.Error()+"\n" {
		t.Fatalf("got=%q", got)
	}
}
