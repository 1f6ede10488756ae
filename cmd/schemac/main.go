package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	schemac "github.com/reoring/schemac"
	"github.com/reoring/schemac/i18n"
	"github.com/reoring/schemac/source"
	"github.com/reoring/schemac/writer/jsoniter"
	"github.com/reoring/schemac/writer/jsonv2"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "schemac CLI\n\nUsage:\n  schemac compile [-no-required] [-indent S] [-driver gojson|jsonv2|jsoniter] [-schema URI] [-max-depth N] [-max-nodes N] [-o PATH] [-v] FILE...\n  schemac check [-lang en|ja] [-fail-fast] [-max-depth N] [-max-nodes N] FILE...\n\nNotes:\n  - FILE is a YAML or JSON type description.\n  - With several FILEs, -o names a directory; X.yaml is written to X.schema.json.")
}

// compileConfig carries the parsed flags of the compile subcommand.
type compileConfig struct {
	copt  schemac.CompileOpt
	wopt  schemac.WriteOpt
	lopt  schemac.LoadOpt
	out   string
	stdio io.Writer
	logf  func(format string, a ...any)
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var (
		cfg      compileConfig
		driver   string
		maxDepth int
		maxNodes int
		verbose  bool
	)
	fs.BoolVar(&cfg.copt.OmitRequired, "no-required", false, "never emit \"required\" lists")
	fs.StringVar(&cfg.wopt.Indent, "indent", "", "indentation string (empty for compact output)")
	fs.StringVar(&cfg.wopt.SchemaURI, "schema", "", "value of \"$schema\" (default: draft 2020-12)")
	fs.StringVar(&driver, "driver", "gojson", "JSON driver: gojson, jsonv2 or jsoniter")
	fs.IntVar(&maxDepth, "max-depth", schemac.DefaultMaxDepth, "maximum nesting of the type description")
	fs.IntVar(&maxNodes, "max-nodes", schemac.DefaultMaxNodes, "maximum decoded types and validations, aliases expanded")
	fs.StringVar(&cfg.out, "o", "", "output file (one input) or directory (several inputs)")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	d, err := selectDriver(driver)
	if err != nil {
		fatalf("%v", err)
	}
	cfg.wopt.Driver = d
	cfg.lopt.MaxDepth = maxDepth
	cfg.lopt.MaxNodes = maxNodes
	cfg.stdio = os.Stdout
	cfg.logf = func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}
	cfg.logf("compile: files=%d driver=%s noRequired=%v out=%q", len(files), d.Name(), cfg.copt.OmitRequired, cfg.out)

	if err := compileFiles(context.Background(), cfg, files); err != nil {
		reportAndExit(err)
	}
}

func selectDriver(name string) (schemac.JSONDriver, error) {
	switch name {
	case "", "gojson":
		return schemac.DefaultJSONDriver(), nil
	case "jsonv2":
		return jsonv2.Driver(), nil
	case "jsoniter":
		return jsoniter.Driver(), nil
	default:
		return nil, fmt.Errorf("unknown driver %q (want gojson, jsonv2 or jsoniter)", name)
	}
}

// compileFiles compiles one file to cfg.out (or stdout), or several files
// into the cfg.out directory concurrently. Inputs whose output names collide
// are rejected before anything is written. The first failure cancels the
// remaining work.
func compileFiles(ctx context.Context, cfg compileConfig, files []string) error {
	if len(files) == 1 {
		if cfg.out == "" {
			return compileOne(files[0], cfg, cfg.stdio)
		}
		return compileToFile(files[0], cfg.out, cfg)
	}
	if cfg.out == "" {
		return errors.New("-o directory is required with several input files")
	}
	owner := make(map[string]string, len(files))
	for _, in := range files {
		name := outputName(in)
		if prev, ok := owner[name]; ok {
			return fmt.Errorf("%s and %s would both write %s", prev, in, filepath.Join(cfg.out, name))
		}
		owner[name] = in
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, in := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return compileToFile(in, filepath.Join(cfg.out, outputName(in)), cfg)
		})
	}
	return g.Wait()
}

// outputName maps "dir/user.yaml" to "user.schema.json".
func outputName(in string) string {
	base := filepath.Base(in)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".schema.json"
}

func compileToFile(in, out string, cfg compileConfig) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := compileOne(in, cfg, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	cfg.logf("wrote %s", out)
	return nil
}

func compileOne(in string, cfg compileConfig, w io.Writer) error {
	s, err := source.LoadFile(in, cfg.lopt)
	if err != nil {
		return fileError{path: in, err: err}
	}
	cfg.logf("loaded %s: definitions=%d", in, len(s.Definitions))
	doc := schemac.Compile(s, cfg.copt)
	if err := schemac.Write(w, doc, cfg.wopt); err != nil {
		return fileError{path: in, err: err}
	}
	return nil
}

// fileError attaches the input path to load and write failures.
type fileError struct {
	path string
	err  error
}

func (e fileError) Error() string { return e.path + ": " + e.err.Error() }
func (e fileError) Unwrap() error { return e.err }

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var (
		lang     string
		failFast bool
		maxDepth int
		maxNodes int
	)
	fs.StringVar(&lang, "lang", "en", "message language: en or ja")
	fs.BoolVar(&failFast, "fail-fast", false, "stop at the first issue of each file")
	fs.IntVar(&maxDepth, "max-depth", schemac.DefaultMaxDepth, "maximum nesting of the type description")
	fs.IntVar(&maxNodes, "max-nodes", schemac.DefaultMaxNodes, "maximum decoded types and validations, aliases expanded")
	_ = fs.Parse(args)
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)
	failed := false
	for _, in := range files {
		_, err := source.LoadFile(in, schemac.LoadOpt{MaxDepth: maxDepth, MaxNodes: maxNodes, FailFast: failFast})
		if err == nil {
			continue
		}
		failed = true
		printError(os.Stderr, fileError{path: in, err: err})
	}
	if failed {
		os.Exit(1)
	}
}

// printError lists every issue of err on its own line, or err itself.
func printError(w io.Writer, err error) {
	var fe fileError
	iss, ok := schemac.AsIssues(err)
	if !ok || !errors.As(err, &fe) {
		fmt.Fprintln(w, err)
		return
	}
	for _, it := range iss {
		loc := fe.path
		if it.Line > 0 {
			loc = fmt.Sprintf("%s:%d", fe.path, it.Line)
		}
		fmt.Fprintf(w, "%s: %s at %s: %s\n", loc, it.Code, it.Path, it.Message)
	}
}

func reportAndExit(err error) {
	printError(os.Stderr, err)
	os.Exit(1)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
