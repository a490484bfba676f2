// csslite - parse a small CSS subset and print what was parsed
//
// Usage:
//
//	csslite [options] <file.css>
//	csslite [options] - < file.css
//
// Default options may be set in CSSLITE_FLAGS, split with shell quoting
// rules, e.g. CSSLITE_FLAGS='-format json -select "d*"'.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chazu/csslite/pkg/css"
	"github.com/chazu/csslite/pkg/gogen"
	"github.com/chazu/csslite/pkg/parser"
	"github.com/chazu/csslite/pkg/query"
	"github.com/chazu/csslite/pkg/store"
	"github.com/google/shlex"
)

const versionStr = "0.3.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	format  string
	pattern string
	dbPath  string
	pkg     string
	varName string
	quiet   bool
	version bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if env := os.Getenv("CSSLITE_FLAGS"); env != "" {
		defaults, err := shlex.Split(env)
		if err != nil {
			fmt.Fprintf(stderr, "Error: parsing CSSLITE_FLAGS: %v\n", err)
			return exitUsage
		}
		args = append(defaults, args...)
	}

	var opts options
	fs := flag.NewFlagSet("csslite", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.format, "format", "text", "output format: text, json or go")
	fs.StringVar(&opts.pattern, "select", "", "only output rules whose selector matches this glob pattern")
	fs.StringVar(&opts.dbPath, "db", "", "also save the parsed sheet to this SQLite database")
	fs.StringVar(&opts.pkg, "package", "styles", "package name for -format go")
	fs.StringVar(&opts.varName, "var", "Sheet", "variable name for -format go")
	fs.BoolVar(&opts.quiet, "quiet", false, "print only a one-line error instead of the source excerpt")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "csslite - parse a small CSS subset\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  csslite [options] <file.css>\n")
		fmt.Fprintf(stderr, "  csslite [options] - < file.css\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "csslite version %s\n", versionStr)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "Error: expected exactly one input file\n")
		fs.Usage()
		return exitUsage
	}

	switch opts.format {
	case "text", "json", "go":
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q (use 'text', 'json' or 'go')\n", opts.format)
		return exitUsage
	}

	var matcher *query.Matcher
	if opts.pattern != "" {
		m, err := query.Compile(opts.pattern)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitUsage
		}
		matcher = m
	}

	path := fs.Arg(0)
	input, err := readInput(path, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitError
	}

	var diagnostics io.Writer = stderr
	if opts.quiet {
		diagnostics = nil
	}
	sheet, err := parser.ParseWithDiagnostics(input, diagnostics)
	if err != nil {
		if opts.quiet {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
		}
		return exitError
	}

	if matcher != nil {
		sheet = matcher.Filter(sheet)
	}

	if opts.dbPath != "" {
		if err := save(opts.dbPath, path, sheet, stderr); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	if err := render(stdout, stderr, sheet, path, opts); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func save(dbPath, source string, sheet *css.Sheet, stderr io.Writer) error {
	s, err := store.Open(&store.Config{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.Save(source, sheet)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Saved %d rules as %s\n", sheet.Len(), id)
	return nil
}

func render(stdout, stderr io.Writer, sheet *css.Sheet, path string, opts options) error {
	switch opts.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sheet)

	case "go":
		source := path
		if source == "-" {
			source = ""
		}
		result, err := gogen.Generate(sheet, gogen.Options{
			Package: opts.pkg,
			Var:     opts.varName,
			Source:  source,
		})
		if err != nil {
			return err
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(stderr, "Warning: %s\n", w)
		}
		_, err = io.WriteString(stdout, result.Code)
		return err

	default:
		return sheet.Render(stdout)
	}
}
