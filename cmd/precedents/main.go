package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/marsprecedents/internal/bulk"
	"github.com/dshills/marsprecedents/internal/casegen"
	"github.com/dshills/marsprecedents/internal/corpus"
	"github.com/dshills/marsprecedents/internal/drift"
	"github.com/dshills/marsprecedents/internal/logging"
	"github.com/dshills/marsprecedents/internal/render"
	"github.com/dshills/marsprecedents/internal/review"
	"github.com/dshills/marsprecedents/internal/schema"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitIO      = 1
	exitDrift   = 2
	exitBadFlag = 3
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// app holds the shared state of one invocation.
type app struct {
	verbose bool
	log     *zap.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// eachCase visits the corpus; replaced in tests.
var eachCase = casegen.Each

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(os.Args[1:]))
}

// run executes the command line and returns the process exit code. The
// logger is synced on every path, including failed commands.
func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err == nil {
		return 0
	}

	var ee *exitErr
	if errors.As(err, &ee) {
		fmt.Fprintln(a.stderr, "Error:", ee.msg)
		return ee.code
	}
	fmt.Fprintln(a.stderr, "Error:", err)
	return exitIO
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "precedents",
		Short:   "Generate the synthetic martian precedents bulk file",
		Long:    "precedents writes " + casegen.Filename + ": 200 deterministic governance cases in bulk-index NDJSON.",
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.New(a.verbose, a.stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(casegen.Filename)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Print processing steps to stderr")

	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Write " + casegen.Filename + " to the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(casegen.Filename)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "verify [file]",
		Short: "Check that a bulk file matches what generate would write",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := casegen.Filename
			if len(args) == 1 {
				path = args[0]
			}
			return a.runVerify(path)
		},
	})

	var format string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print verdict, sector and development type totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSummary(format)
		},
	}
	summaryCmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, md or yaml")
	root.AddCommand(summaryCmd)

	return root
}

func (a *app) runGenerate(path string) error {
	log := logging.Component(a.log, "generate")
	log.Debug("writing corpus", zap.String("path", path), zap.Int("cases", casegen.Count))

	if err := bulk.WriteFile(path); err != nil {
		return codeError(exitIO, "generating %s: %s", path, err)
	}

	fmt.Fprintf(a.stdout, "Generated %s with %d cases.\n", path, casegen.Count)
	return nil
}

func (a *app) runVerify(path string) error {
	log := logging.Component(a.log, "verify")

	var buf bytes.Buffer
	if err := bulk.Generate(&buf); err != nil {
		return codeError(exitIO, "generating reference corpus: %s", err)
	}
	want := corpus.FromBytes(casegen.Filename, buf.Bytes())

	got, err := corpus.Load(path)
	if err != nil {
		return codeError(exitIO, "loading %s: %s", path, err)
	}
	log.Debug("comparing corpora",
		zap.String("want", want.Hash),
		zap.String("got", got.Hash),
		zap.Int("lines", got.LineCount))

	if got.Hash == want.Hash {
		fmt.Fprintf(a.stdout, "%s matches (%s, %d lines)\n", path, got.Hash, got.LineCount)
		return nil
	}

	if pairs, err := got.Pairs(); err != nil {
		log.Warn("corpus does not decode", zap.Error(err))
	} else if wantPairs, err := want.Pairs(); err == nil {
		if ids := drift.Changed(wantPairs, pairs); len(ids) > 0 {
			log.Info("cases drifted", zap.Int("count", len(ids)), zap.Strings("ids", ids))
		}
	}

	fmt.Fprint(a.stderr, drift.Lines(want.Raw, got.Raw))
	return codeError(exitDrift, "%s drifted: %s, want %s", path, got.Hash, want.Hash)
}

func (a *app) runSummary(format string) error {
	renderer, err := render.NewRenderer(format)
	if err != nil {
		return codeError(exitBadFlag, "invalid format: %s", err)
	}

	tally := review.NewTally(casegen.IndexName)
	err = eachCase(func(_ int, _ schema.Header, r schema.Record) error {
		tally.Add(r)
		return nil
	})
	if err != nil {
		return codeError(exitIO, "tallying cases: %s", err)
	}
	s := tally.Summary()

	out, err := renderer.Render(&s)
	if err != nil {
		return codeError(exitIO, "rendering summary: %s", err)
	}
	if _, err := a.stdout.Write(out); err != nil {
		return codeError(exitIO, "writing summary: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return nil
}
