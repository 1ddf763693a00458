package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/slatelang/slate/internal/backend"
	"github.com/slatelang/slate/internal/bytecode"
	"github.com/slatelang/slate/internal/config"
	"github.com/slatelang/slate/internal/diagnostics"
	"github.com/slatelang/slate/internal/pipeline"
	"github.com/slatelang/slate/internal/prettyprinter"
	"github.com/slatelang/slate/internal/token"
)

const usage = `Usage: slate [options] [file]

Runs a Slate program from file (or stdin when piped).

Options:
  -t, --tokens    stop after lexing and print the token stream
  -a, --ast       stop after parsing and print the syntax tree
  -ir, --ir       stop after semantic analysis and print the IR
  -c, --code      stop after code generation and print the bytecode
  -e, --execute   compile and run (the default)
  -v, --verbose   dump every intermediate stage to stderr
  -h, --help      show this help
`

type options struct {
	stage    string
	stageSet bool
	verbose  bool
	path     string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for _, arg := range args {
		switch arg {
		case "-t", "--tokens":
			opts.stage, opts.stageSet = "tokens", true
		case "-a", "--ast":
			opts.stage, opts.stageSet = "ast", true
		case "-ir", "--ir":
			opts.stage, opts.stageSet = "ir", true
		case "-c", "--code":
			opts.stage, opts.stageSet = "code", true
		case "-e", "--execute":
			opts.stage, opts.stageSet = "", true
		case "-v", "--verbose":
			opts.verbose = true
		case "-h", "--help":
			fmt.Print(usage)
			os.Exit(0)
		default:
			if len(arg) > 0 && arg[0] == '-' {
				return nil, fmt.Errorf("unknown option %s", arg)
			}
			if opts.path != "" {
				return nil, fmt.Errorf("only one source file may be given")
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	// No file: read from stdin when piped.
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no input: give a source file or pipe from stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stageProcessors selects the pipeline for the requested stop stage.
// An empty stage compiles everything and executes. Verbose mode always
// lexes so the token stream is available for dumping.
func stageProcessors(stage string, verbose bool) []pipeline.Processor {
	var procs []pipeline.Processor
	if verbose || stage == "tokens" {
		procs = append(procs, pipeline.LexerProcessor{})
	}
	switch stage {
	case "tokens":
	case "ast":
		procs = append(procs, pipeline.ParserProcessor{})
	case "ir":
		procs = append(procs, pipeline.ParserProcessor{}, pipeline.SemanticProcessor{})
	case "code":
		procs = append(procs, pipeline.ParserProcessor{}, pipeline.SemanticProcessor{}, pipeline.CodegenProcessor{})
	default:
		procs = append(procs,
			pipeline.ParserProcessor{},
			pipeline.SemanticProcessor{},
			pipeline.CodegenProcessor{},
			backend.NewExecutionProcessor(backend.NewVM()),
		)
	}
	return procs
}

func dumpTokens(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%4d:%-4d %-10s %q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
	}
}

func dumpStage(w io.Writer, stage string, ctx *pipeline.PipelineContext) {
	switch stage {
	case "tokens":
		dumpTokens(w, ctx.Tokens)
	case "ast":
		fmt.Fprint(w, prettyprinter.Tree(ctx.AstRoot))
	case "ir":
		fmt.Fprint(w, ctx.Unit.String())
	case "code":
		fmt.Fprint(w, bytecode.Disassemble(ctx.Program))
	}
}

// dumpVerbose writes every intermediate artifact the pipeline produced
// to stderr, each under a stage header.
func dumpVerbose(w io.Writer, ctx *pipeline.PipelineContext) {
	if ctx.Tokens != nil {
		fmt.Fprintln(w, "=== tokens ===")
		dumpTokens(w, ctx.Tokens)
	}
	if ctx.AstRoot != nil {
		fmt.Fprintln(w, "=== ast ===")
		fmt.Fprintln(w, prettyprinter.Tree(ctx.AstRoot))
	}
	if ctx.Unit != nil {
		fmt.Fprint(w, ctx.Unit.String())
	}
	if ctx.Program != nil {
		fmt.Fprintln(w, "=== bytecode ===")
		fmt.Fprint(w, bytecode.Disassemble(ctx.Program))
	}
}

func run(cfg *config.Config, source, path string) int {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path

	if cfg.Verbose {
		name := path
		if name == "" {
			name = "<stdin>"
		}
		fmt.Fprintf(os.Stderr, "slate: compiling %s\n", name)
	}

	final := pipeline.New(stageProcessors(cfg.Stage, cfg.Verbose)...).Run(ctx)

	if cfg.Verbose {
		dumpVerbose(os.Stderr, final)
	}
	if final.Fault != nil {
		fmt.Fprintf(os.Stderr, "Internal error: %s\n", final.Fault)
		fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
		return 1
	}
	if len(final.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "Processing failed with errors:")
		diagnostics.PrintColor(os.Stderr, final.Errors, cfg.Color)
		return 1
	}

	dumpStage(os.Stdout, cfg.Stage, final)
	return 0
}

func main() {
	// Catch panics and show a user-friendly error.
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load(config.ConfigFileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if opts.stageSet {
		cfg.Stage = opts.stage
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	if opts.path != "" && !config.IsSourceFile(opts.path) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not look like a source file (expected %s)\n",
			filepath.Base(opts.path), config.SourceFileExt)
	}

	source, err := readInput(opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, source, opts.path))
}
