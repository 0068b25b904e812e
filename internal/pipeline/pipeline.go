package pipeline

import (
	"fmt"
	"io"
	"os"

	"snake/internal/ast"
	"snake/internal/lexer"
	"snake/internal/normal"
	"snake/internal/normalizer"
	"snake/internal/tokenizer"
)

// ---------------------------------------------------------------------------
// Options controls the behaviour of the front-end pipeline.
// ---------------------------------------------------------------------------

// Options configures the pipeline.
type Options struct {
	// Verbose enables per-stage trace lines on Log.
	Verbose bool

	// Log receives verbose output. Defaults to stdout.
	Log io.Writer
}

// DefaultOptions returns quiet options writing to stdout.
func DefaultOptions() *Options {
	return &Options{Log: os.Stdout}
}

// ---------------------------------------------------------------------------
// Result holds the output of every stage that ran.
// ---------------------------------------------------------------------------

type Result struct {
	Words  []string       // tokenizer output
	Tokens []lexer.Token  // lexer output
	Instrs []normal.Instr // normalizer output
	IRDump string         // human-readable Normal form (for debugging)
}

func (o *Options) tracef(format string, args ...any) {
	if !o.Verbose {
		return
	}
	w := o.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "[pipeline] "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Front — source text → words → tokens
// ---------------------------------------------------------------------------

// Front tokenizes and lexes src.
func Front(src string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	opts.tracef("Tokenizing %d bytes...", len(src))
	words := tokenizer.Tokenize(src)
	opts.tracef("Tokenizing complete. %d words produced.", len(words))

	opts.tracef("Lexing...")
	tokens, err := lexer.Lex(words)
	if err != nil {
		return &Result{Words: words}, fmt.Errorf("lexing failed: %w", err)
	}
	opts.tracef("Lexing complete. %d tokens produced.", len(tokens))

	return &Result{Words: words, Tokens: tokens}, nil
}

// ---------------------------------------------------------------------------
// Lower — Snake tree → Normal form
// ---------------------------------------------------------------------------

// Lower normalizes a parsed program. Every call starts from a fresh
// environment, so separate units never share bindings.
func Lower(program []ast.Node, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	opts.tracef("Normalizing %d top-level statements...", len(program))
	if opts.Verbose {
		opts.tracef("--- Snake tree ---\n%s--- End Snake tree ---", ast.DebugString(program))
	}

	instrs, err := normalizer.Normalize(program)
	if err != nil {
		return nil, fmt.Errorf("normalization failed: %w", err)
	}

	result := &Result{Instrs: instrs, IRDump: normal.DebugDump(instrs)}
	opts.tracef("Normalizing complete. %d instructions produced.", len(instrs))
	if opts.Verbose {
		opts.tracef("--- Normal form ---\n%s--- End Normal form ---", result.IRDump)
	}
	return result, nil
}
