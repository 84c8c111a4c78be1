package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"ember/grammar"
	"ember/internal/ast"
	"ember/internal/config"
	"ember/internal/errors"
	"ember/internal/parser"
	"ember/repl"
)

// ParseCmd scans and parses a source file and prints its tree
type ParseCmd struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for standard input." name:"source"`
	Pretty bool   `help:"Show diagnostics with a file location header."`
}

func (c *ParseCmd) Run(ctx context.Context, cli *CLI, s *streams) error {
	name, source, err := readSource(c.Source, s.in)
	if err != nil {
		return err
	}

	startTime := time.Now()
	result := parser.Analyze(source, parser.WithMaxDepth(cli.MaxDepth))
	duration := formatDuration(time.Since(startTime))

	if !result.OK() {
		log.Debugf("%s: %d diagnostics", name, result.Diagnostics.Len())
		fmt.Fprint(s.err, errors.NewErrorReporter(name, source).FormatAll(result.Diagnostics, c.Pretty))
		if cli.Timing {
			fmt.Fprintln(s.err, color.RedString("Parsing failed after %s", duration))
		}
		return errFailed
	}

	out, err := formatTree(ctx, result.Tree, cli.Format)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)

	if cli.Timing {
		fmt.Fprintln(s.err, color.GreenString("Successfully processed %s in %s", name, duration))
	}
	return nil
}

// TokensCmd prints the token stream of a source file
type TokensCmd struct {
	Source string `arg:"" default:"-" help:"Source file, or '-' for standard input." name:"source"`
}

func (c *TokensCmd) Run(s *streams) error {
	name, source, err := readSource(c.Source, s.in)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(source)
	if err != nil {
		if diags, ok := err.(*errors.Diagnostics); ok {
			fmt.Fprint(s.err, errors.NewErrorReporter(name, source).FormatAll(diags, false))
			return errFailed
		}
		return err
	}

	for _, tok := range tokens {
		// The braces around the program have no source text.
		if tok.Lexeme == "" {
			continue
		}
		fmt.Fprintln(s.out, tok.String())
	}
	return nil
}

// ReplCmd starts the interactive session
type ReplCmd struct{}

func (c *ReplCmd) Run(cli *CLI, s *streams) error {
	if currentUser, err := user.Current(); err == nil {
		fmt.Fprintf(s.out, "Welcome to the ember REPL, %s!\n", currentUser.Username)
	} else {
		fmt.Fprintln(s.out, "Welcome to the ember REPL!")
	}

	return repl.Start(s.in, s.out, parser.WithMaxDepth(cli.MaxDepth))
}

// GrammarCmd prints the reference grammar or checks a file against it
type GrammarCmd struct {
	File string `arg:"" help:"Source file to check against the grammar." optional:""`
}

func (c *GrammarCmd) Run(s *streams) error {
	if c.File == "" {
		fmt.Fprintln(s.out, grammar.EBNF())
		return nil
	}

	program, err := grammar.ParseFile(c.File)
	if err != nil {
		source, readErr := os.ReadFile(c.File)
		if readErr != nil {
			return err
		}
		fmt.Fprint(s.err, grammar.FormatError(string(source), err))
		return errFailed
	}

	fmt.Fprintln(s.out, program.String())
	return nil
}

func readSource(path string, stdin io.Reader) (name, source string, err error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read standard input: %w", err)
		}
		return "<stdin>", string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return path, string(data), nil
}

func formatTree(ctx context.Context, tree *ast.Block, format string) (string, error) {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(ast.ToMap(tree), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode tree: %w", err)
		}
		return string(data) + "\n", nil
	case config.FormatYAML:
		data, err := yaml.MarshalContext(ctx, ast.ToMap(tree), yaml.Indent(2))
		if err != nil {
			return "", fmt.Errorf("failed to encode tree: %w", err)
		}
		return string(data), nil
	default:
		return tree.String() + "\n", nil
	}
}
