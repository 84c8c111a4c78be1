// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"ember/internal/errors"
	"ember/internal/parser"
)

const PROMPT = ">> "

// Session commands
const (
	QuitCommand   = ":quit"
	TokensCommand = ":tokens"
)

var log = commonlog.GetLogger("ember.repl")

// Start reads programs from in, one per line, and writes each tree or its
// diagnostics to out. It returns when in is exhausted or the quit command
// is entered.
func Start(in io.Reader, out io.Writer, opts ...parser.Option) error {
	scanner := bufio.NewScanner(in)
	showTokens := false

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case QuitCommand:
			return nil
		case TokensCommand:
			showTokens = !showTokens
			fmt.Fprintf(out, "token output %s\n", onOff(showTokens))
			continue
		}

		log.Debugf("evaluating %q", line)
		eval(out, line, showTokens, opts)
	}
}

func eval(out io.Writer, line string, showTokens bool, opts []parser.Option) {
	result := parser.Analyze(line, opts...)

	if showTokens {
		for _, tok := range result.Tokens {
			if tok.Lexeme != "" {
				fmt.Fprintln(out, tok.String())
			}
		}
	}

	if !result.OK() {
		reporter := errors.NewErrorReporter("<repl>", line)
		fmt.Fprint(out, reporter.FormatAll(result.Diagnostics, false))
		return
	}

	fmt.Fprintf(out, "AST:\n%s\n", result.Tree.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
