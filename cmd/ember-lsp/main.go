// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"ember/internal/config"
	"ember/internal/lsp"
	"ember/internal/parser"
)

const lsName = "ember" // Name identifier for the language server

var handler protocol.Handler // Protocol handler instance (wired up below)

var cli struct {
	Config string `help:"Configuration file." placeholder:"FILE"`
	Debug  bool   `help:"Enable internal GLSP debug logs."`
}

func main() {
	kong.Parse(&cli, kong.Name("ember-lsp"), kong.Description("Language server for ember over stdio."))

	log := commonlog.GetLogger("ember.lsp")

	conf, err := config.Load(cli.Config)
	if err != nil {
		commonlog.Configure(1, nil)
		log.Errorf("%s", err)
		os.Exit(1)
	}

	// Logs go to stderr unless a file is configured; stdout carries the protocol.
	var logFile *string
	if conf.Log.File != "" {
		logFile = &conf.Log.File
	}
	commonlog.Configure(conf.Log.Verbosity, logFile)

	emberHandler := lsp.NewEmberHandler(parser.WithMaxDepth(conf.MaxDepth))

	handler = protocol.Handler{
		Initialize:                     emberHandler.Initialize,
		Initialized:                    emberHandler.Initialized,
		Shutdown:                       emberHandler.Shutdown,
		SetTrace:                       emberHandler.SetTrace,
		TextDocumentDidOpen:            emberHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           emberHandler.TextDocumentDidClose,
		TextDocumentDidChange:          emberHandler.TextDocumentDidChange,
		TextDocumentCompletion:         emberHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: emberHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, cli.Debug)

	log.Info("starting ember language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
