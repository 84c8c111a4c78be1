package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ember/internal/parser"
)

// Define the set of supported semantic token types, advertised in the legend
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"string",
	"number",
	"operator",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
}

// Version is reported to clients in the initialize response
var Version = "0.1.0"

var log = commonlog.GetLogger("ember.lsp")

// document is the editor's current text of one file and the result of
// analysing it.
type document struct {
	text        string
	result      *parser.ParseResult
	identifiers []string
}

// EmberHandler implements the LSP server handlers for the ember language.
// Documents are kept in memory as the editor sends them; nothing is read
// from disk.
type EmberHandler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	options   []parser.Option
}

// NewEmberHandler creates a handler. The options are passed to the parser
// for every analysis.
func NewEmberHandler(options ...parser.Option) *EmberHandler {
	return &EmberHandler{
		documents: make(map[protocol.DocumentUri]*document),
		options:   options,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *EmberHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "ember",
			Version: ptrString(Version),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *EmberHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *EmberHandler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *EmberHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *EmberHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("opened %s", uri)

	h.publish(ctx, uri, h.update(uri, params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Whole-document changes replace the text; ranged changes are applied in
// order.
func (h *EmberHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed %s", uri)

	h.mu.RLock()
	doc, ok := h.documents[uri]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("document %s is not open", uri)
	}

	text := doc.text
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		default:
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	h.publish(ctx, uri, h.update(uri, text))
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *EmberHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.documents, uri)
	h.mu.Unlock()

	h.publish(ctx, uri, &document{})
	return nil
}

// TextDocumentCompletion offers keywords and the document's identifiers,
// fuzzy-ranked against the word before the cursor
func (h *EmberHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	offset := offsetAt(doc.text, params.Position)
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completionItems(doc.text, offset, doc.identifiers),
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *EmberHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc.text, doc.result.Tokens, doc.result.Tree)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

func (h *EmberHandler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

// update analyses text and stores it as the document's current state.
// Identifiers from the last successful scan are kept while the text has
// lexical errors, so completion keeps working during edits.
func (h *EmberHandler) update(uri protocol.DocumentUri, text string) *document {
	result := parser.Analyze(text, h.options...)

	h.mu.Lock()
	defer h.mu.Unlock()

	doc := &document{text: text, result: result}
	if result.Tokens != nil {
		doc.identifiers = identifierNames(result.Tokens)
	} else if prev, ok := h.documents[uri]; ok {
		doc.identifiers = prev.identifiers
	}
	h.documents[uri] = doc

	return doc
}

// publish sends the document's diagnostics. An empty list clears what
// the editor showed before.
func (h *EmberHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	diagnostics := make([]protocol.Diagnostic, 0)
	if doc.result != nil {
		diagnostics = ConvertDiagnostics(doc.text, doc.result.Diagnostics)
	}

	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// applyChange replaces the range of a change in text. A change without a
// range replaces the whole text.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}

	start := offsetAt(text, change.Range.Start)
	end := offsetAt(text, change.Range.End)
	if end < start {
		start, end = end, start
	}
	return text[:start] + change.Text + text[end:]
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
