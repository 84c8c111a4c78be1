package token

type keyword struct {
	Type  TokenType
	Value any
}

var keywords = map[string]keyword{
	"let":    {Type: LET},
	"fn":     {Type: FN},
	"return": {Type: RETURN},
	"for":    {Type: FOR},
	"while":  {Type: WHILE},
	"if":     {Type: IF},
	"else":   {Type: ELSE},
	"null":   {Type: NULL},
	"print":  {Type: PRINT},
	"true":   {Type: BOOLEAN, Value: true},
	"false":  {Type: BOOLEAN, Value: false},
}

// LookupIdent resolves a scanned word to its token type and literal value.
// Words that are not reserved come back as IDENTIFIER carrying their text.
func LookupIdent(ident string) (TokenType, any) {
	if kw, ok := keywords[ident]; ok {
		return kw.Type, kw.Value
	}
	return IDENTIFIER, ident
}

// Keywords returns the reserved words, booleans included, in no particular
// order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	return words
}
