package errors

// Error codes for the ember front end.
// These codes travel with every diagnostic and are reported to editors by
// the language server. The rendered caret text does not include them.
//
// Error code ranges:
// E0100-E0109: Lexical errors (scanner)
// E0110-E0129: Syntax errors (parser)
// E0130-E0199: Reserved for future use

const (
	// E0100: Character outside the language's alphabet
	ErrorIllegalCharacter = "E0100"

	// E0101: String literal without closing quote
	ErrorUnterminatedString = "E0101"

	// E0102: Second '.' inside a numeric literal
	ErrorUnexpectedDot = "E0102"

	// E0103: Numeric literal does not fit in 64 bits
	ErrorNumberOutOfRange = "E0103"

	// E0110: Token cannot start an expression
	ErrorUnexpectedPrefix = "E0110"

	// E0111: Token cannot continue an expression
	ErrorUnexpectedInfix = "E0111"

	// E0112: 'let' without an assignment
	ErrorInvalidLet = "E0112"

	// E0113: '(' without matching ')'
	ErrorMissingParen = "E0113"

	// E0114: Statement inside a block not followed by ';'
	ErrorMissingSemicolon = "E0114"

	// E0115: Block not closed before the end of input
	ErrorUnterminatedBlock = "E0115"

	// E0116: Assignment to something other than a variable
	ErrorInvalidAssignment = "E0116"

	// E0117: Assignment not followed by ';'
	ErrorAssignmentNotTerminated = "E0117"

	// E0118: Binary operator without right operand
	ErrorMissingOperand = "E0118"

	// E0119: Nesting deeper than the parser allows
	ErrorNestingTooDeep = "E0119"

	// E0120: '}' closing the program before the end of input
	ErrorUnmatchedBrace = "E0120"
)

// Messages shared by the scanner and the parser.
const (
	MsgIllegalCharacter       = "Illegal character"
	MsgUnterminatedString     = "String literal is not terminated"
	MsgUnexpectedDot          = "'.' is not expected here"
	MsgNumberOutOfRange       = "Numeric literal is out of range"
	MsgLetNotAssigned         = "expression should be assigned with '=' operator"
	MsgLetInvalid             = "Failed to parse let expression"
	MsgLetMissingName         = "Couldn't parse variable name of let"
	MsgGroupMissingExpression = "Couldn't parse nested expression"
	MsgMissingParen           = "No closing parenthesis found"
	MsgMissingSemicolon       = "Statement didn't close with a ';'"
	MsgUnterminatedBlock      = "Block didn't close with a '}'"
	MsgInvalidAssignment      = "Expression can only be assigned to a variable"
	MsgAssignNotTerminated    = "Statement not terminated properly"
	MsgMissingOperand         = "Failed to parse right expression"
	MsgNestingTooDeep         = "Expression is nested too deeply"
	MsgUnmatchedBrace         = "Unmatched '}'"
)
