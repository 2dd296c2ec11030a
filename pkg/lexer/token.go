package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenIdent // foo, x
	TokenInt   // 42
	TokenFloat // 1.5, .5, 2e10

	// Keywords
	TokenChar     // char
	TokenDo       // do
	TokenDouble   // double
	TokenElse     // else
	TokenEnum     // enum
	TokenFloat_   // float
	TokenFor      // for
	TokenIf       // if
	TokenInt_     // int
	TokenLong     // long
	TokenShort    // short
	TokenSigned   // signed
	TokenStatic   // static
	TokenStruct   // struct
	TokenTypedef  // typedef
	TokenUnsigned // unsigned
	TokenVolatile // volatile
	TokenWhile    // while

	// Punctuation
	TokenComma     // ,
	TokenSemicolon // ;
	TokenLParen    // (
	TokenRParen    // )
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenLBrace    // {
	TokenRBrace    // }
	TokenColon     // :
	TokenStar      // *
	TokenAmpersand // &
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "end-of-file",
	TokenIdent:     "identifier",
	TokenInt:       "integer literal",
	TokenFloat:     "floating point literal",
	TokenChar:      "char",
	TokenDo:        "do",
	TokenDouble:    "double",
	TokenElse:      "else",
	TokenEnum:      "enum",
	TokenFloat_:    "float",
	TokenFor:       "for",
	TokenIf:        "if",
	TokenInt_:      "int",
	TokenLong:      "long",
	TokenShort:     "short",
	TokenSigned:    "signed",
	TokenStatic:    "static",
	TokenStruct:    "struct",
	TokenTypedef:   "typedef",
	TokenUnsigned:  "unsigned",
	TokenVolatile:  "volatile",
	TokenWhile:     "while",
	TokenComma:     ",",
	TokenSemicolon: ";",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenColon:     ":",
	TokenStar:      "*",
	TokenAmpersand: "&",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsKeyword reports whether t is one of the reserved words
func (t TokenType) IsKeyword() bool {
	return t >= TokenChar && t <= TokenWhile
}

// punctuation maps single-character tokens to their types
var punctuation = map[byte]TokenType{
	',': TokenComma,
	';': TokenSemicolon,
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	'{': TokenLBrace,
	'}': TokenRBrace,
	':': TokenColon,
	'*': TokenStar,
	'&': TokenAmpersand,
}

// Token represents a lexical token. Text aliases the lexer's scratch buffer
// and is only valid until the next call to NextToken.
type Token struct {
	Type   TokenType
	Text   []byte
	Line   int
	Column int
}

// Spelling returns a copy of the token text for use in diagnostics
func (t Token) Spelling() string {
	if t.Type == TokenEOF {
		return TokenEOF.String()
	}
	return string(t.Text)
}
