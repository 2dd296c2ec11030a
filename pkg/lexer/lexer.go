// Package lexer turns the bytes of one C source file into tokens
package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/raymyers/cparse/pkg/diag"
)

const eof = -1

// Lexer tokenizes C declarations from a byte stream
type Lexer struct {
	r        *bufio.Reader
	filename string
	ch       int // current character, eof at end of input
	line     int
	column   int
	buf      []byte // text of the token being scanned
	err      error  // sticky read error
}

// New creates a Lexer reading from r. filename is only used in diagnostics.
func New(r io.Reader, filename string) *Lexer {
	l := &Lexer{
		r:        bufio.NewReader(r),
		filename: filename,
		line:     1,
		buf:      make([]byte, 0, 64),
	}
	l.readChar()
	return l
}

// Filename returns the name reported in diagnostics
func (l *Lexer) Filename() string {
	return l.filename
}

// Pos returns the position of the current character
func (l *Lexer) Pos() diag.Pos {
	return diag.Pos{Filename: l.filename, Line: l.line, Column: l.column}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	if l.err != nil {
		l.ch = eof
		return
	}
	b, err := l.r.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.err = err
		}
		l.ch = eof
		return
	}
	l.ch = int(b)
}

func (l *Lexer) peekChar() int {
	b, err := l.r.Peek(1)
	if err != nil {
		return eof
	}
	return int(b[0])
}

// push appends the current character to the token text and advances
func (l *Lexer) push() {
	l.buf = append(l.buf, byte(l.ch))
	l.readChar()
}

// NextToken scans and returns the next token. The end of input yields a
// TokenEOF token rather than an error.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	l.buf = l.buf[:0]

	tok := Token{Line: l.line, Column: l.column}

	switch {
	case l.ch == eof:
		if l.err != nil {
			return tok, &diag.Error{
				Kind: diag.InvalidInputFile,
				Pos:  l.Pos(),
				Msg:  "cannot read file: " + l.err.Error(),
				Err:  l.err,
			}
		}
		tok.Type = TokenEOF
	case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
		tok.Type = l.scanNumber()
	case isIdentChar(l.ch, true):
		tok.Type = l.scanWord()
	default:
		typ, ok := punctuation[byte(l.ch)]
		if !ok {
			return tok, diag.Errorf(diag.SyntaxError, l.Pos(), "unexpected %s.", l.quoteChar())
		}
		tok.Type = typ
		l.push()
	}

	tok.Text = l.buf
	return tok, nil
}

// quoteChar renders the current character for a diagnostic. A UTF-8 lead
// byte is decoded together with the continuation bytes still in the reader;
// control characters and invalid bytes are escaped.
func (l *Lexer) quoteChar() string {
	if l.ch < utf8.RuneSelf {
		return strconv.QuoteRuneToGraphic(rune(l.ch))
	}
	rest, _ := l.r.Peek(utf8.UTFMax - 1)
	seq := append([]byte{byte(l.ch)}, rest...)
	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError && size <= 1 {
		return fmt.Sprintf("'\\x%02x'", l.ch)
	}
	return strconv.QuoteRuneToGraphic(r)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// scanNumber reads an integer or floating literal. A '.' or an exponent
// turns the literal into a float.
func (l *Lexer) scanNumber() TokenType {
	typ := TokenInt
	for isDigit(l.ch) {
		l.push()
	}
	if l.ch == '.' {
		typ = TokenFloat
		l.push()
		for isDigit(l.ch) {
			l.push()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		typ = TokenFloat
		l.push()
		if l.ch == '+' || l.ch == '-' {
			l.push()
		}
		for isDigit(l.ch) {
			l.push()
		}
	}
	return typ
}

// exponentFollows reports whether the bytes after an 'e' form an exponent
func (l *Lexer) exponentFollows() bool {
	next, err := l.r.Peek(2)
	if len(next) == 0 {
		return false
	}
	if isDigit(int(next[0])) {
		return true
	}
	return err == nil && (next[0] == '+' || next[0] == '-') && isDigit(int(next[1]))
}

// scanWord reads an identifier or keyword. Keywords are recognized by
// walking their spellings character by character from the first letter; the
// moment the input leaves every keyword it is an identifier.
func (l *Lexer) scanWord() TokenType {
	first := l.ch
	l.push()

	typ := TokenIdent
	switch first {
	case 'c':
		typ = l.keyword("har", TokenChar)
	case 'd':
		typ = l.keyword("o", TokenDo)
		if typ == TokenDo && l.ch == 'u' {
			typ = l.keyword("uble", TokenDouble)
		}
	case 'e':
		switch l.ch {
		case 'l':
			typ = l.keyword("lse", TokenElse)
		case 'n':
			typ = l.keyword("num", TokenEnum)
		}
	case 'f':
		switch l.ch {
		case 'o':
			typ = l.keyword("or", TokenFor)
		case 'l':
			typ = l.keyword("loat", TokenFloat_)
		}
	case 'i':
		switch l.ch {
		case 'f':
			typ = l.keyword("f", TokenIf)
		case 'n':
			typ = l.keyword("nt", TokenInt_)
		}
	case 'l':
		typ = l.keyword("ong", TokenLong)
	case 's':
		switch l.ch {
		case 't':
			l.push()
			switch l.ch {
			case 'r':
				typ = l.keyword("ruct", TokenStruct)
			case 'a':
				typ = l.keyword("atic", TokenStatic)
			}
		case 'h':
			typ = l.keyword("hort", TokenShort)
		case 'i':
			typ = l.keyword("igned", TokenSigned)
		}
	case 't':
		typ = l.keyword("ypedef", TokenTypedef)
	case 'u':
		typ = l.keyword("nsigned", TokenUnsigned)
	case 'v':
		typ = l.keyword("olatile", TokenVolatile)
	case 'w':
		typ = l.keyword("hile", TokenWhile)
	}

	for isIdentChar(l.ch, false) {
		l.push()
		typ = TokenIdent
	}
	return typ
}

// keyword consumes the characters of rest that match the input and returns
// kw if all of them matched, TokenIdent otherwise
func (l *Lexer) keyword(rest string, kw TokenType) TokenType {
	for i := 0; i < len(rest); i++ {
		if l.ch != int(rest[i]) {
			return TokenIdent
		}
		l.push()
	}
	return kw
}

func isIdentChar(ch int, first bool) bool {
	return ('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		ch == '_' ||
		(!first && isDigit(ch))
}

func isDigit(ch int) bool {
	return '0' <= ch && ch <= '9'
}
