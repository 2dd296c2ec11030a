package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/raymyers/cparse/pkg/diag"
)

type expectedToken struct {
	expectedType    TokenType
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()

	l := New(strings.NewReader(input), "test.h")

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Spelling() != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Spelling())
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `struct point { int x, *y[3]; };`

	checkTokens(t, input, []expectedToken{
		{TokenStruct, "struct"},
		{TokenIdent, "point"},
		{TokenLBrace, "{"},
		{TokenInt_, "int"},
		{TokenIdent, "x"},
		{TokenComma, ","},
		{TokenStar, "*"},
		{TokenIdent, "y"},
		{TokenLBracket, "["},
		{TokenInt, "3"},
		{TokenRBracket, "]"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenSemicolon, ";"},
		{TokenEOF, "end-of-file"},
	})
}

func TestPunctuation(t *testing.T) {
	input := ", ; ( ) [ ] { } : * &"

	checkTokens(t, input, []expectedToken{
		{TokenComma, ","},
		{TokenSemicolon, ";"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBracket, "["},
		{TokenRBracket, "]"},
		{TokenLBrace, "{"},
		{TokenRBrace, "}"},
		{TokenColon, ":"},
		{TokenStar, "*"},
		{TokenAmpersand, "&"},
		{TokenEOF, "end-of-file"},
	})
}

func TestNumbers(t *testing.T) {
	input := "42 0 3.14 .5 7. 1e10 2.5E-3 10u"

	checkTokens(t, input, []expectedToken{
		{TokenInt, "42"},
		{TokenInt, "0"},
		{TokenFloat, "3.14"},
		{TokenFloat, ".5"},
		{TokenFloat, "7."},
		{TokenFloat, "1e10"},
		{TokenFloat, "2.5E-3"},
		{TokenInt, "10"},
		{TokenIdent, "u"},
		{TokenEOF, "end-of-file"},
	})
}

func TestKeywords(t *testing.T) {
	for typ := TokenChar; typ <= TokenWhile; typ++ {
		word := typ.String()
		t.Run(word, func(t *testing.T) {
			checkTokens(t, word, []expectedToken{{typ, word}, {TokenEOF, "end-of-file"}})
		})
	}
}

func TestKeywordLookalikes(t *testing.T) {
	// Every spelling here shares a prefix with a keyword but is not one.
	words := []string{
		"c", "cha", "chars", "d", "dou", "doub", "doubles", "dox",
		"e", "el", "elsewhere", "en", "enums", "f", "fo", "fort", "fl", "floaty",
		"i", "iff", "in", "int32", "integer", "l", "lo", "longer",
		"s", "st", "str", "structure", "sta", "statics", "sh", "shorts", "si", "signedness",
		"t", "typedefs", "u", "uns", "unsigned_", "v", "volatile2", "w", "whiles",
		"_struct", "Struct", "x_1",
	}
	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			checkTokens(t, word+";", []expectedToken{
				{TokenIdent, word},
				{TokenSemicolon, ";"},
				{TokenEOF, "end-of-file"},
			})
		})
	}
}

func TestPositions(t *testing.T) {
	input := "struct S {\n\tint x;\n};"

	tests := []struct {
		spelling     string
		line, column int
	}{
		{"struct", 1, 1},
		{"S", 1, 8},
		{"{", 1, 10},
		{"int", 2, 2},
		{"x", 2, 6},
		{";", 2, 7},
		{"}", 3, 1},
		{";", 3, 2},
	}

	l := New(strings.NewReader(input), "test.h")
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Spelling() != tt.spelling {
			t.Fatalf("tests[%d] - spelling = %q, want %q", i, tok.Spelling(), tt.spelling)
		}
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("tests[%d] %q at %d:%d, want %d:%d",
				i, tt.spelling, tok.Line, tok.Column, tt.line, tt.column)
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		input   string
		wantMsg string
	}{
		{"int x;\n  @", "at test.h:2:3: error: unexpected '@'."},
		{"a . b", "at test.h:1:3: error: unexpected '.'."},
		{"/* c */", "at test.h:1:1: error: unexpected '/'."},
		{"x = 1", "at test.h:1:3: error: unexpected '='."},
		{"int é;", "at test.h:1:5: error: unexpected 'é'."},
		{"a 世", "at test.h:1:3: error: unexpected '世'."},
		{"int \x00 x", "at test.h:1:5: error: unexpected '\\x00'."},
		{"x \x7f", "at test.h:1:3: error: unexpected '\\x7f'."},
		{"x \xff y", "at test.h:1:3: error: unexpected '\\xff'."},
		{"x \xc3", "at test.h:1:3: error: unexpected '\\xc3'."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(strings.NewReader(tt.input), "test.h")
			var err error
			for err == nil {
				var tok Token
				tok, err = l.NextToken()
				if err == nil && tok.Type == TokenEOF {
					t.Fatal("reached end of input without an error")
				}
			}
			if !errors.Is(err, diag.ErrSyntax) {
				t.Errorf("expected ErrSyntax, got %v", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("struct"), iotest.ErrReader(boom))
	l := New(r, "test.h")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("first token: %v", err)
	}
	if tok.Type != TokenStruct {
		t.Fatalf("first token = %s, want struct", tok.Type)
	}

	_, err = l.NextToken()
	if diag.KindOf(err) != diag.InvalidInputFile {
		t.Fatalf("expected InvalidInputFile, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected the read error to be wrapped, got %v", err)
	}
}

func TestTokenTypeString(t *testing.T) {
	if TokenEOF.String() != "end-of-file" {
		t.Errorf("TokenEOF.String() = %q", TokenEOF.String())
	}
	if TokenType(-1).String() != "UNKNOWN" {
		t.Errorf("unknown token type should render as UNKNOWN")
	}
	if !TokenStruct.IsKeyword() || TokenIdent.IsKeyword() || TokenStar.IsKeyword() {
		t.Error("IsKeyword misclassifies tokens")
	}
}
