// Package parser implements a recursive descent parser for C struct declarations
package parser

import (
	"strconv"

	"github.com/raymyers/cparse/pkg/arena"
	"github.com/raymyers/cparse/pkg/cabs"
	"github.com/raymyers/cparse/pkg/ctypes"
	"github.com/raymyers/cparse/pkg/diag"
	"github.com/raymyers/cparse/pkg/lexer"
)

// Parser parses C declarations into a Cabs unit. Every node it builds is
// charged against the arena, and every spelling it keeps is interned there.
type Parser struct {
	l   *lexer.Lexer
	a   *arena.Arena
	tok lexer.Token // lookahead
}

// New creates a new Parser for the given lexer and reads the first token
func New(l *lexer.Lexer, a *arena.Arena) (*Parser, error) {
	p := &Parser{l: l, a: a}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) nextToken() error {
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) pos() diag.Pos {
	return diag.Pos{Filename: p.l.Filename(), Line: p.tok.Line, Column: p.tok.Column}
}

func (p *Parser) errUnexpected() error {
	return diag.Errorf(diag.SyntaxError, p.pos(), "unexpected '%s'.", p.tok.Spelling())
}

func (p *Parser) errMissing(t lexer.TokenType) error {
	return diag.Errorf(diag.SyntaxError, p.pos(), "missing '%s' before '%s'.", t, p.tok.Spelling())
}

// failAlloc positions an allocation failure at the lookahead token
func (p *Parser) failAlloc(err error) error {
	return diag.At(err, p.pos())
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.tok.Type == t
}

// accept consumes the lookahead if it has type t
func (p *Parser) accept(t lexer.TokenType) (bool, error) {
	if !p.curTokenIs(t) {
		return false, nil
	}
	return true, p.nextToken()
}

func (p *Parser) check(t lexer.TokenType) error {
	if !p.curTokenIs(t) {
		return p.errMissing(t)
	}
	return nil
}

func (p *Parser) expect(t lexer.TokenType) error {
	if err := p.check(t); err != nil {
		return err
	}
	return p.nextToken()
}

// scanSpelling interns the lookahead's text in the arena and advances
func (p *Parser) scanSpelling() (string, error) {
	s, err := p.a.Intern(p.tok.Text)
	if err != nil {
		return "", p.failAlloc(err)
	}
	return s, p.nextToken()
}

// ParseUnit parses declarations until the end of input
func (p *Parser) ParseUnit() (*cabs.Unit, error) {
	if err := arena.Reserve[cabs.Unit](p.a); err != nil {
		return nil, p.failAlloc(err)
	}
	unit := &cabs.Unit{}

	for !p.curTokenIs(lexer.TokenEOF) {
		var decl cabs.Decl
		switch p.tok.Type {
		case lexer.TokenStruct:
			s, err := p.parseStruct()
			if err != nil {
				return nil, err
			}
			decl = s
		default:
			return nil, p.errUnexpected()
		}
		if err := arena.Reserve[cabs.Decl](p.a); err != nil {
			return nil, p.failAlloc(err)
		}
		unit.Decls = append(unit.Decls, decl)
	}

	return unit, nil
}

// parseStruct parses: struct IDENT '{' { field-decl } '}' ';'
func (p *Parser) parseStruct() (cabs.Struct, error) {
	var s cabs.Struct

	if err := p.expect(lexer.TokenStruct); err != nil {
		return s, err
	}
	if err := p.check(lexer.TokenIdent); err != nil {
		return s, err
	}
	if err := arena.Reserve[cabs.Struct](p.a); err != nil {
		return s, p.failAlloc(err)
	}
	name, err := p.scanSpelling()
	if err != nil {
		return s, err
	}
	s.Name = name

	if err := p.expect(lexer.TokenLBrace); err != nil {
		return s, err
	}
	for !p.curTokenIs(lexer.TokenRBrace) && !p.curTokenIs(lexer.TokenEOF) {
		if err := p.parseFieldDecl(&s); err != nil {
			return s, err
		}
	}
	if err := p.expect(lexer.TokenRBrace); err != nil {
		return s, err
	}
	if err := p.expect(lexer.TokenSemicolon); err != nil {
		return s, err
	}

	return s, nil
}

// parseFieldDecl parses: type-spec declarator { ',' declarator } ';'
// and appends one field per declarator
func (p *Parser) parseFieldDecl(s *cabs.Struct) error {
	base, err := p.parseTypeSpec()
	if err != nil {
		return err
	}

	for {
		field, err := p.parseDeclarator(base)
		if err != nil {
			return err
		}
		s.Fields = append(s.Fields, field)

		more, err := p.accept(lexer.TokenComma)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	return p.expect(lexer.TokenSemicolon)
}

// parseDeclarator parses: { '*' } IDENT { '[' INTEGER ']' }
// Pointers wrap the base type before the name; each extent then wraps the
// result, so "T *x[N]" is an array of N pointers to T.
func (p *Parser) parseDeclarator(base ctypes.Type) (cabs.Field, error) {
	var field cabs.Field
	if err := arena.Reserve[cabs.Field](p.a); err != nil {
		return field, p.failAlloc(err)
	}

	typ := base
	for p.curTokenIs(lexer.TokenStar) {
		if err := arena.Reserve[ctypes.Tpointer](p.a); err != nil {
			return field, p.failAlloc(err)
		}
		typ = ctypes.Tpointer{Elem: typ}
		if err := p.nextToken(); err != nil {
			return field, err
		}
	}

	if err := p.check(lexer.TokenIdent); err != nil {
		return field, err
	}
	name, err := p.scanSpelling()
	if err != nil {
		return field, err
	}

	for p.curTokenIs(lexer.TokenLBracket) {
		if err := p.nextToken(); err != nil {
			return field, err
		}
		if err := p.check(lexer.TokenInt); err != nil {
			return field, err
		}
		// Decimal only; a leading zero would be octal in C.
		text := p.tok.Text
		size, err := strconv.ParseInt(string(text), 10, 64)
		if err != nil || (len(text) > 1 && text[0] == '0') {
			return field, diag.Errorf(diag.SyntaxError, p.pos(), "invalid array extent '%s'.", p.tok.Spelling())
		}
		if err := p.nextToken(); err != nil {
			return field, err
		}
		if err := p.expect(lexer.TokenRBracket); err != nil {
			return field, err
		}
		if err := arena.Reserve[ctypes.Tarray](p.a); err != nil {
			return field, p.failAlloc(err)
		}
		typ = ctypes.Tarray{Elem: typ, Size: size}
	}

	field.Name = name
	field.Type = typ
	return field, nil
}
