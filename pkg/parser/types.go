package parser

import (
	"github.com/raymyers/cparse/pkg/ctypes"
	"github.com/raymyers/cparse/pkg/lexer"
)

// pick selects the signed or unsigned variant of an integer kind
func pick(signed bool, s, u ctypes.PrimitiveKind) ctypes.PrimitiveKind {
	if signed {
		return s
	}
	return u
}

// parseTypeSpec parses a primitive type specifier:
//
//	[ signed | unsigned ] ( char | short [int] | int | long [long] [int] | long double | float | double )
//
// Without a signedness keyword, char is the distinct plain char kind and the
// other integer kinds are signed. "long double" ignores signedness.
func (p *Parser) parseTypeSpec() (ctypes.Type, error) {
	qualified := false
	signed := true

	switch p.tok.Type {
	case lexer.TokenSigned:
		qualified = true
	case lexer.TokenUnsigned:
		qualified = true
		signed = false
	}
	if qualified {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}

	var kind ctypes.PrimitiveKind
	switch p.tok.Type {
	case lexer.TokenChar:
		kind = pick(signed, ctypes.SignedChar, ctypes.UnsignedChar)
		if !qualified {
			kind = ctypes.Char
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}

	case lexer.TokenShort:
		kind = pick(signed, ctypes.SignedShort, ctypes.UnsignedShort)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if _, err := p.accept(lexer.TokenInt_); err != nil {
			return nil, err
		}

	case lexer.TokenInt_:
		kind = pick(signed, ctypes.SignedInt, ctypes.UnsignedInt)
		if err := p.nextToken(); err != nil {
			return nil, err
		}

	case lexer.TokenLong:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		isDouble, err := p.accept(lexer.TokenDouble)
		if err != nil {
			return nil, err
		}
		if isDouble {
			return ctypes.Primitive(ctypes.LongDouble), nil
		}
		kind = pick(signed, ctypes.SignedLong, ctypes.UnsignedLong)
		longLong, err := p.accept(lexer.TokenLong)
		if err != nil {
			return nil, err
		}
		if longLong {
			kind = pick(signed, ctypes.SignedLongLong, ctypes.UnsignedLongLong)
		}
		if _, err := p.accept(lexer.TokenInt_); err != nil {
			return nil, err
		}

	case lexer.TokenFloat_, lexer.TokenDouble:
		if qualified {
			return nil, p.errUnexpected()
		}
		kind = ctypes.Float
		if p.curTokenIs(lexer.TokenDouble) {
			kind = ctypes.Double
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}

	default:
		return nil, p.errUnexpected()
	}

	return ctypes.Primitive(kind), nil
}
