// Package parser parses textual type expressions into typing
// descriptors.
//
// Grammar:
//
//	chunk      := typeUnion EOF
//	typeUnion  := typeVariable ('|' typeVariable)*
//	typeList   := typeUnion (',' typeUnion)*
//	typeVariable := '*'? baseType
//	baseType   := 'any' | 'int' | 'float' | 'str' | 'bool'
//	            | '[' typeUnion? ']'
//	            | '(' typeList ')'
//
// A '*' marker is only meaningful on a typeVariable that is by itself a
// tuple element; anywhere else it is a syntax error.
package parser

import (
	"fmt"
	"strings"

	"github.com/gadalang/gada-runtime/lexer"
	"github.com/gadalang/gada-runtime/typing"
)

// SyntaxError reports a token stream that does not match the grammar,
// carrying the set of acceptable lexemes and the token actually found.
type SyntaxError struct {
	Span     lexer.Span
	Expected []string
	Found    lexer.Token
}

func (e *SyntaxError) Error() string {
	found := e.Found.Type.String()
	if e.Found.Type == lexer.Ident {
		found = fmt.Sprintf("%q", e.Found.Data)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Span, strings.Join(e.Expected, " or "), found)
}

var baseTypeExpected = []string{"'any'", "'int'", "'float'", "'str'", "'bool'", "'['", "'('"}

type parser struct {
	toks []lexer.Token
	i    int
	tok  lexer.Token
}

// Parse parses a complete type expression and returns its normalized
// descriptor. It fails with *lexer.LexError or *SyntaxError.
func Parse(src string) (typing.Type, error) {
	chunk, err := ParseChunk(src)
	if err != nil {
		return nil, err
	}
	return lowerUnion(chunk.Union)
}

// ParseChunk returns the raw syntax tree for src without lowering it.
func ParseChunk(src string) (Chunk, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return Chunk{}, err
	}
	p := &parser{toks: toks}
	p.next()
	return p.parseChunk()
}

func (p *parser) next() {
	if p.i < len(p.toks) {
		p.tok = p.toks[p.i]
		p.i++
	}
}

func (p *parser) expect(ttyp lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != ttyp {
		return lexer.Token{}, &SyntaxError{
			Span:     p.tok.Span,
			Expected: []string{ttyp.String()},
			Found:    p.tok,
		}
	}
	tok := p.tok
	p.next()
	return tok, nil
}

func (p *parser) parseChunk() (Chunk, error) {
	union, err := p.parseUnion()
	if err != nil {
		return Chunk{}, err
	}
	if p.tok.Type != lexer.EOF {
		return Chunk{}, &SyntaxError{
			Span:     p.tok.Span,
			Expected: []string{lexer.EOF.String()},
			Found:    p.tok,
		}
	}
	return Chunk{Union: union}, nil
}

func (p *parser) parseUnion() (TypeUnion, error) {
	var union TypeUnion
	for {
		v, err := p.parseVariable()
		if err != nil {
			return TypeUnion{}, err
		}
		union.Vars = append(union.Vars, v)
		if p.tok.Type != lexer.Or {
			return union, nil
		}
		p.next()
	}
}

func (p *parser) parseVariable() (TypeVariable, error) {
	var v TypeVariable
	if p.tok.Type == lexer.Star {
		v.Star = p.tok
		p.next()
	}
	base, err := p.parseBase()
	if err != nil {
		return TypeVariable{}, err
	}
	v.Base = base
	return v, nil
}

func (p *parser) parseBase() (Node, error) {
	switch p.tok.Type {
	case lexer.Ident:
		switch p.tok.Data {
		case "any", "int", "float", "str", "bool":
			tok := p.tok
			p.next()
			return BaseName{Name: tok}, nil
		}
	case lexer.LeftBracket:
		lb := p.tok
		p.next()
		if p.tok.Type == lexer.RightBracket {
			rb := p.tok
			p.next()
			return ListExpr{LeftBracket: lb, RightBracket: rb}, nil
		}
		union, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		rb, err := p.expect(lexer.RightBracket)
		if err != nil {
			return nil, err
		}
		return ListExpr{LeftBracket: lb, Elem: &union, RightBracket: rb}, nil
	case lexer.LeftParen:
		lp := p.tok
		p.next()
		var items []TypeUnion
		if p.tok.Type != lexer.RightParen {
			for {
				item, err := p.parseUnion()
				if err != nil {
					return nil, err
				}
				items = append(items, item)
				if p.tok.Type != lexer.Comma {
					break
				}
				p.next()
			}
		}
		rp, err := p.expect(lexer.RightParen)
		if err != nil {
			return nil, err
		}
		return TupleExpr{LeftParen: lp, Items: items, RightParen: rp}, nil
	}
	return nil, &SyntaxError{Span: p.tok.Span, Expected: baseTypeExpected, Found: p.tok}
}

// splatError rejects a '*' marker outside of a tuple-element position.
func splatError(star lexer.Token) *SyntaxError {
	return &SyntaxError{Span: star.Span, Expected: baseTypeExpected, Found: star}
}

// lowerUnion lowers a union production in a position where splats are
// not allowed: the top level, list items and members of multi-variable
// unions.
func lowerUnion(u TypeUnion) (typing.Type, error) {
	members := make([]typing.Type, 0, len(u.Vars))
	for _, v := range u.Vars {
		if v.Star.Type == lexer.Star {
			return nil, splatError(v.Star)
		}
		t, err := lowerBase(v.Base)
		if err != nil {
			return nil, err
		}
		members = append(members, t)
	}
	return typing.MakeUnion(members...), nil
}

// lowerElem lowers a tuple entry. The '*' marker is legal only when the
// entry is a single typeVariable; on a member of a multi-variable union
// it is rejected by lowerUnion.
func lowerElem(u TypeUnion) (typing.Element, error) {
	if len(u.Vars) == 1 {
		v := u.Vars[0]
		t, err := lowerBase(v.Base)
		if err != nil {
			return typing.Element{}, err
		}
		return typing.Element{Type: t, Splat: v.Star.Type == lexer.Star}, nil
	}
	t, err := lowerUnion(u)
	if err != nil {
		return typing.Element{}, err
	}
	return typing.Element{Type: t}, nil
}

func lowerBase(n Node) (typing.Type, error) {
	switch n := n.(type) {
	case BaseName:
		switch n.Name.Data {
		case "any":
			return typing.Any, nil
		case "int":
			return typing.Int, nil
		case "float":
			return typing.Float, nil
		case "str":
			return typing.String, nil
		case "bool":
			return typing.Bool, nil
		}
	case ListExpr:
		if n.Elem == nil {
			return typing.List{}, nil
		}
		elem, err := lowerUnion(*n.Elem)
		if err != nil {
			return nil, err
		}
		return typing.List{Elem: elem}, nil
	case TupleExpr:
		elems := make([]typing.Element, len(n.Items))
		for i, item := range n.Items {
			elem, err := lowerElem(item)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return typing.Tuple{Elems: elems}, nil
	}
	panic("unreachable")
}
