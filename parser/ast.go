package parser

import (
	"fmt"

	"github.com/gadalang/gada-runtime/lexer"
)

// Node is a raw syntax-tree node, one per grammar production. The raw
// tree is lowered into a normalized typing.Type before it reaches
// callers; union flattening and splat validation happen there, exactly
// once.
type Node interface {
	Span() lexer.Span
	ASTString(depth int) string
}

var (
	_ Node = Chunk{}
	_ Node = TypeUnion{}
	_ Node = TypeVariable{}
	_ Node = BaseName{}
	_ Node = ListExpr{}
	_ Node = TupleExpr{}
)

func indent(depth int) string {
	return fmt.Sprintf("%*s", depth*2, "")
}

// Chunk is a complete type expression: a union followed by EOF.
type Chunk struct {
	Union TypeUnion
}

func (c Chunk) Span() lexer.Span {
	return c.Union.Span()
}

func (c Chunk) ASTString(depth int) string {
	return fmt.Sprintf(
		"Chunk\n%sUnion: %s",
		indent(depth+1),
		c.Union.ASTString(depth+1))
}

// TypeUnion is one or more '|'-separated type variables.
type TypeUnion struct {
	Vars []TypeVariable
}

func (u TypeUnion) Span() lexer.Span {
	if len(u.Vars) == 0 {
		return lexer.Span{}
	}
	return u.Vars[0].Span().Add(u.Vars[len(u.Vars)-1].Span())
}

func (u TypeUnion) ASTString(depth int) string {
	s := fmt.Sprintf("TypeUnion\n%sVars: [", indent(depth+1))
	for _, v := range u.Vars {
		s += fmt.Sprintf("\n%s%s", indent(depth+2), v.ASTString(depth+2))
	}
	s += "]"
	return s
}

// TypeVariable is an optional '*' marker plus a base type. Star.Type is
// lexer.Star when the marker was present.
type TypeVariable struct {
	Star lexer.Token
	Base Node
}

func (v TypeVariable) Span() lexer.Span {
	if v.Star.Type == lexer.Star {
		return v.Star.Span.Add(v.Base.Span())
	}
	return v.Base.Span()
}

func (v TypeVariable) ASTString(depth int) string {
	if v.Star.Type == lexer.Star {
		return fmt.Sprintf(
			"TypeVariable\n%sStar: %s\n%sBase: %s",
			indent(depth+1),
			v.Star, indent(depth+1),
			v.Base.ASTString(depth+1))
	}
	return fmt.Sprintf(
		"TypeVariable\n%sBase: %s",
		indent(depth+1),
		v.Base.ASTString(depth+1))
}

// BaseName is one of the primitive type names: any, int, float, str,
// bool.
type BaseName struct {
	Name lexer.Token
}

func (b BaseName) Span() lexer.Span {
	return b.Name.Span
}

func (b BaseName) ASTString(depth int) string {
	return b.Name.String()
}

// ListExpr is '[' typeUnion? ']'. Elem is nil for the bare '[]'.
type ListExpr struct {
	LeftBracket  lexer.Token
	Elem         *TypeUnion
	RightBracket lexer.Token
}

func (l ListExpr) Span() lexer.Span {
	return l.LeftBracket.Span.Add(l.RightBracket.Span)
}

func (l ListExpr) ASTString(depth int) string {
	if l.Elem == nil {
		return "ListExpr []"
	}
	return fmt.Sprintf(
		"ListExpr\n%sElem: %s",
		indent(depth+1),
		l.Elem.ASTString(depth+1))
}

// TupleExpr is '(' typeList ')'. Items may be empty for '()'.
type TupleExpr struct {
	LeftParen  lexer.Token
	Items      []TypeUnion
	RightParen lexer.Token
}

func (t TupleExpr) Span() lexer.Span {
	return t.LeftParen.Span.Add(t.RightParen.Span)
}

func (t TupleExpr) ASTString(depth int) string {
	s := fmt.Sprintf("TupleExpr\n%sItems: [", indent(depth+1))
	for _, item := range t.Items {
		s += fmt.Sprintf("\n%s%s", indent(depth+2), item.ASTString(depth+2))
	}
	s += "]"
	return s
}
