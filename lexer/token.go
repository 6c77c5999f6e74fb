package lexer

import "fmt"

type TokenType int

const (
	EOF TokenType = iota
	Or
	Comma
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	Star
	Ident
	Illegal
)

var SingleCharTokens = map[rune]TokenType{
	'|': Or,
	',': Comma,
	'(': LeftParen,
	')': RightParen,
	'[': LeftBracket,
	']': RightBracket,
	'*': Star,
	eof: EOF,
}

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Or:
		return "'|'"
	case Comma:
		return "','"
	case LeftParen:
		return "'('"
	case RightParen:
		return "')'"
	case LeftBracket:
		return "'['"
	case RightBracket:
		return "']'"
	case Star:
		return "'*'"
	case Ident:
		return "identifier"
	case Illegal:
		return "illegal"
	}
	panic("unreachable")
}

type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) Min(other Pos) Pos {
	if p.Column == 0 {
		return other
	}
	if other.Column == 0 {
		return p
	}
	if p.Offset < other.Offset {
		return p
	}
	return other
}

func (p Pos) Max(other Pos) Pos {
	if p.Column == 0 {
		return other
	}
	if other.Column == 0 {
		return p
	}
	if p.Offset > other.Offset {
		return p
	}
	return other
}

type Span struct {
	Start Pos
	End   Pos
}

func (span Span) Add(other Span) Span {
	return Span{span.Start.Min(other.Start), span.End.Max(other.End)}
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

type Token struct {
	Type TokenType
	Span Span
	Data string
}

func (t Token) String() string {
	if t.Data == "" {
		return fmt.Sprintf("%s:%s", t.Span, t.Type)
	}
	return fmt.Sprintf("%s:%s %q", t.Span, t.Type, t.Data)
}

func (a Token) Eq(b Token) bool {
	return a.Type == b.Type && a.Data == b.Data
}

func (a Token) ExactEq(b Token) bool {
	return a.Type == b.Type && a.Span == b.Span && a.Data == b.Data
}

// LexError reports a character that cannot begin any token.
type LexError struct {
	Pos  Pos
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: unexpected character %q", e.Pos.Line, e.Pos.Column, e.Char)
}
