// Package lexer tokenizes textual type expressions.
//
// The token stream contains identifiers and the punctuation characters
// | , ( ) [ ] *. Whitespace is skipped and never emitted. Any other
// character is a lexical error.
package lexer

import "unicode/utf8"

type Lexer struct {
	buf []rune
	ch  rune
	i   int
	pos Pos
}

const eof = -1

func New(src string) *Lexer {
	l := &Lexer{
		buf: []rune(src),
		i:   -1,
		pos: Pos{Offset: -1, Line: 1, Column: 0},
	}
	l.next()
	return l
}

func (l *Lexer) next() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	}
	l.i++
	l.pos.Offset++
	l.pos.Column++
	if l.i < len(l.buf) {
		l.ch = l.buf[l.i]
	} else {
		l.ch = eof
	}
}

// Identifiers are ASCII-only by contract: [A-Za-z_][A-Za-z_0-9]*.
// Anything outside that set, whitespace, and punctuation is rejected.
func isLetter(ch rune) bool {
	return ch == '_' || 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\f' || ch == '\r' || ch == '\n'
}

func (l *Lexer) lexIdent() Token {
	startPos := l.pos
	start := l.i
	endPos := l.pos
	for isLetter(l.ch) || isDecimal(l.ch) {
		endPos = l.pos
		l.next()
	}
	return Token{Type: Ident, Span: Span{Start: startPos, End: endPos}, Data: string(l.buf[start:l.i])}
}

func (l *Lexer) Next() Token {
	for isSpace(l.ch) {
		l.next()
	}
	startPos := l.pos
	if isLetter(l.ch) {
		return l.lexIdent()
	}
	if ttyp, ok := SingleCharTokens[l.ch]; ok {
		l.next()
		return Token{Type: ttyp, Span: Span{Start: startPos, End: startPos}}
	}
	ch := l.ch
	l.next()
	return Token{Type: Illegal, Span: Span{Start: startPos, End: startPos}, Data: string(ch)}
}

// Tokenize returns the full token stream for src, ending with an EOF
// token. It fails with *LexError on the first unrecognized character.
func Tokenize(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok := l.Next()
		if tok.Type == Illegal {
			ch, _ := utf8.DecodeRuneInString(tok.Data)
			return nil, &LexError{Pos: tok.Span.Start, Char: ch}
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}
