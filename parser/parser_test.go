package parser_test

import (
	"errors"
	"testing"

	"github.com/sanity-io/litter"

	"github.com/gadalang/gada-runtime/lexer"
	"github.com/gadalang/gada-runtime/parser"
	"github.com/gadalang/gada-runtime/typing"
)

func fixed(t typing.Type) typing.Element { return typing.Element{Type: t} }
func splat(t typing.Type) typing.Element { return typing.Element{Type: t, Splat: true} }

func TestParse(t *testing.T) {
	run := func(src string, want typing.Type) {
		t.Run(src, func(t *testing.T) {
			got, err := parser.Parse(src)
			if err != nil {
				t.Fatal(err)
			}
			if !want.Equal(got) {
				t.Errorf("got %s\nwant %s", litter.Sdump(got), litter.Sdump(want))
			}
		})
	}

	run("any", typing.Any)
	run("int", typing.Int)
	run("float", typing.Float)
	run("str", typing.String)
	run("bool", typing.Bool)
	run("  int\t", typing.Int)

	run("[]", typing.List{})
	run("[int]", typing.List{Elem: typing.Int})
	run("[int|str]", typing.List{Elem: typing.MakeUnion(typing.Int, typing.String)})
	run("[[]]", typing.List{Elem: typing.List{}})

	run("()", typing.Tuple{})
	run("(int)", typing.Tuple{Elems: []typing.Element{fixed(typing.Int)}})
	run("(int, str)", typing.Tuple{Elems: []typing.Element{fixed(typing.Int), fixed(typing.String)}})
	run("(int, *str, bool)", typing.Tuple{Elems: []typing.Element{
		fixed(typing.Int),
		splat(typing.String),
		fixed(typing.Bool),
	}})
	run("(*any)", typing.Tuple{Elems: []typing.Element{splat(typing.Any)}})
	run("(int|str, bool)", typing.Tuple{Elems: []typing.Element{
		fixed(typing.MakeUnion(typing.Int, typing.String)),
		fixed(typing.Bool),
	}})
	run("(*[str], (int))", typing.Tuple{Elems: []typing.Element{
		splat(typing.List{Elem: typing.String}),
		fixed(typing.Tuple{Elems: []typing.Element{fixed(typing.Int)}}),
	}})
	run("((int))", typing.Tuple{Elems: []typing.Element{
		fixed(typing.Tuple{Elems: []typing.Element{fixed(typing.Int)}}),
	}})

	run("int|str|float", typing.Union{Members: []typing.Type{typing.Int, typing.String, typing.Float}})
	run("int|int", typing.Int)
	run("int|str|int", typing.Union{Members: []typing.Type{typing.Int, typing.String}})
	run("[]|()", typing.Union{Members: []typing.Type{typing.List{}, typing.Tuple{}}})
	run("(*int, str)|bool", typing.Union{Members: []typing.Type{
		typing.Tuple{Elems: []typing.Element{splat(typing.Int), fixed(typing.String)}},
		typing.Bool,
	}})
}

// Rendering a parsed descriptor and parsing it back must yield an equal
// descriptor.
func TestParseStringRoundTrip(t *testing.T) {
	for _, src := range []string{
		"any",
		"[]",
		"[int|str]",
		"(int, *str, bool)",
		"int|str|float",
		"((int), [bool], *any)|str",
	} {
		t.Run(src, func(t *testing.T) {
			want, err := parser.Parse(src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := parser.Parse(want.String())
			if err != nil {
				t.Fatalf("reparsing %q: %v", want.String(), err)
			}
			if !want.Equal(got) {
				t.Errorf("got %s\nwant %s", litter.Sdump(got), litter.Sdump(want))
			}
		})
	}
}

func TestASTString(t *testing.T) {
	run := func(src, want string) {
		t.Run(src, func(t *testing.T) {
			chunk, err := parser.ParseChunk(src)
			if err != nil {
				t.Fatal(err)
			}
			if got := chunk.ASTString(0); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}

	run("[int|str]", `Chunk
  Union: TypeUnion
    Vars: [
      TypeVariable
        Base: ListExpr
          Elem: TypeUnion
            Vars: [
              TypeVariable
                Base: 1:2-4:identifier "int"
              TypeVariable
                Base: 1:6-8:identifier "str"]]`)

	run("(*str)", `Chunk
  Union: TypeUnion
    Vars: [
      TypeVariable
        Base: TupleExpr
          Items: [
            TypeUnion
              Vars: [
                TypeVariable
                  Star: 1:2:'*'
                  Base: 1:3-5:identifier "str"]]]`)
}

func TestSyntaxError(t *testing.T) {
	run := func(src, msg string) {
		t.Run(src, func(t *testing.T) {
			got, err := parser.Parse(src)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", src, litter.Sdump(got))
			}
			var serr *parser.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%q) error is %T, want *SyntaxError", src, err)
			}
			if err.Error() != msg {
				t.Errorf("message %q,\nwant %q", err.Error(), msg)
			}
		})
	}

	const wantBase = "expected 'any' or 'int' or 'float' or 'str' or 'bool' or '[' or '('"

	run("", "1:1: "+wantBase+", found end of input")
	run("(", "1:2: "+wantBase+", found end of input")
	run("int |", "1:6: "+wantBase+", found end of input")
	run("(int,)", "1:6: "+wantBase+", found ')'")
	run(`foo`, `1:1-3: `+wantBase+`, found "foo"`)
	run(`int extra`, `1:5-9: expected end of input, found "extra"`)
	run("int, str", "1:4: expected end of input, found ','")
	run("[int", "1:5: expected ']', found end of input")
	run("(int", "1:5: expected ')', found end of input")

	// '*' is only legal on a lone tuple element.
	run("*int", "1:1: "+wantBase+", found '*'")
	run("[*int]", "1:2: "+wantBase+", found '*'")
	run("(int|*str)", "1:6: "+wantBase+", found '*'")
	run("(*int|str)", "1:2: "+wantBase+", found '*'")
}

func TestParseLexError(t *testing.T) {
	_, err := parser.Parse("int@")
	var lerr *lexer.LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("Parse(\"int@\") error is %T, want *lexer.LexError", err)
	}
	if lerr.Char != '@' {
		t.Errorf("got char %q, want '@'", lerr.Char)
	}
}
