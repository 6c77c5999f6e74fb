package typing_test

import (
	"testing"

	"github.com/sanity-io/litter"

	. "github.com/gadalang/gada-runtime/typing"
)

func TestTypeOf(t *testing.T) {
	run := func(name string, v any, want Type) {
		t.Run(name, func(t *testing.T) {
			if got := TypeOf(v); !want.Equal(got) {
				t.Errorf("TypeOf(%s) = %s, want %s", litter.Sdump(v), got, want)
			}
		})
	}

	run("bool", true, Bool)
	run("int", 42, Int)
	run("int64", int64(42), Int)
	run("float", 1.5, Float)
	run("string", "x", String)
	run("nil", nil, Any)
	run("unknown shape", struct{}{}, Any)

	run("empty list", []any{}, List{})
	run("int list", []any{1, 2}, List{Elem: Int})
	run("mixed list", []any{1, "a", 2}, List{Elem: MakeUnion(Int, String)})
	run("nested list", []any{[]any{1}}, List{Elem: List{Elem: Int}})

	run("empty tuple", Tup{}, Tuple{})
	run("tuple", Tup{1, "a", true}, Tuple{Elems: []Element{
		{Type: Int},
		{Type: String},
		{Type: Bool},
	}})
	run("nested tuple", Tup{Tup{1}}, Tuple{Elems: []Element{
		{Type: Tuple{Elems: []Element{{Type: Int}}}},
	}})
}

// Every value conforms to its own inferred type.
func TestTypeOfRoundTrip(t *testing.T) {
	values := []any{
		true,
		0,
		int64(-3),
		2.25,
		"",
		"hello",
		[]any{},
		[]any{1, 2, 3},
		[]any{1, "a", true, 1.5},
		[]any{[]any{1}, []any{"a"}},
		Tup{},
		Tup{1, "a"},
		Tup{Tup{true}, []any{1.5}},
		struct{}{},
	}
	for _, v := range values {
		typ := TypeOf(v)
		if !Isinstance(v, typ) {
			t.Errorf("Isinstance(%s, %s) = false, want true", litter.Sdump(v), typ)
		}
	}
}
