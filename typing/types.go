// Package typing implements the structural type model for values
// exchanged between nodes: descriptors, conformance checking and
// inference.
//
// A descriptor is built once, either by the parser package from text or
// by TypeOf from a value, and never mutated afterward, so it can be read
// concurrently without synchronization.
package typing

import (
	"strings"

	"golang.org/x/exp/slices"
)

type Type interface {
	Equal(Type) bool
	String() string
}

var (
	_ Type = Base(0)
	_ Type = List{}
	_ Type = Tuple{}
	_ Type = Union{}
)

type Base int

const (
	Any Base = iota
	Bool
	Int
	Float
	String
)

func (t1 Base) Equal(t2 Type) bool {
	if t2, ok := t2.(Base); ok {
		return t1 == t2
	}
	return false
}

func (t Base) String() string {
	switch t {
	case Any:
		return "any"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "str"
	}
	panic("unreachable")
}

// List describes an ordered homogeneous sequence of unbounded length.
// A nil Elem matches any list, of any length and content.
type List struct {
	Elem Type
}

func (t1 List) Equal(t2 Type) bool {
	if t2, ok := t2.(List); ok {
		if t1.Elem == nil || t2.Elem == nil {
			return t1.Elem == nil && t2.Elem == nil
		}
		return t1.Elem.Equal(t2.Elem)
	}
	return false
}

func (t List) String() string {
	if t.Elem == nil {
		return "[]"
	}
	return "[" + t.Elem.String() + "]"
}

// Element is one position of a Tuple. A splat element consumes zero or
// more consecutive values of its type; a fixed element consumes exactly
// one.
type Element struct {
	Type  Type
	Splat bool
}

func (e Element) String() string {
	if e.Splat {
		return "*" + e.Type.String()
	}
	return e.Type.String()
}

// Tuple describes an ordered fixed-shape sequence. Element order is
// significant and preserved exactly as parsed. An empty Tuple matches
// only the empty sequence.
type Tuple struct {
	Elems []Element
}

func (t1 Tuple) Equal(t2 Type) bool {
	if t2, ok := t2.(Tuple); ok {
		return slices.EqualFunc(t1.Elems, t2.Elems, func(a, b Element) bool {
			return a.Splat == b.Splat && a.Type.Equal(b.Type)
		})
	}
	return false
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Union matches a value that matches any of its members. Unions are
// only built through MakeUnion, so a Union in the wild always has at
// least two members, none of which is itself a Union.
type Union struct {
	Members []Type
}

func (t1 Union) Equal(t2 Type) bool {
	if t2, ok := t2.(Union); ok {
		return slices.EqualFunc(t1.Members, t2.Members, Type.Equal)
	}
	return false
}

func (t Union) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}

// MakeUnion builds a normalized union of at least one member: nested
// unions are flattened, structural duplicates removed in first-seen
// order, and a single remaining member is returned directly.
func MakeUnion(members ...Type) Type {
	var flat []Type
	var add func(Type)
	add = func(t Type) {
		if u, ok := t.(Union); ok {
			for _, m := range u.Members {
				add(m)
			}
			return
		}
		if !slices.ContainsFunc(flat, t.Equal) {
			flat = append(flat, t)
		}
	}
	for _, m := range members {
		add(m)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Union{Members: flat}
}

// A Tup is an ordered fixed-size heterogeneous sequence value. Plain
// []any values have list shape; wrap a slice in Tup to give it tuple
// shape.
type Tup []any
