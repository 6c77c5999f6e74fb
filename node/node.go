// Package node models gada node definitions and calls.
//
// A node definition comes from a module's gada.yml manifest and
// declares typed inputs and outputs. A call binds concrete values to a
// node's inputs; CheckCall verifies those values conform to the
// declared types.
package node

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/gadalang/gada-runtime/parser"
	"github.com/gadalang/gada-runtime/typing"
)

// Param is one input or output of a node.
type Param struct {
	Name  string
	Value any
	Type  typing.Type
	Help  string
}

// ParamFromConfig builds a Param from a decoded manifest entry. The
// "type" field holds a textual type expression; a missing or empty one
// defaults to any.
func ParamFromConfig(o map[string]any) (Param, error) {
	p := Param{
		Name:  str(o["name"]),
		Value: o["value"],
		Type:  typing.Any,
		Help:  str(o["help"]),
	}
	if s := str(o["type"]); s != "" {
		t, err := parser.Parse(s)
		if err != nil {
			return Param{}, fmt.Errorf("param %q: %w", p.Name, err)
		}
		p.Type = t
	}
	return p, nil
}

// Config returns the manifest form of p.
func (p Param) Config() map[string]any {
	return map[string]any{
		"name":  p.Name,
		"value": p.Value,
		"type":  p.Type.String(),
		"help":  p.Help,
	}
}

// Node is a node definition from a gada.yml manifest.
type Node struct {
	Name    string
	Module  string
	File    string
	Lineno  int
	Runner  string
	Pure    bool
	Inputs  []Param
	Outputs []Param
}

// FromConfig builds a Node from a decoded manifest entry. module is the
// dotted name of the module the entry came from.
func FromConfig(o map[string]any, module string) (Node, error) {
	n := Node{
		Name:   str(o["name"]),
		Module: module,
		File:   str(o["file"]),
		Lineno: num(o["lineno"]),
		Runner: str(o["runner"]),
		Pure:   boolean(o["pure"]),
	}
	if n.Name == "" {
		return Node{}, fmt.Errorf("module %s: node entry has no name", module)
	}
	var err error
	if n.Inputs, err = paramsFromConfig(o["inputs"]); err != nil {
		return Node{}, fmt.Errorf("node %s: %w", n.Name, err)
	}
	if n.Outputs, err = paramsFromConfig(o["outputs"]); err != nil {
		return Node{}, fmt.Errorf("node %s: %w", n.Name, err)
	}
	return n, nil
}

// Config returns the manifest form of n.
func (n Node) Config() map[string]any {
	return map[string]any{
		"name":    n.Name,
		"file":    n.File,
		"lineno":  n.Lineno,
		"runner":  n.Runner,
		"pure":    n.Pure,
		"inputs":  paramConfigs(n.Inputs),
		"outputs": paramConfigs(n.Outputs),
	}
}

// Call is a call to a node, binding values to its inputs.
type Call struct {
	Name   string
	ID     string
	File   string
	Lineno int
	Inputs []Param
}

// CallFromConfig builds a Call from a decoded program entry. The
// "inputs" field maps input names to values; entries come out sorted by
// name so the result is deterministic.
func CallFromConfig(o map[string]any) (Call, error) {
	c := Call{
		Name:   str(o["name"]),
		ID:     str(o["id"]),
		File:   str(o["file"]),
		Lineno: num(o["lineno"]),
	}
	if c.Name == "" {
		return Call{}, fmt.Errorf("call entry has no name")
	}
	if inputs, ok := o["inputs"].(map[string]any); ok {
		names := maps.Keys(inputs)
		slices.Sort(names)
		for _, name := range names {
			c.Inputs = append(c.Inputs, Param{Name: name, Value: inputs[name]})
		}
	}
	return c, nil
}

// CheckCall verifies that every input value of call conforms to the
// type declared by n, and that no unknown input is bound.
func CheckCall(n Node, call Call) error {
	declared := make(map[string]Param, len(n.Inputs))
	for _, in := range n.Inputs {
		declared[in.Name] = in
	}
	for _, in := range call.Inputs {
		decl, ok := declared[in.Name]
		if !ok {
			return fmt.Errorf("node %s has no input %q", n.Name, in.Name)
		}
		if !typing.Isinstance(in.Value, decl.Type) {
			return fmt.Errorf(
				"node %s input %q: %s does not conform to %s",
				n.Name, in.Name, typing.TypeOf(in.Value), decl.Type)
		}
	}
	return nil
}

func paramsFromConfig(v any) ([]Param, error) {
	entries, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	params := make([]Param, 0, len(entries))
	for _, e := range entries {
		o, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("param entry is not a mapping")
		}
		p, err := ParamFromConfig(o)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func paramConfigs(params []Param) []any {
	configs := make([]any, len(params))
	for i, p := range params {
		configs[i] = p.Config()
	}
	return configs
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) int {
	n, _ := v.(int)
	return n
}

func boolean(v any) bool {
	b, _ := v.(bool)
	return b
}
