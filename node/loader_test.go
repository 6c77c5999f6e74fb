package node_test

import (
	"testing"
	"testing/fstest"

	"github.com/gadalang/gada-runtime/node"
)

var testfs = fstest.MapFS{
	"max/gada.yml": &fstest.MapFile{Data: []byte(`
nodes:
  - name: max
    runner: pymodule
    inputs:
      - name: a
        type: int
      - name: b
        type: int
    outputs:
      - name: out
        type: int
  - name: min
    runner: pymodule
`)},
	"max/nested/gada.yml": &fstest.MapFile{Data: []byte(`
nodes:
  - name: clamp
`)},
}

func TestIterNodes(t *testing.T) {
	loaders, err := node.IterNodes(testfs)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaders) != 2 {
		t.Fatalf("got %d loaders, want 2", len(loaders))
	}
	if loaders[0].Module != "max" || loaders[0].Name != "max" {
		t.Errorf("bad loader: %+v", loaders[0])
	}
	if loaders[1].Name != "min" {
		t.Errorf("bad loader: %+v", loaders[1])
	}

	n, err := loaders[0].Load()
	if err != nil {
		t.Fatal(err)
	}
	if n.Module != "max" || len(n.Inputs) != 2 {
		t.Errorf("bad node: %+v", n)
	}
}

func TestWalkNodes(t *testing.T) {
	loaders, err := node.WalkNodes(testfs)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaders) != 3 {
		t.Fatalf("got %d loaders, want 3", len(loaders))
	}
	last := loaders[2]
	if last.Module != "max.nested" || last.Name != "clamp" {
		t.Errorf("bad loader: %+v", last)
	}
}
