// Package pprint formats human-readable summaries of node definitions.
package pprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/gadalang/gada-runtime/node"
)

func formatParams(params []node.Param, none string) string {
	if len(params) == 0 {
		return none
	}
	lines := lo.Map(params, func(p node.Param, _ int) string {
		s := fmt.Sprintf("- %s: %s", p.Name, p.Type)
		if p.Help != "" {
			s += " - " + p.Help
		}
		return s
	})
	return strings.Join(lines, "\n")
}

// Help writes a summary of n: its name, inputs and outputs with their
// declared types.
func Help(w io.Writer, n node.Node) error {
	_, err := fmt.Fprintf(
		w,
		"%s\n\nInputs:\n%s\n\nOutputs:\n%s\n",
		n.Name,
		formatParams(n.Inputs, "- This node has no input"),
		formatParams(n.Outputs, "- This node has no output"))
	return err
}
