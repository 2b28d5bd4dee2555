package cst

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML sequence of nodes:
//
//	- rule: main
//	  children:
//	    - rule: stmt
//
// Rule names are resolved with token.Lookup, so rules outside the builtin
// set must be registered before decoding.
func Decode(r io.Reader) ([]*Node, error) {
	var nodes []*Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode cst: %w", err)
	}
	return nodes, nil
}

// Encode writes nodes in the format read by Decode.
func Encode(w io.Writer, nodes []*Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nodes); err != nil {
		return fmt.Errorf("encode cst: %w", err)
	}
	return enc.Close()
}

// Tree rebuilds the nested form of every node left on cur, consuming it.
// Offsets are copied from each pair's span.
func Tree(cur Cursor) []*Node {
	var nodes []*Node
	for {
		p, ok := cur.Next()
		if !ok {
			return nodes
		}
		span := p.Span()
		n := &Node{
			Rule:     p.Rule(),
			Children: Tree(p.Inner()),
			Start:    span.Start.Offset,
			End:      span.End.Offset,
		}
		if len(n.Children) == 0 {
			n.Text = p.Text()
		}
		nodes = append(nodes, n)
	}
}
