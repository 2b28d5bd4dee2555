package cst

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/exprast/pkg/token"
)

// Node is a nested description of a pending node, used to build a Pairs
// queue and as the serialized form of a CST.
//
// Start and End are byte offsets into the source passed to Flatten.
// Synthesize ignores them and lays the text out itself, in which case Text
// is only meaningful for leaves.
type Node struct {
	Rule     token.Rule `yaml:"rule"`
	Text     string     `yaml:"text,omitempty"`
	Children []*Node    `yaml:"children,omitempty"`
	Start    int        `yaml:"-"`
	End      int        `yaml:"-"`
}

// Leaf returns a childless node matching text.
func Leaf(rule token.Rule, text string) *Node {
	return &Node{Rule: rule, Text: text}
}

// Branch returns a node with the given children.
func Branch(rule token.Rule, children ...*Node) *Node {
	return &Node{Rule: rule, Children: children}
}

// Flatten builds a queue from nodes whose Start/End offsets refer to src.
// Children must lie inside their parent and siblings must not overlap.
func Flatten(src string, nodes ...*Node) (*Pairs, error) {
	q := &queue{src: src, lineStart: lineStarts(src)}
	if err := flattenChecked(q, nodes, 0, len(src)); err != nil {
		return nil, err
	}
	return &Pairs{q: q, end: len(q.entries)}, nil
}

func flattenChecked(q *queue, nodes []*Node, lo, hi int) error {
	prev := lo
	for _, n := range nodes {
		if n == nil {
			return fmt.Errorf("nil node under offset %d", lo)
		}
		if n.Start < prev || n.End < n.Start || n.End > hi {
			return fmt.Errorf("node %s span [%d,%d) outside [%d,%d)", n.Rule, n.Start, n.End, prev, hi)
		}
		idx := len(q.entries)
		q.entries = append(q.entries, entry{rule: n.Rule, start: n.Start, end: n.End})
		if err := flattenChecked(q, n.Children, n.Start, n.End); err != nil {
			return err
		}
		q.entries[idx].close = len(q.entries)
		prev = n.End
	}
	return nil
}

// Synthesize builds a queue from nodes without source offsets. Leaf texts
// are laid out left to right, children separated by a space and top-level
// nodes by a newline; a branch spans its children.
func Synthesize(nodes ...*Node) *Pairs {
	var b strings.Builder
	q := &queue{}
	for i, n := range nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		layout(q, &b, n)
	}
	q.src = b.String()
	q.lineStart = lineStarts(q.src)
	return &Pairs{q: q, end: len(q.entries)}
}

func layout(q *queue, b *strings.Builder, n *Node) {
	idx := len(q.entries)
	q.entries = append(q.entries, entry{rule: n.Rule, start: b.Len()})
	if len(n.Children) == 0 {
		b.WriteString(n.Text)
	}
	for i, child := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		layout(q, b, child)
	}
	q.entries[idx].end = b.Len()
	q.entries[idx].close = len(q.entries)
}
