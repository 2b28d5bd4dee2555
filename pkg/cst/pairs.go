package cst

import (
	"sort"

	"github.com/leapstack-labs/exprast/pkg/token"
)

// entry is one flattened pending node.
type entry struct {
	rule       token.Rule
	start, end int // byte offsets into src
	close      int // queue index just past this entry's subtree
}

// queue is the shared, immutable backing store for every Pairs and pair
// derived from the same tree.
type queue struct {
	src       string
	entries   []entry
	lineStart []int
}

func (q *queue) position(offset int) token.Position {
	i := sort.Search(len(q.lineStart), func(i int) bool {
		return q.lineStart[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	return token.Position{
		Line:   i + 1,
		Column: offset - q.lineStart[i] + 1,
		Offset: offset,
	}
}

// Pairs is a cursor over a contiguous range of sibling entries.
type Pairs struct {
	q   *queue
	pos int
	end int
}

// Peek returns the next pending node without consuming it.
func (p *Pairs) Peek() (Pair, bool) {
	if p.pos >= p.end {
		return nil, false
	}
	return &pair{q: p.q, idx: p.pos}, true
}

// Next consumes and returns the next pending node.
func (p *Pairs) Next() (Pair, bool) {
	next, ok := p.Peek()
	if ok {
		p.pos = p.q.entries[p.pos].close
	}
	return next, ok
}

// Remaining returns the number of sibling nodes not yet consumed.
func (p *Pairs) Remaining() int {
	n := 0
	for i := p.pos; i < p.end; i = p.q.entries[i].close {
		n++
	}
	return n
}

// Source returns the full text the pending nodes refer to.
func (p *Pairs) Source() string {
	return p.q.src
}

// pair is a view of one queue entry.
type pair struct {
	q   *queue
	idx int
}

func (p *pair) Rule() token.Rule {
	return p.q.entries[p.idx].rule
}

func (p *pair) Text() string {
	e := p.q.entries[p.idx]
	return p.q.src[e.start:e.end]
}

func (p *pair) Span() token.Span {
	e := p.q.entries[p.idx]
	return token.Span{
		Start: p.q.position(e.start),
		End:   p.q.position(e.end),
	}
}

func (p *pair) Inner() Cursor {
	return &Pairs{
		q:   p.q,
		pos: p.idx + 1,
		end: p.q.entries[p.idx].close,
	}
}

func (p *pair) String() string {
	return p.Rule().String() + "(" + p.Text() + ")"
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
