package cst

import "github.com/leapstack-labs/exprast/pkg/token"

// Skip wraps cur so that pending nodes tagged with any of rules are
// invisible, at this level and in every inner cursor derived from it.
// Grammars that emit EOI or non-silent trivia rules rely on this.
func Skip(cur Cursor, rules ...token.Rule) Cursor {
	if len(rules) == 0 {
		return cur
	}
	set := make(map[token.Rule]struct{}, len(rules))
	for _, r := range rules {
		set[r] = struct{}{}
	}
	return &skipCursor{cur: cur, skip: set}
}

type skipCursor struct {
	cur  Cursor
	skip map[token.Rule]struct{}
}

// drain consumes skipped nodes sitting in front of the cursor. It never
// consumes a node a builder could match.
func (s *skipCursor) drain() {
	for {
		p, ok := s.cur.Peek()
		if !ok {
			return
		}
		if _, skipped := s.skip[p.Rule()]; !skipped {
			return
		}
		s.cur.Next()
	}
}

func (s *skipCursor) Peek() (Pair, bool) {
	s.drain()
	p, ok := s.cur.Peek()
	if !ok {
		return nil, false
	}
	return &skipPair{Pair: p, skip: s.skip}, true
}

func (s *skipCursor) Next() (Pair, bool) {
	s.drain()
	p, ok := s.cur.Next()
	if !ok {
		return nil, false
	}
	return &skipPair{Pair: p, skip: s.skip}, true
}

type skipPair struct {
	Pair
	skip map[token.Rule]struct{}
}

func (p *skipPair) Inner() Cursor {
	return &skipCursor{cur: p.Pair.Inner(), skip: p.skip}
}
