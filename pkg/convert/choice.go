package convert

import (
	"errors"

	"github.com/leapstack-labs/exprast/pkg/cst"
	"github.com/leapstack-labs/exprast/pkg/token"
)

// alternative is one candidate of an ordered choice.
type alternative[T any] struct {
	rule  token.Rule
	build func(cst.Cursor) (T, error)
}

// variant adapts a builder of a concrete node to the sum type T it belongs
// to. V must implement T.
func variant[T any, V any](rule token.Rule, build func(cst.Cursor) (V, error)) alternative[T] {
	return alternative[T]{
		rule: rule,
		build: func(cur cst.Cursor) (T, error) {
			v, err := build(cur)
			if err != nil {
				var zero T
				return zero, err
			}
			return any(v).(T), nil
		},
	}
}

// choose tries alts in order against the same cursor position. The first
// success wins. The first fatal error stops the search, since its rule
// already matched. If every alternative reports ErrNoMatch, so does choose.
func choose[T any](cur cst.Cursor, alts []alternative[T]) (T, error) {
	var zero T
	for _, alt := range alts {
		v, err := alt.build(cur)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrNoMatch) {
			return zero, err
		}
	}
	return zero, ErrNoMatch
}

// rules lists the rules of alts, for error messages.
func rules[T any](alts []alternative[T]) []token.Rule {
	out := make([]token.Rule, len(alts))
	for i, alt := range alts {
		out[i] = alt.rule
	}
	return out
}
