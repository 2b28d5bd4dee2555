package convert

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/exprast/pkg/ast"
	"github.com/leapstack-labs/exprast/pkg/cst"
)

// ConvertAll converts independent programs concurrently, one Converter per
// input, at most Options.Workers at a time. Results keep input order. The
// first failure cancels inputs that have not started yet.
//
// Each cursor must be exclusive to its input; a single cursor is never
// shared between goroutines.
func ConvertAll(ctx context.Context, inputs []cst.Cursor, opts ...Option) ([]*ast.Program, error) {
	o := buildOptions(opts)
	out := make([]*ast.Program, len(inputs))

	eg, egctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		eg.SetLimit(o.Workers)
	}

	for i, in := range inputs {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			prog, err := New(opts...).Convert(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			out[i] = prog
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	o.Logger.Debug("converted batch", "inputs", len(inputs))
	return out, nil
}
