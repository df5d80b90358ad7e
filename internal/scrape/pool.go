package scrape

import (
	"context"

	"github.com/brogergvhs/questgraph/internal/wiki"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one quest title. Err is set when the page
// could not be fetched; a page without a requirement table is not an error.
type Result struct {
	Title string
	Page  wiki.Page
	Err   error
}

// Run fetches and parses every title using at most workers concurrent
// requests. Results come back in the order of titles. onDone, if set, is
// called from worker goroutines as each title finishes. Per-title failures
// are kept in the results; only cancellation stops the run.
func Run(ctx context.Context, src wiki.Source, titles []string, workers int, onDone func(Result)) ([]Result, error) {
	results := make([]Result, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	for i, title := range titles {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			page, err := src.Requirements(gctx, title)
			results[i] = Result{Title: title, Page: page, Err: err}

			if onDone != nil {
				onDone(results[i])
			}
			return nil
		})
	}

	_ = g.Wait()

	return results, ctx.Err()
}
