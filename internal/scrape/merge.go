package scrape

import (
	"errors"
	"sort"

	"github.com/brogergvhs/questgraph/internal/questreq"
	"github.com/brogergvhs/questgraph/internal/wiki"
)

type Summary struct {
	Adjacency questreq.Adjacency

	Parsed  int // pages with a requirement table
	Missing int // pages without a table, or no page at all
	Failed  int
	Cached  int
	Bytes   int64

	Anomalies  map[string][]questreq.Anomaly
	Duplicates map[string][]questreq.Duplicate
	Failures   []Result
}

// Merge folds per-quest results into one adjacency list in title order, so
// the outcome does not depend on which worker finished first. Every quest
// that was looked up becomes a key even when its page had no table. A
// conflicting page stops the merge and is returned as a
// *questreq.ConflictError.
func Merge(results []Result) (Summary, error) {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})

	agg := questreq.NewAggregator()
	s := Summary{
		Anomalies:  map[string][]questreq.Anomaly{},
		Duplicates: map[string][]questreq.Duplicate{},
	}

	for _, r := range sorted {
		if r.Title == "" {
			continue
		}

		if r.Err != nil && !errors.Is(r.Err, wiki.ErrPageNotFound) {
			s.Failed++
			s.Failures = append(s.Failures, r)
			continue
		}

		if r.Page.Cached {
			s.Cached++
		}
		s.Bytes += r.Page.Bytes

		adj := questreq.Adjacency{r.Title: {}}
		if r.Err == nil && r.Page.Result.Found {
			s.Parsed++
			for k, v := range r.Page.Result.Adjacency {
				adj[k] = v
			}
			if a := r.Page.Result.Tree.Anomalies(); len(a) > 0 {
				s.Anomalies[r.Title] = a
			}
			if d := r.Page.Result.Duplicates; len(d) > 0 {
				s.Duplicates[r.Title] = d
			}
		} else {
			s.Missing++
		}

		if err := agg.Add(r.Title, adj); err != nil {
			s.Adjacency = agg.Result()
			return s, err
		}
	}

	s.Adjacency = agg.Result()
	return s, nil
}
