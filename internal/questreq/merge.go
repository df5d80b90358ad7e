package questreq

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

var ErrMergeConflict = errors.New("merge conflict")

// ConflictError reports a label whose prerequisites differ between two pages.
type ConflictError struct {
	Key            string
	Existing       []string
	ExistingSource string
	Incoming       []string
	IncomingSource string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict at %q: %v (from %s) vs %v (from %s)",
		e.Key, e.Existing, e.ExistingSource, e.Incoming, e.IncomingSource)
}

func (e *ConflictError) Unwrap() error {
	return ErrMergeConflict
}

// Aggregator combines the adjacency lists of many pages. A key seen with
// children on two pages must list the same set of children on both; an
// empty entry never conflicts and is replaced by a non-empty one.
type Aggregator struct {
	merged  Adjacency
	sources map[string]string
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		merged:  Adjacency{},
		sources: map[string]string{},
	}
}

// Add merges adj, attributed to source. On conflict nothing from adj is
// applied.
func (a *Aggregator) Add(source string, adj Adjacency) error {
	for _, key := range adj.Keys() {
		incoming := adj[key]
		existing, ok := a.merged[key]
		if !ok || len(existing) == 0 || len(incoming) == 0 {
			continue
		}

		if !mapset.NewSet(existing...).Equal(mapset.NewSet(incoming...)) {
			return &ConflictError{
				Key:            key,
				Existing:       existing,
				ExistingSource: a.sources[key],
				Incoming:       incoming,
				IncomingSource: source,
			}
		}
	}

	for key, incoming := range adj {
		existing, ok := a.merged[key]
		if ok && (len(incoming) == 0 || len(existing) > 0) {
			continue
		}

		a.merged[key] = append([]string{}, incoming...)
		a.sources[key] = source
	}

	return nil
}

// Result returns the merged adjacency. The caller must not modify it while
// the aggregator is still in use.
func (a *Aggregator) Result() Adjacency {
	return a.merged
}
