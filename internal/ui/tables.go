package ui

import (
	"io"

	"github.com/brogergvhs/questgraph/internal/status"

	"github.com/rodaine/table"
)

// PrintStatuses lists every quest the feed knows with its state.
func PrintStatuses(w io.Writer, s *status.Statuses) {
	tbl := table.New("Quest", "Status", "QP", "Members").WithWriter(w)
	for _, title := range s.Titles() {
		q, _ := s.Lookup(title)
		members := ""
		if q.Members {
			members = "yes"
		}
		tbl.AddRow(q.Title, status.ParseState(q.Status), q.QuestPoints, members)
	}
	tbl.Print()
}

// PrintAvailable lists quests that can be started now with what they unlock.
func PrintAvailable(w io.Writer, available []string, s *status.Statuses, unlocks func(string) int) {
	tbl := table.New("Available quest", "Status", "Unlocks").WithWriter(w)
	for _, title := range available {
		tbl.AddRow(title, s.State(title), unlocks(title))
	}
	tbl.Print()
}

// PrintAdjacency prints quest -> prerequisites rows, one prerequisite per
// row, the quest name only on the first.
func PrintAdjacency(w io.Writer, keys []string, children func(string) []string) {
	tbl := table.New("Quest", "Requires").WithWriter(w)
	for _, k := range keys {
		reqs := children(k)
		if len(reqs) == 0 {
			tbl.AddRow(k, "")
			continue
		}
		for i, r := range reqs {
			if i == 0 {
				tbl.AddRow(k, r)
			} else {
				tbl.AddRow("", r)
			}
		}
	}
	tbl.Print()
}
