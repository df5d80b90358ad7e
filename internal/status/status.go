// Package status reads a player's quest progress from the RuneMetrics quest
// feed and answers "is this quest done?" for graph nodes.
package status

import (
	"sort"
	"strings"
)

type State int

const (
	Unknown State = iota
	NotStarted
	Started
	Completed
)

func ParseState(s string) State {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "COMPLETED":
		return Completed
	case "STARTED":
		return Started
	case "NOT_STARTED":
		return NotStarted
	default:
		return Unknown
	}
}

func (s State) String() string {
	switch s {
	case Completed:
		return "completed"
	case Started:
		return "started"
	case NotStarted:
		return "not started"
	default:
		return "unknown"
	}
}

// Colour is the Graphviz fill colour used for the state.
func (s State) Colour() string {
	switch s {
	case Completed:
		return "palegreen"
	case Started:
		return "orange"
	case NotStarted:
		return "salmon"
	default:
		return "lightgrey"
	}
}

type Quest struct {
	Title        string `json:"title"`
	Status       string `json:"status"`
	Difficulty   int    `json:"difficulty"`
	Members      bool   `json:"members"`
	QuestPoints  int    `json:"questPoints"`
	UserEligible bool   `json:"userEligible"`
}

// Statuses is read-only once built.
type Statuses struct {
	byTitle map[string]Quest
}

func New(quests []Quest) *Statuses {
	s := &Statuses{byTitle: make(map[string]Quest, len(quests))}
	for _, q := range quests {
		s.byTitle[q.Title] = q
	}
	return s
}

// Lookup finds a quest by exact title, then retries without a leading "The ".
func (s *Statuses) Lookup(title string) (Quest, bool) {
	if s == nil {
		return Quest{}, false
	}

	if q, ok := s.byTitle[title]; ok {
		return q, true
	}

	if trimmed, ok := strings.CutPrefix(title, "The "); ok {
		q, ok := s.byTitle[trimmed]
		return q, ok
	}

	return Quest{}, false
}

func (s *Statuses) State(title string) State {
	q, ok := s.Lookup(title)
	if !ok {
		return Unknown
	}
	return ParseState(q.Status)
}

// Completed reports false for quests the feed does not know.
func (s *Statuses) Completed(title string) bool {
	return s.State(title) == Completed
}

func (s *Statuses) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byTitle)
}

// Titles returns every quest title in sorted order.
func (s *Statuses) Titles() []string {
	if s == nil {
		return nil
	}

	out := make([]string, 0, len(s.byTitle))
	for t := range s.byTitle {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Counts tallies quests per state.
func (s *Statuses) Counts() map[State]int {
	out := map[State]int{}
	if s == nil {
		return out
	}
	for _, q := range s.byTitle {
		out[ParseState(q.Status)]++
	}
	return out
}
