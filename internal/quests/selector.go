package quests

import (
	"strings"

	"github.com/brogergvhs/questgraph/internal/status"
)

// Filter picks the quest titles to scrape. quest selects one title, list a
// comma separated set of titles; otherwise all titles are kept. With
// onlyIncomplete, quests the player has completed are dropped.
func Filter(all []string, quest, list string, onlyIncomplete bool, s *status.Statuses) []string {
	var out []string

	switch {
	case quest != "":
		out = FilterByTitle(all, quest)
	case list != "":
		out = FilterList(all, list)
	default:
		out = append([]string{}, all...)
	}

	if onlyIncomplete {
		out = FilterIncomplete(out, s)
	}

	return out
}

// FilterByTitle matches case-insensitively and also tries the title with a
// leading "The " removed. A title not in all is still returned, so a
// single quest can be scraped without a status feed.
func FilterByTitle(all []string, title string) []string {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	for _, t := range all {
		if matches(t, title) {
			return []string{t}
		}
	}

	return []string{title}
}

func FilterList(all []string, list string) []string {
	out := []string{}
	seen := map[string]bool{}

	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		for _, t := range FilterByTitle(all, part) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	return out
}

func FilterIncomplete(titles []string, s *status.Statuses) []string {
	out := []string{}
	for _, t := range titles {
		if !s.Completed(t) {
			out = append(out, t)
		}
	}
	return out
}

func matches(candidate, want string) bool {
	c := strings.TrimPrefix(strings.ToLower(candidate), "the ")
	w := strings.TrimPrefix(strings.ToLower(want), "the ")
	return c == w
}
