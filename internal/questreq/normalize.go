package questreq

import "regexp"

const (
	SentinelLabel    = "Senliten"
	SentinelRestored = "Senliten fully restored"
	PointsSuffix     = " QPs"
)

var reDigits = regexp.MustCompile(`^[0-9]+$`)

// Normalize rewrites leaf labels that are not quest names: the Senliten
// requirement and bare quest point counts.
func Normalize(label string) string {
	switch {
	case label == SentinelLabel:
		return SentinelRestored
	case reDigits.MatchString(label):
		return label + PointsSuffix
	default:
		return label
	}
}
