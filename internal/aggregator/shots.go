package aggregator

import "strings"

// ShotOutcome classifies a shot by its Result tag.
type ShotOutcome int

const (
	ShotOff ShotOutcome = iota
	ShotOnTarget
	ShotGoal
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotGoal:
		return "goal"
	case ShotOnTarget:
		return "on target"
	default:
		return "off target"
	}
}

// Accepted Result markers, matched case-insensitively as substrings. Goal
// markers are checked first; a goal also counts as on target.
var (
	GoalMarkers     = []string{"goal", "gol"}
	OnTargetMarkers = []string{"ontarget", "on target", "on_target"}
)

// ClassifyShot maps a free-text Result tag to a ShotOutcome.
func ClassifyShot(result string) ShotOutcome {
	r := strings.ToLower(strings.TrimSpace(result))
	if r == "" {
		return ShotOff
	}
	for _, m := range GoalMarkers {
		if strings.Contains(r, m) {
			return ShotGoal
		}
	}
	for _, m := range OnTargetMarkers {
		if strings.Contains(r, m) {
			return ShotOnTarget
		}
	}
	return ShotOff
}
