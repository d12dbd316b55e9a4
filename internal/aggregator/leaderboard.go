package aggregator

import (
	"fmt"
	"sort"

	"github.com/pable/go-pitch-metrics/internal/model"
)

// DefaultTopN is the leaderboard length used when none is requested.
const DefaultTopN = 5

// Metric selects the value a leaderboard ranks by.
type Metric string

const (
	MetricAccuracy   Metric = "accuracy"
	MetricGoals      Metric = "goals"
	MetricRecoveries Metric = "recoveries"
	MetricPasses     Metric = "passes"
	MetricShots      Metric = "shots"
)

// Metrics lists every supported leaderboard metric.
var Metrics = []Metric{MetricAccuracy, MetricGoals, MetricRecoveries, MetricPasses, MetricShots}

// ParseMetric validates a metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q (want one of %v)", s, Metrics)
}

// Value extracts the metric from s.
func (m Metric) Value(s *model.PlayerMatchStats) float64 {
	switch m {
	case MetricAccuracy:
		return s.AccuracyPct()
	case MetricGoals:
		return float64(s.Goals)
	case MetricRecoveries:
		return float64(s.Recoveries)
	case MetricPasses:
		return float64(s.TotalPasses())
	case MetricShots:
		return float64(s.Shots)
	default:
		return 0
	}
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank  int
	Value float64
	Stats model.PlayerMatchStats
}

// Leaderboard returns the top n players in scope by metric, highest first.
// Players are ranked with a stable sort over the name-sorted player set, so
// ties are broken alphabetically.
func Leaderboard(events []model.Event, scope model.Scope, metric Metric, n int) []LeaderboardEntry {
	if n <= 0 {
		n = DefaultTopN
	}
	byPlayer := Aggregate(events, scope)
	entries := make([]LeaderboardEntry, 0, len(byPlayer))
	for _, p := range Players(events, scope) {
		s := byPlayer[p]
		entries = append(entries, LeaderboardEntry{Value: metric.Value(s), Stats: *s})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
