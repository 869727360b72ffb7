// Package ranking holds the pure ranking math shared by every leaderboard
// scope: ordinal ranking, best-attempt deduplication, ahead-of percentile and
// accuracy. Services only choose the population and the metric; all sorting
// and tie-breaking lives here so the scopes cannot drift apart.
package ranking

import (
	"math"
	"sort"
	"time"
)

// Entry is one scored member of a ranking population. For per-test scopes an
// Entry is a single attempt; for the global scope it is a per-user aggregate
// (AttemptID and CompletedAt are zero there).
type Entry struct {
	UserID         uint
	Score          int
	TotalQuestions int
	CompletedAt    time.Time
	AttemptID      uint
}

// Placement is an Entry with its computed standing.
type Placement struct {
	Entry
	Rank           int // 1-based ordinal rank; tied scores get distinct consecutive ranks
	AheadOfPercent int // percent of the population with a strictly lower score
}

// Rank sorts a population by score descending and assigns ordinal ranks and
// ahead-of percents. The sort order is total: score desc, then earlier
// CompletedAt, then lower UserID, so repeated runs over the same population
// always produce the same board. The input slice is not modified.
func Rank(entries []Entry) []Placement {
	n := len(entries)
	if n == 0 {
		return nil
	}

	sorted := make([]Entry, n)
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		if !sorted[i].CompletedAt.Equal(sorted[j].CompletedAt) {
			return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	// Ascending score list for counting "strictly below me" by binary search.
	asc := make([]int, n)
	for i, e := range sorted {
		asc[i] = e.Score
	}
	sort.Ints(asc)

	out := make([]Placement, n)
	for i, e := range sorted {
		below := sort.SearchInts(asc, e.Score)
		out[i] = Placement{
			Entry:          e,
			Rank:           i + 1,
			AheadOfPercent: aheadOfPercent(below, n),
		}
	}
	return out
}

// aheadOfPercent is floor(below/(n-1)*100). A single-participant population
// short-circuits to 0 so there is no division by zero; the sole user is
// "ahead of" nobody.
func aheadOfPercent(below, total int) int {
	if total <= 1 {
		return 0
	}
	return below * 100 / (total - 1)
}

// BestPerUser collapses a population down to one entry per user: the highest
// score wins, on an exact score tie the earlier CompletedAt wins, and on an
// exact timestamp tie the lower AttemptID wins. The rule is a total order, so
// deduplication is deterministic no matter how the store returned the rows.
func BestPerUser(entries []Entry) []Entry {
	best := make(map[uint]Entry, len(entries))
	for _, e := range entries {
		cur, ok := best[e.UserID]
		if !ok || better(e, cur) {
			best[e.UserID] = e
		}
	}
	out := make([]Entry, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}
	return out
}

func better(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.CompletedAt.Equal(b.CompletedAt) {
		return a.CompletedAt.Before(b.CompletedAt)
	}
	return a.AttemptID < b.AttemptID
}

// Accuracy expresses a score as a rounded percentage of the maximum
// attainable score (4 points per question). A negative net score yields a
// negative accuracy; clamping for display is a client concern. A zero
// question count reports 0 rather than propagating NaN.
func Accuracy(score, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalQuestions*4) * 100))
}

// Mean of a score list, 0 for an empty list.
func Mean(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// Median of a score list, 0 for an empty list. Even-sized lists take the mean
// of the two middle values.
func Median(scores []int) float64 {
	n := len(scores)
	if n == 0 {
		return 0
	}
	sorted := make([]int, n)
	copy(sorted, scores)
	sort.Ints(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// Highest of a score list, 0 for an empty list.
func Highest(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	return max
}
