package domain

// RankResult is the normalized rank position of one scenario score
// against its threshold ladder. It is derived, ephemeral state: computed
// per evaluation and never persisted.
type RankResult struct {
	// BaseRank is the highest rank whose threshold the score has
	// reached (1-based, 0 when unranked).
	BaseRank int `json:"baseRank"`

	// PreciseRank is the fractional rank position. Above the top real
	// rank it keeps growing by extrapolation, using the gap between the
	// top two thresholds as one rank-width.
	PreciseRank float64 `json:"preciseRank"`

	// ProgressToNext is the interpolation fraction toward the next
	// threshold, always in [0,1]. It is 1 once the ladder is topped out.
	ProgressToNext float64 `json:"progressToNext"`

	// Maxed reports that the score reached or passed the top threshold.
	Maxed bool `json:"isMaxed"`

	// Valid is false when the score is non-positive or the ladder is
	// empty; all other fields are zero in that case.
	Valid bool `json:"isValid"`
}

// maxedProgressCap keeps sub-rank progress strictly below a full rank so
// an unranked scenario can never tie one that reached the first
// threshold.
const maxedProgressCap = 0.99

// InterpolateRank converts a scenario score and its threshold ladder into
// a RankResult. Thresholds must be strictly increasing; equal adjacent
// thresholds are guarded by substituting a width of 1 so the function can
// never divide by zero. The function is deterministic and side-effect
// free.
func InterpolateRank(score float64, thresholds []int) RankResult {
	if score <= 0 || len(thresholds) == 0 {
		return RankResult{}
	}

	base := 0
	for _, t := range thresholds {
		if score >= float64(t) {
			base++
		}
	}

	switch {
	case base == 0:
		progress := score / float64(thresholds[0])
		if progress > maxedProgressCap {
			progress = maxedProgressCap
		}
		return RankResult{ProgressToNext: progress, Valid: true}

	case base == len(thresholds):
		top := float64(thresholds[len(thresholds)-1])
		width := top
		if len(thresholds) >= 2 {
			width = top - float64(thresholds[len(thresholds)-2])
		}
		if width < 1 {
			width = 1
		}
		additional := (score - top) / width
		return RankResult{
			BaseRank:       base,
			PreciseRank:    float64(base) + additional,
			ProgressToNext: 1,
			Maxed:          true,
			Valid:          true,
		}

	default:
		lower := float64(thresholds[base-1])
		upper := float64(thresholds[base])
		width := upper - lower
		if width <= 0 {
			width = 1
		}
		progress := (score - lower) / width
		return RankResult{
			BaseRank:       base,
			PreciseRank:    float64(base) + progress,
			ProgressToNext: progress,
			Valid:          true,
		}
	}
}
