package domain

// EnergyScale re-expresses a scenario's rank position on a benchmark-wide
// threshold scale so scenarios with different raw score ranges can be
// aggregated. The scale extends the real threshold ladder with a
// synthetic lower bound below the first rank and synthetic rank-widths
// above the top rank, keeping sub- and super-rank performance comparable.
type EnergyScale struct {
	// Thresholds is the benchmark's energy threshold ladder, strictly
	// increasing, one entry per achievable rank.
	Thresholds []float64

	// FakeLowerOffset is the height of the synthetic climb below the
	// first real threshold: a score just under the first scenario
	// threshold maps to just under Thresholds[0] on the energy scale,
	// while a zero score maps down to Thresholds[0]-FakeLowerOffset
	// (floored at zero energy).
	FakeLowerOffset float64

	// FakeUpperCount is how many synthetic rank-widths the scale keeps
	// climbing past the top real threshold before energy is capped.
	FakeUpperCount int
}

// fallbackRankWidth is used to extrapolate past the top threshold when
// the ladder has fewer than two entries.
const fallbackRankWidth = 100

// Energy maps a scenario's rank position onto the energy scale and
// truncates to an integer. The RankResult carries the interpolation
// already performed against the scenario's own ladder; Energy re-expresses
// that position on the shared ladder. An invalid result yields zero
// energy. A score exactly equal to the k-th scenario threshold maps to
// exactly Thresholds[k-1].
func (e EnergyScale) Energy(rank RankResult) int {
	if !rank.Valid || len(e.Thresholds) == 0 {
		return 0
	}

	n := len(e.Thresholds)
	base := rank.BaseRank
	if base > n {
		// Scenario ladders and the energy ladder normally agree on
		// rank count; a longer scenario ladder clamps to the top.
		base = n
	}

	switch {
	case base == 0:
		first := e.Thresholds[0]
		energy := (first - e.FakeLowerOffset) + rank.ProgressToNext*e.FakeLowerOffset
		if energy < 0 {
			return 0
		}
		return int(energy)

	case base == n:
		top := e.Thresholds[n-1]
		additional := rank.PreciseRank - float64(rank.BaseRank)
		if additional < 0 {
			additional = 0
		}
		if additional > float64(e.FakeUpperCount) {
			additional = float64(e.FakeUpperCount)
		}
		return int(top + additional*e.topRankWidth())

	default:
		lower := e.Thresholds[base-1]
		upper := e.Thresholds[base]
		return int(lower + rank.ProgressToNext*(upper-lower))
	}
}

// Cap returns the maximum energy the scale can produce: the top real
// threshold plus FakeUpperCount synthetic rank-widths.
func (e EnergyScale) Cap() float64 {
	if len(e.Thresholds) == 0 {
		return 0
	}
	return e.Thresholds[len(e.Thresholds)-1] + float64(e.FakeUpperCount)*e.topRankWidth()
}

func (e EnergyScale) topRankWidth() float64 {
	n := len(e.Thresholds)
	if n >= 2 && e.Thresholds[n-1]-e.Thresholds[n-2] > 0 {
		return e.Thresholds[n-1] - e.Thresholds[n-2]
	}
	return fallbackRankWidth
}
