package domain

import "math"

// ScoreRecord is one scenario's result as reported by the score source.
// Scores are stored scaled by 100 to avoid floating-point drift on the
// wire; Value returns the unscaled score for computation.
// The engine reads records and never mutates them.
type ScoreRecord struct {
	// ScenarioName is the scenario's display name.
	ScenarioName string `json:"scenarioName"`

	// Score is the raw score scaled by 100.
	Score int `json:"score"`

	// LeaderboardRank is the player's global leaderboard position for
	// this scenario. Diagnostic only; no strategy consumes it.
	LeaderboardRank int `json:"leaderboardRank"`

	// RankIndex is the rank the score source itself attributed to this
	// score (1-based, 0 when unranked).
	RankIndex int `json:"rank"`

	// RankMaxes is the scenario's threshold ladder: strictly increasing
	// score cutoffs, one per achievable rank. May be empty for
	// placeholder scenarios.
	RankMaxes []int `json:"rankMaxes"`
}

// Value returns the unscaled score.
func (r ScoreRecord) Value() float64 { return float64(r.Score) / 100 }

// CategoryScores is the score source's flat, ordered scenario collection
// for one category. Iteration order is the positional-alignment contract:
// it must match the schema's logical scenario order.
type CategoryScores struct {
	Name      string        `json:"name"`
	Scenarios []ScoreRecord `json:"scenarios"`
}

// RankTier is one entry of the global ranked-tier metadata: the display
// name and color for a rank index.
type RankTier struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Snapshot is a normalized view of a player's per-scenario scores for one
// benchmark, as produced by the score source. The engine treats a
// Snapshot as immutable; transforms such as ApplyOverrides return a new
// value and leave the receiver untouched.
type Snapshot struct {
	// Categories in the score source's own order, which by contract
	// matches the schema's category order.
	Categories []CategoryScores `json:"categories"`

	// Tiers is the ranked-tier metadata indexed by rank (Tiers[0] is
	// rank 1).
	Tiers []RankTier `json:"ranks"`

	// Progress and OverallRank are the score source's own precomputed
	// values. Carried for diagnostics; the engine recomputes both.
	Progress    int `json:"benchmarkProgress"`
	OverallRank int `json:"overallRank"`
}

// Clone returns a deep copy of the snapshot. Batch replays copy once per
// iteration so concurrent evaluations never alias score data.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Categories = make([]CategoryScores, len(s.Categories))
	for i, cat := range s.Categories {
		cc := cat
		cc.Scenarios = make([]ScoreRecord, len(cat.Scenarios))
		for j, sc := range cat.Scenarios {
			rec := sc
			rec.RankMaxes = append([]int(nil), sc.RankMaxes...)
			cc.Scenarios[j] = rec
		}
		out.Categories[i] = cc
	}
	out.Tiers = append([]RankTier(nil), s.Tiers...)
	return out
}

// TierName returns the display name for a 1-based rank, or "Unranked"
// for rank 0. Ranks past the end of the tier list (extrapolated precise
// ranks) clamp to the final tier name.
func (s Snapshot) TierName(rank int) string {
	if rank <= 0 || len(s.Tiers) == 0 {
		return "Unranked"
	}
	if rank > len(s.Tiers) {
		rank = len(s.Tiers)
	}
	return s.Tiers[rank-1].Name
}

// KeepScore is the override sentinel: a positional override of -1 leaves
// the stored score unchanged.
const KeepScore = -1

// ApplyOverrides returns a new snapshot with scores replaced according to
// the positional override list. Overrides are matched to scenarios in the
// snapshot's own flattened category order, the same order the aligner
// walks. An override of KeepScore (-1) keeps the stored score; any other
// value v replaces the scaled score with round(v*100). Overrides beyond
// the last scenario are ignored.
func ApplyOverrides(s Snapshot, overrides []float64) Snapshot {
	out := s.Clone()
	idx := 0
	for ci := range out.Categories {
		for si := range out.Categories[ci].Scenarios {
			if idx >= len(overrides) {
				return out
			}
			if v := overrides[idx]; v != KeepScore {
				out.Categories[ci].Scenarios[si].Score = int(math.Round(v * 100))
			}
			idx++
		}
	}
	return out
}
