package application

import (
	"strings"

	"github.com/rsavage/benchrank/internal/domain"
)

// completeSuffix marks a display name produced by the complete-rank
// baseline.
const completeSuffix = " Complete"

// CompleteRank returns the highest rank every aligned scenario has
// reached: the minimum base rank across all slots. Any unranked or
// placeholder slot pulls the result to zero, because a tier is only
// "complete" at a rank when no scenario sits below it.
func CompleteRank(aligned domain.AlignedDifficulty) int {
	scenarios := aligned.Scenarios()
	if len(scenarios) == 0 {
		return 0
	}

	complete := 0
	for i, sc := range scenarios {
		if !sc.Rank.Valid || sc.Rank.BaseRank <= 0 {
			return 0
		}
		if i == 0 || sc.Rank.BaseRank < complete {
			complete = sc.Rank.BaseRank
		}
	}
	return complete
}

// CompleteRankName resolves the display name for a complete rank:
// the tier name with a " Complete" suffix, "Unranked" for rank zero.
// Tier names already ending in a dangling qualifier (a "trainee-" or
// "prodigy-" suffix) are shown as-is; appending to them would split the
// qualifier from the name it modifies.
func CompleteRankName(tiers []domain.RankTier, rank int) string {
	if rank <= 0 || len(tiers) == 0 {
		return "Unranked"
	}
	if rank > len(tiers) {
		rank = len(tiers)
	}

	name := tiers[rank-1].Name
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "trainee-") || strings.HasSuffix(lower, "prodigy-") {
		return name
	}
	return name + completeSuffix
}
