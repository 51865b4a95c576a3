package domain

// StrategyResult is the outcome of one aggregation strategy: the overall
// rank it computed and the diagnostic payload backing it.
type StrategyResult struct {
	// Rank is the computed overall rank (1-based, 0 when unranked).
	Rank int `json:"rank"`

	// Details carries the intermediate numbers behind the rank.
	Details Details `json:"details"`
}

// OverallRankResult is the engine's sole externally visible output,
// created fresh per evaluation call. Field names on the wire match the
// contract consumed by the CLI's callers.
type OverallRankResult struct {
	// Rank is the final overall rank (1-based, 0 when unranked or when
	// no data was available).
	Rank int `json:"rank"`

	// RankName is the display name for Rank: the tier name, the tier
	// name with a "Complete" suffix when the complete rank won, "No
	// data" for missing input, or "Unranked".
	RankName string `json:"rankName"`

	// UsedComplete reports that the complete rank was at least as high
	// as the strategy rank and was used.
	UsedComplete bool `json:"useComplete"`

	// FallbackUsed reports that no strategy was registered for the
	// benchmark's scoring method (or the strategy failed) and the
	// complete rank stood in.
	FallbackUsed bool `json:"fallbackUsed,omitempty"`

	// Details is the winning branch's diagnostic payload. Empty when
	// the complete rank won.
	Details Details `json:"details"`
}

// NoDataResult is the terminal result for missing or malformed input:
// rank zero with the "No data" display name. It is a value, never an
// error; translating it into a user-facing message is the caller's job.
func NoDataResult() OverallRankResult {
	return OverallRankResult{RankName: "No data", Details: NewDetails()}
}
