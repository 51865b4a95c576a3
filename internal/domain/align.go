package domain

import "fmt"

// AlignedScenario is one schema slot paired with the score record the
// positional walk assigned to it, plus the rank interpolation for that
// record.
type AlignedScenario struct {
	// Name is the scenario name, or a synthesized placeholder when the
	// score source ran short of entries for the slot.
	Name string

	// Record is the score record occupying this slot. Placeholder slots
	// carry a zero record with an empty ladder.
	Record ScoreRecord

	// Rank is the record's interpolation against its own ladder.
	Rank RankResult

	// Placeholder reports that no score-source entry backed this slot.
	Placeholder bool
}

// AlignedSubcategory is a schema subcategory with its slots filled.
type AlignedSubcategory struct {
	Category  string
	Name      string
	Scenarios []AlignedScenario
}

// AlignedDifficulty is the schema-shaped view of a snapshot: every
// subcategory of the difficulty with its scenario slots filled in
// declared order.
type AlignedDifficulty struct {
	Difficulty    string
	Subcategories []AlignedSubcategory
}

// Scenarios returns every aligned scenario in schema order.
func (a AlignedDifficulty) Scenarios() []AlignedScenario {
	var out []AlignedScenario
	for _, sub := range a.Subcategories {
		out = append(out, sub.Scenarios...)
	}
	return out
}

// AlignScenarios matches the snapshot's flat per-category scenario
// collections to the difficulty's declared slots purely by position:
// schema category i consumes snapshot category i, slot by slot, in each
// collection's own order. Name lookups are never used.
//
// When the score source runs short, missing slots are synthesized as
// Unknown_Scenario placeholders so downstream code never sees a missing
// key. Surplus entries are the opposite failure and are reported as an
// AlignmentError: a snapshot with more scenarios than the schema declares
// means the two sides disagree about the benchmark's shape, and aligning
// the remainder positionally would silently shift every later slot.
func AlignScenarios(dif Difficulty, snap Snapshot) (AlignedDifficulty, error) {
	if len(snap.Categories) > len(dif.Categories) {
		return AlignedDifficulty{}, &AlignmentError{
			Difficulty: dif.Name,
			Detail: fmt.Sprintf("snapshot has %d categories, schema declares %d",
				len(snap.Categories), len(dif.Categories)),
		}
	}

	aligned := AlignedDifficulty{Difficulty: dif.Name}
	for ci, cat := range dif.Categories {
		var source []ScoreRecord
		if ci < len(snap.Categories) {
			source = snap.Categories[ci].Scenarios
		}
		cursor := 0

		for _, sub := range cat.Subcategories {
			slot := AlignedSubcategory{Category: cat.Name, Name: sub.Name}
			for i := 0; i < sub.Scenarios; i++ {
				if cursor < len(source) {
					rec := source[cursor]
					cursor++
					slot.Scenarios = append(slot.Scenarios, AlignedScenario{
						Name:   rec.ScenarioName,
						Record: rec,
						Rank:   InterpolateRank(rec.Value(), rec.RankMaxes),
					})
					continue
				}
				slot.Scenarios = append(slot.Scenarios, AlignedScenario{
					Name:        fmt.Sprintf("Unknown_Scenario_%s_%s_%d", cat.Name, sub.Name, i),
					Placeholder: true,
				})
			}
			aligned.Subcategories = append(aligned.Subcategories, slot)
		}

		if cursor < len(source) {
			return AlignedDifficulty{}, &AlignmentError{
				Difficulty: dif.Name,
				Category:   cat.Name,
				Detail: fmt.Sprintf("score source has %d scenarios, schema declares %d slots",
					len(source), cursor),
			}
		}
	}
	return aligned, nil
}
