// Package domain contains pure, dependency-free domain models and the
// rank-evaluation primitives shared by every scoring strategy.
package domain

import "strings"

// Benchmark describes a named suite of scored scenarios together with the
// scoring method used to combine them into one overall rank.
// A Benchmark is handed to the engine by the schema source and is never
// mutated during evaluation.
type Benchmark struct {
	// Name is the display name of the benchmark (e.g. "Voltaic S5").
	Name string `json:"benchmarkName" yaml:"benchmarkName"`

	// Method is the scoring-method identifier used to resolve an
	// aggregation strategy from the registry (e.g. "energy_harmonic").
	Method string `json:"rankCalculation" yaml:"rankCalculation"`

	// Difficulties lists the benchmark's difficulty tiers in declared
	// order. The order matters: pooled scoring methods slice a global
	// threshold ladder by a difficulty's position in this list.
	Difficulties []Difficulty `json:"difficulties" yaml:"difficulties"`
}

// Difficulty is one tier of a benchmark schema: an ordered list of
// categories, each holding ordered subcategories with a fixed number of
// scenario slots. The declared order is the positional-alignment contract
// with the score source and must never be reordered.
type Difficulty struct {
	// Name identifies the tier (e.g. "novice", "intermediate", "advanced").
	// Lookups by name are case-insensitive.
	Name string `json:"name" yaml:"name"`

	// Categories in fixed declared order.
	Categories []SchemaCategory `json:"categories" yaml:"categories"`
}

// SchemaCategory groups subcategories under a display name.
type SchemaCategory struct {
	Name          string        `json:"name" yaml:"name"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
}

// Subcategory declares how many scenario slots belong to it.
type Subcategory struct {
	Name string `json:"name" yaml:"name"`

	// Scenarios is the slot count, not a list: the concrete scenario
	// names come from the score source via positional alignment.
	Scenarios int `json:"scenarios" yaml:"scenarios"`
}

// SlotCount returns the total number of scenario slots declared by the
// difficulty across all categories and subcategories.
func (d Difficulty) SlotCount() int {
	total := 0
	for _, cat := range d.Categories {
		for _, sub := range cat.Subcategories {
			total += sub.Scenarios
		}
	}
	return total
}

// FindDifficulty returns the difficulty with the given name, matched
// case-insensitively, and its position in the declared order.
// The boolean reports whether the difficulty exists in the schema.
func (b Benchmark) FindDifficulty(name string) (Difficulty, int, bool) {
	for i, d := range b.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, i, true
		}
	}
	return Difficulty{}, 0, false
}
