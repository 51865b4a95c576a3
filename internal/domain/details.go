package domain

import (
	"encoding/json"
	"fmt"
	"maps"
)

// DetailKey is a type-safe key for values in a Details payload. The type
// parameter ensures compile-time type safety when reading and writing
// diagnostic values, eliminating runtime type assertions at call sites.
type DetailKey[T any] struct{ name string }

// NewDetailKey creates a DetailKey with the given wire name. It is
// provided for strategies registered from outside this module.
func NewDetailKey[T any](name string) DetailKey[T] {
	return DetailKey[T]{name: name}
}

// Predefined detail keys. The wire names match what callers of the
// original CLI contract read from the details object.
var (
	// DetailHarmonicMean stores the harmonic mean of subcategory
	// energies, rounded to one decimal.
	DetailHarmonicMean = DetailKey[float64]{"harmonicMean"}

	// DetailProgress stores progress toward the next overall rank.
	DetailProgress = DetailKey[float64]{"progressToNextRank"}

	// DetailEnergies stores the per-subcategory best-scenario energies.
	DetailEnergies = DetailKey[[]SubcategoryEnergy]{"subcategoryEnergies"}

	// DetailRankCounts stores, per rank index, how many scenarios
	// reached at least that rank.
	DetailRankCounts = DetailKey[[]int]{"rankCounts"}

	// DetailPointTotal stores the summed points of a point-based
	// strategy.
	DetailPointTotal = DetailKey[float64]{"pointTotal"}

	// DetailCategoryPoints stores per-category point contributions.
	DetailCategoryPoints = DetailKey[[]CategoryPoints]{"categoryPoints"}

	// DetailMaxedScenarios stores how many scenarios topped out their
	// ladders.
	DetailMaxedScenarios = DetailKey[int]{"maxedScenarios"}

	// DetailEvaluationID stores the unique identifier stamped on each
	// evaluation for correlation across logs, traces, and results.
	DetailEvaluationID = DetailKey[string]{"evaluationId"}
)

// SubcategoryEnergy is the energy of the subcategory's best scenario.
type SubcategoryEnergy struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Scenario    string `json:"scenario"`
	Energy      int    `json:"energy"`
}

// CategoryPoints is one category's contribution to a point total.
type CategoryPoints struct {
	Category string  `json:"category"`
	Points   float64 `json:"points"`
}

// Details is an immutable diagnostic payload attached to every strategy
// result. It carries the intermediate numbers (energies, counts,
// progress) a caller needs to render a breakdown; producing them is part
// of the strategy contract, not optional telemetry. Copy-on-write
// semantics keep shared payloads safe across goroutines.
type Details struct {
	data map[string]any
}

// NewDetails creates an empty Details payload.
func NewDetails() Details {
	return Details{data: make(map[string]any)}
}

// Detail reads a typed value from the payload. The boolean reports
// whether the key is present with the expected type. Slice values are
// copied so callers cannot mutate the payload through the result.
func Detail[T any](d Details, key DetailKey[T]) (T, bool) {
	var zero T
	value, ok := d.data[key.name]
	if !ok {
		return zero, false
	}
	val, ok := copyDetailValue(value).(T)
	return val, ok
}

// WithDetail returns a new Details with the key set, leaving the
// original unchanged.
func WithDetail[T any](d Details, key DetailKey[T], value T) Details {
	newData := maps.Clone(d.data)
	if newData == nil {
		newData = make(map[string]any)
	}
	newData[key.name] = copyDetailValue(value)
	return Details{data: newData}
}

// Len returns the number of entries in the payload.
func (d Details) Len() int { return len(d.data) }

// MarshalJSON renders the payload as a flat JSON object keyed by the
// detail wire names.
func (d Details) MarshalJSON() ([]byte, error) {
	if d.data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d.data)
}

// String returns a debug representation of the payload.
func (d Details) String() string { return fmt.Sprintf("Details%v", d.data) }

// copyDetailValue copies the slice-typed detail values so the payload
// stays immutable. Detail values are restricted to value types and flat
// slices of value types, so no recursive copy is needed.
func copyDetailValue(value any) any {
	switch v := value.(type) {
	case []SubcategoryEnergy:
		return append([]SubcategoryEnergy(nil), v...)
	case []CategoryPoints:
		return append([]CategoryPoints(nil), v...)
	case []int:
		return append([]int(nil), v...)
	case []float64:
		return append([]float64(nil), v...)
	default:
		return v
	}
}
