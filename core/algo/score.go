// Package algo has the pure scoring, derivation and selection logic.
package algo

import (
	"fmt"

	"github.com/huangsam/archsurvey/schema"
)

// ComputeCategoryResults accumulates answers into per-category results.
// Every catalog category gets an entry, even when it has no answers.
// The result does not depend on the iteration order of the answers.
func ComputeCategoryResults(answers map[int]schema.Answer, catalog schema.Catalog, averaging schema.AveragingMode) (schema.CategoryResults, error) {
	results := make(schema.CategoryResults, len(catalog))
	for _, cat := range catalog {
		results[cat.Key] = schema.CategoryResult{}
	}

	for id, a := range answers {
		if _, _, ok := catalog.Lookup(id); !ok {
			return nil, fmt.Errorf("%w: %d", schema.ErrUnknownQuestion, id)
		}
		r, ok := results[a.Category]
		if !ok {
			return nil, fmt.Errorf("%w: question %d references %q", schema.ErrUnknownCategory, id, a.Category)
		}
		r.WeightedSum += a.Value * a.Weight
		r.WeightTotal += a.Weight
		r.Count++
		results[a.Category] = r
	}

	for key, r := range results {
		r.Average = average(r, averaging)
		results[key] = r
	}
	return results, nil
}

// average divides the weighted sum by the answer count, or by the weight total
// for weight averaging. Empty categories average to 0.
func average(r schema.CategoryResult, averaging schema.AveragingMode) float64 {
	if r.Count == 0 {
		return 0
	}
	if averaging == schema.WeightAveraging {
		if r.WeightTotal == 0 {
			return 0
		}
		return r.WeightedSum / r.WeightTotal
	}
	return r.WeightedSum / float64(r.Count)
}
