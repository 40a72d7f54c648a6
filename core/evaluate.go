package core

import (
	"fmt"
	"time"

	"github.com/huangsam/archsurvey/core/algo"
	"github.com/huangsam/archsurvey/schema"
)

// Evaluate runs the full scoring pipeline over a set of answers.
// SessionID and Mode are left for the caller to fill in.
func Evaluate(answers map[int]schema.Answer, catalog schema.Catalog, model schema.ScoringModel) (schema.SurveyResult, error) {
	if _, ok := schema.ValidAveragingModes[model.Averaging]; !ok {
		return schema.SurveyResult{}, fmt.Errorf("invalid averaging mode '%s'", model.Averaging)
	}

	// --- 1. Category averages ---
	results, err := algo.ComputeCategoryResults(answers, catalog, model.Averaging)
	if err != nil {
		return schema.SurveyResult{}, err
	}

	// --- 2. Style scores ---
	scores := algo.DeriveStyleScores(results, model.CategoryWeights)

	// --- 3. Selection and interpretation ---
	rec := algo.SelectRecommendation(scores, model.NearTieThreshold)
	text := algo.Interpret(rec, results, model)

	total := catalog.QuestionCount()
	return schema.SurveyResult{
		State:          schema.StateFor(len(answers), total),
		Answered:       len(answers),
		Total:          total,
		Categories:     results,
		Scores:         scores,
		Recommendation: rec,
		Interpretation: text,
		Leanings:       algo.DeriveLeanings(answers, model.LowThreshold),
		Answers:        schema.SortedAnswers(answers),
		ComputedAt:     time.Now().UTC(),
	}, nil
}

// EvaluateValues builds a fresh session from raw question values and finalizes it.
func EvaluateValues(values map[int]float64, mode schema.AnswerMode, catalog schema.Catalog, model schema.ScoringModel) (schema.SurveyResult, error) {
	session := NewSession(catalog, mode)
	if err := session.AnswerAll(values); err != nil {
		return schema.SurveyResult{}, err
	}
	return session.Finalize(model)
}
