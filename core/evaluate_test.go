package core

import (
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, values map[int]float64) schema.SurveyResult {
	t.Helper()
	result, err := EvaluateValues(values, schema.BinaryMode, schema.DefaultCatalog(), schema.DefaultScoringModel())
	require.NoError(t, err)
	return result
}

func yesFor(from, to int) map[int]float64 {
	values := make(map[int]float64)
	for id := from; id <= to; id++ {
		values[id] = 1
	}
	return values
}

func TestEvaluate_NoAnswers(t *testing.T) {
	result := evaluate(t, nil)

	assert.Equal(t, schema.NoAnswersState, result.State)
	assert.Equal(t, 0, result.Answered)
	assert.Equal(t, 18, result.Total)
	assert.InDelta(t, 1.0, result.Scores[schema.MonolithicStyle], 1e-9)
	assert.Zero(t, result.Scores[schema.MicroservicesStyle])

	rec := result.Recommendation
	assert.Equal(t, schema.MonolithicStyle, rec.Type)
	assert.Empty(t, rec.NearTies)
	assert.Equal(t, schema.GetStyleInfo(schema.MonolithicStyle).Template, result.Interpretation)
	assert.Empty(t, result.Leanings)
}

func TestEvaluate_AllYes(t *testing.T) {
	result := evaluate(t, yesFor(1, 18))

	assert.Equal(t, schema.FullyScoredState, result.State)
	for _, key := range schema.AllCategories {
		assert.Greater(t, result.Categories[key].Average, 0.7, key)
	}

	rec := result.Recommendation
	assert.Equal(t, schema.MicroservicesStyle, rec.Winner)
	assert.Equal(t, schema.HybridStyle, rec.Type)
	assert.Equal(t, []schema.Style{schema.EventsStyle, schema.HybridStyle}, rec.NearTies)
	assert.Equal(t, schema.HybridStyle.LeadPhrase(), rec.Message)
	assert.InDelta(t, 0.795252, rec.Score, 1e-6)
	assert.Equal(t, schema.GetStyleInfo(schema.HybridStyle).Template, result.Interpretation, "no hedge above the confidence threshold")

	require.Len(t, result.Leanings, 2)
	assert.Equal(t, schema.MicroservicesStyle, result.Leanings[0].Style)
	assert.Equal(t, schema.EventsStyle, result.Leanings[1].Style)
}

func TestEvaluate_AutonomyOnly(t *testing.T) {
	result := evaluate(t, yesFor(1, 5))

	assert.InDelta(t, 0.8, result.Categories[schema.AutonomyCategory].Average, 1e-9)
	assert.InDelta(t, 0.496124, result.Scores[schema.MicroservicesStyle], 1e-6)
	assert.InDelta(t, 0.503876, result.Scores[schema.MonolithicStyle], 1e-6)
	assert.InDelta(t, 0.248062, result.Scores[schema.HybridStyle], 1e-6)

	rec := result.Recommendation
	assert.Equal(t, schema.MonolithicStyle, rec.Winner)
	assert.Equal(t, schema.HybridStyle, rec.Type)
	assert.Equal(t, []schema.Style{schema.MicroservicesStyle}, rec.NearTies)
	assert.InDelta(t, 0.503876, rec.Score, 1e-6, "score keeps the winner's value")
	assert.Contains(t, rec.Description, "Monolithic / N-Tier Architecture")
	assert.Equal(t, schema.GetStyleInfo(schema.HybridStyle).Template+schema.HedgeSentence, result.Interpretation)

	require.Len(t, result.Leanings, 1)
	assert.Equal(t, schema.MicroservicesStyle, result.Leanings[0].Style)
}

func TestEvaluate_ClearMicroservices(t *testing.T) {
	values := yesFor(1, 13)
	for id := 14; id <= 18; id++ {
		values[id] = 0
	}
	result := evaluate(t, values)

	assert.InDelta(t, 0.7875, result.Categories[schema.GlobalCategory].Average, 1e-9)
	assert.InDelta(t, 0.795252, result.Scores[schema.MicroservicesStyle], 1e-6)
	assert.InDelta(t, 0.232923, result.Scores[schema.EventsStyle], 1e-6)

	rec := result.Recommendation
	assert.Equal(t, schema.MicroservicesStyle, rec.Type)
	assert.Equal(t, schema.MicroservicesStyle, rec.Winner)
	assert.Empty(t, rec.NearTies)
	assert.Equal(t, schema.MicroservicesStyle.Description(), rec.Description)
	assert.Equal(t, schema.GetStyleInfo(schema.MicroservicesStyle).Template, result.Interpretation)
}

func TestEvaluate_ScoreProperties(t *testing.T) {
	cases := []map[int]float64{nil, yesFor(1, 18), yesFor(1, 5), yesFor(6, 13), yesFor(14, 18), {1: 1, 9: 1, 17: 1}}
	for _, values := range cases {
		result := evaluate(t, values)
		s := result.Scores
		for _, style := range schema.AllStyles {
			assert.GreaterOrEqual(t, s[style], 0.0)
			assert.LessOrEqual(t, s[style], 1.0)
		}
		assert.InDelta(t, 1-s[schema.MicroservicesStyle], s[schema.MonolithicStyle], 1e-9)
		assert.InDelta(t, (s[schema.MicroservicesStyle]+s[schema.EventsStyle])/2, s[schema.HybridStyle], 1e-9)
		assert.NotContains(t, result.Recommendation.NearTies, result.Recommendation.Winner)
	}
}

func TestEvaluate_InvalidModel(t *testing.T) {
	model := schema.DefaultScoringModel()
	model.Averaging = "median"
	_, err := Evaluate(nil, schema.DefaultCatalog(), model)
	assert.Error(t, err)
}

func TestEvaluateValues_Errors(t *testing.T) {
	_, err := EvaluateValues(map[int]float64{42: 1}, schema.BinaryMode, schema.DefaultCatalog(), schema.DefaultScoringModel())
	assert.ErrorIs(t, err, schema.ErrUnknownQuestion)

	_, err = EvaluateValues(map[int]float64{1: 0.5}, schema.BinaryMode, schema.DefaultCatalog(), schema.DefaultScoringModel())
	assert.ErrorIs(t, err, schema.ErrInvalidAnswer)
}
