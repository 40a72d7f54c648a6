package core

import (
	"math"
	"sync"
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.GradedMode)
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, schema.GradedMode, s.Mode())
	assert.Equal(t, schema.NoAnswersState, s.State())
	assert.Empty(t, s.Answers())

	other := NewSession(schema.DefaultCatalog(), "weird")
	assert.Equal(t, schema.BinaryMode, other.Mode(), "invalid modes fall back to binary")
	assert.NotEqual(t, s.ID(), other.ID())
}

func TestSession_Answer(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.GradedMode)

	require.NoError(t, s.Answer(3, 0.6))
	answers := s.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, schema.Answer{QuestionID: 3, Value: 0.6, Weight: 0.8, Category: schema.AutonomyCategory}, answers[0])
	assert.Equal(t, schema.PartiallyAnsweredState, s.State())

	t.Run("upsert replaces the earlier value", func(t *testing.T) {
		require.NoError(t, s.Answer(3, 0.2))
		require.NoError(t, s.Answer(3, 0.2))
		answers := s.Answers()
		require.Len(t, answers, 1)
		assert.Equal(t, 0.2, answers[0].Value)
	})

	t.Run("unknown question", func(t *testing.T) {
		for _, id := range []int{0, 19, -1} {
			assert.ErrorIs(t, s.Answer(id, 1), schema.ErrUnknownQuestion, "id %d", id)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, v := range []float64{-0.1, 1.1, math.NaN()} {
			assert.ErrorIs(t, s.Answer(4, v), schema.ErrInvalidAnswer, "value %v", v)
		}
		assert.Len(t, s.Answers(), 1, "rejected answers are not stored")
	})
}

func TestSession_BinaryMode(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)

	assert.ErrorIs(t, s.Answer(1, 0.5), schema.ErrInvalidAnswer)
	require.NoError(t, s.AnswerYesNo(1, true))
	require.NoError(t, s.AnswerYesNo(2, false))

	answers := s.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, 1.0, answers[0].Value)
	assert.Equal(t, 0.0, answers[1].Value)
}

func TestSession_SetMode(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	require.NoError(t, s.AnswerYesNo(1, true))

	// Same mode keeps answers
	require.NoError(t, s.SetMode(schema.BinaryMode))
	assert.Len(t, s.Answers(), 1)

	require.NoError(t, s.SetMode(schema.GradedMode))
	assert.Empty(t, s.Answers())
	assert.Equal(t, schema.GradedMode, s.Mode())

	assert.Error(t, s.SetMode("fuzzy"))
}

func TestSession_AllAnswered(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	values := make(map[int]float64)
	for id := 1; id <= 18; id++ {
		values[id] = 1
	}
	require.NoError(t, s.AnswerAll(values))
	assert.Equal(t, schema.FullyScoredState, s.State())

	s.Reset()
	assert.Equal(t, schema.NoAnswersState, s.State())
}

func TestSession_FinalizeCaches(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	require.NoError(t, s.AnswerYesNo(1, true))
	model := schema.DefaultScoringModel()

	first, err := s.Finalize(model)
	require.NoError(t, err)
	assert.Equal(t, s.ID(), first.SessionID)
	assert.Equal(t, schema.BinaryMode, first.Mode)

	again, err := s.Finalize(model)
	require.NoError(t, err)
	assert.Equal(t, first.ComputedAt, again.ComputedAt, "cached result is reused")

	// A new answer invalidates the cache
	require.NoError(t, s.AnswerYesNo(14, true))
	changed, err := s.Finalize(model)
	require.NoError(t, err)
	assert.Equal(t, 2, changed.Answered)

	// So does a different model
	weighted := model.Clone()
	weighted.Averaging = schema.WeightAveraging
	other, err := s.Finalize(weighted)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, other.Categories[schema.AutonomyCategory].Average, 1e-9)
}

func TestSession_FinalizeReturnsCopies(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	for id := 1; id <= 18; id++ {
		require.NoError(t, s.AnswerYesNo(id, true))
	}
	model := schema.DefaultScoringModel()

	first, err := s.Finalize(model)
	require.NoError(t, err)
	micro := first.Scores[schema.MicroservicesStyle]
	require.NotEmpty(t, first.Recommendation.NearTies)
	require.NotEmpty(t, first.Leanings)

	// Changing what the caller got back must not reach the cache
	first.Scores[schema.MicroservicesStyle] = 42
	first.Categories[schema.AutonomyCategory] = schema.CategoryResult{Average: 42}
	first.Recommendation.NearTies[0] = schema.MonolithicStyle
	first.Leanings[0].Style = schema.MonolithicStyle
	first.Answers[0].Value = 0

	again, err := s.Finalize(model)
	require.NoError(t, err)
	assert.Equal(t, first.ComputedAt, again.ComputedAt, "served from the cache")
	assert.InDelta(t, micro, again.Scores[schema.MicroservicesStyle], 1e-12)
	assert.InDelta(t, 0.8, again.Categories[schema.AutonomyCategory].Average, 1e-9)
	assert.Equal(t, schema.EventsStyle, again.Recommendation.NearTies[0])
	assert.Equal(t, schema.MicroservicesStyle, again.Leanings[0].Style)
	assert.InDelta(t, 1.0, again.Answers[0].Value, 1e-12)

	// And copies handed out by the cache are independent of each other
	again.Scores[schema.EventsStyle] = -1
	third, err := s.Finalize(model)
	require.NoError(t, err)
	assert.NotEqual(t, -1.0, third.Scores[schema.EventsStyle])
}

func TestSession_ConcurrentAnswers(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.GradedMode)

	var wg sync.WaitGroup
	for id := 1; id <= 18; id++ {
		wg.Go(func() {
			assert.NoError(t, s.Answer(id, 0.5))
			_, err := s.Finalize(schema.DefaultScoringModel())
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	result, err := s.Finalize(schema.DefaultScoringModel())
	require.NoError(t, err)
	assert.Equal(t, 18, result.Answered)
	assert.Equal(t, schema.FullyScoredState, result.State)
}
