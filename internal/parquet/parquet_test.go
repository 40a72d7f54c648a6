package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/archsurvey/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRunRecords() []schema.SurveyRunRecord {
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	return []schema.SurveyRunRecord{
		{
			RunID:              1,
			SessionID:          "s-1",
			CreatedAt:          now.Add(-time.Hour),
			Mode:               schema.BinaryMode,
			Answered:           18,
			Total:              18,
			Type:               schema.HybridStyle,
			Winner:             schema.MicroservicesStyle,
			Score:              0.9,
			Description:        "Hybrid Architecture",
			NearTies:           []schema.Style{schema.EventsStyle, schema.HybridStyle},
			Interpretation:     "Mixed signals.",
			ScoreMicroservices: 0.9,
			ScoreEvents:        0.8,
			ScoreMonolithic:    0.1,
			ScoreHybrid:        0.85,
			AvgAutonomy:        0.9,
			AvgGlobal:          0.5,
			AvgEvents:          0.8,
		},
		{
			RunID:       2,
			SessionID:   "s-2",
			CreatedAt:   now,
			Mode:        schema.GradedMode,
			Answered:    3,
			Total:       18,
			Type:        schema.MonolithicStyle,
			Winner:      schema.MonolithicStyle,
			Score:       0.8,
			Description: "Monolithic Architecture",
		},
	}
}

func TestSurveyRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(SurveyRun))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id", "session_id", "created_at", "answer_mode", "answered", "total_questions",
		"rec_type", "winner", "score", "description", "near_ties", "interpretation",
		"score_microservices", "score_events", "score_monolithic", "score_hybrid",
		"avg_autonomy", "avg_global", "avg_events",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestSurveyAnswerStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(SurveyAnswer))
	for _, colName := range []string{"run_id", "question_id", "category", "value", "weight"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestConvertSurveyRunRecords(t *testing.T) {
	rows := ConvertSurveyRunRecords(sampleRunRecords())
	require.Len(t, rows, 2)

	assert.Equal(t, "hybrid", rows[0].RecommendationType)
	assert.Equal(t, "microservices", rows[0].Winner)
	require.NotNil(t, rows[0].NearTies)
	assert.Equal(t, "events,hybrid", *rows[0].NearTies)
	assert.Equal(t, int32(18), rows[0].TotalQuestions)

	assert.Nil(t, rows[1].NearTies)
	assert.Equal(t, "graded", rows[1].AnswerMode)

	assert.Empty(t, ConvertSurveyRunRecords(nil))
}

func TestConvertAnswerRecords(t *testing.T) {
	rows := ConvertAnswerRecords([]schema.AnswerRecord{
		{RunID: 7, QuestionID: 14, Category: schema.EventsCategory, Value: 1, Weight: 0.8},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, SurveyAnswer{RunID: 7, QuestionID: 14, Category: "events", Value: 1, Weight: 0.8}, rows[0])
}

func TestWriteSurveyRunsParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "survey_runs.parquet")
	data := ConvertSurveyRunRecords(sampleRunRecords())

	require.NoError(t, WriteSurveyRunsParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SurveyRun](file)
	defer func() { _ = reader.Close() }()

	readData := make([]SurveyRun, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].RunID, readData[i].RunID)
		assert.Equal(t, data[i].SessionID, readData[i].SessionID)
		assert.WithinDuration(t, data[i].CreatedAt, readData[i].CreatedAt, time.Microsecond)
		assert.InDelta(t, data[i].ScoreHybrid, readData[i].ScoreHybrid, 1e-9)
		if data[i].NearTies == nil {
			assert.Nil(t, readData[i].NearTies)
		} else {
			require.NotNil(t, readData[i].NearTies)
			assert.Equal(t, *data[i].NearTies, *readData[i].NearTies)
		}
	}
}

func TestWriteSurveyAnswersParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "survey_answers.parquet")
	data := []SurveyAnswer{
		{RunID: 1, QuestionID: 1, Category: "autonomy", Value: 1, Weight: 0.9},
		{RunID: 1, QuestionID: 8, Category: "global", Value: 0.5, Weight: 0.7},
	}
	require.NoError(t, WriteSurveyAnswersParquet(data, outputPath))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[SurveyAnswer](file)
	defer func() { _ = reader.Close() }()

	readData := make([]SurveyAnswer, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	assert.Equal(t, len(data), n)
	assert.Equal(t, data, readData)
}

func TestWriteSurveyRunsParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WriteSurveyRunsParquet([]SurveyRun{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "empty files still carry a footer")
}

func TestWriteParquet_BadPath(t *testing.T) {
	err := WriteSurveyAnswersParquet(nil, filepath.Join(t.TempDir(), "missing", "out.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}
