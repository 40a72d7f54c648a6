// Package parquet provides data structures and functions for exporting stored
// survey runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/archsurvey/schema"
	"github.com/parquet-go/parquet-go"
)

// SurveyRun represents a single finalized survey run.
// This struct maps to the archsurvey_runs database table.
type SurveyRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// SessionID identifies the session that produced the run
	SessionID string `parquet:"session_id,snappy"`

	// CreatedAt is when the result was computed (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// AnswerMode is binary or graded
	AnswerMode string `parquet:"answer_mode,snappy"`

	Answered       int32 `parquet:"answered,snappy"`
	TotalQuestions int32 `parquet:"total_questions,snappy"`

	// RecommendationType is the recommended style after near-tie escalation
	RecommendationType string `parquet:"rec_type,snappy"`

	// Winner is the raw argmax style before escalation
	Winner string `parquet:"winner,snappy"`

	// Score is the score of the winning style
	Score float64 `parquet:"score,snappy"`

	Description string `parquet:"description,snappy"`

	// NearTies is a comma-separated list of styles within the near-tie threshold (nullable)
	NearTies *string `parquet:"near_ties,optional,snappy"`

	Interpretation string `parquet:"interpretation,snappy"`

	ScoreMicroservices float64 `parquet:"score_microservices,snappy"`
	ScoreEvents        float64 `parquet:"score_events,snappy"`
	ScoreMonolithic    float64 `parquet:"score_monolithic,snappy"`
	ScoreHybrid        float64 `parquet:"score_hybrid,snappy"`

	AvgAutonomy float64 `parquet:"avg_autonomy,snappy"`
	AvgGlobal   float64 `parquet:"avg_global,snappy"`
	AvgEvents   float64 `parquet:"avg_events,snappy"`
}

// SurveyAnswer represents one answered question within a run.
// This struct maps to the archsurvey_answers database table.
type SurveyAnswer struct {
	RunID      int64   `parquet:"run_id,snappy"`
	QuestionID int32   `parquet:"question_id,snappy"`
	Category   string  `parquet:"category,snappy"`
	Value      float64 `parquet:"value,snappy"`
	Weight     float64 `parquet:"weight,snappy"`
}

// writeParquet writes rows of any struct type to a new Parquet file.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteSurveyRunsParquet writes a slice of SurveyRun structs to a Parquet file.
func WriteSurveyRunsParquet(data []SurveyRun, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteSurveyAnswersParquet writes a slice of SurveyAnswer structs to a Parquet file.
func WriteSurveyAnswersParquet(data []SurveyAnswer, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertSurveyRunRecords converts schema.SurveyRunRecord to SurveyRun for Parquet export.
func ConvertSurveyRunRecords(records []schema.SurveyRunRecord) []SurveyRun {
	result := make([]SurveyRun, len(records))
	for i, record := range records {
		result[i] = SurveyRun{
			RunID:              record.RunID,
			SessionID:          record.SessionID,
			CreatedAt:          record.CreatedAt,
			AnswerMode:         string(record.Mode),
			Answered:           int32(record.Answered),
			TotalQuestions:     int32(record.Total),
			RecommendationType: string(record.Type),
			Winner:             string(record.Winner),
			Score:              record.Score,
			Description:        record.Description,
			NearTies:           joinStyles(record.NearTies),
			Interpretation:     record.Interpretation,
			ScoreMicroservices: record.ScoreMicroservices,
			ScoreEvents:        record.ScoreEvents,
			ScoreMonolithic:    record.ScoreMonolithic,
			ScoreHybrid:        record.ScoreHybrid,
			AvgAutonomy:        record.AvgAutonomy,
			AvgGlobal:          record.AvgGlobal,
			AvgEvents:          record.AvgEvents,
		}
	}
	return result
}

// ConvertAnswerRecords converts schema.AnswerRecord to SurveyAnswer for Parquet export.
func ConvertAnswerRecords(records []schema.AnswerRecord) []SurveyAnswer {
	result := make([]SurveyAnswer, len(records))
	for i, record := range records {
		result[i] = SurveyAnswer{
			RunID:      record.RunID,
			QuestionID: int32(record.QuestionID),
			Category:   string(record.Category),
			Value:      record.Value,
			Weight:     record.Weight,
		}
	}
	return result
}

func joinStyles(styles []schema.Style) *string {
	if len(styles) == 0 {
		return nil
	}
	parts := make([]string, len(styles))
	for i, s := range styles {
		parts[i] = string(s)
	}
	joined := strings.Join(parts, ",")
	return &joined
}
