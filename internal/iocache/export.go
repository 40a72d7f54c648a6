package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/parquet"
)

// ExecuteExport exports every stored run and answer to Parquet files
// named <outputFile>.survey_runs.parquet and <outputFile>.survey_answers.parquet.
func ExecuteExport(store contract.SurveyStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("survey store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no survey data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total survey runs: %d\n", status.TotalRuns)
	fmt.Printf("Total answers: %d\n", status.TotalAnswers)

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve survey runs: %w", err)
	}

	// Retrieve all answers
	answers, err := store.GetAllAnswers()
	if err != nil {
		return fmt.Errorf("failed to retrieve answers: %w", err)
	}

	// Write runs to Parquet
	runsFile := outputFile + ".survey_runs.parquet"
	if err := parquet.WriteSurveyRunsParquet(parquet.ConvertSurveyRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write survey runs: %w", err)
	}
	fmt.Printf("Exported %d survey runs to: %s\n", len(runs), runsFile)

	// Write answers to Parquet
	answersFile := outputFile + ".survey_answers.parquet"
	if err := parquet.WriteSurveyAnswersParquet(parquet.ConvertAnswerRecords(answers), answersFile); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	fmt.Printf("Exported %d answers to: %s\n", len(answers), answersFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
