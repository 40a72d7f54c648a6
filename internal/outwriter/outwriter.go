// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResult prints a finalized survey result. A positive runID is shown as the stored run.
func (ow *OutWriter) WriteResult(result schema.SurveyResult, runID int64, cfg *contract.Config) error {
	return PrintSurveyResult(result, runID, cfg)
}

// WriteCatalog prints the question catalog.
func (ow *OutWriter) WriteCatalog(catalog schema.Catalog, cfg *contract.Config) error {
	return PrintCatalog(catalog, cfg)
}

// WriteModel prints the scoring formulas, weights and thresholds.
func (ow *OutWriter) WriteModel(model schema.ScoringModel, cfg *contract.Config) error {
	return PrintModelDefinitions(model, cfg)
}

// WriteHistory prints a list of stored runs.
func (ow *OutWriter) WriteHistory(runs []schema.SurveyRunRecord, cfg *contract.Config) error {
	return PrintHistory(runs, cfg)
}

// WriteRun prints one stored run with its answers and chat transcript.
func (ow *OutWriter) WriteRun(rec schema.SurveyRunRecord, answers []schema.AnswerRecord, chat []schema.ChatMessageRecord, cfg *contract.Config) error {
	return PrintRun(rec, answers, chat, cfg)
}

// WriteContext prints the reference blurb for an architecture style.
func (ow *OutWriter) WriteContext(archCtx schema.ArchitectureContext, cfg *contract.Config) error {
	return PrintArchitectureContext(archCtx, cfg)
}
