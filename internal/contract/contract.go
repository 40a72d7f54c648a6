// Package contract provides interfaces and shared utilities for the archsurvey CLI's internal architecture.
package contract

import (
	"context"
	"errors"

	"github.com/huangsam/archsurvey/schema"
)

// ErrRunNotFound is returned when a stored survey run does not exist.
var ErrRunNotFound = errors.New("survey run not found")

// StoreManager defines the interface for managing the survey store.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetSurveyStore() SurveyStore
}

// SurveyStore defines the interface for persisting survey runs and chat transcripts.
type SurveyStore interface {
	// RecordRun stores a finalized result with its answers and returns the new run ID
	RecordRun(result schema.SurveyResult) (int64, error)

	// GetRun returns a single run or ErrRunNotFound
	GetRun(runID int64) (schema.SurveyRunRecord, error)

	// GetLatestRun returns the most recent run or ErrRunNotFound
	GetLatestRun() (schema.SurveyRunRecord, error)

	// ListRuns returns the most recent runs, newest first
	ListRuns(limit int) ([]schema.SurveyRunRecord, error)

	// GetRunAnswers returns the answers of a run ordered by question ID
	GetRunAnswers(runID int64) ([]schema.AnswerRecord, error)

	// GetAllRuns returns every run, oldest first
	GetAllRuns() ([]schema.SurveyRunRecord, error)

	// GetAllAnswers returns every stored answer
	GetAllAnswers() ([]schema.AnswerRecord, error)

	// AppendChatMessage adds one message to the transcript of a run
	AppendChatMessage(runID int64, msg schema.ChatMessage) (int64, error)

	// GetChatHistory returns the transcript of a run in insertion order
	GetChatHistory(runID int64) ([]schema.ChatMessageRecord, error)

	// GetStatus returns status information about the store
	GetStatus() (schema.StoreStatus, error)

	// Close closes the underlying connection
	Close() error
}

// ChatProvider defines the interface for a conversational model backend.
type ChatProvider interface {
	// Complete returns the reply to the conversation, given a system prompt
	Complete(ctx context.Context, system string, messages []schema.ChatMessage) (string, error)
}

// OutputWriter defines the interface for rendering command results.
// Each method honours cfg.Output and cfg.OutputFile.
type OutputWriter interface {
	WriteResult(result schema.SurveyResult, runID int64, cfg *Config) error
	WriteCatalog(catalog schema.Catalog, cfg *Config) error
	WriteModel(model schema.ScoringModel, cfg *Config) error
	WriteHistory(runs []schema.SurveyRunRecord, cfg *Config) error
	WriteRun(rec schema.SurveyRunRecord, answers []schema.AnswerRecord, chat []schema.ChatMessageRecord, cfg *Config) error
	WriteContext(archCtx schema.ArchitectureContext, cfg *Config) error
}
