// Package core has the survey session, the evaluation pipeline and the command entry points.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/archsurvey/core/algo"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/knowledge"
	"github.com/huangsam/archsurvey/schema"
)

// errStoreNotInitialized is returned by commands that need a survey store.
var errStoreNotInitialized = errors.New("survey store is not initialized")

// ExecuteRecommend scores a fixed set of answers and writes the result.
// It serves as the main entry point for the 'recommend' command.
func ExecuteRecommend(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, ow contract.OutputWriter, values map[int]float64) error {
	session := NewSession(schema.DefaultCatalog(), cfg.Mode)
	if err := session.AnswerAll(values); err != nil {
		return err
	}
	logSurveyHeader(ctx, cfg, session)
	return finalizeAndWrite(cfg, mgr, ow, session)
}

// ExecuteSurvey runs the interactive survey and writes the result.
// It serves as the main entry point for the 'survey' command.
func ExecuteSurvey(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, ow contract.OutputWriter, in io.Reader, out io.Writer) error {
	session := NewSession(schema.DefaultCatalog(), cfg.Mode)
	logSurveyHeader(ctx, cfg, session)
	if err := RunSurvey(ctx, session, in, out); err != nil {
		return err
	}
	return finalizeAndWrite(cfg, mgr, ow, session)
}

// finalizeAndWrite scores the session, stores the run when possible and renders it.
// A storage failure is reported but never hides the result.
func finalizeAndWrite(cfg *contract.Config, mgr contract.StoreManager, ow contract.OutputWriter, session *Session) error {
	result, err := session.Finalize(cfg.Model)
	if err != nil {
		return err
	}
	runID := recordRun(mgr, result)
	return ow.WriteResult(result, runID, cfg)
}

func recordRun(mgr contract.StoreManager, result schema.SurveyResult) int64 {
	store := storeFrom(mgr)
	if store == nil {
		return 0
	}
	runID, err := store.RecordRun(result)
	if err != nil {
		contract.LogWarn("Cannot record survey run", err)
		return 0
	}
	return runID
}

func storeFrom(mgr contract.StoreManager) contract.SurveyStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetSurveyStore()
}

// ExecuteQuestions writes the question catalog.
func ExecuteQuestions(_ context.Context, cfg *contract.Config, ow contract.OutputWriter) error {
	return ow.WriteCatalog(schema.DefaultCatalog(), cfg)
}

// ExecuteModel writes the active scoring model.
func ExecuteModel(_ context.Context, cfg *contract.Config, ow contract.OutputWriter) error {
	return ow.WriteModel(cfg.Model, cfg)
}

// ExecuteHistoryList writes the most recent stored runs.
func ExecuteHistoryList(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, ow contract.OutputWriter) error {
	store := storeFrom(mgr)
	if store == nil {
		return errStoreNotInitialized
	}
	runs, err := store.ListRuns(cfg.Limit)
	if err != nil {
		return fmt.Errorf("failed to list survey runs: %w", err)
	}
	return ow.WriteHistory(runs, cfg)
}

// ExecuteHistoryShow writes one stored run with its answers and transcript.
// A runID of 0 selects the latest run.
func ExecuteHistoryShow(_ context.Context, cfg *contract.Config, mgr contract.StoreManager, ow contract.OutputWriter, runID int64) error {
	store := storeFrom(mgr)
	if store == nil {
		return errStoreNotInitialized
	}
	rec, err := loadRun(store, runID)
	if err != nil {
		return err
	}
	answers, err := store.GetRunAnswers(rec.RunID)
	if err != nil {
		return fmt.Errorf("failed to load answers of run %d: %w", rec.RunID, err)
	}
	chat, err := store.GetChatHistory(rec.RunID)
	if err != nil {
		return fmt.Errorf("failed to load chat history of run %d: %w", rec.RunID, err)
	}
	return ow.WriteRun(rec, answers, chat, cfg)
}

func loadRun(store contract.SurveyStore, runID int64) (schema.SurveyRunRecord, error) {
	var (
		rec schema.SurveyRunRecord
		err error
	)
	if runID == 0 {
		rec, err = store.GetLatestRun()
	} else {
		rec, err = store.GetRun(runID)
	}
	if errors.Is(err, contract.ErrRunNotFound) {
		if runID == 0 {
			return rec, fmt.Errorf("no stored survey runs, complete a survey first: %w", err)
		}
		return rec, fmt.Errorf("run %d: %w", runID, err)
	}
	if err != nil {
		return rec, fmt.Errorf("failed to load survey run: %w", err)
	}
	return rec, nil
}

// restoreResult rebuilds a stored run as a result, leanings included.
func restoreResult(rec schema.SurveyRunRecord, answers []schema.AnswerRecord, low float64) schema.SurveyResult {
	result := rec.ToResult(answers)
	byID := make(map[int]schema.Answer, len(result.Answers))
	for _, a := range result.Answers {
		byID[a.QuestionID] = a
	}
	result.Leanings = algo.DeriveLeanings(byID, low)
	return result
}

// ExecuteContext writes the reference blurb of an architecture style.
func ExecuteContext(_ context.Context, cfg *contract.Config, ow contract.OutputWriter, style string) error {
	s := schema.Style(strings.ToLower(strings.TrimSpace(style)))
	if _, ok := schema.ValidStyles[s]; !ok {
		return fmt.Errorf("invalid style '%s'. must be microservices, events, monolithic, hybrid", style)
	}
	lib, err := knowledge.Load(cfg.ContextFile)
	if err != nil {
		return err
	}
	archCtx, err := lib.Lookup(s)
	if err != nil {
		return err
	}
	return ow.WriteContext(archCtx, cfg)
}

// CollectAnswers merges an optional answers file with id=value specs.
// Specs override file values. The mode is the file's mode, or empty if none.
func CollectAnswers(answersFile string, specs []string) (map[int]float64, schema.AnswerMode, error) {
	values := make(map[int]float64)
	var mode schema.AnswerMode

	if answersFile != "" {
		file, fromFile, err := LoadAnswersFile(answersFile)
		if err != nil {
			return nil, "", err
		}
		if file.Mode != "" {
			mode = schema.AnswerMode(strings.ToLower(file.Mode))
			if _, ok := schema.ValidAnswerModes[mode]; !ok {
				return nil, "", fmt.Errorf("invalid mode '%s' in %s. must be binary, graded", file.Mode, answersFile)
			}
		}
		for id, v := range fromFile {
			values[id] = v
		}
	}

	fromSpecs, err := ParseAnswerSpecs(specs)
	if err != nil {
		return nil, "", err
	}
	for id, v := range fromSpecs {
		values[id] = v
	}
	return values, mode, nil
}
