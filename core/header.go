package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// headerOut is where progress headers go, so that stdout stays parseable.
var headerOut io.Writer = os.Stderr

// logSurveyHeader prints a concise, 2-line header before scoring.
func logSurveyHeader(ctx context.Context, cfg *contract.Config, session *Session) {
	if shouldSuppressHeader(ctx) || cfg.Output == schema.JSONOut || cfg.Output == schema.CSVOut {
		return
	}

	// Line 1: The session summary (Mode and Averaging)
	_, _ = fmt.Fprintf(headerOut, "🔎 Session: %s (Mode: %s, Averaging: %s)\n", session.ID()[:8], session.Mode(), cfg.Model.Averaging)

	// Line 2: How much of the catalog is answered
	answered := len(session.Answers())
	_, _ = fmt.Fprintf(headerOut, "📝 Answered: %d/%d questions\n", answered, session.Catalog().QuestionCount())
}
