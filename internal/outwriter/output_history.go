package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// jsonRun is the JSON shape of a stored run with its transcript.
type jsonRun struct {
	jsonSurveyResult
	Chat []schema.ChatMessageRecord `json:"chat,omitempty"`
}

// PrintHistory outputs a list of stored runs in the configured format.
func PrintHistory(runs []schema.SurveyRunRecord, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if runs == nil {
				runs = []schema.SurveyRunRecord{}
			}
			return writeJSON(w, runs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHistory(w, runs, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, runs, cfg, fmtFloat)
		}, "Wrote table")
	}
}

func writeHistoryTable(w io.Writer, runs []schema.SurveyRunRecord, cfg *contract.Config, fmtFloat func(float64) string) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No survey runs found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Run", "Created", "Mode", "Answered", "Recommendation", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Winner", "Near Ties", "Session")
	}
	table.Header(headers)
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		row := []string{
			strconv.FormatInt(r.RunID, 10),
			r.CreatedAt.Local().Format(contract.DateTimeFormat),
			string(r.Mode),
			fmt.Sprintf("%d/%d", r.Answered, r.Total),
			r.Type.DisplayName(),
			fmtFloat(r.Score),
			colorLabel(r.Score, cfg),
		}
		if cfg.Detail {
			row = append(row, r.Winner.DisplayName(), schema.JoinStyles(r.NearTies), r.SessionID)
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d runs (store backend: %s)\n", len(runs), cfg.StoreBackend)
	return err
}

func writeCSVHistory(w io.Writer, runs []schema.SurveyRunRecord, fmtFloat func(float64) string) error {
	header := []string{"run_id", "session_id", "created_at", "mode", "answered", "total", "type", "winner", "score", "label", "near_ties"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range runs {
			rec := []string{
				strconv.FormatInt(r.RunID, 10),
				r.SessionID,
				r.CreatedAt.UTC().Format(contract.DateTimeFormat),
				string(r.Mode),
				strconv.Itoa(r.Answered),
				strconv.Itoa(r.Total),
				string(r.Type),
				string(r.Winner),
				fmtFloat(r.Score),
				schema.GetPlainLabel(r.Score),
				schema.FormatStyles(r.NearTies),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// PrintRun outputs one stored run. Text output appends the chat transcript.
func PrintRun(rec schema.SurveyRunRecord, answers []schema.AnswerRecord, chat []schema.ChatMessageRecord, cfg *contract.Config) error {
	result := rec.ToResult(answers)
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, jsonRun{jsonSurveyResult: newJSONSurveyResult(result, rec.RunID), Chat: chat})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResult(w, result, rec.RunID, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Run #%d recorded %s\n\n", rec.RunID, rec.CreatedAt.Local().Format(contract.DateTimeFormat)); err != nil {
				return err
			}
			if err := writeResultText(w, result, 0, cfg, fmtFloat); err != nil {
				return err
			}
			return writeTranscript(w, chat, cfg)
		}, "Wrote text")
	}
}

func writeTranscript(w io.Writer, chat []schema.ChatMessageRecord, cfg *contract.Config) error {
	if len(chat) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeTitle(w, cfg, "💬", "Conversation"); err != nil {
		return err
	}
	for _, m := range chat {
		speaker := "You"
		if m.Role == schema.AssistantRole {
			speaker = "Assistant"
		}
		if _, err := fmt.Fprintf(w, "\n%s: %s\n", speaker, m.Content); err != nil {
			return err
		}
	}
	return nil
}
