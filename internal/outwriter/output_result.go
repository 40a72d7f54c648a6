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

// jsonSurveyResult is the JSON shape of a result, with the ranked styles added.
type jsonSurveyResult struct {
	RunID int64 `json:"run_id,omitempty"`
	schema.SurveyResult
	Ranking []schema.RankedStyle `json:"ranking"`
}

// PrintSurveyResult outputs a survey result, dispatching based on the output format configured.
func PrintSurveyResult(result schema.SurveyResult, runID int64, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, newJSONSurveyResult(result, runID))
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResult(w, result, runID, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultText(w, result, runID, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func newJSONSurveyResult(result schema.SurveyResult, runID int64) jsonSurveyResult {
	return jsonSurveyResult{
		RunID:        runID,
		SurveyResult: result,
		Ranking:      schema.RankStyles(result.Scores, result.Recommendation),
	}
}

// writeResultText renders the recommendation summary followed by the score tables.
func writeResultText(w io.Writer, result schema.SurveyResult, runID int64, cfg *contract.Config, fmtFloat func(float64) string) error {
	rec := result.Recommendation

	if err := writeTitle(w, cfg, "🏛️", "Architecture Recommendation"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nRecommendation: %s\n", highlight(rec.Description, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %s (%s)\n", fmtFloat(rec.Score), colorLabel(rec.Score, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Answered: %d/%d (%s, %s mode)\n", result.Answered, result.Total, result.State, result.Mode); err != nil {
		return err
	}
	if rec.IsEscalated() {
		if _, err := fmt.Fprintf(w, "Near ties with %s: %s\n", rec.Winner.DisplayName(), schema.JoinStyles(rec.NearTies)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s\n\n%s\n\n", rec.Message, result.Interpretation); err != nil {
		return err
	}

	if err := writeStyleTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}
	if err := writeCategoryTable(w, result, cfg, fmtFloat); err != nil {
		return err
	}

	if len(result.Leanings) > 0 {
		if _, err := fmt.Fprintln(w, "Leanings:"); err != nil {
			return err
		}
		for _, l := range result.Leanings {
			if _, err := fmt.Fprintf(w, "  - %s: %s\n", l.Style.DisplayName(), l.Reason); err != nil {
				return err
			}
		}
	}

	if cfg.Explain {
		if err := writeAnswerTable(w, result.Answers, cfg, fmtFloat); err != nil {
			return err
		}
	}

	if runID > 0 {
		if _, err := fmt.Fprintf(w, "Saved as run #%d (store backend: %s)\n", runID, cfg.StoreBackend); err != nil {
			return err
		}
	}
	return nil
}

func writeStyleTable(w io.Writer, result schema.SurveyResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Style", "Score", "Label", "Note"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, rs := range schema.RankStyles(result.Scores, result.Recommendation) {
		data = append(data, []string{
			strconv.Itoa(rs.Rank),
			rs.Name,
			fmtFloat(rs.Score),
			colorLabel(rs.Score, cfg),
			styleNote(rs),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// styleNote marks the winner, near-ties and the selected style.
func styleNote(rs schema.RankedStyle) string {
	switch {
	case rs.Selected && rs.Winner:
		return "selected"
	case rs.Selected:
		return "selected (near-tie)"
	case rs.Winner:
		return "top score"
	case rs.NearTie:
		return "near-tie"
	default:
		return ""
	}
}

func writeCategoryTable(w io.Writer, result schema.SurveyResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	headers := []string{"Category", "Answered", "Average", "Band"}
	if cfg.Detail {
		headers = append(headers, "Weighted Sum", "Weight Total")
	}
	table.Header(headers)
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, ec := range schema.EnrichCategories(schema.DefaultCatalog(), result.Categories, cfg.Model.LowThreshold) {
		row := []string{
			ec.Name,
			strconv.Itoa(ec.Count),
			fmtFloat(ec.Average),
			colorBand(ec.Band, cfg),
		}
		if cfg.Detail {
			row = append(row, fmtFloat(ec.WeightedSum), fmtFloat(ec.WeightTotal))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeAnswerTable(w io.Writer, answers []schema.Answer, cfg *contract.Config, fmtFloat func(float64) string) error {
	catalog := schema.DefaultCatalog()
	width := getMaxTextWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Question", "Category", "Value", "Weight"})

	var data [][]string
	for _, a := range answers {
		text := ""
		if q, _, ok := catalog.Lookup(a.QuestionID); ok {
			text = contract.TruncateText(q.Text, width)
		}
		data = append(data, []string{
			strconv.Itoa(a.QuestionID),
			text,
			string(a.Category),
			fmtFloat(a.Value),
			fmtFloat(a.Weight),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResult writes one row per style in rank order.
func writeCSVResult(w io.Writer, result schema.SurveyResult, runID int64, fmtFloat func(float64) string) error {
	header := []string{"rank", "style", "name", "score", "label", "winner", "near_tie", "selected", "state", "run_id"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, rs := range schema.RankStyles(result.Scores, result.Recommendation) {
			rec := []string{
				strconv.Itoa(rs.Rank),
				string(rs.Style),
				rs.Name,
				fmtFloat(rs.Score),
				rs.Label,
				strconv.FormatBool(rs.Winner),
				strconv.FormatBool(rs.NearTie),
				strconv.FormatBool(rs.Selected),
				string(result.State),
				strconv.FormatInt(runID, 10),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
