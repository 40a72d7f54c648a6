package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintCatalog outputs the question catalog in the configured format.
func PrintCatalog(catalog schema.Catalog, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalog)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCatalog(w, catalog, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogText(w, catalog, cfg, fmtFloat)
		}, "Wrote text")
	}
}

func writeCatalogText(w io.Writer, catalog schema.Catalog, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := writeTitle(w, cfg, "📋", "Survey Questions"); err != nil {
		return err
	}
	width := getMaxTextWidth(cfg)

	for _, cat := range catalog {
		if _, err := fmt.Fprintf(w, "\n%s (%s)\n%s\n", cat.Name, cat.Key, cat.Description); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		headers := []string{"ID", "Question", "Weight"}
		if cfg.Detail {
			headers = append(headers, "Description")
		}
		table.Header(headers)

		var data [][]string
		for _, q := range cat.Questions {
			row := []string{
				strconv.Itoa(q.ID),
				contract.TruncateText(q.Text, width),
				fmtFloat(q.Weight),
			}
			if cfg.Detail {
				row = append(row, contract.TruncateText(q.Description, width))
			}
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d questions in %d categories\n", catalog.QuestionCount(), len(catalog))
	return err
}

func writeCSVCatalog(w io.Writer, catalog schema.Catalog, fmtFloat func(float64) string) error {
	header := []string{"id", "category", "text", "description", "weight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cat := range catalog {
			for _, q := range cat.Questions {
				rec := []string{
					strconv.Itoa(q.ID),
					string(cat.Key),
					q.Text,
					q.Description,
					fmtFloat(q.Weight),
				}
				if err := cw.Write(rec); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}
