package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// PrintArchitectureContext outputs the reference blurb for a style.
func PrintArchitectureContext(archCtx schema.ArchitectureContext, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, archCtx)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"style", "summary", "strengths", "trade_offs", "technologies"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{
					string(archCtx.Style),
					archCtx.Summary,
					strings.Join(archCtx.Strengths, "|"),
					strings.Join(archCtx.TradeOffs, "|"),
					strings.Join(archCtx.Technologies, "|"),
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeContextText(w, archCtx, cfg)
		}, "Wrote text")
	}
}

func writeContextText(w io.Writer, archCtx schema.ArchitectureContext, cfg *contract.Config) error {
	if err := writeTitle(w, cfg, "📚", archCtx.Style.Description()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", archCtx.Summary); err != nil {
		return err
	}
	sections := []struct {
		title string
		items []string
	}{
		{"Strengths", archCtx.Strengths},
		{"Trade-offs", archCtx.TradeOffs},
		{"Typical technologies", archCtx.Technologies},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n", s.title); err != nil {
			return err
		}
		for _, item := range s.items {
			if _, err := fmt.Fprintf(w, "  - %s\n", item); err != nil {
				return err
			}
		}
	}
	return nil
}
