package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader creates a CSV writer, writes the header and then the rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// createFormatters creates the float formatter used across output types.
func createFormatters(precision int) (fmtFloat func(float64) string) {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// colorLabel returns the band label, colored when the config allows it.
func colorLabel(v float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(v)
	}
	return schema.GetPlainLabel(v)
}

// colorBand returns the label of a band, colored when the config allows it.
func colorBand(b schema.Band, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.ColorBand(b)
	}
	return schema.BandLabel(b)
}

// heading returns a title, prefixed with an emoji when enabled.
func heading(cfg *contract.Config, emoji, title string) string {
	if cfg.UseEmojis && emoji != "" {
		return emoji + " " + title
	}
	return title
}

// writeTitle writes an underlined section title.
func writeTitle(w io.Writer, cfg *contract.Config, emoji, title string) error {
	text := heading(cfg, emoji, title)
	_, err := fmt.Fprintf(w, "%s\n%s\n", text, strings.Repeat("=", len([]rune(title))))
	return err
}

// highlight marks the selected recommendation when colors are enabled.
func highlight(text string, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.SelectedColor.Sprint(text)
	}
	return text
}
