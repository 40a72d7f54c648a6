package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// PrintModelDefinitions displays the style formulas for the active scoring model.
// This is a static display that does not require any answers.
func PrintModelDefinitions(model schema.ScoringModel, cfg *contract.Config) error {
	renderModel := buildModelRenderModel(model)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVModel(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeModelText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// getDisplayNameForStyle returns the display name with emoji for a given style.
func getDisplayNameForStyle(style schema.Style, cfg *contract.Config) string {
	if !cfg.UseEmojis {
		return style.DisplayName()
	}
	switch style {
	case schema.MicroservicesStyle:
		return "🧩 " + style.DisplayName()
	case schema.EventsStyle:
		return "📨 " + style.DisplayName()
	case schema.MonolithicStyle:
		return "🧱 " + style.DisplayName()
	case schema.HybridStyle:
		return "🔀 " + style.DisplayName()
	default:
		return style.DisplayName()
	}
}

// writeModelText displays the model in human-readable text format.
func writeModelText(w io.Writer, renderModel *schema.ModelRenderModel, cfg *contract.Config) error {
	if err := writeTitle(w, cfg, "🧮", "Architecture Scoring Model"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, f := range renderModel.Formulas {
		if _, err := fmt.Fprintf(w, "%s: %s\n", getDisplayNameForStyle(f.Style, cfg), f.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s = %s\n\n", f.Style, f.Formula); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "Category weights:"); err != nil {
		return err
	}
	for _, key := range schema.AllCategories {
		if _, err := fmt.Fprintf(w, "   %-9s %.2f\n", key, renderModel.Weights[string(key)]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nThresholds:"); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(renderModel.Thresholds)) {
		if _, err := fmt.Fprintf(w, "   %-10s %.2f\n", name, renderModel.Thresholds[name]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nAveraging: %s\n", renderModel.Averaging)
	return err
}

// writeCSVModel writes the style formulas in CSV format.
func writeCSVModel(w io.Writer, renderModel *schema.ModelRenderModel) error {
	header := []string{"style", "name", "purpose", "formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, f := range renderModel.Formulas {
			if err := cw.Write([]string{string(f.Style), f.Name, f.Purpose, f.Formula}); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// buildModelRenderModel constructs the render model with the active weights substituted into each formula.
func buildModelRenderModel(model schema.ScoringModel) *schema.ModelRenderModel {
	wAutonomy := model.CategoryWeights[schema.AutonomyCategory]
	wGlobal := model.CategoryWeights[schema.GlobalCategory]
	wEvents := model.CategoryWeights[schema.EventsCategory]
	wGlobalMS := wGlobal * schema.GlobalMicroservicesShare
	wGlobalEV := wGlobal * schema.GlobalEventsShare

	formulas := []schema.ModelFormula{
		{
			Style:   schema.MicroservicesStyle,
			Purpose: "Autonomous services with independent scaling and deployment",
			Formula: fmt.Sprintf("(%.2f*autonomy + %.3f*global) / %.3f", wAutonomy, wGlobalMS, wAutonomy+wGlobalMS),
		},
		{
			Style:   schema.EventsStyle,
			Purpose: "Asynchronous, decoupled communication through events",
			Formula: fmt.Sprintf("(%.2f*events + %.3f*global) / %.3f", wEvents, wGlobalEV, wEvents+wGlobalEV),
		},
		{
			Style:   schema.MonolithicStyle,
			Purpose: "A single cohesive deployable when distribution does not pay off",
			Formula: "1 - microservices",
		},
		{
			Style:   schema.HybridStyle,
			Purpose: "A mix of approaches when no single style dominates",
			Formula: "(microservices + events) / 2",
		},
	}
	for i := range formulas {
		formulas[i].Name = formulas[i].Style.DisplayName()
	}

	weights := make(map[string]float64, len(model.CategoryWeights))
	for k, v := range model.CategoryWeights {
		weights[string(k)] = v
	}

	return &schema.ModelRenderModel{
		Description: "Category averages are combined into four style scores; the highest wins unless near-ties escalate to hybrid",
		Weights:     weights,
		Formulas:    formulas,
		Thresholds: map[string]float64{
			"near_tie":   model.NearTieThreshold,
			"low":        model.LowThreshold,
			"confidence": model.ConfidenceThreshold,
		},
		Averaging: string(model.Averaging),
	}
}
