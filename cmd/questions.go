package cmd

import (
	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/spf13/cobra"
)

// questionsCmd prints the survey catalog.
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the survey questions and their weights.",
	Long: `Show every survey question grouped by category, with its id and weight.

Use the ids with 'archsurvey recommend --answer id=value' or in an answers file.

Examples:
  archsurvey questions
  archsurvey questions --detail --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuestions(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot display questions", err)
		}
	},
}

// modelCmd displays the formal definition of the scoring model.
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Display the formulas, weights and thresholds of the scoring model",
	Long: `Show how category averages become style scores and how a style is selected.

Includes custom weights and thresholds from .archsurvey.yaml if configured.
No survey is run - this is purely informational.

Examples:
  # Show the default model
  archsurvey model

  # View with custom weights from config file
  archsurvey model --config .archsurvey.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteModel(rootCtx, cfg, writer); err != nil {
			contract.LogFatal("Cannot display model", err)
		}
	},
}
