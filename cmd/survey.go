package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/spf13/cobra"
)

// surveyCmd runs the interactive survey.
var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Answer the architecture survey interactively.",
	Long: `Walk through the 18 survey questions grouped by category and get a recommendation.

In binary mode answer y or n (blank means no). In graded mode answer a number
from 0 to 1 (blank means 0.5). Enter q to quit without scoring.

The finished run is stored so that you can review it with 'archsurvey history'
and discuss it with 'archsurvey chat'.

Examples:
  # Yes/no survey
  archsurvey survey

  # Graded answers with true weighted averages
  archsurvey survey --mode graded --averaging weight`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if !core.IsInteractive(os.Stdin) {
			_, _ = fmt.Fprintln(os.Stderr, "Reading answers from standard input.")
		}
		err := core.ExecuteSurvey(rootCtx, cfg, storeManager, writer, os.Stdin, os.Stderr)
		if errors.Is(err, core.ErrSurveyAborted) {
			_, _ = fmt.Fprintln(os.Stderr, "Survey aborted.")
			return
		}
		if err != nil {
			contract.LogFatal("Cannot run survey", err)
		}
	},
}
