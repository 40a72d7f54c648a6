package cmd

import (
	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/spf13/cobra"
)

// recommendCmd scores answers given on the command line or in a file.
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score a set of answers without prompting.",
	Long: `Compute a recommendation from answers given as flags or in a file.

Answers files are YAML or JSON:

  mode: graded
  answers:
    1: yes
    6: 0.75

--answer values override the file. Unanswered questions are left out of the
averages. The file's mode applies unless --mode is given.

Examples:
  # A few yes/no answers
  archsurvey recommend --answer 1=yes --answer 14=yes

  # From a file, as JSON
  archsurvey recommend --answers-file answers.yaml --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		specs, err := cmd.Flags().GetStringArray("answer")
		if err != nil {
			contract.LogFatal("Cannot read answers", err)
		}
		answersFile, err := cmd.Flags().GetString("answers-file")
		if err != nil {
			contract.LogFatal("Cannot read answers", err)
		}
		values, mode, err := core.CollectAnswers(answersFile, specs)
		if err != nil {
			contract.LogFatal("Cannot read answers", err)
		}
		if mode != "" && !cmd.Flags().Changed("mode") {
			cfg.Mode = mode
		}
		if err := core.ExecuteRecommend(rootCtx, cfg, storeManager, writer, values); err != nil {
			contract.LogFatal("Cannot compute recommendation", err)
		}
	},
}
