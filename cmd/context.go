package cmd

import (
	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/spf13/cobra"
)

// contextCmd shows the reference context of one architecture style.
var contextCmd = &cobra.Command{
	Use:   "context <style>",
	Short: "Describe an architecture style: strengths, trade-offs and technologies.",
	Long: `Show the reference context for microservices, events, monolithic or hybrid.

Override the built-in descriptions with --context-file pointing at a YAML file.

Examples:
  archsurvey context events
  archsurvey context hybrid --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteContext(rootCtx, cfg, writer, args[0]); err != nil {
			contract.LogFatal("Cannot display architecture context", err)
		}
	},
}
