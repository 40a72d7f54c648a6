package cmd

import (
	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the archsurvey MCP server",
	Long:  `Launch an MCP server over stdio that lets AI agents list questions, score answers and read stored runs.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Suppress the normal header logs when running in MCP mode
		// to avoid polluting stdio which is used for the protocol.
		rootCtx = core.WithSuppressHeader(rootCtx)
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}
