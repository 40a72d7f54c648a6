package cmd

import (
	"os"

	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/assistant"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/knowledge"
	"github.com/huangsam/archsurvey/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// chatCmd discusses a stored recommendation with the assistant.
var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask the assistant about a stored recommendation.",
	Long: `Discuss a survey result with an AI assistant backed by an OpenAI-compatible API.

The assistant sees the scores, the recommendation and the architecture context.
The conversation is stored with the run, so later sessions continue it.

Without a question, chat reads questions from standard input until EOF or 'exit'.
With a question, it answers once and exits.

With --answer or --answers-file, chat scores those answers and discusses the
result without a stored run. This is also the only way to chat with
--store-backend none; the conversation is then not kept.

The API key is read from --chat-api-key, ARCHSURVEY_CHAT_API_KEY or OPENAI_API_KEY.

Examples:
  # Chat about the latest run
  archsurvey chat

  # One question about run 3
  archsurvey chat --run-id 3 "How do I start splitting the monolith?"

  # Discuss answers without storing anything
  archsurvey chat --store-backend none --answers-file answers.yaml "Where do I start?"

  # Use a local OpenAI-compatible server
  archsurvey chat --chat-base-url http://localhost:11434/v1 --chat-model llama3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		var runID int64
		if raw := viper.GetString("run-id"); raw != "" {
			id, err := contract.ParseRunID(raw)
			if err != nil {
				contract.LogFatal("Cannot parse run id", err)
			}
			runID = id
		}
		var question string
		if len(args) > 0 {
			question = args[0]
		}

		lib, err := knowledge.Load(cfg.ContextFile)
		if err != nil {
			contract.LogFatal("Cannot load architecture context", err)
		}
		advisor := assistant.NewAdvisor(nil, lib, cfg.Chat.Timeout)
		if provider, err := assistant.NewOpenAIProvider(cfg.Chat); err != nil {
			contract.LogWarn("Chat provider unavailable", err)
		} else {
			advisor = assistant.NewAdvisor(provider, lib, cfg.Chat.Timeout)
		}

		answersFile, err := cmd.Flags().GetString("answers-file")
		if err != nil {
			contract.LogFatal("Cannot read answers", err)
		}
		specs, err := cmd.Flags().GetStringArray("answer")
		if err != nil {
			contract.LogFatal("Cannot read answers", err)
		}
		if answersFile != "" || len(specs) > 0 || cfg.StoreBackend == schema.NoneBackend {
			values, mode, err := core.CollectAnswers(answersFile, specs)
			if err != nil {
				contract.LogFatal("Cannot read answers", err)
			}
			if mode != "" && !cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if err := core.ExecuteChatAnswers(rootCtx, cfg, advisor, values, question, os.Stdin, os.Stdout); err != nil {
				contract.LogFatal("Cannot start chat", err)
			}
			return
		}

		if err := core.ExecuteChat(rootCtx, cfg, storeManager, advisor, runID, question, os.Stdin, os.Stdout); err != nil {
			contract.LogFatal("Cannot start chat", err)
		}
	},
}
