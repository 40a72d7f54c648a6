// Package cmd defines the command-line interface for archsurvey.
package cmd

import (
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("mode", string(schema.BinaryMode), "Answer mode: binary or graded")
	rootCmd.PersistentFlags().String("averaging", string(schema.CountAveraging), "Category averaging: count or weight")
	rootCmd.PersistentFlags().Bool("detail", false, "Print extra columns (weighted sums, winner, session)")
	rootCmd.PersistentFlags().Bool("explain", false, "Print every answer with its weight")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultHistoryLimit, "Number of stored runs to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Float64("near-tie-threshold", schema.DefaultNearTieThreshold, "Score gap below which styles count as near ties")
	rootCmd.PersistentFlags().Float64("low-threshold", schema.DefaultLowThreshold, "Category average below which answers count as low")
	rootCmd.PersistentFlags().Float64("confidence-threshold", schema.DefaultConfidenceThreshold, "Score below which the interpretation is hedged")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Survey store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("context-file", "", "YAML file overriding the architecture context library")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of recommendCmd to Viper
	recommendCmd.Flags().String("answers-file", "", "YAML or JSON file mapping question ids to answers")
	recommendCmd.Flags().StringArray("answer", nil, "Answer as id=value (repeatable), e.g. --answer 3=yes --answer 7=0.5")
	if err := viper.BindPFlags(recommendCmd.Flags()); err != nil {
		contract.LogFatal("Error binding recommend flags", err)
	}

	// Bind all flags of chatCmd to Viper
	chatCmd.Flags().String("run-id", "", "Stored run to discuss (defaults to the latest run)")
	chatCmd.Flags().String("chat-api-key", "", "API key for the chat provider (defaults to OPENAI_API_KEY)")
	chatCmd.Flags().String("chat-model", contract.DefaultChatModel, "Chat model name")
	chatCmd.Flags().String("chat-base-url", "", "Base URL of an OpenAI-compatible API")
	chatCmd.Flags().Float64("chat-temperature", contract.DefaultChatTemperature, "Sampling temperature")
	chatCmd.Flags().Int("chat-max-tokens", contract.DefaultChatMaxTokens, "Maximum tokens per reply")
	chatCmd.Flags().String("chat-timeout", contract.DefaultChatTimeout.String(), "Timeout for each reply")
	if err := viper.BindPFlags(chatCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chat flags", err)
	}

	// Answer flags are read from the command, so they stay off Viper and
	// do not collide with the recommend flags of the same name
	chatCmd.Flags().String("answers-file", "", "Chat about answers from a YAML or JSON file instead of a stored run")
	chatCmd.Flags().StringArray("answer", nil, "Chat about an answer given as id=value (repeatable) instead of a stored run")

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
