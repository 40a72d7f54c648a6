package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/iocache"
	"github.com/huangsam/archsurvey/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyCmd is the parent command for stored survey runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review and maintain stored survey runs.",
	Long: `Every completed survey is stored in the survey store (SQLite by default).

Subcommands list and show runs, report store status, export to Parquet,
clear the store, and run schema migrations.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// historyListCmd lists the most recent runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent survey runs.",
	Long: `List stored survey runs, newest first.

Examples:
  archsurvey history list
  archsurvey history list --limit 5 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistoryList(rootCtx, cfg, storeManager, writer); err != nil {
			contract.LogFatal("Cannot list survey runs", err)
		}
	},
}

// historyShowCmd re-renders a stored run.
var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show a stored survey run (latest by default).",
	Long: `Display the recommendation and scores of a stored run.

Examples:
  archsurvey history show
  archsurvey history show 3 --explain`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		var runID int64
		if len(args) > 0 {
			id, err := contract.ParseRunID(args[0])
			if err != nil {
				contract.LogFatal("Cannot parse run id", err)
			}
			runID = id
		}
		if err := core.ExecuteHistoryShow(rootCtx, cfg, storeManager, writer, runID); err != nil {
			contract.LogFatal("Cannot show survey run", err)
		}
	},
}

// historyStatusCmd shows store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of the survey store.",
	Long: `Display the backend, connection state and table sizes of the survey store.

Examples:
  archsurvey history status
  archsurvey history status --store-backend mysql --store-db-connect "user:pass@tcp(localhost:3306)/archsurvey"`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if err := storeSetup(); err != nil {
			return err
		}
		return iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect)
	},
	Run: func(_ *cobra.Command, _ []string) {
		store := storeManager.GetSurveyStore()
		if store == nil {
			contract.LogFatal("Cannot get store status", fmt.Errorf("survey store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Cannot get store status", err)
		}
		iocache.PrintStoreStatus(os.Stdout, status)
	},
}

// historyClearCmd removes all stored runs.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored survey runs and chat history.",
	Long: `Delete the survey store. For SQLite the database file is removed; for
MySQL and PostgreSQL the survey tables are dropped.

Examples:
  archsurvey history clear
  archsurvey history clear --store-backend postgresql --store-db-connect "host=localhost dbname=archsurvey"`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := cfg.StoreDBConnect
		if cfg.StoreBackend == schema.SQLiteBackend && dbFilePath == "" {
			dbFilePath = iocache.GetDBFilePath()
		}
		if err := iocache.ClearStore(cfg.StoreBackend, dbFilePath, cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Cannot clear survey store", err)
		}
		fmt.Printf("Survey store cleared (%s).\n", cfg.StoreBackend)
	},
}

// historyExportCmd writes the store to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs and answers to Parquet files.",
	Long: `Write every stored run and answer to two Parquet files:
<output-file>.survey_runs.parquet and <output-file>.survey_answers.parquet.

Examples:
  archsurvey history export --output-file archsurvey`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if err := storeSetup(); err != nil {
			return err
		}
		return iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteExport(storeManager.GetSurveyStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot export survey store", err)
		}
		fmt.Printf("Exported survey store to %s.survey_runs.parquet and %s.survey_answers.parquet\n", cfg.OutputFile, cfg.OutputFile)
	},
}

// historyMigrateCmd runs schema migrations on the survey store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the survey store schema.",
	Long: `Apply or roll back schema migrations on the survey store.

Examples:
  # Migrate to the latest version
  archsurvey history migrate

  # Roll back to the initial state
  archsurvey history migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return storeSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := iocache.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, target); err != nil {
			contract.LogFatal("Cannot migrate survey store", err)
		}
		fmt.Printf("Survey store migrated (%s).\n", cfg.StoreBackend)
	},
}
