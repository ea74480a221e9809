package main

import (
	"fmt"

	"github.com/jmills/jobtrack/internal/config"
	"github.com/jmills/jobtrack/internal/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the database",
	Long: `Initialize the application database.

Creates the database file and schema if they don't exist. Running it
against an existing database is a no-op that leaves data untouched.

Examples:
  jobtrack init
  jobtrack init --db /tmp/test.db`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.ResolveDBPath(dbPathFlag)
	db, err := storage.Open(path)
	if err != nil {
		exitWithError(ExitStorageError, "initializing database: %v", err)
	}
	defer db.Close()

	if humanOutput {
		fmt.Printf("Initialized database at %s\n", path)
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: path})
	}

	return nil
}
