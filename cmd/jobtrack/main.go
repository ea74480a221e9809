// Package main provides the jobtrack CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

// dbPathFlag is the --db override for the database location
var dbPathFlag string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Track job applications from the terminal",
	Long: `jobtrack records job applications in a local SQLite database.

Applications carry a company, role, source, free-text status, and
notes. Commands output JSON by default for easy scripting; pass
--human for readable tables.

The database lives at ~/.jobtrack/jobtrack.db unless overridden with
--db, the JOBTRACK_DB_PATH environment variable, or db_path in
~/.config/jobtrack/config.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "Database file path (overrides env and config)")
	rootCmd.Version = Version
}
