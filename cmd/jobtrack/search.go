package main

import (
	"github.com/jmills/jobtrack/internal/application"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search applications by company or role",
	Long: `Search applications whose company or role contains the query
(case-insensitive substring match).

Examples:
  jobtrack search analyst
  jobtrack search "Acme" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	apps, err := db.SearchApplications(args[0], searchLimit)
	if err != nil {
		db.Close()
		exitWithStoreError(err, "searching applications")
	}

	if humanOutput {
		printApplicationsTable(apps)
	} else {
		if apps == nil {
			apps = []application.Application{}
		}
		outputJSON(apps)
	}

	return nil
}
