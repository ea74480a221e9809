package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsDays int

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 0, "Restrict counts to applications created in the last N days")
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show application statistics",
	Long: `Show total count, counts by status, and recent activity.

With --days N, counts are restricted to applications created in the
last N days.

Examples:
  jobtrack stats
  jobtrack stats --days 30 --human`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	if statsDays > 0 {
		summary, err := db.Summary(statsDays)
		if err != nil {
			db.Close()
			exitWithStoreError(err, "computing summary")
		}
		if humanOutput {
			fmt.Printf("Last %d days (since %s):\n", summary.Days, summary.Since)
			fmt.Printf("Total: %d\n", summary.Total)
			fmt.Println("By status:")
			printByStatus(summary.ByStatus)
		} else {
			outputJSON(summary)
		}
		return nil
	}

	stats, err := db.Stats()
	if err != nil {
		db.Close()
		exitWithStoreError(err, "computing stats")
	}

	if humanOutput {
		fmt.Printf("Total: %d\n", stats.Total)
		fmt.Printf("Created last 7 days: %d\n", stats.CreatedLast7d)
		fmt.Println("By status:")
		printByStatus(stats.ByStatus)
	} else {
		outputJSON(stats)
	}

	return nil
}
