package main

import (
	"fmt"

	"github.com/jmills/jobtrack/internal/application"
	"github.com/spf13/cobra"
)

var (
	listStatus string
	listLimit  int
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Only show applications with this exact status")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Long: `List applications in insertion order.

Examples:
  jobtrack list
  jobtrack list --status interview
  jobtrack list --limit 10 --human`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	apps, err := db.ListApplications(listStatus, listLimit)
	if err != nil {
		db.Close()
		exitWithStoreError(err, "listing applications")
	}

	if humanOutput {
		total, _ := db.Count()
		if listLimit > 0 && listLimit < total && listStatus == "" {
			fmt.Printf("%d applications (showing first %d):\n\n", total, len(apps))
		}
		printApplicationsTable(apps)
	} else {
		if apps == nil {
			apps = []application.Application{}
		}
		outputJSON(apps)
	}

	return nil
}
