package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single application",
	Long: `Show one application by id.

Examples:
  jobtrack get 3
  jobtrack get 3 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id := parseID(args[0])

	db := openDB()
	defer db.Close()

	app, err := db.GetApplication(id)
	if err != nil {
		db.Close()
		exitWithStoreError(err, "getting application %d", id)
	}

	if humanOutput {
		printApplicationDetail(app)
	} else {
		outputJSON(app)
	}

	return nil
}
