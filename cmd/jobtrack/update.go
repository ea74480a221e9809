package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateStatus string
	updateNotes  string
)

func init() {
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "New notes (replaces existing notes)")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an application's status or notes",
	Long: `Update the status and/or notes of an application.

The record's updated_at timestamp is always refreshed, even when no
field is given, so a bare update acts as a touch.

Examples:
  jobtrack update 3 --status interview
  jobtrack update 3 --status offer --notes "verbal offer, waiting on letter"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := parseID(args[0])

	// Distinguish "flag not given" from "flag set to empty string":
	// --notes "" clears the notes, omitting --notes leaves them alone.
	var status, notes *string
	if cmd.Flags().Changed("status") {
		status = &updateStatus
	}
	if cmd.Flags().Changed("notes") {
		notes = &updateNotes
	}

	db := openDB()
	defer db.Close()

	if err := db.UpdateApplication(id, status, notes); err != nil {
		db.Close()
		exitWithStoreError(err, "updating application %d", id)
	}

	if humanOutput {
		fmt.Printf("Updated application id=%d.\n", id)
	} else {
		outputJSON(UpdateResponse{Status: "updated", ID: id})
	}

	return nil
}
