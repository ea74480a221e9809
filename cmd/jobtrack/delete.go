package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application",
	Long: `Delete an application by id. The id is not reused.

Examples:
  jobtrack delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := parseID(args[0])

	db := openDB()
	defer db.Close()

	if err := db.DeleteApplication(id); err != nil {
		db.Close()
		exitWithStoreError(err, "deleting application %d", id)
	}

	if humanOutput {
		fmt.Printf("Deleted application id=%d.\n", id)
	} else {
		outputJSON(UpdateResponse{Status: "deleted", ID: id})
	}

	return nil
}
