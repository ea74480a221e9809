package main

import (
	"fmt"

	"github.com/jmills/jobtrack/internal/config"
	"github.com/spf13/cobra"
)

var (
	addCompany string
	addRole    string
	addSource  string
	addStatus  string
	addNotes   string
)

func init() {
	addCmd.Flags().StringVar(&addCompany, "company", "", "Company name (required)")
	addCmd.Flags().StringVar(&addRole, "role", "", "Role title (required)")
	addCmd.Flags().StringVar(&addSource, "source", "", "Where you found the job (LinkedIn, Indeed, referral...)")
	addCmd.Flags().StringVar(&addStatus, "status", "", "Initial status (default: applied)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-text notes")
	addCmd.MarkFlagRequired("company")
	addCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new application",
	Long: `Add a new application record.

Examples:
  jobtrack add --company Acme --role "Data Analyst"
  jobtrack add --company Globex --role Engineer --source referral --notes "intro via Sam"`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	status := addStatus
	if status == "" {
		status = config.DefaultStatus()
	}

	id, err := db.CreateApplication(addCompany, addRole, addSource, status, addNotes)
	if err != nil {
		db.Close()
		exitWithStoreError(err, "adding application")
	}

	if humanOutput {
		fmt.Printf("Added application with id=%d.\n", id)
	} else {
		outputJSON(AddResponse{Status: "added", ID: id})
	}

	return nil
}
