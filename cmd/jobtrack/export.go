package main

import (
	"fmt"
	"os"

	"github.com/jmills/jobtrack/internal/export"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output CSV path (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all applications to CSV",
	Long: `Export all applications to CSV, in id order, with a header row.

Note: CSV is always text output, never JSON.

Examples:
  jobtrack export --out applications.csv
  jobtrack export > applications.csv`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	db := openDB()
	defer db.Close()

	apps, err := db.ExportAll()
	if err != nil {
		db.Close()
		exitWithStoreError(err, "exporting applications")
	}

	if exportOut == "" {
		if err := export.WriteCSV(os.Stdout, apps); err != nil {
			db.Close()
			exitWithError(ExitError, "writing CSV: %v", err)
		}
		return nil
	}

	f, err := os.Create(exportOut)
	if err != nil {
		db.Close()
		exitWithError(ExitStorageError, "creating %s: %v", exportOut, err)
	}
	if err := export.WriteCSV(f, apps); err != nil {
		f.Close()
		db.Close()
		exitWithError(ExitError, "writing CSV: %v", err)
	}
	if err := f.Close(); err != nil {
		db.Close()
		exitWithError(ExitStorageError, "closing %s: %v", exportOut, err)
	}

	if humanOutput {
		fmt.Printf("Wrote %d rows to %s\n", len(apps), exportOut)
	} else {
		outputJSON(ExportResponse{Status: "exported", Path: exportOut, Rows: len(apps)})
	}

	return nil
}
