package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jmills/jobtrack/internal/application"
	"github.com/jmills/jobtrack/internal/config"
	"github.com/jmills/jobtrack/internal/storage"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitWithStoreError maps a store error to its exit code and exits.
func exitWithStoreError(err error, format string, args ...interface{}) {
	code := ExitError
	switch {
	case storage.IsValidation(err):
		code = ExitDataError
	case storage.IsNotFound(err):
		code = ExitNotFound
	case storage.IsStorage(err):
		code = ExitStorageError
	}
	exitWithError(code, format+": %v", append(args, err)...)
}

// openDB resolves the database path and opens the store, exiting on failure.
// The caller must Close the returned handle on every path.
func openDB() *storage.DB {
	path := config.ResolveDBPath(dbPathFlag)
	db, err := storage.Open(path)
	if err != nil {
		exitWithError(ExitStorageError, "opening database: %v", err)
	}
	return db
}

// parseID parses a numeric id argument. A non-numeric id is user input
// error, not a missing record.
func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		exitWithError(ExitDataError, "invalid id %q: must be a positive integer", arg)
	}
	return id
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// AddResponse is the response for the add command.
type AddResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// UpdateResponse is the response for update and delete commands.
type UpdateResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// ExportResponse is the response for the export command.
type ExportResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
	Rows   int    `json:"rows"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printApplicationsTable prints applications as a fixed-width table.
func printApplicationsTable(apps []application.Application) {
	if len(apps) == 0 {
		fmt.Println("No records found.")
		return
	}

	headers := []string{"id", "company", "role", "status", "source", "updated"}
	rows := make([][]string, len(apps))
	for i, app := range apps {
		rows[i] = []string{
			strconv.FormatInt(app.ID, 10),
			app.Company,
			app.Role,
			app.Status,
			app.Source,
			app.UpdatedAt.Format("2006-01-02"),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	dashes := make([]string, len(headers))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	printRow(dashes)
	for _, row := range rows {
		printRow(row)
	}
}

// printApplicationDetail prints a single application in detail form.
func printApplicationDetail(app *application.Application) {
	fmt.Printf("id:       %d\n", app.ID)
	fmt.Printf("company:  %s\n", app.Company)
	fmt.Printf("role:     %s\n", app.Role)
	fmt.Printf("status:   %s\n", app.Status)
	if app.Source != "" {
		fmt.Printf("source:   %s\n", app.Source)
	}
	if app.Notes != "" {
		fmt.Printf("notes:    %s\n", app.Notes)
	}
	fmt.Printf("created:  %s\n", app.CreatedAt.Format(time.RFC3339))
	fmt.Printf("updated:  %s\n", app.UpdatedAt.Format(time.RFC3339))
}

// printByStatus prints a per-status count map in sorted order.
func printByStatus(byStatus map[string]int) {
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		fmt.Printf("  %s: %d\n", s, byStatus[s])
	}
}
