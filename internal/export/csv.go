// Package export serializes applications to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jmills/jobtrack/internal/application"
)

// Header is the fixed CSV column order.
var Header = []string{"id", "company", "role", "source", "status", "notes", "created_at", "updated_at"}

// WriteCSV writes a header row followed by one row per application, in
// the order given. Fields containing the delimiter, quotes, or
// newlines are quoted with internal quotes doubled (encoding/csv
// handles the quoting rules).
func WriteCSV(w io.Writer, apps []application.Application) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, app := range apps {
		record := []string{
			strconv.FormatInt(app.ID, 10),
			app.Company,
			app.Role,
			app.Source,
			app.Status,
			app.Notes,
			app.CreatedAt.Format(time.RFC3339),
			app.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for %d: %w", app.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToCSV returns the CSV serialization of the applications as a string.
func ToCSV(apps []application.Application) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, apps); err != nil {
		return "", err
	}
	return b.String(), nil
}
