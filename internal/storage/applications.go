package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmills/jobtrack/internal/application"
)

// selectAppFields contains the standard field list for SELECT queries.
const selectAppFields = `id, company, role, source, status, notes, created_at, updated_at`

// CreateApplication inserts a new record and returns its id. Company
// and role must be non-empty after trimming; status defaults to
// "applied" when empty; source and notes may be empty. created_at and
// updated_at are both set to the insertion time.
func (d *DB) CreateApplication(company, role, source, status, notes string) (int64, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	if company == "" {
		return 0, fmt.Errorf("%w: company must not be empty", ErrValidation)
	}
	if role == "" {
		return 0, fmt.Errorf("%w: role must not be empty", ErrValidation)
	}
	if status == "" {
		status = application.StatusApplied
	}

	now := d.now().UTC().Format(timeFormat)
	res, err := d.db.Exec(`
		INSERT INTO applications (company, role, source, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, company, role, nullableStringValue(source), status, nullableStringValue(notes), now, now)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting application: %v", ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading inserted id: %v", ErrStorage, err)
	}
	return id, nil
}

// GetApplication retrieves a record by its id.
func (d *DB) GetApplication(id int64) (*application.Application, error) {
	row := d.db.QueryRow(`SELECT `+selectAppFields+` FROM applications WHERE id = ?`, id)
	app, err := scanApplication(row)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return app, nil
}

// ListApplications returns records in ascending id order (insertion
// order). A non-empty status restricts results to exact status matches;
// a limit greater than zero truncates the result after filtering.
func (d *DB) ListApplications(status string, limit int) ([]application.Application, error) {
	query := `SELECT ` + selectAppFields + ` FROM applications`
	var args []interface{}

	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing applications: %v", ErrStorage, err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// SearchApplications returns records whose company or role contains the
// query as a case-insensitive substring, in ascending id order. Limit
// semantics match ListApplications.
func (d *DB) SearchApplications(query string, limit int) ([]application.Application, error) {
	// SQLite LIKE is case-insensitive for ASCII by default.
	like := "%" + escapeLike(query) + "%"
	stmt := `SELECT ` + selectAppFields + ` FROM applications
		WHERE company LIKE ? ESCAPE '\' OR role LIKE ? ESCAPE '\'
		ORDER BY id`
	args := []interface{}{like, like}
	if limit > 0 {
		stmt += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: searching applications: %v", ErrStorage, err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// UpdateApplication applies the provided fields to the record with the
// given id. A nil field is left unchanged. updated_at is always
// refreshed, including when both fields are nil: an update call is a
// touch, so "jobtrack update 3" bumps the record's recency even with
// nothing else to change.
func (d *DB) UpdateApplication(id int64, status, notes *string) error {
	set := []string{"updated_at = ?"}
	args := []interface{}{d.now().UTC().Format(timeFormat)}

	if status != nil {
		set = append(set, "status = ?")
		args = append(args, *status)
	}
	if notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *notes)
	}
	args = append(args, id)

	res, err := d.db.Exec(`UPDATE applications SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("%w: updating application: %v", ErrStorage, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: reading update result: %v", ErrStorage, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// DeleteApplication removes the record with the given id.
func (d *DB) DeleteApplication(id int64) error {
	res, err := d.db.Exec(`DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting application: %v", ErrStorage, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: reading delete result: %v", ErrStorage, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

// Stats summarizes the stored applications. ByStatus counts every
// distinct status present, so its values always sum to Total.
type Stats struct {
	Total         int            `json:"total"`
	ByStatus      map[string]int `json:"by_status"`
	CreatedLast7d int            `json:"created_last_7_days"`
}

// Stats returns overall counts plus the number of records created
// within the last 7 days relative to the call time.
func (d *DB) Stats() (*Stats, error) {
	total, byStatus, err := d.countByStatus("")
	if err != nil {
		return nil, err
	}

	cutoff := d.now().UTC().AddDate(0, 0, -7).Format(timeFormat)
	var recent int
	if err := d.db.QueryRow(
		`SELECT COUNT(*) FROM applications WHERE created_at >= ?`, cutoff,
	).Scan(&recent); err != nil {
		return nil, fmt.Errorf("%w: counting recent applications: %v", ErrStorage, err)
	}

	return &Stats{Total: total, ByStatus: byStatus, CreatedLast7d: recent}, nil
}

// Summary holds windowed counts for records created in the last N days.
type Summary struct {
	Days     int            `json:"days"`
	Since    string         `json:"since"`
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// Summary returns total and per-status counts restricted to records
// created within the last days days.
func (d *DB) Summary(days int) (*Summary, error) {
	cutoff := d.now().UTC().AddDate(0, 0, -days).Format(timeFormat)
	total, byStatus, err := d.countByStatus(cutoff)
	if err != nil {
		return nil, err
	}
	return &Summary{Days: days, Since: cutoff, Total: total, ByStatus: byStatus}, nil
}

// countByStatus returns the total and per-status counts, optionally
// restricted to records created at or after the cutoff.
func (d *DB) countByStatus(cutoff string) (int, map[string]int, error) {
	where := ""
	var args []interface{}
	if cutoff != "" {
		where = " WHERE created_at >= ?"
		args = append(args, cutoff)
	}

	rows, err := d.db.Query(`SELECT status, COUNT(*) FROM applications`+where+` GROUP BY status`, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: counting by status: %v", ErrStorage, err)
	}
	defer rows.Close()

	total := 0
	byStatus := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, nil, fmt.Errorf("%w: scanning status count: %v", ErrStorage, err)
		}
		byStatus[status] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: counting by status: %v", ErrStorage, err)
	}
	return total, byStatus, nil
}

// ExportAll returns all records in ascending id order for CSV export.
func (d *DB) ExportAll() ([]application.Application, error) {
	return d.ListApplications("", 0)
}

// Count returns the total number of applications.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting applications: %v", ErrStorage, err)
	}
	return count, nil
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanApplication(s scanner) (*application.Application, error) {
	var app application.Application
	var source, notes sql.NullString
	var createdAt, updatedAt string

	err := s.Scan(&app.ID, &app.Company, &app.Role, &source, &app.Status, &notes, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: scanning application: %v", ErrStorage, err)
	}

	app.Source = source.String
	app.Notes = notes.String

	if app.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return nil, fmt.Errorf("%w: parsing created_at for %d: %v", ErrStorage, app.ID, err)
	}
	if app.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return nil, fmt.Errorf("%w: parsing updated_at for %d: %v", ErrStorage, app.ID, err)
	}

	return &app, nil
}

func scanApplications(rows *sql.Rows) ([]application.Application, error) {
	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		if app != nil {
			apps = append(apps, *app)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading applications: %v", ErrStorage, err)
	}
	return apps, nil
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// escapeLike escapes LIKE wildcards so user queries match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
