package leads

import (
	"database/sql"
	"fmt"
)

// Repository provides access to the local lead log.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a lead repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add records a submitted lead.
func (r *Repository) Add(kind Kind, remoteID, summary string) (*Lead, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid lead kind: %q", kind)
	}
	if summary == "" {
		return nil, fmt.Errorf("summary is required")
	}

	result, err := r.db.Exec(
		"INSERT INTO leads (kind, remote_id, summary) VALUES (?, ?, ?)",
		kind, remoteID, summary,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting lead: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	var l Lead
	err = r.db.QueryRow(
		"SELECT id, kind, remote_id, summary, created_at FROM leads WHERE id = ?", id,
	).Scan(&l.ID, &l.Kind, &l.RemoteID, &l.Summary, &l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reading back lead: %w", err)
	}

	return &l, nil
}

// List returns all recorded leads, newest first.
func (r *Repository) List() ([]*Lead, error) {
	rows, err := r.db.Query(
		"SELECT id, kind, remote_id, summary, created_at FROM leads ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var list []*Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Kind, &l.RemoteID, &l.Summary, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		list = append(list, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leads: %w", err)
	}

	return list, nil
}

// Delete removes a lead from the local log by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM leads WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("lead %d not found", id)
	}

	return nil
}
