package state

import (
	"database/sql"
	"errors"
	"time"
)

// Resume is the saved position of one presentation, keyed by the
// absolute path of its slide folder.
type Resume struct {
	Presentation string
	SlideIndex   int
	UpdatedAt    time.Time
}

func getResume(db *sql.DB, presentation string) (*Resume, error) {
	row := db.QueryRow(`
		SELECT presentation, slide_index, updated_at
		FROM resume_state WHERE presentation = ?
	`, presentation)

	var r Resume
	var updatedAt int64
	err := row.Scan(&r.Presentation, &r.SlideIndex, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Unix(updatedAt, 0)
	return &r, nil
}

func saveResume(db *sql.DB, r Resume) error {
	at := r.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO resume_state (presentation, slide_index, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(presentation) DO UPDATE SET
			slide_index = excluded.slide_index,
			updated_at = excluded.updated_at
	`, r.Presentation, r.SlideIndex, at.Unix())

	return err
}
