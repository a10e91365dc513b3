package core

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/julien-sobczak/the-clozewriter/internal/helpers"
	"github.com/julien-sobczak/the-clozewriter/pkg/clock"
)

// ErrNoteNotFound is returned when no note exists for a section/topic/tab.
var ErrNoteNotFound = errors.New("note not found")

// Note is the rich-text content written by the user for a topic.
type Note struct {
	// Unique key derived from the section, the topic, and the tab
	Key string

	Section string
	Topic   string
	Tab     string

	// Content in HTML format
	HTML string
	// Hash of the content to detect changes
	Hash string

	// Timestamps to track changes
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteKey returns the storage key of a note.
// Ex: "Operating Systems", "CPU Scheduling", "mynotes" => "notes_operating-systems_cpu-scheduling_mynotes"
func NoteKey(section, topic, tab string) string {
	return fmt.Sprintf("notes_%s_%s_%s", slug.Make(section), slug.Make(topic), slug.Make(tab))
}

func NewNote(section, topic, tab, html string) *Note {
	if tab == "" {
		tab = CurrentConfig().DefaultTab()
	}
	return &Note{
		Key:     NoteKey(section, topic, tab),
		Section: section,
		Topic:   topic,
		Tab:     tab,
		HTML:    html,
		Hash:    helpers.HashText(html),
	}
}

func (n *Note) String() string {
	return fmt.Sprintf("note %q [%s/%s/%s]", n.Key, n.Section, n.Topic, n.Tab)
}

// Update replaces the content. It returns if the content was changed.
func (n *Note) Update(html string) bool {
	hash := helpers.HashText(html)
	if hash == n.Hash {
		return false
	}
	n.HTML = html
	n.Hash = hash
	return true
}

// Save inserts or updates the note.
func (n *Note) Save() error {
	CurrentLogger().Debugf("Saving %s...", n)
	now := clock.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	query := `
		INSERT INTO note(
			key,
			section,
			topic,
			tab,
			html,
			hash,
			created_at,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			html = excluded.html,
			hash = excluded.hash,
			updated_at = excluded.updated_at;
	`
	_, err := CurrentDB().Client().Exec(query,
		n.Key,
		n.Section,
		n.Topic,
		n.Tab,
		n.HTML,
		n.Hash,
		timeToSQL(n.CreatedAt),
		timeToSQL(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("unable to save %s: %w", n, err)
	}
	return nil
}

func (n *Note) Delete() error {
	CurrentLogger().Debugf("Deleting %s...", n)
	query := `DELETE FROM note WHERE key = ?;`
	_, err := CurrentDB().Client().Exec(query, n.Key)
	return err
}

/* Operations */

// SaveNote creates or replaces the content of a note.
func SaveNote(section, topic, tab, html string) (*Note, error) {
	note, err := LoadNote(section, topic, tab)
	if errors.Is(err, ErrNoteNotFound) {
		note = NewNote(section, topic, tab, html)
	} else if err != nil {
		return nil, err
	} else if !note.Update(html) {
		CurrentLogger().Infof("No change in %s", note)
		return note, nil
	}
	if err := note.Save(); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note. It returns ErrNoteNotFound when the note does not exist.
func DeleteNote(section, topic, tab string) error {
	note, err := LoadNote(section, topic, tab)
	if err != nil {
		return err
	}
	return note.Delete()
}

// LoadNote retrieves a note. The default tab is used when tab is empty.
func LoadNote(section, topic, tab string) (*Note, error) {
	if tab == "" {
		tab = CurrentConfig().DefaultTab()
	}
	return LoadNoteByKey(NoteKey(section, topic, tab))
}

func LoadNoteByKey(key string) (*Note, error) {
	note, err := QueryNote(`WHERE key = ?`, key)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, key)
	}
	return note, nil
}

// ListNotes returns all notes ordered by section, topic, and tab.
func ListNotes() ([]*Note, error) {
	return QueryNotes(`ORDER BY section, topic, tab`)
}

// ListNotesBySection returns the notes of a single section.
func ListNotesBySection(section string) ([]*Note, error) {
	return QueryNotes(`WHERE section = ? ORDER BY topic, tab`, section)
}

// CountNotes returns the total number of notes.
func CountNotes() (int, error) {
	db := CurrentDB().Client()

	var count int
	if err := db.QueryRow(`SELECT count(*) FROM note`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ReadNoteFile reads the content of a note from a file.
// Markdown files are converted to HTML using the configured engine.
func ReadNoteFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read note file: %w", err)
	}
	return ConvertNote(filepath.Ext(path), string(content))
}

// ConvertNote returns the HTML content of a note based on the extension of the file.
func ConvertNote(ext string, content string) (string, error) {
	switch strings.ToLower(ext) {
	case ".md", ".markdown":
		html, err := CurrentConfig().Engine().Convert(content)
		if err != nil {
			return "", fmt.Errorf("unable to convert markdown: %w", err)
		}
		return html, nil
	}
	return content, nil
}

/* SQL Helpers */

const noteColumns = `
			key,
			section,
			topic,
			tab,
			html,
			hash,
			created_at,
			updated_at`

func QueryNote(whereClause string, args ...any) (*Note, error) {
	db := CurrentDB().Client()

	var n Note
	var createdAt string
	var updatedAt string

	if err := db.QueryRow(fmt.Sprintf(`
		SELECT %s
		FROM note
		%s;`, noteColumns, whereClause), args...).
		Scan(
			&n.Key,
			&n.Section,
			&n.Topic,
			&n.Tab,
			&n.HTML,
			&n.Hash,
			&createdAt,
			&updatedAt,
		); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	n.CreatedAt = timeFromSQL(createdAt)
	n.UpdatedAt = timeFromSQL(updatedAt)

	return &n, nil
}

func QueryNotes(whereClause string, args ...any) ([]*Note, error) {
	db := CurrentDB().Client()

	var notes []*Note

	rows, err := db.Query(fmt.Sprintf(`
		SELECT %s
		FROM note
		%s;`, noteColumns, whereClause), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var n Note
		var createdAt string
		var updatedAt string

		err = rows.Scan(
			&n.Key,
			&n.Section,
			&n.Topic,
			&n.Tab,
			&n.HTML,
			&n.Hash,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		n.CreatedAt = timeFromSQL(createdAt)
		n.UpdatedAt = timeFromSQL(updatedAt)
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
