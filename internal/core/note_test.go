package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-clozewriter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteKey(t *testing.T) {
	var tests = []struct {
		name     string // name
		section  string // section
		topic    string // topic
		tab      string // tab
		expected string // key
	}{
		{
			name:     "Basic",
			section:  "os",
			topic:    "scheduling",
			tab:      "mynotes",
			expected: "notes_os_scheduling_mynotes",
		},
		{
			name:     "Spaces",
			section:  "Operating Systems",
			topic:    "CPU Scheduling",
			tab:      "mynotes",
			expected: "notes_operating-systems_cpu-scheduling_mynotes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NoteKey(tt.section, tt.topic, tt.tab))
		})
	}
}

func TestSaveNote(t *testing.T) {
	SetUpFromTempDir(t)
	createdAt := FreezeAt(t, time.Date(2023, time.January, 1, 12, 30, 0, 0, time.UTC))

	note, err := SaveNote("os", "scheduling", "", "<p>Round robin uses a time quantum.</p>")
	require.NoError(t, err)
	assert.Equal(t, "mynotes", note.Tab)
	assert.Equal(t, "notes_os_scheduling_mynotes", note.Key)

	count, err := CountNotes()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	actual, err := LoadNote("os", "scheduling", "mynotes")
	require.NoError(t, err)
	assert.Equal(t, "<p>Round robin uses a time quantum.</p>", actual.HTML)
	assert.Equal(t, note.Hash, actual.Hash)
	assert.Equal(t, createdAt, actual.CreatedAt)
	assert.Equal(t, createdAt, actual.UpdatedAt)

	t.Run("Update", func(t *testing.T) {
		updatedAt := FreezeAt(t, createdAt.Add(time.Hour))

		note, err := SaveNote("os", "scheduling", "mynotes", "<p>Shortest job first minimizes waiting time.</p>")
		require.NoError(t, err)

		actual, err := LoadNoteByKey(note.Key)
		require.NoError(t, err)
		assert.Equal(t, "<p>Shortest job first minimizes waiting time.</p>", actual.HTML)
		assert.Equal(t, createdAt, actual.CreatedAt)
		assert.Equal(t, updatedAt, actual.UpdatedAt)

		count, err := CountNotes()
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Unchanged", func(t *testing.T) {
		before, err := LoadNote("os", "scheduling", "mynotes")
		require.NoError(t, err)
		FreezeAt(t, createdAt.Add(2*time.Hour))

		_, err = SaveNote("os", "scheduling", "mynotes", "\n"+before.HTML+"\n")
		require.NoError(t, err)

		after, err := LoadNote("os", "scheduling", "mynotes")
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})
}

func TestDeleteNote(t *testing.T) {
	SetUpFromTempDir(t)

	_, err := SaveNote("os", "scheduling", "mynotes", "<p>Aging prevents starvation.</p>")
	require.NoError(t, err)

	err = DeleteNote("os", "scheduling", "mynotes")
	require.NoError(t, err)

	_, err = LoadNote("os", "scheduling", "mynotes")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = DeleteNote("os", "scheduling", "mynotes")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestListNotes(t *testing.T) {
	SetUpFromTempDir(t)

	notes, err := ListNotes()
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, err = SaveNote("os", "scheduling", "mynotes", "<p>Round robin</p>")
	require.NoError(t, err)
	_, err = SaveNote("databases", "indexes", "mynotes", "<p>B-trees</p>")
	require.NoError(t, err)
	_, err = SaveNote("os", "memory", "mynotes", "<p>Paging</p>")
	require.NoError(t, err)

	notes, err = ListNotes()
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "notes_databases_indexes_mynotes", notes[0].Key)
	assert.Equal(t, "notes_os_memory_mynotes", notes[1].Key)
	assert.Equal(t, "notes_os_scheduling_mynotes", notes[2].Key)

	notes, err = ListNotesBySection("os")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "memory", notes[0].Topic)
	assert.Equal(t, "scheduling", notes[1].Topic)
}

func TestReadNoteFile(t *testing.T) {

	t.Run("HTML", func(t *testing.T) {
		SetUpFromTempDir(t)
		filename := testutil.SetUpFromFileContent(t, "note.html", "<p>Paging <b>splits</b> memory.</p>")

		html, err := ReadNoteFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "<p>Paging <b>splits</b> memory.</p>", html)
	})

	t.Run("Markdown", func(t *testing.T) {
		SetUpFromTempDir(t)
		filename := testutil.SetUpFromFileContent(t, "note.md", "Paging **splits** memory.")

		html, err := ReadNoteFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "<p>Paging <strong>splits</strong> memory.</p>", html)
	})

	t.Run("Markdown with goldmark", func(t *testing.T) {
		SetUpFromTempDirWithConfig(t, `
[markdown]
engine = "goldmark"
`)
		filename := testutil.SetUpFromFileContent(t, "note.markdown", "Paging **splits** memory.")

		html, err := ReadNoteFile(filename)
		require.NoError(t, err)
		assert.Equal(t, "<p>Paging <strong>splits</strong> memory.</p>", html)
	})

	t.Run("Missing", func(t *testing.T) {
		SetUpFromTempDir(t)

		_, err := ReadNoteFile(filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})
}
