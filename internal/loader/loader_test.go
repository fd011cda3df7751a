package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVersionObjectForm(t *testing.T) {
	path := writeFile(t, "version.json", `{
		"versionId": "my-translation",
		"verses": [
			{"book_name": "창세기", "book_code": 1, "chapter": 1, "verse": 1, "text": "태초에"},
			{"book_name": "출애굽기", "chapter": 1, "verse": 1, "text": "야곱과 함께"}
		]
	}`)

	id, verses, err := LoadVersion(path, "")
	require.NoError(t, err)
	assert.Equal(t, "my-translation", id)
	require.Len(t, verses, 2)

	assert.Equal(t, 1, verses[0].BookCode)
	// book_code omitted: derived from the book name.
	assert.Equal(t, 2, verses[1].BookCode)
	assert.Equal(t, "my-translation", verses[1].Version)
}

func TestLoadVersionBareArray(t *testing.T) {
	path := writeFile(t, "verses.json", `[
		{"book_name": "창세기", "book_code": 1, "chapter": 1, "verse": 1, "text": "태초에"}
	]`)

	id, verses, err := LoadVersion(path, "from-flag")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", id)
	require.Len(t, verses, 1)

	// A bare array with no fallback id is unusable.
	_, _, err = LoadVersion(path, "")
	assert.Error(t, err)
}

func TestLoadVersionUnknownBookKeepsZeroCode(t *testing.T) {
	path := writeFile(t, "version.json", `{
		"versionId": "v",
		"verses": [{"book_name": "도마복음", "chapter": 1, "verse": 1, "text": "본문"}]
	}`)

	_, verses, err := LoadVersion(path, "")
	require.NoError(t, err)
	assert.Equal(t, 0, verses[0].BookCode)
}

func TestLoadVersionMalformedFile(t *testing.T) {
	path := writeFile(t, "broken.json", `{not json`)
	_, _, err := LoadVersion(path, "v")
	assert.Error(t, err)
}

func TestLoadCommentaries(t *testing.T) {
	path := writeFile(t, "commentary.json", `[
		{"book_name": "창세기", "chapter": 1, "verse_start": 1, "verse_end": 3, "content": "창조에 대한 주석", "author": "김목사"},
		{"book_name": "창세기", "chapter": 1, "verse_start": 4, "content": "빛에 대한 주석", "author": "김목사"}
	]`)

	entries, err := LoadCommentaries(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 3, entries[0].VerseEnd)
	// verse_end omitted: a single-verse entry.
	assert.Equal(t, 4, entries[1].VerseEnd)
}
