// Package loader parses translation and commentary JSON files into
// database records for bulk import.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/biblestudio/bible-studio-api/internal/bible"
	"github.com/biblestudio/bible-studio-api/internal/database"
)

// VerseData is one verse as it appears in a translation file.
// book_code may be omitted; it is then derived from the book name.
type VerseData struct {
	BookName string `json:"book_name"`
	BookCode int    `json:"book_code,omitempty"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// VersionFile is a full translation export. Files may also be a bare
// JSON array of verses, in which case the version id comes from the
// command line.
type VersionFile struct {
	VersionID string      `json:"versionId"`
	Verses    []VerseData `json:"verses"`
}

// CommentaryData is one commentary entry as it appears in a
// commentary file.
type CommentaryData struct {
	BookName   string `json:"book_name"`
	Chapter    int    `json:"chapter"`
	VerseStart int    `json:"verse_start"`
	VerseEnd   int    `json:"verse_end"`
	Content    string `json:"content"`
	Author     string `json:"author"`
}

// LoadVersion reads a translation file. It accepts both the object
// form with a versionId and a bare verse array; fallbackID is used
// when the file carries no id.
func LoadVersion(path, fallbackID string) (string, []database.Verse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read translation file: %w", err)
	}

	var file VersionFile
	if err := json.Unmarshal(data, &file); err != nil {
		// Retry as a bare array of verses
		var verses []VerseData
		if arrErr := json.Unmarshal(data, &verses); arrErr != nil {
			return "", nil, fmt.Errorf("failed to parse translation file: %w", err)
		}
		file = VersionFile{Verses: verses}
	}

	versionID := file.VersionID
	if versionID == "" {
		versionID = fallbackID
	}
	if versionID == "" {
		return "", nil, fmt.Errorf("translation file %s carries no version id; pass one explicitly", path)
	}

	records := make([]database.Verse, len(file.Verses))
	for i, v := range file.Verses {
		code := v.BookCode
		if code == 0 {
			code = bible.BookCode(v.BookName)
		}
		records[i] = database.Verse{
			BookName: v.BookName,
			BookCode: code,
			Chapter:  v.Chapter,
			Number:   v.Verse,
			Text:     v.Text,
			Version:  versionID,
		}
	}
	return versionID, records, nil
}

// LoadCommentaries reads a commentary file, a JSON array of entries.
// Entries covering a single verse may omit verse_end.
func LoadCommentaries(path string) ([]database.Commentary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read commentary file: %w", err)
	}

	var entries []CommentaryData
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse commentary file: %w", err)
	}

	records := make([]database.Commentary, len(entries))
	for i, e := range entries {
		end := e.VerseEnd
		if end == 0 {
			end = e.VerseStart
		}
		records[i] = database.Commentary{
			BookName:   e.BookName,
			Chapter:    e.Chapter,
			VerseStart: e.VerseStart,
			VerseEnd:   end,
			Content:    e.Content,
			Author:     e.Author,
		}
	}
	return records, nil
}
