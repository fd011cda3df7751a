package database

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Verse represents a single scripture verse in one translation.
// Rows are uniquely identified by (book_name, chapter, verse, version)
// in practice; the id column only exists as a row handle.
type Verse struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"                json:"id"`
	BookName string `gorm:"not null;index:idx_verses_ref"           json:"book_name"`
	BookCode int    `gorm:"not null;index"                          json:"book_code"`
	Chapter  int    `gorm:"not null;index:idx_verses_ref"           json:"chapter"`
	Number   int    `gorm:"column:verse;not null"                   json:"verse"`
	Text     string `gorm:"not null"                                json:"text"`
	Version  string `gorm:"not null;index"                          json:"version"`
}

// TableName specifies the table name for Verse
func (Verse) TableName() string {
	return "verses"
}

// Commentary associates a note with a verse or an inclusive verse range
// within one chapter. Read-only from the API; seeded by the importer.
type Commentary struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"      json:"id"`
	BookName   string `gorm:"not null;index:idx_comm_ref"   json:"book_name"`
	Chapter    int    `gorm:"not null;index:idx_comm_ref"   json:"chapter"`
	VerseStart int    `gorm:"not null"                      json:"verse_start"`
	VerseEnd   int    `gorm:"not null"                      json:"verse_end"`
	Content    string `gorm:"not null"                      json:"content"`
	Author     string `                                     json:"author"`
}

// TableName specifies the table name for Commentary
func (Commentary) TableName() string {
	return "commentaries"
}

// Covers reports whether the commentary applies to the given verse number.
func (c *Commentary) Covers(verse int) bool {
	return c.VerseStart <= verse && verse <= c.VerseEnd
}

// VersionDisplayName is an optional human-friendly label for a version id.
// Absence is not an error; resolution falls back to a built-in default map
// and finally to the raw id.
type VersionDisplayName struct {
	VersionID   string    `gorm:"primaryKey;column:version_id" json:"version_id"`
	DisplayName string    `gorm:"not null"                     json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime"               json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"               json:"updated_at"`
}

// TableName specifies the table name for VersionDisplayName
func (VersionDisplayName) TableName() string {
	return "version_display_names"
}

// Prompt is an editable template for AI calls. Content carries literal
// placeholder tokens (e.g. {verse}) substituted at call time. Variables
// is stored as a JSON-encoded string array.
type Prompt struct {
	ID          string         `gorm:"primaryKey"     json:"id"`
	Name        string         `gorm:"not null"       json:"name"`
	Category    string         `gorm:"not null"       json:"category"`
	Description string         `gorm:"not null"       json:"description"`
	Content     string         `gorm:"not null"       json:"content"`
	Variables   datatypes.JSON `gorm:"type:json"      json:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Prompt
func (Prompt) TableName() string {
	return "prompts"
}

// DecodeVariables decodes the stored variables column into an ordered
// slice. Absent, empty, or malformed values yield an empty slice.
func (p *Prompt) DecodeVariables() []string {
	if len(p.Variables) == 0 {
		return []string{}
	}
	var vars []string
	if err := json.Unmarshal(p.Variables, &vars); err != nil || vars == nil {
		return []string{}
	}
	return vars
}

// Book is the aggregated book listing derived from the verses table:
// one row per (book_name, book_code), ordered by numeric book code.
type Book struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Order        int    `gorm:"column:book_order"    json:"order"`
	Testament    string `gorm:"-"                    json:"testament"`
	ChapterCount int    `gorm:"column:chapter_count" json:"chapter_count"`
}

// VersionInfo is the aggregated per-version summary.
type VersionInfo struct {
	ID          string `gorm:"column:id"          json:"id"`
	DisplayName string `gorm:"-"                  json:"display_name"`
	VerseCount  int    `gorm:"column:verse_count" json:"verse_count"`
	SampleBook  string `gorm:"column:sample_book" json:"sample_book"`
	SampleText  string `gorm:"column:sample_text" json:"sample_text"`
}

// VersionBookStats summarizes one book within one version.
type VersionBookStats struct {
	BookName   string `gorm:"column:book_name"   json:"book_name"`
	VerseCount int    `gorm:"column:verse_count" json:"verse_count"`
	MinChapter int    `gorm:"column:min_chapter" json:"min_chapter"`
	MaxChapter int    `gorm:"column:max_chapter" json:"max_chapter"`
}

// DatabaseInfo holds aggregate counts over the verses table.
type DatabaseInfo struct {
	TotalVerses  int `gorm:"column:total_verses"  json:"total_verses"`
	VersionCount int `gorm:"column:version_count" json:"version_count"`
	BookCount    int `gorm:"column:book_count"    json:"book_count"`
}
