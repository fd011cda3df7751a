package database

import (
	"gorm.io/gorm"

	"github.com/biblestudio/bible-studio-api/internal/bible"
)

// SearchLimit caps the number of rows returned by verse search.
const SearchLimit = 50

// Repository handles all read/write operations over the store. Each
// operation takes and returns plain structured data; there is no
// server-side session state.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ListBooks returns one row per (book_name, book_code) found in the
// verses table, ordered by numeric book code. Testament is derived from
// the code: 1-39 Old Testament, 40-66 New Testament.
func (r *Repository) ListBooks() ([]Book, error) {
	var books []Book
	err := r.db.Model(&Verse{}).
		Select("book_name AS name, book_code AS id, book_code AS book_order, MAX(chapter) AS chapter_count").
		Where("book_code > 0").
		Group("book_name, book_code").
		Order("book_code").
		Scan(&books).Error
	if err != nil {
		return nil, err
	}

	for i := range books {
		books[i].Testament = bible.Testament(books[i].Order)
	}

	return books, nil
}

// ListVerses returns the verses of one chapter in one version, ordered
// by verse number. Book and version match exactly. The returned set is
// authoritative; verse numbers may have gaps.
func (r *Repository) ListVerses(book string, chapter int, version string) ([]Verse, error) {
	var verses []Verse
	err := r.db.
		Where("book_name = ? AND chapter = ? AND version = ?", book, chapter, version).
		Order("verse").
		Find(&verses).Error
	return verses, err
}

// GetVerse returns a single verse, or gorm.ErrRecordNotFound.
func (r *Repository) GetVerse(book string, chapter, verse int, version string) (*Verse, error) {
	var v Verse
	err := r.db.
		Where("book_name = ? AND chapter = ? AND verse = ? AND version = ?", book, chapter, verse, version).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SearchVerses returns up to SearchLimit verses whose text contains the
// query as a case-sensitive substring, ordered by canonical position.
// instr() is used instead of LIKE so ASCII matching stays case-sensitive.
func (r *Repository) SearchVerses(query, version string) ([]Verse, error) {
	var verses []Verse
	err := r.db.
		Where("instr(text, ?) > 0 AND version = ?", query, version).
		Order("book_code, chapter, verse").
		Limit(SearchLimit).
		Find(&verses).Error
	return verses, err
}

// ListCommentaries returns commentary rows for one chapter, ordered by
// the start of the covered verse range.
func (r *Repository) ListCommentaries(book string, chapter int) ([]Commentary, error) {
	var commentaries []Commentary
	err := r.db.
		Where("book_name = ? AND chapter = ?", book, chapter).
		Order("verse_start").
		Find(&commentaries).Error
	return commentaries, err
}

// AddCommentaries inserts commentary rows in batches inside one
// transaction.
func (r *Repository) AddCommentaries(entries []Commentary) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(entries); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(entries) {
				end = len(entries)
			}
			if err := tx.Create(entries[start:end]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
