package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/biblestudio/bible-studio-api/internal/bible"
)

// Translation management. A single writer is assumed; add-version is
// atomic but not guarded against concurrent imports.

const insertBatchSize = 500

// ListVersions returns one aggregated row per distinct version.
func (r *Repository) ListVersions() ([]VersionInfo, error) {
	var versions []VersionInfo
	err := r.db.Model(&Verse{}).
		Select("version AS id, COUNT(*) AS verse_count, MIN(book_name) AS sample_book, MIN(text) AS sample_text").
		Group("version").
		Order("version").
		Scan(&versions).Error
	return versions, err
}

// AddVersion bulk-inserts a translation. The whole batch is wrapped in
// one transaction: any malformed record or failed insert rolls back
// every row, so a translation is never partially imported.
func (r *Repository) AddVersion(versionID string, verses []Verse) error {
	if versionID == "" {
		return fmt.Errorf("version id cannot be empty")
	}
	if len(verses) == 0 {
		return fmt.Errorf("version %q has no verses", versionID)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range verses {
			v := &verses[i]
			if err := validateVerse(v); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			v.ID = 0
			v.Version = versionID
		}

		for start := 0; start < len(verses); start += insertBatchSize {
			end := min(start+insertBatchSize, len(verses))
			batch := verses[start:end]
			if err := tx.Create(&batch).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func validateVerse(v *Verse) error {
	if v.BookName == "" {
		return fmt.Errorf("missing book name")
	}
	if v.Chapter < 1 {
		return fmt.Errorf("invalid chapter %d", v.Chapter)
	}
	if v.Number < 1 {
		return fmt.Errorf("invalid verse number %d", v.Number)
	}
	if v.Text == "" {
		return fmt.Errorf("missing text")
	}
	if v.BookCode < 0 || v.BookCode > bible.MaxBookCode {
		return fmt.Errorf("invalid book code %d", v.BookCode)
	}
	return nil
}

// DeleteVersion removes every verse of a version. Returns true iff at
// least one row was deleted.
func (r *Repository) DeleteVersion(versionID string) (bool, error) {
	result := r.db.Where("version = ?", versionID).Delete(&Verse{})
	return result.RowsAffected > 0, result.Error
}

// RenameVersion bulk-updates the version field on all matching rows.
// It deliberately does not check whether the target id already exists;
// renaming onto an existing id merges the two versions' rows, and
// preventing that is the caller's responsibility.
func (r *Repository) RenameVersion(oldID, newID string) (bool, error) {
	result := r.db.Model(&Verse{}).
		Where("version = ?", oldID).
		Update("version", newID)
	return result.RowsAffected > 0, result.Error
}

// VersionStats returns per-book verse counts and chapter ranges for one
// version, in canonical book order.
func (r *Repository) VersionStats(versionID string) ([]VersionBookStats, error) {
	var stats []VersionBookStats
	err := r.db.Model(&Verse{}).
		Select("book_name, COUNT(*) AS verse_count, MIN(chapter) AS min_chapter, MAX(chapter) AS max_chapter").
		Where("version = ?", versionID).
		Group("book_name").
		Order("MIN(book_code)").
		Scan(&stats).Error
	return stats, err
}

// GetDatabaseInfo returns aggregate counts over the verses table.
func (r *Repository) GetDatabaseInfo() (*DatabaseInfo, error) {
	var info DatabaseInfo
	err := r.db.Model(&Verse{}).
		Select("COUNT(*) AS total_verses, COUNT(DISTINCT version) AS version_count, COUNT(DISTINCT book_name) AS book_count").
		Scan(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// ListDisplayNames returns all explicitly-set display names.
func (r *Repository) ListDisplayNames() ([]VersionDisplayName, error) {
	var names []VersionDisplayName
	err := r.db.Order("version_id").Find(&names).Error
	return names, err
}

// GetDisplayName resolves the label for a version id: the explicitly-set
// row wins, then the built-in default map, then the raw id.
func (r *Repository) GetDisplayName(versionID string) (string, error) {
	var row VersionDisplayName
	err := r.db.Where("version_id = ?", versionID).First(&row).Error
	if err == nil {
		return row.DisplayName, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}
	if name, ok := bible.DefaultDisplayNames[versionID]; ok {
		return name, nil
	}
	return versionID, nil
}

// SetDisplayName upserts the display name for a version id.
func (r *Repository) SetDisplayName(versionID, displayName string) error {
	row := VersionDisplayName{
		VersionID:   versionID,
		DisplayName: displayName,
		UpdatedAt:   time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "version_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "updated_at"}),
	}).Create(&row).Error
}

// RemoveDisplayName deletes the explicit display name for a version id.
// Returns true iff a row was removed; an absent row is not an error.
func (r *Repository) RemoveDisplayName(versionID string) (bool, error) {
	result := r.db.Where("version_id = ?", versionID).Delete(&VersionDisplayName{})
	return result.RowsAffected > 0, result.Error
}
