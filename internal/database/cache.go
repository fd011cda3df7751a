package database

import (
	"sync"
)

// CachedRepository wraps Repository with read-through caching for the
// lookups every screen repeats: the book listing and display-name
// resolution. Version writes invalidate both caches.
type CachedRepository struct {
	*Repository

	booksMu sync.RWMutex
	books   []Book

	nameMu sync.RWMutex
	names  map[string]string
}

// NewCachedRepository creates a new cached repository
func NewCachedRepository(repo *Repository) *CachedRepository {
	return &CachedRepository{
		Repository: repo,
		names:      make(map[string]string),
	}
}

// ListBooks returns the cached book listing, loading it on first use.
func (r *CachedRepository) ListBooks() ([]Book, error) {
	r.booksMu.RLock()
	if r.books != nil {
		books := r.books
		r.booksMu.RUnlock()
		return books, nil
	}
	r.booksMu.RUnlock()

	books, err := r.Repository.ListBooks()
	if err != nil {
		return nil, err
	}

	r.booksMu.Lock()
	r.books = books
	r.booksMu.Unlock()

	return books, nil
}

// GetDisplayName resolves a display name with caching.
func (r *CachedRepository) GetDisplayName(versionID string) (string, error) {
	r.nameMu.RLock()
	if name, ok := r.names[versionID]; ok {
		r.nameMu.RUnlock()
		return name, nil
	}
	r.nameMu.RUnlock()

	name, err := r.Repository.GetDisplayName(versionID)
	if err != nil {
		return "", err
	}

	r.nameMu.Lock()
	r.names[versionID] = name
	r.nameMu.Unlock()

	return name, nil
}

// AddVersion invalidates the book cache after a successful import.
func (r *CachedRepository) AddVersion(versionID string, verses []Verse) error {
	if err := r.Repository.AddVersion(versionID, verses); err != nil {
		return err
	}
	r.invalidateBooks()
	return nil
}

// DeleteVersion invalidates both caches on success.
func (r *CachedRepository) DeleteVersion(versionID string) (bool, error) {
	deleted, err := r.Repository.DeleteVersion(versionID)
	if deleted {
		r.invalidateBooks()
		r.invalidateNames()
	}
	return deleted, err
}

// RenameVersion invalidates the display-name cache on success.
func (r *CachedRepository) RenameVersion(oldID, newID string) (bool, error) {
	renamed, err := r.Repository.RenameVersion(oldID, newID)
	if renamed {
		r.invalidateNames()
	}
	return renamed, err
}

// SetDisplayName writes through and drops the cached entry.
func (r *CachedRepository) SetDisplayName(versionID, displayName string) error {
	if err := r.Repository.SetDisplayName(versionID, displayName); err != nil {
		return err
	}
	r.nameMu.Lock()
	delete(r.names, versionID)
	r.nameMu.Unlock()
	return nil
}

// RemoveDisplayName writes through and drops the cached entry.
func (r *CachedRepository) RemoveDisplayName(versionID string) (bool, error) {
	removed, err := r.Repository.RemoveDisplayName(versionID)
	if err != nil {
		return false, err
	}
	r.nameMu.Lock()
	delete(r.names, versionID)
	r.nameMu.Unlock()
	return removed, nil
}

func (r *CachedRepository) invalidateBooks() {
	r.booksMu.Lock()
	r.books = nil
	r.booksMu.Unlock()
}

func (r *CachedRepository) invalidateNames() {
	r.nameMu.Lock()
	r.names = make(map[string]string)
	r.nameMu.Unlock()
}
