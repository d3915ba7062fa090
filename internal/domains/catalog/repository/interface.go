package repository

import (
	"context"

	"book-catalog/internal/domains/catalog/model"
)

// RepositoryInterface is the catalog store contract. The store is the
// source of truth; the cache layer in the service package sits in front
// of it and never receives errors other than the ones raised here.
type RepositoryInterface interface {
	// List returns a snapshot of all current records, in no promised
	// order. An empty catalog yields an empty slice.
	List(ctx context.Context) ([]model.Book, error)

	// Get returns the record for isbn or a BookNotFoundError.
	Get(ctx context.Context, isbn string) (*model.Book, error)

	// Add inserts book under book.ISBN and returns the stored record.
	// A populated key fails with BookAlreadyExistsError and leaves the
	// store unmodified.
	Add(ctx context.Context, book model.Book) (*model.Book, error)

	// Edit replaces the editable fields of the record for isbn with the
	// patch, keeping identity and audit fields, and returns the new
	// record. A missing key fails with BookNotFoundError without
	// writing.
	Edit(ctx context.Context, isbn string, patch model.BookPatch) (*model.Book, error)

	// Remove deletes the record for isbn. A missing key fails with
	// BookNotFoundError rather than no-opping silently.
	Remove(ctx context.Context, isbn string) error
}
