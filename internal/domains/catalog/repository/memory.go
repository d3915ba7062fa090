package repository

import (
	"context"
	"sync"

	"book-catalog/internal/domains/catalog/model"
)

// MemoryRepository keeps the catalog in a process-local map keyed by ISBN.
// Instances are isolated; tests construct their own rather than sharing
// package state.
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[string]model.Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books: make(map[string]model.Book),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, book)
	}

	return books, nil
}

func (r *MemoryRepository) Get(_ context.Context, isbn string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, &model.BookNotFoundError{ISBN: isbn}
	}

	return &book, nil
}

func (r *MemoryRepository) Add(_ context.Context, book model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[book.ISBN]; ok {
		return nil, &model.BookAlreadyExistsError{ISBN: book.ISBN}
	}

	r.books[book.ISBN] = book
	return &book, nil
}

func (r *MemoryRepository) Edit(_ context.Context, isbn string, patch model.BookPatch) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.books[isbn]
	if !ok {
		return nil, &model.BookNotFoundError{ISBN: isbn}
	}

	updated := existing.WithDetails(patch)
	r.books[isbn] = updated

	return &updated, nil
}

func (r *MemoryRepository) Remove(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[isbn]; !ok {
		return &model.BookNotFoundError{ISBN: isbn}
	}

	delete(r.books, isbn)
	return nil
}
