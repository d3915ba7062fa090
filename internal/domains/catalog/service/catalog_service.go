package service

import (
	"context"
	"sync"
	"time"

	"book-catalog/internal/domains/catalog/model"
	"book-catalog/internal/domains/catalog/repository"
	"book-catalog/pkg/cache"
	"book-catalog/pkg/logger"
)

// CatalogService fronts the store with two cache regions: a per-ISBN
// detail region and a singleton list region holding the whole catalog
// snapshot.
//
// Policy per operation:
//
//	list    read-through on the list region
//	get     read-through on the detail region
//	add     write-through detail, drop the list snapshot
//	edit    write-through detail, drop the list snapshot
//	remove  drop the detail entry and the list snapshot
//
// Cache effects only follow successful store calls. The list snapshot is
// dropped whole on every mutation; it has no per-key granularity worth
// patching. Cache infrastructure failures are logged and the store result
// is returned anyway, so a broken cache degrades throughput, not
// correctness.
type CatalogService struct {
	mu    sync.RWMutex
	repo  repository.RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewService - Constructor with DI. A ttl of zero keeps cache entries
// until a mutation drops them.
func NewService(repo repository.RepositoryInterface, cache cache.Cache, ttl time.Duration) ServiceInterface {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// ListBooks returns the catalog snapshot, serving repeat calls from the
// list region until a mutation invalidates it.
func (s *CatalogService) ListBooks(ctx context.Context) ([]model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cached []model.Book
	found, err := s.cache.Get(ctx, model.BookListCacheKey, &cached)
	if err != nil {
		logger.Warn("book list cache read failed", err)
	}
	if found {
		logger.Debug("cache hit for key: " + model.BookListCacheKey)
		return cached, nil
	}
	logger.Debug("cache miss for key: " + model.BookListCacheKey)

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, model.BookListCacheKey, books, s.ttl); err != nil {
		logger.Warn("book list cache write failed", err)
	}

	return books, nil
}

// GetBook returns one record by ISBN, read-through on the detail region.
// A store miss surfaces NotFound; misses are never cached.
func (s *CatalogService) GetBook(ctx context.Context, isbn string) (*model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := model.BookCacheKey(isbn)

	var cached model.Book
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("book detail cache read failed", err)
	}
	if found {
		logger.Debug("cache hit for key: " + key)
		return &cached, nil
	}
	logger.Debug("cache miss for key: " + key)

	book, err := s.repo.Get(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, book, s.ttl); err != nil {
		logger.Warn("book detail cache write failed", err)
	}

	return book, nil
}

// AddBook inserts a new record attributed to operator.
func (s *CatalogService) AddBook(ctx context.Context, req model.CreateBookRequest, operator string) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.repo.Add(ctx, req.ToBook(operator))
	if err != nil {
		return nil, err
	}

	s.writeThrough(ctx, *added)

	return added, nil
}

// EditBook replaces the editable fields of the record for isbn.
func (s *CatalogService) EditBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.Edit(ctx, isbn, req.ToPatch())
	if err != nil {
		return nil, err
	}

	s.writeThrough(ctx, *updated)

	return updated, nil
}

// RemoveBook deletes the record for isbn and drops both cache regions'
// entries for it.
func (s *CatalogService) RemoveBook(ctx context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Remove(ctx, isbn); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, model.BookCacheKey(isbn), model.BookListCacheKey); err != nil {
		logger.Warn("cache invalidation failed", err)
	}

	return nil
}

// writeThrough refreshes the detail entry with the just-written record
// and drops the list snapshot.
func (s *CatalogService) writeThrough(ctx context.Context, book model.Book) {
	if err := s.cache.Set(ctx, model.BookCacheKey(book.ISBN), book, s.ttl); err != nil {
		logger.Warn("book detail cache write failed", err)
	}

	if err := s.cache.Delete(ctx, model.BookListCacheKey); err != nil {
		logger.Warn("book list cache invalidation failed", err)
	}
}
