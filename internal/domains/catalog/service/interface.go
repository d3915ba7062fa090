package service

import (
	"context"

	"book-catalog/internal/domains/catalog/model"
)

// ServiceInterface is the catalog's business contract: the store
// operations wrapped with the cache policy. NotFound and AlreadyExists
// conditions from the store propagate through unchanged.
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, isbn string) (*model.Book, error)
	AddBook(ctx context.Context, req model.CreateBookRequest, operator string) (*model.Book, error)
	EditBook(ctx context.Context, isbn string, req model.UpdateBookRequest) (*model.Book, error)
	RemoveBook(ctx context.Context, isbn string) error
}
