package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookListCacheKey is the singleton cache entry holding the whole catalog
// snapshot. Detail entries are keyed per ISBN via BookCacheKey.
const BookListCacheKey = "catalog:books"

func BookCacheKey(isbn string) string {
	return "catalog:book:" + isbn
}

// Book is a catalog record keyed by its ISBN. Values are treated as
// immutable snapshots; edits go through WithDetails.
type Book struct {
	ID               uuid.UUID       `json:"id"`
	ISBN             string          `json:"isbn"`
	Title            string          `json:"title"`
	Author           string          `json:"author"`
	Price            decimal.Decimal `json:"price"`
	Publisher        string          `json:"publisher"`
	CreatedDate      time.Time       `json:"created_date"`
	LastModifiedDate time.Time       `json:"last_modified_date"`
	CreatedBy        string          `json:"created_by"`
	LastModifiedBy   string          `json:"last_modified_by"`
	Version          int64           `json:"version"`
}

// BookPatch carries the editable fields of a record. Identity, audit
// fields and version are never part of a patch.
type BookPatch struct {
	Title     string
	Author    string
	Price     decimal.Decimal
	Publisher string
}

// NewBook builds a complete record for a book entering the catalog. The
// store keeps the returned value verbatim.
func NewBook(isbn, title, author string, price decimal.Decimal, publisher, operator string) Book {
	now := time.Now().UTC()

	return Book{
		ID:               uuid.New(),
		ISBN:             isbn,
		Title:            title,
		Author:           author,
		Price:            price,
		Publisher:        publisher,
		CreatedDate:      now,
		LastModifiedDate: now,
		CreatedBy:        operator,
		LastModifiedBy:   operator,
		Version:          0,
	}
}

// WithDetails returns a copy of the record with the patch applied. All
// other fields carry over unchanged.
func (b Book) WithDetails(patch BookPatch) Book {
	b.Title = patch.Title
	b.Author = patch.Author
	b.Price = patch.Price
	b.Publisher = patch.Publisher
	return b
}
