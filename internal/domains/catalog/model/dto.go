package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateBookRequest is the payload for registering a new book.
type CreateBookRequest struct {
	ISBN      string          `json:"isbn"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	Publisher string          `json:"publisher"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Price, validation.By(priceNotNegative)),
		validation.Field(&r.Publisher,
			validation.Required.Error("publisher is required"),
			validation.Length(1, 255),
		),
	)
}

// ToBook converts the request into the record the store will keep,
// attributing it to the given operator.
func (r CreateBookRequest) ToBook(operator string) Book {
	return NewBook(r.ISBN, r.Title, r.Author, r.Price, r.Publisher, operator)
}

// UpdateBookRequest is the payload for replacing a book's editable fields.
// The ISBN comes from the request path and cannot be changed.
type UpdateBookRequest struct {
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Price     decimal.Decimal `json:"price"`
	Publisher string          `json:"publisher"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Price, validation.By(priceNotNegative)),
		validation.Field(&r.Publisher,
			validation.Required.Error("publisher is required"),
			validation.Length(1, 255),
		),
	)
}

func (r UpdateBookRequest) ToPatch() BookPatch {
	return BookPatch{
		Title:     r.Title,
		Author:    r.Author,
		Price:     r.Price,
		Publisher: r.Publisher,
	}
}

func priceNotNegative(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal amount")
	}
	if price.IsNegative() {
		return errors.New("must be zero or greater")
	}
	return nil
}
