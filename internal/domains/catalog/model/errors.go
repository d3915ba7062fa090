package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/shared/response"
	"book-catalog/pkg/logger"
)

// Sentinel errors for errors.Is checks across layers.
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("book already exists")
)

// BookNotFoundError reports a lookup for an ISBN the catalog does not hold.
type BookNotFoundError struct {
	ISBN string
}

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("The book with ISBN %s was not found.", e.ISBN)
}

func (e *BookNotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}

// BookAlreadyExistsError reports an attempt to register an ISBN twice.
type BookAlreadyExistsError struct {
	ISBN string
}

func (e *BookAlreadyExistsError) Error() string {
	return fmt.Sprintf("A book with ISBN %s already exists.", e.ISBN)
}

func (e *BookAlreadyExistsError) Is(target error) bool {
	return target == ErrBookAlreadyExists
}

var catalogErrorMap = map[error]struct {
	Status int
	Code   string
}{
	ErrBookNotFound:      {Status: http.StatusNotFound, Code: "NOT_FOUND"},
	ErrBookAlreadyExists: {Status: http.StatusConflict, Code: "CONFLICT"},
}

// HandleCatalogError writes the HTTP response for err and reports whether
// one was written. A nil err writes nothing.
func HandleCatalogError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range catalogErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, err.Error())
			return true
		}
	}

	logger.Error("unhandled catalog error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
