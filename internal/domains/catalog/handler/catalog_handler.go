package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/domains/catalog/model"
	"book-catalog/internal/domains/catalog/service"
	"book-catalog/internal/shared/response"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /api/v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleCatalogError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// GetBook - GET /api/v1/books/:isbn
func (h *Handler) GetBook(c *gin.Context) {
	book, err := h.service.GetBook(c.Request.Context(), c.Param("isbn"))
	if model.HandleCatalogError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, book)
}

// AddBook - POST /api/v1/books
func (h *Handler) AddBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	book, err := h.service.AddBook(c.Request.Context(), req, operatorFrom(c))
	if model.HandleCatalogError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// EditBook - PUT /api/v1/books/:isbn
func (h *Handler) EditBook(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "validation failed", err)
		return
	}

	book, err := h.service.EditBook(c.Request.Context(), c.Param("isbn"), req)
	if model.HandleCatalogError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, book)
}

// RemoveBook - DELETE /api/v1/books/:isbn
func (h *Handler) RemoveBook(c *gin.Context) {
	if model.HandleCatalogError(c, h.service.RemoveBook(c.Request.Context(), c.Param("isbn"))) {
		return
	}

	c.Status(http.StatusNoContent)
}

// operatorFrom reads the identity set by the auth middleware, defaulting
// to "system" when auth is disabled.
func operatorFrom(c *gin.Context) string {
	if operator := c.GetString("operator"); operator != "" {
		return operator
	}
	return "system"
}
