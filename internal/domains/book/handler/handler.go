package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	bookService service.ServiceInterface
}

func NewBookHandler(bookService service.ServiceInterface) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// Catalog lists books; with ?q= it becomes a search.
// GET /api/v1/books
func (h *BookHandler) Catalog(c *gin.Context) {
	query, hasQuery := c.GetQuery("q")

	var (
		books []model.BookSummary
		err   error
	)
	if hasQuery {
		books, err = h.bookService.Search(c.Request.Context(), query)
	} else {
		books, err = h.bookService.Catalog(c.Request.Context())
	}

	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Get returns book detail with its review collection.
// GET /api/v1/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		mapBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Create book (admin)
// POST /api/v1/admin/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), req)
	if err != nil {
		mapBookError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// Update book (admin)
// PUT /api/v1/admin/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	var req model.SaveBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	book, err := h.bookService.Update(c.Request.Context(), id, req)
	if err != nil {
		mapBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// Delete book (admin)
// DELETE /api/v1/admin/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		mapBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "book deleted"})
}

func mapBookError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, model.ErrAuthorNotFound):
		response.BadRequest(c, "author does not exist")
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
