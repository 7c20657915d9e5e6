package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/service"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	authorService service.ServiceInterface
}

func NewAuthorHandler(authorService service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// List authors
// GET /api/v1/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authorService.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, authors)
}

// Get author by ID
// GET /api/v1/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author ID")
		return
	}

	author, err := h.authorService.Get(c.Request.Context(), id)
	if err != nil {
		mapAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author)
}

// Create author (admin)
// POST /api/v1/admin/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.authorService.Create(c.Request.Context(), req)
	if err != nil {
		mapAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, author)
}

// Update author (admin)
// PUT /api/v1/admin/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author ID")
		return
	}

	var req model.SaveAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.authorService.Update(c.Request.Context(), id, req)
	if err != nil {
		mapAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author)
}

// Delete author (admin)
// DELETE /api/v1/admin/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid author ID")
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		mapAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "author deleted"})
}

func mapAuthorError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	case errors.Is(err, model.ErrAuthorHasBooks):
		response.Conflict(c, "author is referenced by books")
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
