package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/domains/comment/model"
	"library-backend/internal/domains/comment/service"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Submit creates or replaces the caller's review of a book.
// POST /api/v1/books/:id/comments
func (h *CommentHandler) Submit(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Submit(c.Request.Context(), bookID, userID, req)
	if err != nil {
		mapCommentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.NewCommentResponse(comment))
}

// Delete removes a review. Owner or admin only.
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment ID")
		return
	}

	userID, role, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID, userID, role); err != nil {
		mapCommentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "comment deleted"})
}

// ListByBook returns a book's reviews in submission order.
// GET /api/v1/books/:id/comments
func (h *CommentHandler) ListByBook(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book ID")
		return
	}

	comments, err := h.commentService.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		mapCommentError(c, err)
		return
	}

	out := make([]model.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, model.NewCommentResponse(cm))
	}

	response.Success(c, http.StatusOK, out)
}

func mapCommentError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "comment not found")
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, model.ErrUnauthenticated):
		response.Unauthorized(c, "authentication required")
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
