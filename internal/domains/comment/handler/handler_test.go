package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/comment/model"
	"library-backend/internal/domains/comment/service"
	"library-backend/internal/shared/authz"
	"library-backend/internal/shared/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuth injects a principal the way AuthMiddleware would.
func fakeAuth(userID uuid.UUID, role authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

type stubCommentService struct {
	submitFn func(bookID, userID uuid.UUID, req model.SubmitCommentRequest) (*model.Comment, error)
	deleteFn func(commentID, userID uuid.UUID, role authz.Role) error
	listFn   func(bookID uuid.UUID) ([]*model.Comment, error)
}

var _ service.ServiceInterface = (*stubCommentService)(nil)

func (s *stubCommentService) Submit(_ context.Context, bookID, userID uuid.UUID, req model.SubmitCommentRequest) (*model.Comment, error) {
	return s.submitFn(bookID, userID, req)
}

func (s *stubCommentService) Delete(_ context.Context, commentID, userID uuid.UUID, role authz.Role) error {
	return s.deleteFn(commentID, userID, role)
}

func (s *stubCommentService) ListByBook(_ context.Context, bookID uuid.UUID) ([]*model.Comment, error) {
	return s.listFn(bookID)
}

func newRouter(svc service.ServiceInterface, userID uuid.UUID, role authz.Role) *gin.Engine {
	h := NewCommentHandler(svc)
	r := gin.New()
	authed := r.Group("", fakeAuth(userID, role))
	authed.POST("/books/:id/comments", h.Submit)
	authed.DELETE("/comments/:id", h.Delete)
	r.GET("/books/:id/comments", h.ListByBook)
	return r
}

func TestSubmitReturnsComment(t *testing.T) {
	bookID := uuid.New()
	userID := uuid.New()

	svc := &stubCommentService{
		submitFn: func(gotBook, gotUser uuid.UUID, req model.SubmitCommentRequest) (*model.Comment, error) {
			assert.Equal(t, bookID, gotBook)
			assert.Equal(t, userID, gotUser)
			return &model.Comment{
				ID:     uuid.New(),
				BookID: gotBook,
				UserID: gotUser,
				Text:   req.Text,
				Score:  req.Score,
			}, nil
		},
	}

	r := newRouter(svc, userID, authz.RoleUser)

	body, _ := json.Marshal(map[string]interface{}{"text": "great read", "score": 5})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/books/%s/comments", bookID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    model.CommentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "great read", resp.Data.Text)
	assert.Equal(t, 5, resp.Data.Score)
}

func TestSubmitInvalidBookID(t *testing.T) {
	svc := &stubCommentService{}
	r := newRouter(svc, uuid.New(), authz.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books/not-a-uuid/comments", bytes.NewReader([]byte(`{}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitUnknownBookMapsTo404(t *testing.T) {
	svc := &stubCommentService{
		submitFn: func(uuid.UUID, uuid.UUID, model.SubmitCommentRequest) (*model.Comment, error) {
			return nil, model.ErrBookNotFound
		},
	}
	r := newRouter(svc, uuid.New(), authz.RoleUser)

	body := []byte(`{"text":"x","score":3}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/books/%s/comments", uuid.New()), bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDeniedMapsTo404(t *testing.T) {
	svc := &stubCommentService{
		deleteFn: func(uuid.UUID, uuid.UUID, authz.Role) error {
			return model.ErrCommentNotFound
		},
	}
	r := newRouter(svc, uuid.New(), authz.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/comments/%s", uuid.New()), nil)
	r.ServeHTTP(w, req)

	// Denied and missing produce identical responses.
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSuccess(t *testing.T) {
	commentID := uuid.New()
	userID := uuid.New()

	svc := &stubCommentService{
		deleteFn: func(gotComment, gotUser uuid.UUID, role authz.Role) error {
			assert.Equal(t, commentID, gotComment)
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, authz.RoleAdmin, role)
			return nil
		},
	}
	r := newRouter(svc, userID, authz.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/comments/%s", commentID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListByBook(t *testing.T) {
	bookID := uuid.New()
	svc := &stubCommentService{
		listFn: func(gotBook uuid.UUID) ([]*model.Comment, error) {
			assert.Equal(t, bookID, gotBook)
			return []*model.Comment{
				{ID: uuid.New(), BookID: gotBook, Text: "first", Score: 4},
				{ID: uuid.New(), BookID: gotBook, Text: "second", Score: 5},
			}, nil
		},
	}
	r := newRouter(svc, uuid.New(), authz.RoleUser)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/books/%s/comments", bookID), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.CommentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "first", resp.Data[0].Text)
}
