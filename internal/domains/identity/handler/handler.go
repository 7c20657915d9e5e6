package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/identity/model"
	"library-backend/internal/domains/identity/service"
	"library-backend/internal/shared/response"
)

type IdentityHandler struct {
	identityService service.ServiceInterface
}

func NewIdentityHandler(identityService service.ServiceInterface) *IdentityHandler {
	return &IdentityHandler{identityService: identityService}
}

// Register creates a member account.
// POST /api/v1/auth/register
func (h *IdentityHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.identityService.Register(c.Request.Context(), req)
	if err != nil {
		mapIdentityError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login exchanges credentials for a JWT.
// POST /api/v1/auth/login
func (h *IdentityHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.identityService.Login(c.Request.Context(), req)
	if err != nil {
		mapIdentityError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func mapIdentityError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.Is(err, model.ErrEmailAlreadyExists):
		response.Conflict(c, "email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.As(err, &verr):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
