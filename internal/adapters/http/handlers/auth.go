package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/app"
)

// AuthHandler handles account endpoints.
type AuthHandler struct {
	service *app.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *app.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /auth/signup.
//
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CredentialsRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.service.Signup(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// Signin handles POST /auth/signin.
//
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.CredentialsRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.service.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// RegisterAuthRoutes registers auth routes on the given router group.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/signup", h.Signup)
	auth.POST("/signin", h.Signin)
}

// abortWithError hands err to the error handler middleware.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
