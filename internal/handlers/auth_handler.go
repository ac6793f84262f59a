package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/middleware"
	"depotlens/internal/services"
)

// AuthHandler handles owner login.
type AuthHandler struct {
	authService  services.AuthServicer
	auditService services.AuditServicer
	jwtSecret    string
	tokenExpiry  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, auditService services.AuditServicer, jwtSecret string, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		auditService: auditService,
		jwtSecret:    jwtSecret,
		tokenExpiry:  tokenExpiry,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthStatusResponse tells clients whether they need to log in.
type AuthStatusResponse struct {
	AuthEnabled bool `json:"auth_enabled"`
}

// Login handles owner login
// @Summary     Owner login
// @Description Exchange the owner password for an access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid password"
// @Failure     404 {object} ErrorResponse "Authentication not configured"
// @Failure     429 {object} ErrorResponse "Too many attempts"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.authService.VerifyPassword(req.Password); err != nil {
		if h.authService.Enabled() {
			h.auditService.Log(services.ActorOwner, "LOGIN_FAILED", "session", "", c.ClientIP(), nil)
		}
		respondWithError(c, err)
		return
	}

	token, expiresAt, err := middleware.GenerateOwnerToken(h.jwtSecret, h.tokenExpiry)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	h.auditService.Log(services.ActorOwner, "LOGIN", "session", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, TokenResponse{Token: token, TokenType: "Bearer", ExpiresAt: expiresAt})
}

// Status reports whether owner authentication is enabled
// @Summary     Authentication status
// @Description Report whether the API requires an owner token
// @Tags        auth
// @Produce     json
// @Success     200 {object} AuthStatusResponse "Authentication status"
// @Router      /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, AuthStatusResponse{AuthEnabled: h.authService.Enabled()})
}
