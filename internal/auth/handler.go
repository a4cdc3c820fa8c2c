// File: internal/auth/handler.go
package auth

import (
	"net/http"

	"dealership_backend/internal/common"
	"dealership_backend/internal/config"
	"dealership_backend/internal/user"
	"dealership_backend/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const invalidCredentialsMessage = "Invalid email or password."

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	verifier  CredentialVerifier
	users     UserLookup
	sessions  *SessionService
	blocklist TokenBlocklist
	throttle  *LoginThrottle
	cfg       *config.Config
	logger    *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(
	verifier CredentialVerifier,
	users UserLookup,
	sessions *SessionService,
	blocklist TokenBlocklist,
	throttle *LoginThrottle,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		verifier:  verifier,
		users:     users,
		sessions:  sessions,
		blocklist: blocklist,
		throttle:  throttle,
		cfg:       cfg,
		logger:    logger.Named("AuthHandler"),
	}
}

// RegisterRoutes sets up the routes for authentication operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", authMW, h.logout)
		authGroup.GET("/me", authMW, h.me)
	}
}

func (h *Handler) login(c *gin.Context) {
	body, err := common.BindJSONObject(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	input, err := ValidateLogin(body)
	if err != nil {
		common.RespondWithError(c, validation.ToAPIError(err))
		return
	}

	if !h.throttle.Allow(input.Email) {
		h.logger.Warn("Login throttled", zap.String("email", input.Email), zap.String("ip", c.ClientIP()))
		common.RespondWithError(c, common.ErrTooManyRequests)
		return
	}

	identity, ok := h.verifier.Verify(c.Request.Context(), input.Email, input.Password).Identity()
	if !ok {
		h.throttle.RecordFailure(input.Email)
		common.RespondWithError(c, common.ErrUnauthorized.WithDetails(invalidCredentialsMessage))
		return
	}
	h.throttle.Reset(input.Email)

	account, err := h.users.GetUserByID(c.Request.Context(), identity.ID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	token, claims, err := h.sessions.Issue(identity, account.Role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	h.logger.Info("Admin signed in", zap.String("userID", identity.ID))
	common.RespondOK(c, "Login successful.", LoginResponse{
		User:      identity,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

func (h *Handler) logout(c *gin.Context) {
	claims := ClaimsFromContext(c)
	if claims == nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}

	if err := h.blocklist.Add(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.logger.Error("Failed to blocklist session", zap.String("jti", claims.ID), zap.Error(err))
		common.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	common.RespondOK(c, "Logged out.", nil)
}

func (h *Handler) me(c *gin.Context) {
	account, err := h.users.GetUserByID(c.Request.Context(), common.GetUserIDFromContext(c))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Current user retrieved.", user.ToUserResponse(account))
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, value, maxAge, "/", "", h.cfg.SessionCookieSecure, true)
}

// ClaimsFromContext returns the session claims stored by the auth middleware, or nil.
func ClaimsFromContext(c *gin.Context) *Claims {
	val, exists := c.Get(common.SessionClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := val.(*Claims)
	return claims
}
