package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cleaning-booking-api/internal/auth"
	"cleaning-booking-api/internal/middleware"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	admin, err := h.store.AdminByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// same message as a wrong password; no user enumeration
			fail(c, http.StatusUnauthorized, "Invalid credentials.")
		} else {
			serverError(c, "login: lookup admin", err)
		}
		return
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		fail(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	access, err := auth.MakeToken(admin.ID, admin.Username, h.secret)
	if err != nil {
		serverError(c, "login: sign token", err)
		return
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		serverError(c, "login: generate refresh token", err)
		return
	}
	if _, err := h.store.CreateRefreshToken(c.Request.Context(), admin.ID, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		serverError(c, "login: store refresh token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        access,
		"refreshToken": raw,
		"username":     admin.Username,
	})
}

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Refresh rotates the presented refresh token: the old one is revoked and
// linked to its replacement, so a rotated token is single-use.
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Refresh token is required.")
		return
	}

	ctx := c.Request.Context()
	rt, err := h.store.GetRefreshTokenByHash(ctx, auth.HashOpaqueToken(req.RefreshToken))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusUnauthorized, "Invalid refresh token.")
		} else {
			serverError(c, "refresh: lookup token", err)
		}
		return
	}
	if rt.Revoked || time.Now().After(rt.ExpiresAt) {
		fail(c, http.StatusUnauthorized, "Invalid refresh token.")
		return
	}

	admin, err := h.store.AdminByID(ctx, rt.AdminID)
	if err != nil {
		serverError(c, "refresh: lookup admin", err)
		return
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		serverError(c, "refresh: generate token", err)
		return
	}
	newID := uuid.New().String()
	if err := h.store.RotateRefreshToken(ctx, rt.ID, newID, admin.ID, hash, time.Now().Add(refreshTokenTTL)); err != nil {
		serverError(c, "refresh: rotate token", err)
		return
	}

	access, err := auth.MakeToken(admin.ID, admin.Username, h.secret)
	if err != nil {
		serverError(c, "refresh: sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        access,
		"refreshToken": raw,
		"username":     admin.Username,
	})
}

// Logout revokes every outstanding refresh token for the calling admin. The
// current access token stays valid until it expires on its own.
func (h *Handler) Logout(c *gin.Context) {
	adminID := c.GetInt(middleware.CtxAdminID)
	if err := h.store.RevokeAllRefreshTokens(c.Request.Context(), adminID); err != nil {
		serverError(c, "logout: revoke tokens", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Current and new passwords are required.")
		return
	}
	if len(req.NewPassword) < 8 {
		fail(c, http.StatusBadRequest, "New password must be at least 8 characters.")
		return
	}

	ctx := c.Request.Context()
	admin, err := h.store.AdminByID(ctx, c.GetInt(middleware.CtxAdminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusNotFound, "Admin not found.")
		} else {
			serverError(c, "change-password: lookup admin", err)
		}
		return
	}

	if !auth.CheckPassword(admin.PasswordHash, req.CurrentPassword) {
		fail(c, http.StatusUnauthorized, "Current password is incorrect.")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		serverError(c, "change-password: hash", err)
		return
	}
	if err := h.store.UpdateAdminPassword(ctx, admin.ID, hash); err != nil {
		serverError(c, "change-password: update", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}

type requestResetReq struct {
	Username string `json:"username"`
}

// resetResponse is identical whether or not the username exists; the token
// only ever appears on the server console.
const resetResponse = "If the account exists, a reset token has been generated. Check the server console."

func (h *Handler) RequestReset(c *gin.Context) {
	var req requestResetReq
	_ = c.ShouldBindJSON(&req) // body and username are both optional
	username := req.Username
	if username == "" {
		username = "admin"
	}

	token, _, err := auth.GenerateOpaqueToken()
	if err != nil {
		serverError(c, "request-reset: generate token", err)
		return
	}
	expiry := time.Now().Add(time.Hour)

	found, err := h.store.SetResetToken(c.Request.Context(), username, token, expiry)
	if err != nil {
		serverError(c, "request-reset: store token", err)
		return
	}
	if found {
		log.Printf("password reset requested for %q: token %s (expires in 1 hour)", username, token)
	}

	c.JSON(http.StatusOK, gin.H{"message": resetResponse})
}

type resetPasswordReq struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Token and new password are required.")
		return
	}
	if len(req.NewPassword) < 8 {
		fail(c, http.StatusBadRequest, "New password must be at least 8 characters.")
		return
	}

	ctx := c.Request.Context()
	admin, err := h.store.AdminByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusBadRequest, "Invalid or expired reset token.")
		} else {
			serverError(c, "reset-password: lookup token", err)
		}
		return
	}
	if admin.ResetTokenExpiry == nil || time.Now().After(*admin.ResetTokenExpiry) {
		fail(c, http.StatusBadRequest, "Invalid or expired reset token.")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		serverError(c, "reset-password: hash", err)
		return
	}
	if err := h.store.UpdateAdminPassword(ctx, admin.ID, hash); err != nil {
		serverError(c, "reset-password: update", err)
		return
	}
	if err := h.store.ClearResetToken(ctx, admin.ID); err != nil {
		serverError(c, "reset-password: clear token", err)
		return
	}
	// old sessions die with the old password
	if err := h.store.RevokeAllRefreshTokens(ctx, admin.ID); err != nil {
		serverError(c, "reset-password: revoke tokens", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully."})
}
