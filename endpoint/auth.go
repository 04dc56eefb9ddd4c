package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ariebrainware/clinic-cms/middleware"
	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@clinic.example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Auth serves the session endpoints.
type Auth struct {
	// SecureCookies marks the session cookie Secure; set in production.
	SecureCookies bool
}

type clientInfo struct {
	IP    string
	Agent string
}

func clientOf(c *gin.Context) clientInfo {
	return clientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with username or email and password. Sets the http-only session cookie.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload or too many attempts"
// @Failure      401 {object} util.APIResponse "Invalid credentials"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /auth/login [post]
func (a *Auth) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, "", err)
		return
	}
	identifier := strings.TrimSpace(req.Username)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Email)
	}
	if identifier == "" {
		respondError(c, "", validationError(errors.New("username or email is required")))
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	ci := clientOf(c)

	user, err := loadUserForLogin(db, identifier)
	if err != nil {
		reason := "user not found"
		if !errors.Is(err, ErrUnauthorized) {
			reason = "database error"
		}
		util.LogLoginFailure(identifier, ci.IP, ci.Agent, reason)
		respondError(c, "Database error", err)
		return
	}
	if !user.IsActive {
		util.LogLoginFailure(identifier, ci.IP, ci.Agent, "account inactive")
		respondError(c, "", ErrUnauthorized)
		return
	}
	if !util.VerifyPassword(req.Password, user.Password) {
		util.LogLoginFailure(identifier, ci.IP, ci.Agent, "invalid password")
		respondError(c, "", ErrUnauthorized)
		return
	}

	token, err := a.startSession(c, db, user)
	if err != nil {
		util.LogLoginFailure(identifier, ci.IP, ci.Agent, "session creation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Could not start session", Err: err})
		return
	}

	if err := middleware.ResetRateLimit(c.Request.Context(), ci.IP, c.FullPath()); err != nil {
		util.Log().WithError(err).Debug("rate limit counter not reset")
	}
	util.UserEmailCacheSet(user.ID, user.Email)
	util.LogLoginSuccess(user.ID, user.Email, ci.IP, ci.Agent)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Login successful",
		Data: LoginResponse{User: user, Token: token},
	})
}

func loadUserForLogin(db *gorm.DB, identifier string) (*model.User, error) {
	var user model.User
	err := db.Where("username = ? OR email = ?", identifier, strings.ToLower(identifier)).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// startSession issues the token, registers it and sets the cookie.
func (a *Auth) startSession(c *gin.Context, db *gorm.DB, user *model.User) (string, error) {
	token, err := util.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if err := util.StoreSession(c.Request.Context(), token, user.ID, util.TokenTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	now := time.Now().UTC()
	if err := db.Model(user).UpdateColumn("last_login", now).Error; err != nil {
		util.Log().WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login")
	}
	user.LastLogin = &now

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, int(util.TokenTTL.Seconds()), "/", "", a.SecureCookies, true)
	return token, nil
}

// Logout godoc
// @Summary      User logout
// @Description  Revoke the current session and clear the session cookie
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Logout successful"
// @Router       /auth/logout [post]
func (a *Auth) Logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if userID, ok := middleware.GetUserID(c); ok && token != "" {
		if err := util.RevokeSession(c.Request.Context(), token, userID); err != nil {
			util.Log().WithError(err).WithField("user_id", userID).Warn("Failed to revoke session")
		}
		ci := clientOf(c)
		util.LogLogout(userID, util.GetUserEmail(middleware.GetDB(c), userID), ci.IP, ci.Agent)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", a.SecureCookies, true)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logout successful", Data: map[string]interface{}{}})
}

// Me godoc
// @Summary      Current user
// @Description  Return the authenticated user
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=model.User} "User retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /auth/me [get]
func (a *Auth) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Authentication required", Err: errors.New("no session")})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User retrieved", Data: user})
}
