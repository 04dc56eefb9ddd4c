package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-cms/model"
	"github.com/ariebrainware/clinic-cms/util"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// bcrypt ignores input past 72 bytes, so longer passwords are refused.
const maxPasswordLength = 72

// prepareUser hashes a password sent in the body. Users are never stored with a plain password.
func prepareUser(req UserRequest, u *model.User) error {
	if req.Password == nil {
		return nil
	}
	if err := validation.Validate(*req.Password, validation.Required, validation.Length(1, maxPasswordLength)); err != nil {
		return validationError(fmt.Errorf("password: %w", err))
	}
	digest, err := util.HashPassword(*req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = digest
	return nil
}

// afterUserSave drops cached data and ends sessions when credentials or status changed.
func afterUserSave(c *gin.Context, req UserRequest, u *model.User, created bool) {
	util.UserEmailCacheDelete(u.ID)
	if created {
		return
	}
	if req.Password != nil {
		util.LogPasswordChanged(u.ID, u.Email, c.ClientIP())
	}
	if req.Password != nil || !u.IsActive {
		invalidateSessions(c, u.ID)
	}
}

func afterUserDelete(c *gin.Context, u *model.User) {
	util.UserEmailCacheDelete(u.ID)
	invalidateSessions(c, u.ID)
}

func invalidateSessions(c *gin.Context, userID string) {
	if err := util.InvalidateUserSessions(c.Request.Context(), userID); err != nil {
		util.Log().WithError(err).WithField("user_id", userID).Warn("Failed to invalidate user sessions")
	}
}
