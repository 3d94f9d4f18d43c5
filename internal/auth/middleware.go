package auth

import (
	"cs-crm-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireSession is route-group middleware that rejects requests without a
// valid session and stores the identity on the context
func (g *Guard) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, denial := g.RequireAuth(c)
		if denial != nil {
			Abort(c, denial)
			return
		}
		c.Set(identityKey, user)
		c.Next()
	}
}

// OptionalSession stores the session identity on the context when one is present
func (g *Guard) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := g.identity.Resolve(c, SessionOnly, nil); err == nil {
			c.Set(identityKey, user)
			c.Set(logger.UserIDKey, user.ID)
		}
		c.Next()
	}
}

// GetIdentity is a helper function to extract the identity set by RequireSession
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok && identity != nil
}

// GetUserID is a helper function to extract the user id from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(logger.UserIDKey)
	return userID, userID != ""
}
