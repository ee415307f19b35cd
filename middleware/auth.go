package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pos-backend-api/models"
	"pos-backend-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	ctxUserKey    = "currentUser"
	ctxOwnOnlyKey = "ownOnly"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(secret []byte, user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Auth validates the bearer token and loads the user it names. The role
// and status on the row are authoritative, not whatever the token claims:
// the user is re-fetched on every request and inactive accounts are
// rejected even while their tokens are still within expiry.
func Auth(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			// A token that doesn't even parse is missing credentials; one
			// that parses but fails verification was a credential once.
			status := http.StatusForbidden
			if err != nil && errors.Is(err, jwt.ErrTokenMalformed) {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account no longer exists"})
			c.Abort()
			return
		}
		if !user.IsActive() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
			c.Abort()
			return
		}

		c.Set(ctxUserKey, &user)
		c.Next()
	}
}

// Gate evaluates the policy table for one resource/action pair. Must run
// after Auth. When the grant is own-scoped the handler reads that flag via
// OwnOnly and narrows its queries to the caller's rows.
func Gate(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "No authenticated user in context"})
			c.Abort()
			return
		}
		allowed, ownOnly := policy.Allow(user.Role, resource, action)
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied. Required role(s): " + rolesString(policy.AllowedRoles(resource, action)),
			})
			c.Abort()
			return
		}
		c.Set(ctxOwnOnlyKey, ownOnly)
		c.Next()
	}
}

func rolesString(roles []models.UserRole) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// CurrentUser extracts the authenticated user from context
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(ctxUserKey)
	if !exists {
		return nil
	}
	return val.(*models.User)
}

// OwnOnly reports whether the matched policy rule scopes the caller to
// their own rows
func OwnOnly(c *gin.Context) bool {
	val, exists := c.Get(ctxOwnOnlyKey)
	if !exists {
		return false
	}
	return val.(bool)
}
