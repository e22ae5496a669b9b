package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

const TokenTTL = 30 * time.Minute

// SignToken issues the session token carried both in the login response
// and in the http-only cookie.
func SignToken(secret string, userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if tok, err := c.Cookie("token"); err == nil {
		return tok
	}
	return ""
}

// AuthRequired verifies the token from the Authorization header or the
// token cookie and resolves it to a live user row.
func AuthRequired(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFromRequest(c)
		if tok == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token requerido"})
			c.Abort()
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token inválido"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario no encontrado"})
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// AuthOptional attaches the user when a valid token is present but never
// rejects the request. Logout uses it so clearing the cookie works even
// with an expired session.
func AuthOptional(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := tokenFromRequest(c)
		if tok == "" {
			c.Next()
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(tok, claims, func(token *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err == nil && parsed.Valid {
			var user models.User
			if err := db.First(&user, claims.UserID).Error; err == nil {
				c.Set("user", &user)
				c.Set("user_id", user.ID)
			}
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := c.Get("user")
		if !ok || u.(*models.User).Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "solo administradores"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if u, ok := c.Get("user"); ok {
		return u.(*models.User)
	}
	return nil
}
