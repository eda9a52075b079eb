package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iggarsaudev/reservas-padel/pkg/auth"
)

// Gin context keys set by the gates below.
const (
	KeyUserID = "userID"
	KeyEmail  = "email"
	KeyRole   = "role"
	KeyPathID = "pathID"
)

// Auth extracts and verifies the bearer token, then attaches the caller's
// identity to the context. Must run before any role or ownership gate.
func Auth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing bearer token", "code": "unauthenticated",
			})
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token", "code": "invalid_token",
			})
			return
		}
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyEmail, claims.Email)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole passes only callers whose role is in the allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[UserRole(c)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "insufficient role", "code": "forbidden",
			})
			return
		}
		c.Next()
	}
}

// RequireSelfOrRole passes when the validated :id equals the caller's own id,
// or the caller holds one of the given roles. Requires ValidateID and Auth
// earlier in the chain.
func RequireSelfOrRole(roles ...string) gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[UserRole(c)]; ok {
			c.Next()
			return
		}
		if PathID(c) == UserID(c) {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "no permission over this resource", "code": "forbidden",
		})
	}
}

// ValidateID rejects non-numeric :id path segments before any gate that
// would need the parsed value.
func ValidateID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "id must be a valid number", "code": "bad_request",
			})
			return
		}
		c.Set(KeyPathID, uint(id))
		c.Next()
	}
}

func UserID(c *gin.Context) uint {
	v, _ := c.Get(KeyUserID)
	id, _ := v.(uint)
	return id
}

func UserRole(c *gin.Context) string {
	v, _ := c.Get(KeyRole)
	role, _ := v.(string)
	return role
}

func PathID(c *gin.Context) uint {
	v, _ := c.Get(KeyPathID)
	id, _ := v.(uint)
	return id
}
