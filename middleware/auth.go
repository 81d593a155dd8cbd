package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell/blogd/utils"
)

// ContextUserIDKey is the key used to store the authenticated user ID in Gin context.
const ContextUserIDKey = "userId"

// AuthRequired ensures the request carries a valid `Authorization: Bearer <jwt>`
// header. Every failure mode collapses into the same 403 Unauthorized body so
// callers cannot distinguish a missing token from a forged one.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			unauthorized(ctx)
			return
		}

		claims, err := utils.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil || claims.UserID == "" {
			unauthorized(ctx)
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Next()
	}
}

// UserID returns the authenticated user ID injected by AuthRequired.
func UserID(ctx *gin.Context) (string, bool) {
	v, ok := ctx.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func unauthorized(ctx *gin.Context) {
	utils.Fail(ctx, http.StatusForbidden, "Unauthorized")
	ctx.Abort()
}
