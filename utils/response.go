package utils

import "github.com/gin-gonic/gin"

// StatusInvalidInput is the status this API uses for request bodies that fail
// schema validation. Inherited wire contract; not a conventional 4xx choice.
const StatusInvalidInput = 411

// The API speaks two error shapes: {"error": ...} for input and auth
// rejections, {"message": ...} for persistence failures. Success bodies carry
// the payload directly with no envelope.

// Success writes a 200 response with the given payload.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(200, data)
}

// Fail writes an {"error": msg} body with the given status.
func Fail(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"error": msg})
}

// FailMessage writes a {"message": msg} body with the given status.
func FailMessage(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"message": msg})
}
