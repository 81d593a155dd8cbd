package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkwell/blogd/config"
	"github.com/inkwell/blogd/controllers"
	"github.com/inkwell/blogd/middleware"
	"github.com/inkwell/blogd/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(utils.RequestLogger())
	r.Use(utils.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("")
	authGroup.Use(middleware.RateLimit())
	authGroup.POST("/signup", userController.Signup)
	authGroup.POST("/signin", userController.Signin)

	blog := api.Group("/blog")
	blog.Use(middleware.AuthRequired())
	blog.POST("", postController.Create)
	blog.GET("", postController.ListMine)
	blog.PUT("", postController.Update)
	blog.GET("/bulk", postController.Bulk)
	blog.GET("/:id", postController.GetByID)

	return r
}
