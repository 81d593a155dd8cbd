package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkwell/blogd/config"
	"github.com/inkwell/blogd/models"
	"github.com/inkwell/blogd/utils"
)

// UserController handles account creation and credential sign-in.
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a UserController.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

func tokenTTL() time.Duration {
	return time.Duration(config.Get().TokenTTLHours) * time.Hour
}

// Signup registers a new account and issues a JWT for it.
func (u *UserController) Signup(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Name     string `json:"name"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, utils.StatusInvalidInput, "Invalid inputs")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.FailMessage(ctx, http.StatusUnauthorized, "Invalid")
		return
	}

	user := models.User{
		Email:    strings.TrimSpace(req.Email),
		Password: hash,
		Name:     req.Name,
	}

	// Duplicate email surfaces here as a unique constraint violation.
	if err := u.db.Create(&user).Error; err != nil {
		utils.Sugar.Warnf("signup failed for %s: %v", user.Email, err)
		utils.FailMessage(ctx, http.StatusUnauthorized, "Invalid")
		return
	}

	token, err := utils.GenerateToken(user.ID, tokenTTL())
	if err != nil {
		utils.FailMessage(ctx, http.StatusUnauthorized, "Invalid")
		return
	}

	utils.Success(ctx, gin.H{"jwt": token})
}

// Signin verifies credentials and issues a JWT.
func (u *UserController) Signin(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, utils.StatusInvalidInput, "Invalid inputs")
		return
	}

	var user models.User
	if err := u.db.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(ctx, http.StatusForbidden, "Invalid credentials")
			return
		}
		utils.Sugar.Errorf("signin lookup failed: %v", err)
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Invalid")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		utils.Fail(ctx, http.StatusForbidden, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, tokenTTL())
	if err != nil {
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Invalid")
		return
	}

	utils.Success(ctx, gin.H{"jwt": token})
}
