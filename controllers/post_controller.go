package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkwell/blogd/middleware"
	"github.com/inkwell/blogd/models"
	"github.com/inkwell/blogd/utils"
)

const (
	cachePrefixBulk   = "cache:posts:bulk:"
	cachePrefixDetail = "cache:post:detail:"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new PostController instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// Create inserts a post owned by the authenticated user.
func (p *PostController) Create(ctx *gin.Context) {
	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, utils.StatusInvalidInput, "Invalid inputs")
		return
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusForbidden, "Unauthorized")
		return
	}

	post := models.Post{
		Title:    utils.SanitizeTitle(strings.TrimSpace(req.Title)),
		Content:  utils.SanitizeContent(req.Content),
		AuthorID: userID,
	}

	if err := p.db.Create(&post).Error; err != nil {
		utils.Sugar.Warnf("post create failed for user %s: %v", userID, err)
		utils.FailMessage(ctx, http.StatusUnauthorized, "Invalid")
		return
	}

	utils.InvalidateByPrefix(cachePrefixBulk)

	utils.Success(ctx, gin.H{"id": post.ID})
}

// ListMine returns every post owned by the authenticated user.
func (p *PostController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusForbidden, "Unauthorized")
		return
	}

	posts := make([]models.Post, 0)
	if err := p.db.Where("author_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.Sugar.Errorf("list posts failed for user %s: %v", userID, err)
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Error while fetching posts")
		return
	}

	utils.Success(ctx, gin.H{"posts": posts})
}

// Update modifies the title and/or content of a post by id. Ownership is not
// checked: any authenticated caller may update any post by id. Inherited
// contract; see the update route notes before changing this.
func (p *PostController) Update(ctx *gin.Context) {
	var req struct {
		ID      string  `json:"id"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, utils.StatusInvalidInput, "Invalid inputs")
		return
	}

	var post models.Post
	if err := p.db.First(&post, "id = ?", req.ID).Error; err != nil {
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Error while updating post")
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = utils.SanitizeTitle(strings.TrimSpace(*req.Title))
	}
	if req.Content != nil {
		updates["content"] = utils.SanitizeContent(*req.Content)
	}

	if len(updates) > 0 {
		if err := p.db.Model(&post).Updates(updates).Error; err != nil {
			utils.Sugar.Warnf("post update failed id=%s: %v", req.ID, err)
			utils.FailMessage(ctx, utils.StatusInvalidInput, "Error while updating post")
			return
		}
		utils.InvalidateByPrefix(cachePrefixBulk)
		utils.InvalidateByPrefix(cachePrefixDetail + post.ID)
	}

	utils.Success(ctx, gin.H{"id": post.ID})
}

// Bulk returns every post in the store. Optional page/page_size query
// parameters narrow the window; when absent the full set is returned.
func (p *PostController) Bulk(ctx *gin.Context) {
	page, pageSize, paged := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("%spage=%d:size=%d", cachePrefixBulk, page, pageSize)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	query := p.db.Order("created_at DESC")
	if paged {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	posts := make([]models.Post, 0)
	if err := query.Find(&posts).Error; err != nil {
		utils.Sugar.Errorf("bulk list failed: %v", err)
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Error while fetching posts")
		return
	}

	payload := gin.H{"posts": posts}
	utils.CacheSetJSON(cacheKey, payload, time.Hour)
	utils.Success(ctx, payload)
}

// GetByID returns a single post, or null when the id does not exist. A missing
// post is not an error on this API.
func (p *PostController) GetByID(ctx *gin.Context) {
	postID := ctx.Param("id")

	if b, ok := utils.CacheGetBytes(cachePrefixDetail + postID); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var post models.Post
	if err := p.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Success(ctx, gin.H{"post": nil})
			return
		}
		utils.Sugar.Errorf("get post failed id=%s: %v", postID, err)
		utils.FailMessage(ctx, utils.StatusInvalidInput, "Error while fetching post")
		return
	}

	payload := gin.H{"post": post}
	utils.CacheSetJSON(cachePrefixDetail+postID, payload, time.Hour)
	utils.Success(ctx, payload)
}

// parsePagination reports sanitized pagination values and whether the caller
// asked for a window at all.
func parsePagination(pageStr, sizeStr string) (page, pageSize int, paged bool) {
	page, pageSize = 1, 10
	if v := strings.TrimSpace(pageStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
			paged = true
		}
	}
	if v := strings.TrimSpace(sizeStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
			paged = true
		}
	}
	if !paged {
		page, pageSize = 0, 0
	}
	return page, pageSize, paged
}
