package social

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/service/social"
	"github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/httputil"
)

type Handler struct {
	service *social.Service
}

func NewHandler(service *social.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	posts := r.Group("/social/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", authMW.Authenticate(), h.CreatePost)
		posts.PUT("/:id/like", authMW.Authenticate(), h.LikePost)
	}
}

func (h *Handler) ListPosts(c *gin.Context) {
	var filters model.PostFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	posts, err := h.service.ListPosts(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, posts)
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), c.GetInt64(middleware.ContextUserID), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, post)
}

func (h *Handler) LikePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid post ID", err))
		return
	}

	likes, err := h.service.LikePost(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"post_id": id, "likes": likes})
}
