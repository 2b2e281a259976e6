package doctor

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/service/doctor"
	"github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/httputil"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("/profile/:id", h.GetProfile)

		own := doctors.Group("", authMW.Authenticate(), authMW.RequireUserType(model.UserTypeDoctor))
		{
			own.PUT("/profile/me", h.UpdateMyProfile)
			own.PUT("/availability/me", h.SetMyAvailability)
		}
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid doctor ID", err))
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, profile)
}

func (h *Handler) UpdateMyProfile(c *gin.Context) {
	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	profile, err := h.service.UpdateOwnProfile(c.Request.Context(), c.GetInt64(middleware.ContextUserID), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, profile)
}

func (h *Handler) SetMyAvailability(c *gin.Context) {
	var req model.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	profile, err := h.service.SetOwnAvailability(c.Request.Context(), c.GetInt64(middleware.ContextUserID), *req.Available)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, profile)
}
