package patient

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/service/advisory"
	"github.com/healthcompanion/api/internal/service/patient"
	"github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/httputil"
)

type Handler struct {
	service  *patient.Service
	advisory *advisory.Service
}

func NewHandler(service *patient.Service, advisorySvc *advisory.Service) *Handler {
	return &Handler{
		service:  service,
		advisory: advisorySvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	patients := r.Group("/patients")
	{
		patients.GET("/profile/:id", h.GetProfile)
		patients.GET("/doctors/available", h.ListAvailableDoctors)

		own := patients.Group("", authMW.Authenticate(), authMW.RequireUserType(model.UserTypePatient))
		{
			own.PUT("/profile/me", h.UpdateMyProfile)
			own.GET("/insurance-recommendations/me", h.MyInsuranceRecommendations)
			own.GET("/government-schemes/me", h.MyGovernmentSchemes)
		}
	}
}

func (h *Handler) GetProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid patient ID", err))
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
	var req model.UpdatePatientRequest
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

func (h *Handler) ListAvailableDoctors(c *gin.Context) {
	var filters model.DoctorSearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	doctors, err := h.service.SearchAvailableDoctors(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, doctors)
}

func (h *Handler) MyInsuranceRecommendations(c *gin.Context) {
	recommendations, err := h.advisory.InsuranceRecommendations(c.Request.Context(), c.GetInt64(middleware.ContextUserID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, recommendations)
}

func (h *Handler) MyGovernmentSchemes(c *gin.Context) {
	schemes, err := h.advisory.GovernmentSchemes(c.Request.Context(), c.GetInt64(middleware.ContextUserID))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, schemes)
}
