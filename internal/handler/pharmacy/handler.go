package pharmacy

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/service/pharmacy"
	"github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/httputil"
)

type Handler struct {
	service *pharmacy.Service
}

func NewHandler(service *pharmacy.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	medicines := r.Group("/pharmacy/medicines")
	{
		medicines.GET("", h.ListMedicines)
		medicines.GET("/:id", h.GetMedicineDetails)
		medicines.POST("",
			authMW.Authenticate(),
			authMW.RequireUserType(model.UserTypePharmacy),
			h.AddMedicine,
		)
	}
}

func (h *Handler) ListMedicines(c *gin.Context) {
	var filters model.MedicineFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	medicines, err := h.service.ListMedicines(c.Request.Context(), &filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, medicines)
}

func (h *Handler) GetMedicineDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid medicine ID", err))
		return
	}

	details, err := h.service.GetMedicineDetails(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, details)
}

func (h *Handler) AddMedicine(c *gin.Context) {
	var req model.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	medicine, err := h.service.AddMedicine(c.Request.Context(), c.GetInt64(middleware.ContextUserID), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, medicine)
}
