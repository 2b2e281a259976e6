package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/healthcompanion/api/internal/ai"
	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/model"
	"github.com/healthcompanion/api/internal/service/prescription"
	"github.com/healthcompanion/api/pkg/errors"
	"github.com/healthcompanion/api/pkg/httputil"
)

type Handler struct {
	prescriptions *prescription.Service
	assistant     *ai.Assistant
}

func NewHandler(prescriptions *prescription.Service, assistant *ai.Assistant) *Handler {
	return &Handler{
		prescriptions: prescriptions,
		assistant:     assistant,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, authMW *middleware.AuthMiddleware) {
	routes := r.Group("/ai")
	{
		routes.GET("/health-tip/daily", h.DailyHealthTip)
		routes.POST("/chat", h.Chat)
		routes.POST("/prescription/analyze",
			authMW.Authenticate(),
			authMW.RequireUserType(model.UserTypePatient),
			h.AnalyzePrescription,
		)
	}
}

func (h *Handler) AnalyzePrescription(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("prescription file is required", err))
		return
	}

	resp, err := h.prescriptions.Analyze(c.Request.Context(), c.GetInt64(middleware.ContextUserID), file)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, resp)
}

func (h *Handler) DailyHealthTip(c *gin.Context) {
	tip := h.assistant.DailyHealthTip(c.Request.Context())
	httputil.RespondWithSuccess(c, model.HealthTip{Tip: tip, Type: "daily"})
}

func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest(err.Error(), err))
		return
	}

	reply := h.assistant.Chat(c.Request.Context(), req.Query)
	httputil.RespondWithSuccess(c, model.ChatResponse{Response: reply})
}
