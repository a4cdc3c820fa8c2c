// File: internal/lead/handler.go
package lead

import (
	"dealership_backend/internal/common"
	"dealership_backend/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for lead handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new lead handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("LeadHandler"),
	}
}

// RegisterRoutes sets up the public form endpoint and the admin listing.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	router.POST("/leads", h.submitLead)

	adminGroup := router.Group("/admin/leads", authMW, adminRoleMW)
	{
		adminGroup.GET("", h.adminListLeads)
	}
}

func (h *Handler) submitLead(c *gin.Context) {
	body, err := common.BindJSONObject(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	input, err := ValidateCreate(body)
	if err != nil {
		h.logger.Debug("Lead rejected by validation", zap.Error(err))
		common.RespondWithError(c, validation.ToAPIError(err))
		return
	}

	leadModel, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Thank you, we will be in touch shortly.", ToLeadResponse(leadModel))
}

func (h *Handler) adminListLeads(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	leads, pagination, err := h.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	responses := make([]LeadResponse, len(leads))
	for i := range leads {
		responses[i] = ToLeadResponse(&leads[i])
	}
	common.RespondPaginated(c, "Leads retrieved successfully.", responses, pagination)
}
