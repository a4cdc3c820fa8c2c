// File: internal/brand/handler.go
package brand

import (
	"dealership_backend/internal/common"
	"dealership_backend/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for brand handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new brand handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.Named("BrandHandler"),
	}
}

// RegisterRoutes sets up the routes for brand operations.
// It takes auth and admin middleware functions as parameters.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	brandGroup := router.Group("/brands")
	{
		brandGroup.GET("", h.getAllBrands)
		brandGroup.GET("/:idOrSlug", h.getBrand)
	}

	adminBrandGroup := router.Group("/admin/brands")
	adminBrandGroup.Use(authMW)
	adminBrandGroup.Use(adminRoleMW)
	{
		adminBrandGroup.POST("", h.adminCreateBrand)
		adminBrandGroup.PATCH("/:id", h.adminUpdateBrand)
		adminBrandGroup.DELETE("/:id", h.adminDeleteBrand)
	}
}

func (h *Handler) getAllBrands(c *gin.Context) {
	brands, err := h.service.GetAllBrands(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]BrandResponse, len(brands))
	for i := range brands {
		responses[i] = ToBrandResponse(&brands[i])
	}
	common.RespondOK(c, "Brands retrieved successfully.", responses)
}

func (h *Handler) getBrand(c *gin.Context) {
	idOrSlug := c.Param("idOrSlug")
	var (
		brandModel *Brand
		err        error
	)
	if common.IsValidID(idOrSlug) {
		brandModel, err = h.service.GetBrandByID(c.Request.Context(), idOrSlug)
	} else {
		brandModel, err = h.service.GetBrandBySlug(c.Request.Context(), idOrSlug)
	}
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Brand retrieved successfully.", ToBrandResponse(brandModel))
}

func (h *Handler) adminCreateBrand(c *gin.Context) {
	body, err := common.BindJSONObject(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	input, err := ValidateCreate(body)
	if err != nil {
		h.logger.Debug("Admin create brand: validation failed", zap.Error(err))
		common.RespondWithError(c, validation.ToAPIError(err))
		return
	}
	brandModel, err := h.service.AdminCreateBrand(c.Request.Context(), input)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Brand created successfully.", ToBrandResponse(brandModel))
}

func (h *Handler) adminUpdateBrand(c *gin.Context) {
	brandID := c.Param("id")
	body, err := common.BindJSONObject(c)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	input, err := ValidateUpdate(body)
	if err != nil {
		h.logger.Debug("Admin update brand: validation failed", zap.Error(err), zap.String("brandID", brandID))
		common.RespondWithError(c, validation.ToAPIError(err))
		return
	}
	brandModel, err := h.service.AdminUpdateBrand(c.Request.Context(), brandID, input)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Brand updated successfully.", ToBrandResponse(brandModel))
}

func (h *Handler) adminDeleteBrand(c *gin.Context) {
	if err := h.service.AdminDeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
