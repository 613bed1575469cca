package handler

import (
	"net/http"
	"strconv"

	"github.com/elite-commerce/catalog-service/internal/auth"
	"github.com/elite-commerce/catalog-service/internal/pkg/httputil"
	"github.com/elite-commerce/catalog-service/internal/product"
	"github.com/elite-commerce/catalog-service/internal/product/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewHandler(uc product.UseCase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/products")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/low-stock", h.lowStock)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PATCH("/:id/toggle-featured", h.toggleFeatured)
	g.PATCH("/:id/toggle-active", h.toggleActive)

	g.GET("/:id/variants", h.variantsByProduct)
	g.POST("/variants", h.createVariant)
	g.GET("/variants/:variantId", h.getVariant)
	g.PUT("/variants/:variantId", h.updateVariant)
	g.DELETE("/variants/:variantId", h.deleteVariant)
	g.PUT("/variants/:variantId/stock", h.updateStock)

	g.POST("/:id/images", h.uploadImages)
	g.PUT("/:id/images/main", h.setMainImage)
	g.DELETE("/images/:imageId", h.deleteImage)
}

func (h *Handler) list(c *gin.Context) {
	var filter dto.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	page, err := h.uc.GetProducts(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) featured(c *gin.Context) {
	count, _ := strconv.Atoi(c.Query("count"))
	products, err := h.uc.GetFeaturedProducts(c.Request.Context(), count)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.uc.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, err := h.uc.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var input dto.UpsertProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.uc.CreateProduct(ctx, &input, auth.UserID(ctx))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	var input dto.UpsertProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.uc.UpdateProduct(ctx, c.Param("id"), &input, auth.UserID(ctx))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	if err := h.uc.ToggleFeatured(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) toggleActive(c *gin.Context) {
	if err := h.uc.ToggleActive(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) variantsByProduct(c *gin.Context) {
	variants, err := h.uc.GetVariantsByProductID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *Handler) createVariant(c *gin.Context) {
	var input dto.UpsertVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	v, err := h.uc.CreateVariant(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) getVariant(c *gin.Context) {
	v, err := h.uc.GetVariantByID(c.Request.Context(), c.Param("variantId"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) updateVariant(c *gin.Context) {
	var input dto.UpsertVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	v, err := h.uc.UpdateVariant(c.Request.Context(), c.Param("variantId"), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) deleteVariant(c *gin.Context) {
	if err := h.uc.DeleteVariant(c.Request.Context(), c.Param("variantId")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateStock(c *gin.Context) {
	var input dto.UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	if err := h.uc.UpdateStock(c.Request.Context(), c.Param("variantId"), input.Quantity); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) lowStock(c *gin.Context) {
	variants, err := h.uc.GetLowStockVariants(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, variants)
}

func (h *Handler) uploadImages(c *gin.Context) {
	var input dto.UploadImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	if err := h.uc.UploadProductImages(c.Request.Context(), c.Param("id"), input.ImageURLs); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) deleteImage(c *gin.Context) {
	if err := h.uc.DeleteProductImage(c.Request.Context(), c.Param("imageId")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setMainImage(c *gin.Context) {
	var input dto.SetMainImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	if err := h.uc.SetMainImage(c.Request.Context(), c.Param("id"), input.ImageID); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
