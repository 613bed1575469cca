package handler

import (
	"net/http"
	"strconv"

	"github.com/elite-commerce/catalog-service/internal/brand"
	"github.com/elite-commerce/catalog-service/internal/brand/dto"
	"github.com/elite-commerce/catalog-service/internal/pkg/httputil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	uc     brand.UseCase
	logger *zap.Logger
}

func NewHandler(uc brand.UseCase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/brands")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("includeInactive"))
	brands, err := h.uc.ListBrands(c.Request.Context(), includeInactive)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *Handler) get(c *gin.Context) {
	b, err := h.uc.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) getBySlug(c *gin.Context) {
	b, err := h.uc.GetBrandBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) create(c *gin.Context) {
	var input dto.UpsertBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	b, err := h.uc.CreateBrand(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) update(c *gin.Context) {
	var input dto.UpsertBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	b, err := h.uc.UpdateBrand(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.uc.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
