package handler

import (
	"net/http"
	"strconv"

	"github.com/elite-commerce/catalog-service/internal/category"
	"github.com/elite-commerce/catalog-service/internal/category/dto"
	"github.com/elite-commerce/catalog-service/internal/pkg/httputil"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	uc     category.UseCase
	logger *zap.Logger
}

func NewHandler(uc category.UseCase, log *zap.Logger) *Handler {
	return &Handler{uc: uc, logger: log}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/categories")
	g.GET("", h.list)
	g.GET("/root", h.roots)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)
	g.GET("/:id/subcategories", h.subcategories)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("includeInactive"))
	categories, err := h.uc.ListCategories(c.Request.Context(), includeInactive)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) roots(c *gin.Context) {
	categories, err := h.uc.GetRootCategories(c.Request.Context())
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) get(c *gin.Context) {
	cat, err := h.uc.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) getBySlug(c *gin.Context) {
	cat, err := h.uc.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) subcategories(c *gin.Context) {
	categories, err := h.uc.GetSubCategories(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) create(c *gin.Context) {
	var input dto.UpsertCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *Handler) update(c *gin.Context) {
	var input dto.UpsertCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.RespondBindError(c, err)
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.uc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		httputil.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
