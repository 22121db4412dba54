package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/category/domain"
	"github.com/r8estate/platform/category/service"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
)

type Categories struct {
	loggerProvider logger.Provider
	service        *service.CategoryService
}

func NewCategories(loggerProvider logger.Provider, conn *connection.Connection) *Categories {
	return &Categories{
		loggerProvider,
		service.NewCategoryService(loggerProvider, conn),
	}
}

func (h *Categories) List(ctx *gin.Context) error {
	categories, err := h.service.List(ctx)
	if err != nil {
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}

	return web.Respond(ctx, categories, http.StatusOK)
}

func (h *Categories) Create(ctx *gin.Context) error {
	var category domain.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		return mid.BindingError(err)
	}

	id, err := h.service.Create(ctx, &category)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (h *Categories) Delete(ctx *gin.Context) error {
	categoryID := ctx.Param("categoryID")

	if err := h.service.Delete(ctx, categoryID); err != nil {
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}
