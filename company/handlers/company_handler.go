package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	categoryDAL "github.com/r8estate/platform/category/dal"
	companyDAL "github.com/r8estate/platform/company/dal"
	"github.com/r8estate/platform/company/domain"
	"github.com/r8estate/platform/company/service"
	serviceIface "github.com/r8estate/platform/company/service/iface"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
)

type Companies struct {
	loggerProvider logger.Provider
	service        serviceIface.ICompanyService
}

func NewCompanies(loggerProvider logger.Provider, conn *connection.Connection) *Companies {
	return &Companies{
		loggerProvider,
		service.NewCompanyService(loggerProvider, conn),
	}
}

func (h *Companies) Get(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	company, err := h.service.Get(ctx, companyID)
	if err != nil {
		return translateCompanyError(err)
	}

	return web.Respond(ctx, company, http.StatusOK)
}

func (h *Companies) List(ctx *gin.Context) error {
	categoryID := ctx.Query("categoryId")

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	companies, err := h.service.List(ctx, categoryID, limit)
	if err != nil {
		return translateCompanyError(err)
	}

	return web.Respond(ctx, companies, http.StatusOK)
}

func (h *Companies) Create(ctx *gin.Context) error {
	var company domain.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		return mid.BindingError(err)
	}

	id, err := h.service.Create(ctx, &company)
	if err != nil {
		return translateCompanyError(err)
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (h *Companies) Update(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	var company domain.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.Update(ctx, companyID, &company); err != nil {
		return translateCompanyError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func (h *Companies) Delete(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	if err := h.service.Delete(ctx, companyID); err != nil {
		return translateCompanyError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func translateCompanyError(err error) error {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, companyDAL.ErrCompanyNotFound),
		errors.Is(err, categoryDAL.ErrCategoryNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	default:
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}
}
