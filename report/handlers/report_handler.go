package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
	reportDAL "github.com/r8estate/platform/report/dal"
	"github.com/r8estate/platform/report/domain"
	"github.com/r8estate/platform/report/service"
	serviceIface "github.com/r8estate/platform/report/service/iface"
	reviewDAL "github.com/r8estate/platform/review/dal"
)

type Reports struct {
	loggerProvider logger.Provider
	service        serviceIface.IReportService
}

func NewReports(loggerProvider logger.Provider, conn *connection.Connection) *Reports {
	return &Reports{
		loggerProvider,
		service.NewReportService(loggerProvider, conn),
	}
}

// Report resolutions accepted by Resolve.
const (
	actionResolve = "resolve"
	actionDismiss = "dismiss"
)

var errInvalidAction = errors.New("action must be resolve or dismiss")

type resolveRequest struct {
	Action string `json:"action"`
}

func (h *Reports) Create(ctx *gin.Context) error {
	var input domain.CreateReportInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return mid.BindingError(err)
	}

	input.ReporterID = ctx.GetString("uid")

	id, err := h.service.Create(ctx, &input)
	if err != nil {
		return translateReportError(err)
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (h *Reports) List(ctx *gin.Context) error {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	reports, err := h.service.ListPending(ctx, limit)
	if err != nil {
		return translateReportError(err)
	}

	return web.Respond(ctx, reports, http.StatusOK)
}

func (h *Reports) Resolve(ctx *gin.Context) error {
	reportID := ctx.Param("reportID")

	var req resolveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	adminUID := ctx.GetString("uid")

	var err error

	switch req.Action {
	case actionResolve:
		err = h.service.Resolve(ctx, reportID, adminUID)
	case actionDismiss:
		err = h.service.Dismiss(ctx, reportID, adminUID)
	default:
		return web.NewRequestError(errInvalidAction, http.StatusBadRequest)
	}

	if err != nil {
		return translateReportError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func translateReportError(err error) error {
	switch {
	case errors.Is(err, service.ErrReviewIDRequired),
		errors.Is(err, service.ErrReasonRequired):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, reportDAL.ErrReportNotFound),
		errors.Is(err, reviewDAL.ErrReviewNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrAlreadyResolved):
		return web.NewRequestError(err, http.StatusConflict)
	default:
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}
}
