package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	claimDAL "github.com/r8estate/platform/claim/dal"
	claimDomain "github.com/r8estate/platform/claim/domain"
	"github.com/r8estate/platform/claim/service"
	serviceIface "github.com/r8estate/platform/claim/service/iface"
	companyDAL "github.com/r8estate/platform/company/dal"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
	"github.com/r8estate/platform/saga"
)

type Claims struct {
	loggerProvider logger.Provider
	service        serviceIface.IClaimService
}

func NewClaims(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) *Claims {
	s, err := service.NewClaimService(ctx, loggerProvider, conn)
	if err != nil {
		panic(err)
	}

	return &Claims{
		loggerProvider,
		s,
	}
}

type processNonDomainRequest struct {
	ClaimRequestID string `json:"claimRequestId"`
}

type updateClaimStatusRequest struct {
	Status string `json:"status"`
}

func (h *Claims) Process(ctx *gin.Context) error {
	var input claimDomain.ProcessInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return mid.BindingError(err)
	}

	// An authenticated claimant becomes the requester unless one was given.
	if uid := ctx.GetString("uid"); uid != "" && input.RequesterID == "" {
		input.RequesterID = uid
	}

	result, err := h.service.Process(ctx, &input)
	if err != nil {
		return translateClaimError(err)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *Claims) ProcessNonDomain(ctx *gin.Context) error {
	var req processNonDomainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	result, err := h.service.ProcessNonDomain(ctx, req.ClaimRequestID)
	if err != nil {
		return translateClaimError(err)
	}

	return web.Respond(ctx, result, http.StatusOK)
}

func (h *Claims) UpdateStatus(ctx *gin.Context) error {
	claimID := ctx.Param("claimID")

	var req updateClaimStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.UpdateStatus(ctx, claimID, req.Status); err != nil {
		return translateClaimError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

// translateClaimError maps service failures onto the callable-style error
// classes. Saga failures deliberately surface as a bare internal error; the
// cause is already logged by the service.
func translateClaimError(err error) error {
	// A failure inside the saga stays internal even when the underlying cause
	// is one of the classified sentinels; only pre-saga checks classify.
	var sagaErr *saga.Error
	if errors.As(err, &sagaErr) {
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}

	switch {
	case errors.Is(err, service.ErrBusinessEmailRequired),
		errors.Is(err, service.ErrSupervisorEmailRequired),
		errors.Is(err, service.ErrCompanyIDRequired),
		errors.Is(err, service.ErrCompanyNameRequired),
		errors.Is(err, service.ErrClaimRequestIDRequired),
		errors.Is(err, service.ErrInvalidStatus):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, companyDAL.ErrCompanyNotFound),
		errors.Is(err, claimDAL.ErrClaimNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrCompanyAlreadyClaimed):
		return web.NewRequestError(err, http.StatusConflict)
	default:
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}
}
