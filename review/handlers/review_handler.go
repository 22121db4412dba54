package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	companyDAL "github.com/r8estate/platform/company/dal"
	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
	reviewDAL "github.com/r8estate/platform/review/dal"
	"github.com/r8estate/platform/review/domain"
	"github.com/r8estate/platform/review/service"
	serviceIface "github.com/r8estate/platform/review/service/iface"
)

type Reviews struct {
	loggerProvider logger.Provider
	service        serviceIface.IReviewService
}

func NewReviews(loggerProvider logger.Provider, conn *connection.Connection) *Reviews {
	return &Reviews{
		loggerProvider,
		service.NewReviewService(loggerProvider, conn),
	}
}

type replyRequest struct {
	Content string `json:"content"`
}

type reviewStatusRequest struct {
	Status string `json:"status"`
}

func (h *Reviews) ListByCompany(ctx *gin.Context) error {
	companyID := ctx.Param("companyID")

	limit, _ := strconv.Atoi(ctx.Query("limit"))

	reviews, err := h.service.ListByCompany(ctx, companyID, limit)
	if err != nil {
		return translateReviewError(err)
	}

	return web.Respond(ctx, reviews, http.StatusOK)
}

func (h *Reviews) Create(ctx *gin.Context) error {
	var input domain.CreateReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return mid.BindingError(err)
	}

	// The review is always attributed to the authenticated caller.
	input.UserID = ctx.GetString("uid")

	id, err := h.service.Create(ctx, &input)
	if err != nil {
		return translateReviewError(err)
	}

	return web.Respond(ctx, gin.H{"id": id}, http.StatusCreated)
}

func (h *Reviews) Reply(ctx *gin.Context) error {
	reviewID := ctx.Param("reviewID")

	var req replyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.Reply(ctx, reviewID, req.Content, ctx.GetString("uid")); err != nil {
		return translateReviewError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func (h *Reviews) SetStatus(ctx *gin.Context) error {
	reviewID := ctx.Param("reviewID")

	var req reviewStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.SetStatus(ctx, reviewID, req.Status); err != nil {
		return translateReviewError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func (h *Reviews) Delete(ctx *gin.Context) error {
	reviewID := ctx.Param("reviewID")

	if err := h.service.Delete(ctx, reviewID); err != nil {
		return translateReviewError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func translateReviewError(err error) error {
	switch {
	case errors.Is(err, service.ErrCompanyIDRequired),
		errors.Is(err, service.ErrUserIDRequired),
		errors.Is(err, service.ErrContentRequired),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidStatus):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, reviewDAL.ErrReviewNotFound),
		errors.Is(err, companyDAL.ErrCompanyNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrAlreadyReviewed):
		return web.NewRequestError(err, http.StatusConflict)
	default:
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}
}
