package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/framework/connection"
	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/identity"
	"github.com/r8estate/platform/logger"
	userDAL "github.com/r8estate/platform/user/dal"
	userDomain "github.com/r8estate/platform/user/domain"
	"github.com/r8estate/platform/user/service"
	serviceIface "github.com/r8estate/platform/user/service/iface"
)

type Users struct {
	loggerProvider logger.Provider
	service        serviceIface.IUserService
}

func NewUsers(ctx context.Context, loggerProvider logger.Provider, conn *connection.Connection) *Users {
	s, err := service.NewUserService(ctx, loggerProvider, conn)
	if err != nil {
		panic(err)
	}

	return &Users{
		loggerProvider,
		s,
	}
}

type changeEmailRequest struct {
	NewEmail string `json:"newEmail"`
}

type createVerifiedUserRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChangeEmail acts on the authenticated caller's own account.
func (h *Users) ChangeEmail(ctx *gin.Context) error {
	var req changeEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	uid := ctx.GetString("uid")

	if err := h.service.ChangeEmail(ctx, uid, req.NewEmail); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, successResponse{Success: true}, http.StatusOK)
}

func (h *Users) CreateVerifiedUser(ctx *gin.Context) error {
	var req createVerifiedUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.CreateVerifiedUser(ctx, req.UID, req.Email, req.DisplayName); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, successResponse{Success: true, Message: "user document saved"}, http.StatusOK)
}

func (h *Users) CreateUser(ctx *gin.Context) error {
	var input userDomain.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		return mid.BindingError(err)
	}

	uid, err := h.service.CreateUser(ctx, &input)
	if err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, gin.H{"uid": uid}, http.StatusCreated)
}

func (h *Users) DeleteUser(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	if err := h.service.DeleteUser(ctx, userID); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func (h *Users) ChangeUserPassword(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	var req changePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.ChangeUserPassword(ctx, userID, req.Password); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

// MarkEmailVerified is the out-of-band callback hit once a verification link
// has been visited.
func (h *Users) MarkEmailVerified(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	if err := h.service.MarkEmailVerified(ctx, userID); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, successResponse{Success: true}, http.StatusOK)
}

func translateUserError(err error) error {
	switch {
	case errors.Is(err, service.ErrUIDRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrOTPRequired),
		errors.Is(err, service.ErrInvalidRole):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, userDAL.ErrUserNotFound),
		errors.Is(err, identity.ErrAccountNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrEmailExists):
		return web.NewRequestError(err, http.StatusConflict)
	default:
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}
}
