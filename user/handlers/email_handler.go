package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/r8estate/platform/framework/mid"
	"github.com/r8estate/platform/framework/web"
)

type sendVerificationRequest struct {
	Email string `json:"email"`
}

type sendOTPRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	CompanyName string `json:"companyName"`
}

type sendOTPResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

func (h *Users) SendVerificationEmail(ctx *gin.Context) error {
	var req sendVerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	if err := h.service.SendVerificationEmail(ctx, req.Email); err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, successResponse{Success: true}, http.StatusOK)
}

func (h *Users) SendOTPEmail(ctx *gin.Context) error {
	var req sendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return mid.BindingError(err)
	}

	messageID, err := h.service.SendOTPEmail(ctx, req.Email, req.OTP, req.CompanyName)
	if err != nil {
		return translateUserError(err)
	}

	return web.Respond(ctx, sendOTPResponse{Success: true, MessageID: messageID}, http.StatusOK)
}
