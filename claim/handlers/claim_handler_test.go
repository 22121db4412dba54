package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	claimDAL "github.com/r8estate/platform/claim/dal"
	claimDomain "github.com/r8estate/platform/claim/domain"
	companyDAL "github.com/r8estate/platform/company/dal"
	"github.com/r8estate/platform/claim/service"
	serviceMocks "github.com/r8estate/platform/claim/service/mocks"
	"github.com/r8estate/platform/framework/web"
	"github.com/r8estate/platform/logger"
	loggerMocks "github.com/r8estate/platform/logger/mocks"
	"github.com/r8estate/platform/saga"
)

func TestClaims_Process(t *testing.T) {
	var (
		body = `{"businessEmail":"owner@acme.example","supervisorEmail":"boss@acme.example","companyId":"company-1","companyName":"Acme Estates"}`

		someErr = errors.New("something went wrong")
	)

	type fields struct {
		service serviceMocks.IClaimService
	}

	type args struct {
		body io.Reader
	}

	tests := []struct {
		name           string
		on             func(f *fields, ctx *gin.Context)
		args           args
		wantStatusCode int
	}{
		{
			name: "happy path",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.MatchedBy(func(input *claimDomain.ProcessInput) bool {
					return input.CompanyID == "company-1" && input.RequesterID == "requester-uid"
				})).Return(&claimDomain.ProcessResult{
					Success:        true,
					Message:        "claim request submitted",
					TrackingNumber: "123456",
				}, nil)
			},
			args: args{
				body: strings.NewReader(body),
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "missing business email",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.AnythingOfType("*domain.ProcessInput")).
					Return(nil, service.ErrBusinessEmailRequired)
			},
			args: args{
				body: strings.NewReader(`{"companyId":"company-1","companyName":"Acme Estates"}`),
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown company",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.AnythingOfType("*domain.ProcessInput")).
					Return(nil, companyDAL.ErrCompanyNotFound)
			},
			args: args{
				body: strings.NewReader(body),
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "company already claimed",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.AnythingOfType("*domain.ProcessInput")).
					Return(nil, service.ErrCompanyAlreadyClaimed)
			},
			args: args{
				body: strings.NewReader(body),
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "workflow failure stays internal",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.AnythingOfType("*domain.ProcessInput")).
					Return(nil, someErr)
			},
			args: args{
				body: strings.NewReader(body),
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name: "mid-workflow not-found stays internal",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("Process", ctx, mock.AnythingOfType("*domain.ProcessInput")).
					Return(nil, &saga.Error{StepName: "attach account ids", Cause: claimDAL.ErrClaimNotFound})
			},
			args: args{
				body: strings.NewReader(body),
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			req, err := http.NewRequest(http.MethodPost, "/claims/process", tt.args.body)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			ctx.Request = req
			ctx.Set("uid", "requester-uid")

			fields := fields{}
			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			h := &Claims{
				loggerProvider: testLoggerProvider(),
				service:        &fields.service,
			}

			err = h.Process(ctx)
			if err == nil {
				// gin defers the header write; flush it so the recorder sees the status.
				ctx.Writer.WriteHeaderNow()
				assert.Equal(t, tt.wantStatusCode, w.Code)
			} else {
				var reqErr *web.Error
				if errors.As(err, &reqErr) {
					assert.Equal(t, tt.wantStatusCode, reqErr.Status)
				} else {
					t.Fatalf("Unexpected error type: %v", err)
				}
			}
		})
	}
}

func TestClaims_ProcessNonDomain(t *testing.T) {
	someErr := errors.New("something went wrong")

	type fields struct {
		service serviceMocks.IClaimService
	}

	tests := []struct {
		name           string
		on             func(f *fields, ctx *gin.Context)
		body           string
		wantStatusCode int
	}{
		{
			name: "happy path",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("ProcessNonDomain", ctx, "claim-1").Return(&claimDomain.ProcessResult{
					Success:        true,
					Message:        "claim request submitted",
					TrackingNumber: "654321",
				}, nil)
			},
			body:           `{"claimRequestId":"claim-1"}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name: "missing claim request id",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("ProcessNonDomain", ctx, "").
					Return(nil, service.ErrClaimRequestIDRequired)
			},
			body:           `{}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown claim request",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("ProcessNonDomain", ctx, "missing").
					Return(nil, claimDAL.ErrClaimNotFound)
			},
			body:           `{"claimRequestId":"missing"}`,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "workflow failure stays internal",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("ProcessNonDomain", ctx, "claim-1").Return(nil, someErr)
			},
			body:           `{"claimRequestId":"claim-1"}`,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			req, err := http.NewRequest(http.MethodPost, "/claims/process-non-domain", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			ctx.Request = req

			fields := fields{}
			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			h := &Claims{
				loggerProvider: testLoggerProvider(),
				service:        &fields.service,
			}

			err = h.ProcessNonDomain(ctx)
			if err == nil {
				ctx.Writer.WriteHeaderNow()
				assert.Equal(t, tt.wantStatusCode, w.Code)
			} else {
				var reqErr *web.Error
				if errors.As(err, &reqErr) {
					assert.Equal(t, tt.wantStatusCode, reqErr.Status)
				} else {
					t.Fatalf("Unexpected error type: %v", err)
				}
			}
		})
	}
}

func TestClaims_UpdateStatus(t *testing.T) {
	type fields struct {
		service serviceMocks.IClaimService
	}

	tests := []struct {
		name           string
		on             func(f *fields, ctx *gin.Context)
		body           string
		wantStatusCode int
	}{
		{
			name: "happy path",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("UpdateStatus", ctx, "claim-1", "approved").Return(nil)
			},
			body:           `{"status":"approved"}`,
			wantStatusCode: http.StatusNoContent,
		},
		{
			name: "invalid status",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("UpdateStatus", ctx, "claim-1", "archived").
					Return(service.ErrInvalidStatus)
			},
			body:           `{"status":"archived"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown claim request",
			on: func(f *fields, ctx *gin.Context) {
				f.service.On("UpdateStatus", ctx, "claim-1", "approved").
					Return(claimDAL.ErrClaimNotFound)
			},
			body:           `{"status":"approved"}`,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			req, err := http.NewRequest(http.MethodPatch, "/claims/claim-1/status", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			ctx.Request = req
			ctx.Params = []gin.Param{{Key: "claimID", Value: "claim-1"}}

			fields := fields{}
			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			h := &Claims{
				loggerProvider: testLoggerProvider(),
				service:        &fields.service,
			}

			err = h.UpdateStatus(ctx)
			if err == nil {
				ctx.Writer.WriteHeaderNow()
				assert.Equal(t, tt.wantStatusCode, w.Code)
			} else {
				var reqErr *web.Error
				if errors.As(err, &reqErr) {
					assert.Equal(t, tt.wantStatusCode, reqErr.Status)
				} else {
					t.Fatalf("Unexpected error type: %v", err)
				}
			}
		})
	}
}

func testLoggerProvider() logger.Provider {
	log := &loggerMocks.ILogger{}

	return func(_ context.Context) logger.ILogger {
		return log
	}
}
