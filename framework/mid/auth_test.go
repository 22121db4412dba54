package mid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/r8estate/platform/framework/web"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		want       string
		wantErr    error
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer some-id-token",
			want:       "some-id-token",
		},
		{
			name:    "missing header",
			wantErr: ErrNoAuthHeader,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantErr:    ErrInvalidAuthHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			req, err := http.NewRequest(http.MethodGet, "/", nil)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			ctx.Request = req

			token, err := bearerToken(ctx)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestAuthRequired_NoHeader(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	ctx.Request = req

	handler := AuthRequired(nil)(func(ctx *gin.Context) error {
		t.Fatal("handler must not run without credentials")
		return nil
	})

	err = handler(ctx)

	var reqErr *web.Error
	if !errors.As(err, &reqErr) {
		t.Fatalf("Unexpected error type: %v", err)
	}

	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.ErrorIs(t, reqErr.Err, ErrNoAuthHeader)
}

func TestAdminRequired_NoAuthenticatedCaller(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	ctx.Request = req

	handler := AdminRequired(nil)(func(ctx *gin.Context) error {
		t.Fatal("handler must not run without an authenticated caller")
		return nil
	})

	err = handler(ctx)

	var reqErr *web.Error
	if !errors.As(err, &reqErr) {
		t.Fatalf("Unexpected error type: %v", err)
	}

	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
}
