package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteVerificationLink(t *testing.T) {
	tests := []struct {
		name   string
		link   string
		origin string
		want   string
	}{
		{
			name:   "rewrites origin to verification route",
			link:   "https://r8estate.com?mode=verifyEmail&oobCode=abc123",
			origin: "https://r8estate.com",
			want:   "https://r8estate.com/verification?mode=verifyEmail&oobCode=abc123",
		},
		{
			name:   "query string preserved byte for byte",
			link:   "https://r8estate.com?mode=verifyEmail&oobCode=a%2Fb&lang=en",
			origin: "https://r8estate.com",
			want:   "https://r8estate.com/verification?mode=verifyEmail&oobCode=a%2Fb&lang=en",
		},
		{
			name:   "only the first occurrence is substituted",
			link:   "https://r8estate.com?continueUrl=https://r8estate.com",
			origin: "https://r8estate.com",
			want:   "https://r8estate.com/verification?continueUrl=https://r8estate.com",
		},
		{
			name:   "link without the origin is untouched",
			link:   "https://other.example.com?oobCode=abc",
			origin: "https://r8estate.com",
			want:   "https://other.example.com?oobCode=abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteVerificationLink(tt.link, tt.origin))
		})
	}
}
