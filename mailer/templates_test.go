package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimCredentialsMessage(t *testing.T) {
	msg := ClaimCredentialsMessage(
		"a@x.com",
		"Acme",
		"123456789",
		"https://r8estate.com/verification?oobCode=abc",
		"654321",
	)

	assert.Equal(t, "a@x.com", msg.ToEmail)
	assert.Contains(t, msg.Subject, "Acme")
	assert.Contains(t, msg.HTML, "123456789")
	assert.Contains(t, msg.HTML, "https://r8estate.com/verification?oobCode=abc")
	assert.Contains(t, msg.HTML, "654321")
	assert.False(t, strings.Contains(msg.HTML, "{{"), "unsubstituted placeholder left in template")
	assert.Equal(t, []string{CategoryClaim}, msg.Categories)
}

func TestOTPMessage(t *testing.T) {
	msg := OTPMessage("b@x.com", "424242", "Acme")

	assert.Equal(t, "b@x.com", msg.ToEmail)
	assert.Contains(t, msg.HTML, "424242")
	assert.Contains(t, msg.HTML, "Acme")
	assert.False(t, strings.Contains(msg.HTML, "{{"))
}

func TestVerificationMessage(t *testing.T) {
	msg := VerificationMessage("c@x.com", "https://r8estate.com/verification?oobCode=zzz")

	assert.Contains(t, msg.HTML, "https://r8estate.com/verification?oobCode=zzz")
	assert.Equal(t, []string{CategoryVerification}, msg.Categories)
}

func TestCowardMailer(t *testing.T) {
	id, err := CowardMailer{}.Send(context.Background(), OTPMessage("b@x.com", "424242", "Acme"))
	assert.NoError(t, err)
	assert.Equal(t, "coward", id)
}
