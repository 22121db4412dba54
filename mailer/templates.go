package mailer

import "strings"

// Fixed HTML templates for the platform's transactional email. Placeholders
// are substituted verbatim; the surrounding markup never changes.

const claimCredentialsHTML = `<!DOCTYPE html>
<html dir="ltr">
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>Welcome to R8 Estate</h2>
  <p>An account has been created for you to manage <strong>{{companyName}}</strong>.</p>
  <p>Your sign-in details:</p>
  <ul>
    <li>Email: <strong>{{email}}</strong></li>
    <li>Temporary password: <strong>{{password}}</strong></li>
  </ul>
  <p>Please verify your email address to activate the account:</p>
  <p><a href="{{verificationLink}}" style="background: #16213e; color: #ffffff; padding: 10px 20px; text-decoration: none;">Verify Email</a></p>
  <p>Your claim tracking number is <strong>{{trackingNumber}}</strong>.</p>
  <p>If you did not request this, you can safely ignore this email.</p>
</body>
</html>`

const supervisorCredentialsHTML = `<!DOCTYPE html>
<html dir="ltr">
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>R8 Estate Supervisor Access</h2>
  <p>You have been added as the supervisor for the claim of <strong>{{companyName}}</strong>.</p>
  <p>Your sign-in details:</p>
  <ul>
    <li>Email: <strong>{{email}}</strong></li>
    <li>Temporary password: <strong>{{password}}</strong></li>
  </ul>
  <p>Please verify your email address to confirm the claim:</p>
  <p><a href="{{verificationLink}}" style="background: #16213e; color: #ffffff; padding: 10px 20px; text-decoration: none;">Verify Email</a></p>
  <p>Claim tracking number: <strong>{{trackingNumber}}</strong>.</p>
</body>
</html>`

const verificationHTML = `<!DOCTYPE html>
<html dir="ltr">
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>Verify your email</h2>
  <p>Click the button below to verify your email address on R8 Estate.</p>
  <p><a href="{{verificationLink}}" style="background: #16213e; color: #ffffff; padding: 10px 20px; text-decoration: none;">Verify Email</a></p>
  <p>This link expires after a limited time.</p>
</body>
</html>`

const otpHTML = `<!DOCTYPE html>
<html dir="ltr">
<body style="font-family: Arial, sans-serif; color: #1a1a2e;">
  <h2>Your verification code</h2>
  <p>Use the code below to continue managing <strong>{{companyName}}</strong> on R8 Estate:</p>
  <p style="font-size: 28px; letter-spacing: 6px;"><strong>{{otp}}</strong></p>
  <p>The code is valid for a short period. Do not share it with anyone.</p>
</body>
</html>`

func substitute(template string, params map[string]string) string {
	pairs := make([]string, 0, len(params)*2)
	for key, value := range params {
		pairs = append(pairs, "{{"+key+"}}", value)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// ClaimCredentialsMessage builds the email sent to the business address with
// its generated password and verification link.
func ClaimCredentialsMessage(email, companyName, password, verificationLink, trackingNumber string) *Message {
	return &Message{
		ToEmail: email,
		Subject: "Your R8 Estate account for " + companyName,
		HTML: substitute(claimCredentialsHTML, map[string]string{
			"companyName":      companyName,
			"email":            email,
			"password":         password,
			"verificationLink": verificationLink,
			"trackingNumber":   trackingNumber,
		}),
		Categories: []string{CategoryClaim},
	}
}

// SupervisorCredentialsMessage builds the email sent to the supervisor address.
func SupervisorCredentialsMessage(email, companyName, password, verificationLink, trackingNumber string) *Message {
	return &Message{
		ToEmail: email,
		Subject: "Supervisor access for " + companyName + " on R8 Estate",
		HTML: substitute(supervisorCredentialsHTML, map[string]string{
			"companyName":      companyName,
			"email":            email,
			"password":         password,
			"verificationLink": verificationLink,
			"trackingNumber":   trackingNumber,
		}),
		Categories: []string{CategoryClaim},
	}
}

// VerificationMessage builds the plain verify-your-email message.
func VerificationMessage(email, verificationLink string) *Message {
	return &Message{
		ToEmail: email,
		Subject: "Verify your email on R8 Estate",
		HTML: substitute(verificationHTML, map[string]string{
			"verificationLink": verificationLink,
		}),
		Categories: []string{CategoryVerification},
	}
}

// OTPMessage builds the one-time-password message.
func OTPMessage(email, otp, companyName string) *Message {
	return &Message{
		ToEmail: email,
		Subject: "Your R8 Estate verification code",
		HTML: substitute(otpHTML, map[string]string{
			"otp":         otp,
			"companyName": companyName,
		}),
		Categories: []string{CategoryOTP},
	}
}
