package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/r8estate/platform/secretmanager"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <noreply@r8estate.com>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`
}

// Email categories attached to outgoing mail.
const (
	CategoryClaim        string = "claim"
	CategoryVerification string = "verification"
	CategoryOTP          string = "otp"
	CategoryAccount      string = "account"
)

// Message is a single transactional email ready to be sent.
type Message struct {
	ToName     string
	ToEmail    string
	Subject    string
	HTML       string
	Categories []string
}

//go:generate mockery --name Mailer --output ./mocks
type Mailer interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// SendGridMailer sends transactional email through the SendGrid v3 API.
type SendGridMailer struct {
	config *SendGridConfig
}

// NewConfig loads the SendGrid configuration from secret manager.
func NewConfig(ctx context.Context) (*SendGridConfig, error) {
	secretData, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretSendgrid)
	if err != nil {
		return nil, err
	}

	var config SendGridConfig
	if err := json.Unmarshal(secretData, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func NewSendGridMailer(config *SendGridConfig) *SendGridMailer {
	return &SendGridMailer{
		config: config,
	}
}

// Send delivers the message and returns the provider message id.
func (m *SendGridMailer) Send(ctx context.Context, msg *Message) (string, error) {
	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(m.config.NoReplyName, m.config.NoReplyEmail))
	v3.Subject = msg.Subject
	v3.AddContent(mail.NewContent("text/html", msg.HTML))
	v3.AddCategories(msg.Categories...)

	enable := false
	v3.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.ToEmail))
	v3.AddPersonalizations(personalization)

	request := sendgrid.GetRequest(m.config.APIKey, m.config.MailSendPath, m.config.BaseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(v3)

	response, err := sendgrid.MakeRequestRetryWithContext(ctx, request)
	if err != nil {
		return "", err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("sendgrid: unexpected status %d: %s", response.StatusCode, response.Body)
	}

	return messageID(response.Headers), nil
}

func messageID(headers map[string][]string) string {
	if ids, ok := headers["X-Message-Id"]; ok && len(ids) > 0 {
		return ids[0]
	}

	return ""
}

// CowardMailer logs instead of sending. Used on localhost.
type CowardMailer struct{}

func (CowardMailer) Send(ctx context.Context, msg *Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	fmt.Printf("Coward mailer not sending to %s: %s\n", msg.ToEmail, string(body))

	return "coward", nil
}
