package common

import (
	"os"
	"strings"
)

var (
	// ProjectID is the GCP project the service runs against.
	ProjectID string

	// ProjectNumber of the GCP project.
	ProjectNumber string

	// Domain is the client application origin, e.g. https://app.r8estate.com
	Domain string

	GAEService string

	GAEVersion string

	Env string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "r8estate-dev")
	ProjectNumber = os.Getenv("GOOGLE_CLOUD_PROJECT_NUMBER")
	GAEService = GetEnv("GAE_SERVICE", "platform")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	switch {
	case strings.HasSuffix(ProjectID, "-prod"), ProjectID == "r8estate":
		Env = "production"
		Production = true
		Domain = GetEnv("APP_DOMAIN", "https://r8estate.com")
	case GAEVersion == "localhost":
		Env = "localhost"
		IsLocalhost = true
		Domain = GetEnv("APP_DOMAIN", "http://localhost:3000")
	default:
		Env = "development"
		Domain = GetEnv("APP_DOMAIN", "https://dev.r8estate.com")
	}
}

// GetEnv returns the value of the environment variable named by key,
// or fallback if the variable is empty or not present.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
