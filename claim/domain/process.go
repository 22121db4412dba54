package domain

// ProcessInput is the payload starting a company claim.
type ProcessInput struct {
	BusinessEmail   string `json:"businessEmail"`
	SupervisorEmail string `json:"supervisorEmail"`
	CompanyID       string `json:"companyId"`
	CompanyName     string `json:"companyName"`
	ContactPhone    string `json:"contactPhone"`
	DisplayName     string `json:"displayName"`
	RequesterID     string `json:"requesterId"`
	RequesterName   string `json:"requesterName"`
}

// ProcessResult is returned to the claimant on success.
type ProcessResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	TrackingNumber string `json:"trackingNumber"`
}
