package domain

// CreateReportInput is the payload for reporting a review.
type CreateReportInput struct {
	ReviewID   string `json:"reviewId"`
	ReporterID string `json:"reporterId"`
	Reason     string `json:"reason"`
	Details    string `json:"details"`
}
