package domain

// CreateReviewInput is the payload for posting a review.
type CreateReviewInput struct {
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}
