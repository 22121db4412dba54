package domain

import (
	"time"
)

// Report statuses.
const (
	StatusPending   = "pending"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)

// Report represents a firestore report document raised against a review.
type Report struct {
	ReviewID   string    `firestore:"reviewId"`
	CompanyID  string    `firestore:"companyId"`
	ReporterID string    `firestore:"reporterId"`
	Reason     string    `firestore:"reason"`
	Details    string    `firestore:"details,omitempty"`
	Status     string    `firestore:"status"`
	ResolvedBy string    `firestore:"resolvedBy,omitempty"`
	ResolvedAt time.Time `firestore:"resolvedAt,omitempty"`
	CreatedAt  time.Time `firestore:"createdAt"`
	ID         string    `firestore:"-"`
}
