package domain

import (
	"time"
)

// Review statuses.
const (
	StatusPublished = "published"
	StatusFlagged   = "flagged"
	StatusRemoved   = "removed"
)

// Reply is a company representative's answer attached to a review.
type Reply struct {
	Content   string    `firestore:"content"`
	RepliedBy string    `firestore:"repliedBy"`
	RepliedAt time.Time `firestore:"repliedAt"`
}

// Review represents a firestore review document
type Review struct {
	CompanyID string    `firestore:"companyId"`
	UserID    string    `firestore:"userId"`
	Rating    int       `firestore:"rating"`
	Title     string    `firestore:"title"`
	Content   string    `firestore:"content"`
	Status    string    `firestore:"status"`
	Reply     *Reply    `firestore:"reply,omitempty"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
	ID        string    `firestore:"-"`
}
