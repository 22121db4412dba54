package domain

import (
	"time"
)

// Company represents a firestore company document
type Company struct {
	Name         string    `firestore:"name"`
	CategoryID   string    `firestore:"categoryId,omitempty"`
	Email        string    `firestore:"email,omitempty"`
	Phone        string    `firestore:"phone,omitempty"`
	Website      string    `firestore:"website,omitempty"`
	Description  string    `firestore:"description,omitempty"`
	Claimed      bool      `firestore:"claimed"`
	Rating       float64   `firestore:"rating"`
	TotalReviews int       `firestore:"totalReviews"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
	ID           string    `firestore:"-"`
}
