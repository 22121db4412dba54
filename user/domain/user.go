package domain

import (
	"time"
)

// User roles as stored on the user document.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a firestore user document
type User struct {
	Email           string    `firestore:"email"`
	DisplayName     string    `firestore:"displayName"`
	Role            string    `firestore:"role"`
	IsEmailVerified bool      `firestore:"isEmailVerified"`
	ClaimRequestID  string    `firestore:"claimRequestId,omitempty"`
	IsSupervisor    bool      `firestore:"isSupervisor,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt"`
	ID              string    `firestore:"-"`
}
