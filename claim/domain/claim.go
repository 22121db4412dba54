package domain

import (
	"time"
)

// Claim request statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ClaimRequest represents a firestore claimRequests document. The generated
// account passwords are stored as plain fields on the document, matching the
// platform's existing data model.
type ClaimRequest struct {
	CompanyID               string    `firestore:"companyId"`
	CompanyName             string    `firestore:"companyName"`
	RequesterID             string    `firestore:"requesterId,omitempty"`
	RequesterName           string    `firestore:"requesterName,omitempty"`
	BusinessEmail           string    `firestore:"businessEmail"`
	SupervisorEmail         string    `firestore:"supervisorEmail"`
	ContactPhone            string    `firestore:"contactPhone,omitempty"`
	BusinessPassword        string    `firestore:"businessPassword"`
	SupervisorPassword      string    `firestore:"supervisorPassword"`
	Status                  string    `firestore:"status"`
	TrackingNumber          string    `firestore:"trackingNumber"`
	BusinessEmailVerified   bool      `firestore:"businessEmailVerified"`
	SupervisorEmailVerified bool      `firestore:"supervisorEmailVerified"`
	DomainVerified          bool      `firestore:"domainVerified"`
	UserID                  string    `firestore:"userId,omitempty"`
	SupervisorID            string    `firestore:"supervisorId,omitempty"`
	CreatedAt               time.Time `firestore:"createdAt"`
	UpdatedAt               time.Time `firestore:"updatedAt"`
	ID                      string    `firestore:"-"`
}
