package domain

import (
	"time"
)

// Category represents a firestore category document
type Category struct {
	Name      string    `firestore:"name"`
	NameAr    string    `firestore:"nameAr,omitempty"`
	Icon      string    `firestore:"icon,omitempty"`
	CreatedAt time.Time `firestore:"createdAt"`
	ID        string    `firestore:"-"`
}
