package models

import (
	"time"
)

// SuccessStory is a testimonial of a fulfilled wish. The collection is
// seeded once at startup and treated as read-only afterwards.
type SuccessStory struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	AmountFulfilled float64   `bson:"amount_fulfilled" json:"amount_fulfilled"`
	DonorCount      int       `bson:"donor_count" json:"donor_count"`
	PhotoURL        string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Category        string    `bson:"category" json:"category"`
	FulfilledAt     time.Time `bson:"fulfilled_at" json:"fulfilled_at"`
}
