package domain

import (
	"errors"
	"time"
)

// ClaimStatus represents the lifecycle state of a claim.
type ClaimStatus string

// StatusUnprocessed is the state every claim is created in. No operation
// advances a claim past it; intake and review are separate systems.
const StatusUnprocessed ClaimStatus = "Unprocessed"

var ErrClaimNotFound = errors.New("claim not found")
var ErrSearchFieldsMissing = errors.New("required search fields missing")

// Claim is the core record stored for every submitted insurance claim.
// The bson keys are camelCase because the collection predates this service
// and existing documents use that naming.
type Claim struct {
	ID            string      `json:"id" bson:"_id"`
	PolicyNumber  string      `json:"policy_number" bson:"policyNumber"`
	Category      string      `json:"category" bson:"category"`
	Description   string      `json:"description" bson:"description"`
	FirstName     string      `json:"first_name" bson:"firstName"`
	LastName      string      `json:"last_name" bson:"lastName"`
	Address       string      `json:"address" bson:"address"`
	DateSubmitted time.Time   `json:"date_submitted" bson:"dateSubmitted"`
	DateOccurred  string      `json:"date_occurred,omitempty" bson:"dateOccurred,omitempty"`
	Status        ClaimStatus `json:"status" bson:"status"`
}
