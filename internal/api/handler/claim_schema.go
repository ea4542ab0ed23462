package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// createClaimRequest mirrors the intake form. No field is required: the
// contract stores whatever was submitted, empty fields included.
type createClaimRequest struct {
	PolicyNumber string `json:"policy_number"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Address      string `json:"address"`
	DateOccurred string `json:"date_occurred"`
}

type createClaimResponse struct {
	Status int    `json:"status"`
	ID     string `json:"id"`
}

// searchClaimsQuery is the strict public search: every field is required and
// matched exactly.
type searchClaimsQuery struct {
	FirstName    string `query:"firstName"    validate:"required"`
	LastName     string `query:"lastName"     validate:"required"`
	PolicyNumber string `query:"policyNumber" validate:"required"`
}

// insurerSearchQuery is the authenticated search: omitted fields are
// wildcards.
type insurerSearchQuery struct {
	FirstName    string `query:"firstName"`
	LastName     string `query:"lastName"`
	PolicyNumber string `query:"policyNumber"`
}
