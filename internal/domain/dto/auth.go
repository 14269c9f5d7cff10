package dto

// StaffTokenRequest exchanges the store secret for a staff access token.
//
// @Description Request a staff access token
// @Example {"secret": "store-secret", "staff_name": "steve"}
type StaffTokenRequest struct {
	// Secret is the shared store secret.
	Secret string `json:"secret" binding:"required" example:"store-secret"`
	// StaffName identifies who acts with the token; it is recorded on closures.
	StaffName string `json:"staff_name,omitempty" binding:"max=50" example:"steve"`
} // @name StaffTokenRequest

// StaffTokenResponse carries a signed bearer token.
type StaffTokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"43200"` // seconds
} // @name StaffTokenResponse

// StaffClaims are the application claims of a staff token. They live here so
// middleware and services share them without an import cycle.
type StaffClaims struct {
	Staff string `json:"staff"`
}

// Validate performs custom validation on the token request.
func (r *StaffTokenRequest) Validate() error {
	if r.Secret == "" {
		return &ValidationError{
			Field:   "secret",
			Message: "secret is required",
		}
	}
	if len(r.StaffName) > 50 {
		return &ValidationError{
			Field:   "staff_name",
			Message: "staff_name must be at most 50 characters",
		}
	}
	return nil
}
