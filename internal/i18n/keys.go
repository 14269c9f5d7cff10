// Package i18n provides internationalization support for the order service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyServiceUnavailable indicates a dependency is down.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidStaffSecret indicates a wrong store secret.
	ErrKeyInvalidStaffSecret = "error.invalid_staff_secret"
	// ErrKeyStaffAuthDisabled indicates staff login is not set up.
	ErrKeyStaffAuthDisabled = "error.staff_auth_disabled"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyOrderNotFound indicates an unknown order reference.
	ErrKeyOrderNotFound = "error.order_not_found"
	// ErrKeyUnknownCategory indicates a menu category that does not exist.
	ErrKeyUnknownCategory = "error.unknown_category"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyItemsRequired indicates an order without items.
	ErrKeyItemsRequired = "error.validation.items_required"
	// ErrKeyInvalidClosureDate indicates an unreadable closure date.
	ErrKeyInvalidClosureDate = "error.closure.invalid_date"
	// ErrKeyClosureInPast indicates a closure date before today.
	ErrKeyClosureInPast = "error.closure.in_past"
	// ErrKeyDuplicateClosure indicates the date is already closed.
	ErrKeyDuplicateClosure = "error.closure.duplicate"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates an order was accepted.
	SuccessKeyOrderPlaced = "success.order_placed"
	// SuccessKeyOrderValid indicates an order passed validation.
	SuccessKeyOrderValid = "success.order_valid"
	// SuccessKeyClosureAdded indicates a closure was recorded.
	SuccessKeyClosureAdded = "success.closure_added"
)
