package models

// ErrorResponse is the generic JSON error body returned for authentication
// and other terminal failures. The message is deliberately vague: the
// precise failure reason is written to the diagnostic log only.
type ErrorResponse struct {
	// Message is the client-facing error description.
	Message string `json:"message"`
}

// ValidationErrorResponse is the JSON body returned for payload validation
// failures. It carries the full ordered list of messages so the caller can
// fix every problem in one round trip.
type ValidationErrorResponse struct {
	// Errors holds one human-readable message per failed rule, in rule
	// evaluation order.
	Errors []string `json:"errors"`
}
