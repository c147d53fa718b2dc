package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
	HeaderXActor      = "X-Actor"

	// Content Types
	ContentTypeJSON = "application/json"

	// Actor roles
	RoleAdmin     = "admin"
	RoleScheduler = "scheduler"

	// SystemActor identifies runs started by the schedule host rather
	// than a human operator.
	SystemActor = "system:scheduler"

	// Database table names
	TableBusinessProfiles = "business_profiles"
	TableCalendarEntries  = "calendar_entries"
	TableObligations      = "obligations"
	TableAuditEntries     = "audit_entries"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
