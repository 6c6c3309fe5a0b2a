package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultListLimit = 20
	MaxListLimit     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeyPrincipal = "principal_id"

	// Database table names
	TableOrganizations = "organizations"
	TableBrands        = "brands"
	TableBusinesses    = "businesses"
	TableFranchises    = "franchises"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
)
