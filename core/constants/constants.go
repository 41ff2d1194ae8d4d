package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Cache keys and TTLs
const (
	CacheKeyWeekGrid          = "schedule:weekgrid"
	CacheKeyTokenBlacklist    = "auth:blacklist:"
	CacheWeekGridTTLSeconds   = 300
	CacheBlacklistTTLSeconds  = 86400
)

// Asynq task types
const (
	TaskTypeConflictAlert = "schedule:conflict_alert"
	TaskTypeInvoiceExport = "billing:invoice_export"
)

// Default pagination
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)
