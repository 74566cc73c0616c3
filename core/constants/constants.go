package constants

// Database pool settings.
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Wire time formats. SlotConfiguration and Booking times are stored as
// strings, matching the schema the mobile clients already read.
const (
	ClockFormat = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
)

// DefaultCourtID is applied when a legacy block carries no courtId. The
// original data set used court "1" as the implicit default; kept as an
// explicit policy rather than a silent fallback.
const DefaultCourtID = "1"

// Migration engine settings.
const (
	MigrationWorkers  = 4
	MigrationTaskName = "migration:run"
)

// AvailabilityCacheTTLSeconds bounds staleness of cached day availability.
const AvailabilityCacheTTLSeconds = 60
