package constants

import "time"

const (
	AppName            = "aurapulse"
	DefaultKeyringUser = "gemini-api-key"
	DefaultConfigPath  = "~/.config/aurapulse/aurapulse.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	MinutesPerDay = 24 * 60

	// Activity form defaults
	DefaultStartTime = "09:00"
	DefaultEndTime   = "10:00"

	// Storage keys. The two collections are independent records.
	ActivitiesKey = "aura_activities"
	GoalsKey      = "aura_goals"

	// Goal pacing
	GoalHorizonDays = 30

	// Estimation fallback used whenever the estimator cannot answer
	FallbackEstimateHours = 10
	FallbackEstimateInfo  = "Generic estimation"
	// An empty model answer is not a failure; it gets the same hours
	EmptyEstimateInfo = "Standard estimation"

	// Suggestions
	MaxSuggestions = 5

	// Auto-refresh gate: a day needs this many activities, or any goal at all
	AutoRefreshMinActivities = 2
	AutoRefreshMinGoals      = 1

	// Model defaults
	DefaultModel           = "gemini-3-flash-preview"
	DefaultRequestsPerMin  = 10
	DefaultRequestBurst    = 2
	DefaultRequestTimeout  = 45 * time.Second
	DefaultEnvAPIKey       = "GEMINI_API_KEY"
	DefaultEnvTestPostgres = "AURAPULSE_TEST_POSTGRES"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "aurapulse-"
)

// Backend names accepted by --backend
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendDiskv    = "diskv"
	BackendJSON     = "json"
)
