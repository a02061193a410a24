package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "ecolog"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/ecolog/ecolog.db"
	Version            = "v0.1.0"

	// DateFormat is the key format for daily logs (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Store keys. Both values are JSON documents.
	LogKey  = "ecolog"
	MetaKey = "ecometa"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "ecolog-"
	BackupFileSuffix = ".db"

	// Lockfile for interactive sessions
	LockfileName = "ecolog-tui.lock"

	// Environment variables
	EnvDBConnection = "ECOLOG_DB_CONNECTION"
)

// Session States. The first four are the tabs, in display order.
const (
	StateHome SessionState = iota
	StateLog
	StateImpact
	StateBadges
	StateLockWarning
)

// TabCount is the number of top-level tabs.
const TabCount = 4
