package config

import "time"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client towards the directory service.
var UserAgent = "Birthday-Feed/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName = "Birthday Feed"
	AppID   = "com.github.tartampluch.birthday-feed"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvURL      = "BIRTHDAY_FEED_URL"
	EnvUsername = "BIRTHDAY_FEED_USERNAME"
	EnvPassword = "BIRTHDAY_FEED_PASSWORD"
	EnvPort     = "BIRTHDAY_FEED_PORT"
	EnvInterval = "BIRTHDAY_FEED_REFRESH_INTERVAL"
	EnvTimezone = "BIRTHDAY_FEED_TIMEZONE"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort            = "18080"
	DefaultRefreshInterval = 1 * time.Hour
	MinRefreshInterval     = 1 * time.Minute

	// AlarmHourLocal is the fixed local hour of the per-event reminder.
	AlarmHourLocal = 8

	// UIDSalt makes generated event UIDs deterministic but namespaced.
	UIDSalt = "birthday-feed-v1-"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal metadata values
	ICalVersion   = "2.0"
	ICalProdid    = "-//Birthday Feed//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalStatus    = "CONFIRMED"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "birthdayfeed"

	// iCal property names
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropStatus      = "STATUS"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Birthday shapes accepted in BDAY fields
	BdayLenFullDash   = 10 // YYYY-MM-DD
	BdayLenFullBasic  = 8  // YYYYMMDD
	BdayLenNoYear     = 6  // --MMDD
	BdayLenNoYearDash = 7  // --MM-DD
	BdayNoYearPrefix  = "--"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%02d-%02d|%d|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteCalendar       = "/calendar.ics"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a hex digest string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrURLRequired    = "configuration error: directory URL is required"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrIntervalParse  = "refresh interval must be a duration (e.g. 1h, 30m)"
	ErrIntervalShort  = "refresh interval is below the minimum"
	ErrTimezoneLoad   = "unknown timezone"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrFetchFailed    = "failed to fetch contact directory"
	ErrVCardStream    = "vCard stream aborted mid-transfer"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateEmpty      = "birthday value is empty"
	ErrDateShape      = "unrecognized birthday format"
	ErrDateDigits     = "birthday contains non-numeric date fields"
	ErrDateMonth      = "birthday month out of range"
	ErrDateDay        = "birthday day out of range"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrSchedule       = "failed to schedule refresh job"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgNotReady     = "calendar feed not generated yet"
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Templates & Fallbacks
// -----------------------------------------------------------------------------

const (
	// Event text templates. The age variant is used when the birth year is known.
	FormatSummary    = "Birthday: %s"
	FormatSummaryAge = "Birthday: %s (%d)"
	FallbackName     = ""

	// StubVCalendar is the minimal valid iCalendar object used when no events
	// are found, so that an empty feed still validates in calendar clients.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgConfigLoaded  = "Effective configuration"
	MsgSyncStarted   = "Refresh started"
	MsgSyncFailed    = "Refresh failed, keeping previous feed"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid birthday value"
	MsgGenSuccess    = "Calendar generation successful"
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgWorkerStart   = "Refresh scheduler started"
	MsgWorkerStop    = "Refresh scheduler stopping"
	MsgWorkerSkipped = "Refresh skipped, previous run still in flight"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyPort      = "port"
	LogKeyInterval  = "interval"
	LogKeyTimezone  = "timezone"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompWorker  = "worker"
	CompMain    = "main"
)
