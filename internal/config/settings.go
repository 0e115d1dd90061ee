package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds the process configuration, read once from the environment
// at startup. There is no hot-reload: a restart picks up new values.
type Settings struct {
	// DirectoryURL is the vCard endpoint of the remote directory service.
	DirectoryURL string

	// Username and Password are sent as HTTP Basic Auth when non-empty.
	Username string
	Password string

	// Port is the local HTTP listening port for the feed route.
	Port string

	// RefreshInterval is the period between automatic refreshes.
	RefreshInterval time.Duration

	// Location is the fixed zone used for reminder times.
	Location *time.Location
}

// LoadSettings reads and validates the process configuration from the
// environment. It fails fast on a missing URL or unparsable values so that
// misconfiguration is caught at startup rather than on the first refresh.
func LoadSettings() (Settings, error) {
	s := Settings{
		DirectoryURL:    getenv(EnvURL),
		Username:        getenv(EnvUsername),
		Password:        getenv(EnvPassword),
		Port:            getenv(EnvPort),
		RefreshInterval: DefaultRefreshInterval,
		Location:        time.Local,
	}

	if s.DirectoryURL == "" {
		return Settings{}, errors.New(ErrURLRequired)
	}

	if s.Port == "" {
		s.Port = DefaultPort
	}
	if err := ValidatePort(s.Port); err != nil {
		return Settings{}, err
	}

	if raw := getenv(EnvInterval); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %q", ErrIntervalParse, raw)
		}
		if d < MinRefreshInterval {
			return Settings{}, fmt.Errorf("%s: %s < %s", ErrIntervalShort, d, MinRefreshInterval)
		}
		s.RefreshInterval = d
	}

	if tz := getenv(EnvTimezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %q: %w", ErrTimezoneLoad, tz, err)
		}
		s.Location = loc
	}

	return s, nil
}

// ValidatePort checks that a port string is numeric and within range.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
