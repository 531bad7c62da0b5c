package server

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrConfig is returned by Config.Validate for unusable settings.
var ErrConfig = errors.New("server: invalid config")

// Config holds the HTTP service settings.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string

	// MaxCells bounds rows×cols of an accepted grid.
	MaxCells int

	// DefaultTimeout applies when a request does not set timeoutMs.
	DefaultTimeout time.Duration

	// MaxTimeout caps any requested timeout.
	MaxTimeout time.Duration

	// ShutdownGrace is how long in-flight requests get once the serve
	// context is cancelled.
	ShutdownGrace time.Duration

	// Logger receives request and search logs. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the settings gridpathd starts from.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		MaxCells:       1 << 20,
		DefaultTimeout: 2 * time.Second,
		MaxTimeout:     30 * time.Second,
		ShutdownGrace:  5 * time.Second,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty address", ErrConfig)
	case c.MaxCells <= 0:
		return fmt.Errorf("%w: MaxCells must be positive (%d)", ErrConfig, c.MaxCells)
	case c.DefaultTimeout <= 0:
		return fmt.Errorf("%w: DefaultTimeout must be positive (%s)", ErrConfig, c.DefaultTimeout)
	case c.MaxTimeout < c.DefaultTimeout:
		return fmt.Errorf("%w: MaxTimeout %s below DefaultTimeout %s", ErrConfig, c.MaxTimeout, c.DefaultTimeout)
	case c.ShutdownGrace < 0:
		return fmt.Errorf("%w: negative ShutdownGrace", ErrConfig)
	}
	return nil
}

// maxBodyBytes bounds a search request body. A row of n glyphs costs at
// most n+3 bytes on the wire and there are at most MaxCells rows.
func (c Config) maxBodyBytes() int64 {
	return 4*int64(c.MaxCells) + 4096
}

// timeout resolves a requested timeout in milliseconds.
func (c Config) timeout(ms int) time.Duration {
	if ms <= 0 {
		return c.DefaultTimeout
	}
	d := time.Duration(ms) * time.Millisecond
	if d > c.MaxTimeout {
		return c.MaxTimeout
	}
	return d
}
