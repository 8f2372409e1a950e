// Package timeouts provides centralized timeout values for handler operations.
//
// These values bound the context passed to database and I/O calls inside HTTP
// handlers, so one slow dependency cannot stall request handling. They start
// at defaults and can be overridden once at startup via Configure.
//
// Guidelines for choosing a tier:
//   - Ping: health checks and connectivity verification
//   - Short: single-document writes and deletes
//   - Medium: list queries and file I/O
//   - Mail: the outbound SMTP send, which runs detached from the request
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultMail   = 5 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	mail   = DefaultMail
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document store calls.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and file I/O.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Mail returns the timeout applied to a detached notification send.
func Mail() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return mail
}

// Config holds timeout overrides. Zero values are ignored.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Mail   time.Duration
}

// Configure sets custom timeout values. Zero values in the config keep the
// current values. Call during startup, before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Mail > 0 {
		mail = cfg.Mail
	}
}

// Reset restores all timeouts to their defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	mail = DefaultMail
}
