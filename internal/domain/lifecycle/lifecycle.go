// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (server drain, database ping/close, sweeper stop).
const DefaultTimeout = 10 * time.Second
