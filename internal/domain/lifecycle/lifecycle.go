// Package lifecycle holds shared limits for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single startup or shutdown step (DB ping, server shutdown).
const DefaultTimeout = 10 * time.Second
