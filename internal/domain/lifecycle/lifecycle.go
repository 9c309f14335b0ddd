// Package lifecycle defines shared bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
