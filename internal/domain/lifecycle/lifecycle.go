// Package lifecycle holds shared start/stop timing constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
