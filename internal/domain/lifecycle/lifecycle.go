// Package lifecycle holds shared limits for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each fx start or stop hook.
const DefaultTimeout = 10 * time.Second
