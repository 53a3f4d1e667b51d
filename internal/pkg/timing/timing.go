// Package timing provides a scoped stopwatch for instrumenting slow
// operations such as the prime search. It is applied at call sites and never
// inside the arithmetic core.
package timing

import (
	"fmt"
	"time"

	"textbook_rsa_service/internal/pkg/logger"
)

// Timed starts a stopwatch for the named operation and returns a stop
// function that logs the elapsed time at debug level. Typical use:
//
//	defer timing.Timed(log, "prime search")()
func Timed(log logger.Logger, name string) func() {
	start := time.Now()
	return func() {
		log.Debug(fmt.Sprintf("%s completed in %s", name, time.Since(start)))
	}
}
