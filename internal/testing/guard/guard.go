// Package guard switches the application into test mode when imported by a
// test binary.
package guard

import (
	"os"
	"sync"
)

const testModeEnv = "DECKSTATS_TEST_MODE"

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv(testModeEnv) == "" {
			_ = os.Setenv(testModeEnv, "1")
		}
	})
}
