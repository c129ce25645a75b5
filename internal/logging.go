package internal

import (
	"log"
	"os"
)

// InitLogging routes diagnostics to stderr so command output on stdout stays
// machine-readable.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)
}
