// Package logging configures the process-wide diagnostic logger.
package logging

import (
	"io"
	"log"
)

// InitLogging sends log output to w with microsecond timestamps
func InitLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
