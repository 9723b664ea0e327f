package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the process-wide logger. It writes to stderr with
// timestamps so command output on stdout stays scriptable.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
