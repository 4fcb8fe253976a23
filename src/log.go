package outrigger

/*------------------------------------------------------------------
 *
 * Purpose:   	Leveled logging and protocol tracing.
 *
 * Description:	All human-facing output goes through these helpers so
 *		the daemon can run quietly under a supervisor and still
 *		be cranked up with -d for protocol debugging.
 *
 *		Serial and TCP traffic traces can be prefixed with a
 *		user-supplied "strftime" format time stamp, the same
 *		convention the -T option of other tools in this family
 *		uses.
 *
 *---------------------------------------------------------------*/

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

var or_logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var or_debug_level = 0

/* Set from the per-rig "trace_timestamp_format" configuration key. */
var trace_timestamp_format = ""

func or_log_init(debug int) {
	or_debug_level = debug
	if debug > 0 {
		or_logger.SetLevel(log.DebugLevel)
	}
}

func or_info(format string, a ...any) {
	or_logger.Infof(format, a...)
}

func or_error(format string, a ...any) {
	or_logger.Errorf(format, a...)
}

func or_debug(format string, a ...any) {
	or_logger.Debugf(format, a...)
}

/*-------------------------------------------------------------------
 *
 * Name:        or_trace
 *
 * Purpose:     Log one protocol exchange, e.g. "serial >" for bytes
 *		sent to the rig or "tcp <" for bytes from a client.
 *
 *--------------------------------------------------------------------*/

func or_trace(dir string, data []byte) {
	if or_debug_level < 2 {
		return
	}

	var prefix = ""
	if trace_timestamp_format != "" {
		var formattedTime, err = strftime.Format(trace_timestamp_format, time.Now())
		if err == nil {
			prefix = "[" + formattedTime + "] "
		}
	}

	or_logger.Debugf("%s%s %q", prefix, dir, data)
}
