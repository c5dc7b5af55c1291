package access

/*------------------------------------------------------------------
 *
 * Purpose:	Leveled, colorized diagnostic output for the engine.
 *
 *		This plays the role the reference implementation's
 *		text_color_set / dw_printf pair (INFO/ERROR/DEBUG,
 *		colored by category) played in the C original, using
 *		charmbracelet/log's structured levels instead of raw
 *		ANSI color switches.
 *
 *----------------------------------------------------------------*/

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the engine's default logger, writing to stderr so
// stdout stays free for a host harness that might be piping command
// responses. The level is fixed at Info, so Debug-level output is
// discarded, matching the reference's "#if DEBUG" sections that are
// normally compiled out. Device lifecycle transitions are logged at
// Info and screen-reader call failures at Error; malformed-field
// substitutions are not logged.
func NewLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "arma3access",
		ReportTimestamp: true,
	})
	logger.SetLevel(log.InfoLevel)

	return logger
}
