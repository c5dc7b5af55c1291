package access

/*------------------------------------------------------------------
 *
 * Purpose:	Decode a command line of the form `verb` or
 *		`verb:arg1,arg2,...` into a tagged command value
 *		(spec §4.1).
 *
 * Description:	Parsing is strictly textual and never rejects a line
 *		for being malformed: a missing or unparsable numeric
 *		field falls back to a default rather than producing an
 *		error. Only the dispatch in entry.go decides whether a
 *		verb is recognized at all.
 *
 *----------------------------------------------------------------*/

import (
	"strconv"
	"strings"
)

// Command is a parsed, not-yet-validated command line.
type Command struct {
	Verb string
	Args []string
}

// ParseCommand splits a line by the first ':' into verb and payload,
// then the payload by ',' into fields.
func ParseCommand(line string) Command {
	verb, payload, hasPayload := strings.Cut(line, ":")

	cmd := Command{Verb: verb}
	if hasPayload {
		cmd.Args = strings.Split(payload, ",")
	}

	return cmd
}

// floatField returns the i'th comma-separated field parsed as a
// float64, or def if the field is missing, blank, or not a valid
// number. This is the "default substitution" behavior spec §4.1 and
// §6 require for malformed numeric payloads.
func floatField(args []string, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}

	s := strings.TrimSpace(args[i])
	if s == "" {
		return def
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}

	return v
}

// stringField returns the i'th comma-separated field, trimmed, or ""
// if missing.
func stringField(args []string, i int) string {
	if i >= len(args) {
		return ""
	}

	return strings.TrimSpace(args[i])
}
