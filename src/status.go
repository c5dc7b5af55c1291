package access

// Status strings returned by command handlers. This set is exhaustive
// (spec §6) and every member is plain ASCII, well under the 32-byte
// limit callers size their own output buffer to.
const (
	StatusOK              = "OK"
	StatusUnknownCommand  = "UNKNOWN_COMMAND"
	StatusAudioInitFailed = "AUDIO_INIT_FAILED"
	StatusEmptyText       = "EMPTY_TEXT"
	StatusNVDAError       = "NVDA_ERROR"
	StatusNVDANotRunning  = "NVDA_NOT_RUNNING"
)
