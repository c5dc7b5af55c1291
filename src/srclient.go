package access

/*------------------------------------------------------------------
 *
 * Purpose:	Thin adapter around the external screen-reader client:
 *		speak, cancel, braille, test-if-running. The real
 *		client (NVDA's controller DLL, per
 *		original_source/bridge/nvda_arma3_bridge.cpp) is a
 *		black-box collaborator outside this spec's scope
 *		(spec §1); this file only owns the UTF-8 to UTF-16
 *		transcoding and the status-string mapping around it.
 *
 * Description:	Modeled the way ptt.go picks between backends
 *		(serial/GPIO/CM108/HAMLIB) behind one interface with a
 *		mock for tests (see ptt_test.go's mockGPIODLine) -
 *		here there is exactly one real backend plus a null one
 *		for platforms/dev environments with no screen reader.
 *
 *----------------------------------------------------------------*/

import "unicode/utf16"

// ScreenReaderClient is the black-box external collaborator described
// in spec §1 and §4.8. A nil error means the underlying call
// succeeded; TestRunning's error distinguishes "not running" from a
// genuine call failure only in that both map to a status string, not
// in how the engine behaves afterward.
type ScreenReaderClient interface {
	TestRunning() error
	Speak(utf16Text []uint16) error
	Cancel() error
	Braille(utf16Text []uint16) error
}

// NullScreenReaderClient is the client used when no real screen reader
// binding is wired in (e.g. on a dev machine with no NVDA installed).
// It always reports "not running" and never succeeds a call, which is
// the same behavior a real client exhibits when NVDA isn't active.
type NullScreenReaderClient struct{}

func (NullScreenReaderClient) TestRunning() error {
	return errNotRunning
}

func (NullScreenReaderClient) Speak([]uint16) error {
	return errNotRunning
}

func (NullScreenReaderClient) Cancel() error {
	return errNotRunning
}

func (NullScreenReaderClient) Braille([]uint16) error {
	return errNotRunning
}

type notRunningError struct{}

func (notRunningError) Error() string { return "screen reader client not running" }

var errNotRunning = notRunningError{}

// utf8To16 transcodes a UTF-8 command payload to UTF-16 code units,
// the form the screen-reader client's wide-string API expects (spec
// §4.8). This is the idiomatic-Go analog of the reference's
// MultiByteToWideChar call.
func utf8To16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// handleSpeak implements the `speak:text` verb (spec §4.1, §4.8):
// empty payload short-circuits to EMPTY_TEXT without touching the
// client; otherwise the client is called and its result mapped to
// OK/NVDA_ERROR.
func (e *Engine) handleSpeak(text string) string {
	if text == "" {
		return StatusEmptyText
	}

	if err := e.sr.Speak(utf8To16(text)); err != nil {
		e.log.Error("speak failed", "err", err)

		return StatusNVDAError
	}

	return StatusOK
}

func (e *Engine) handleCancel() string {
	if err := e.sr.Cancel(); err != nil {
		e.log.Error("cancel failed", "err", err)

		return StatusNVDAError
	}

	return StatusOK
}

func (e *Engine) handleBraille(text string) string {
	if text == "" {
		return StatusEmptyText
	}

	if err := e.sr.Braille(utf8To16(text)); err != nil {
		e.log.Error("braille failed", "err", err)

		return StatusNVDAError
	}

	return StatusOK
}

func (e *Engine) handleTest() string {
	if err := e.sr.TestRunning(); err != nil {
		return StatusNVDANotRunning
	}

	return StatusOK
}
