package access

/*------------------------------------------------------------------
 *
 * Purpose:	The Engine: bundles the parameter store, the audio
 *		device, the screen-reader client, and the audio-thread-
 *		private voice state, and implements the real-time
 *		callback that mixes all voices into one interleaved
 *		stereo buffer (spec §4.7).
 *
 *----------------------------------------------------------------*/

import "github.com/charmbracelet/log"

// voiceState bundles every audio-thread-private generator. It is only
// ever touched from inside audioCallback (invariant I1).
type voiceState struct {
	aim        aimVoiceState
	lockBlip   BlipVoice
	unlockBlip BlipVoice
	radar      radarVoiceState
	beacon     beaconVoiceState
}

func newVoiceState() voiceState {
	return voiceState{
		aim:        newAimVoiceState(),
		lockBlip:   newBlipVoice(lockBlipFreq),
		unlockBlip: newBlipVoice(unlockBlipFreq),
		beacon:     newBeaconVoiceState(),
	}
}

// Engine is the top-level object the extension ABI is exposed on
// (spec §6). One Engine owns exactly one audio device and one set of
// shared parameters.
type Engine struct {
	params *ParamStore
	device *Device
	sr     ScreenReaderClient
	log    *log.Logger

	voices voiceState
}

// NewEngine wires together a fresh engine with the given screen-reader
// client. Pass NullScreenReaderClient{} when no real binding is
// available (e.g. local dev without NVDA installed).
func NewEngine(sr ScreenReaderClient) *Engine {
	logger := NewLogger()

	e := &Engine{
		params: &ParamStore{},
		sr:     sr,
		log:    logger,
		voices: newVoiceState(),
	}
	e.device = newDevice(logger)

	return e
}

// ensureDevice lazily starts the audio device, wired to this engine's
// audioCallback (spec §4.9's "first *_start" transition).
func (e *Engine) ensureDevice() error {
	return e.device.Ensure(e.audioCallback)
}

// audioCallback renders one device buffer. It never allocates, never
// blocks, never calls into the screen-reader client, and never takes
// a lock (spec §4.7) - every generator it calls is a plain value
// method operating on its own private fields plus one atomic snapshot.
func (e *Engine) audioCallback(out []float32) {
	if e.params.isShutdown() {
		for i := range out {
			out[i] = 0
		}

		return
	}

	aimSnap := e.params.Aim.snapshot()
	aimActive := aimSnap.active

	e.voices.aim.resetOnActivate(aimActive)
	e.voices.beacon.resetOnActivate(e.params.Beacon.active.Load() && !aimActive)

	radarGated := e.params.Radar.active.Load() && !aimActive
	beaconGated := e.params.Beacon.active.Load() && !aimActive

	e.voices.lockBlip.maybeStart(&e.params.Aim.blipPending)
	e.voices.unlockBlip.maybeStart(&e.params.Aim.unlockBlipPending)

	frames := len(out) / 2

	for i := 0; i < frames; i++ {
		var left, right float32

		if aimActive {
			pl, pr := e.voices.aim.renderPrimary(aimSnap)
			sl, sr := e.voices.aim.renderSecondary(aimSnap)
			left += pl + sl
			right += pr + sr
		}

		if aimActive {
			blip := e.voices.lockBlip.render() + e.voices.unlockBlip.render()
			left += blip
			right += blip
		}

		if radarGated {
			e.voices.radar.maybeDequeue(&e.params.Radar.Queue)
			rl, rr := e.voices.radar.render()
			left += rl
			right += rr
		}

		if beaconGated {
			bl, br := e.voices.beacon.render(e.params.Beacon.pan.Load())
			left += bl
			right += br
		}

		out[2*i] = left
		out[2*i+1] = right
	}
}
