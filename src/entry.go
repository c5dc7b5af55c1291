package access

/*------------------------------------------------------------------
 *
 * Purpose:	The extension entry surface: the three remaining ABI
 *		operations (ExtensionString, ExtensionArgs, ProcessDetach)
 *		plus the full verb dispatch table (spec §4.1, §6).
 *
 * Description:	Grounded directly on original_source/bridge/
 *		nvda_arma3_bridge.cpp's RVExtension/RVExtensionArgs/
 *		DllMain: RVExtensionArgs special-cases `speak` with argv
 *		to join with spaces, and otherwise falls back to calling
 *		the string entry with the bare verb - that exact fallback
 *		is reproduced in ExtensionArgs below.
 *
 *----------------------------------------------------------------*/

import "strings"

// ExtensionString dispatches a `verb` or `verb:arg1,arg2,...` line to
// the matching handler and returns its status string (spec §4.1).
func (e *Engine) ExtensionString(cmd string) string {
	c := ParseCommand(cmd)

	switch c.Verb {
	case "test":
		return e.handleTest()
	case "speak":
		return e.handleSpeak(stringField(c.Args, 0))
	case "cancel":
		return e.handleCancel()
	case "braille":
		return e.handleBraille(stringField(c.Args, 0))
	case "aim_start":
		return e.handleAimStart()
	case "aim_update":
		return e.handleAimUpdate(c.Args)
	case "aim_blip":
		return e.handleAimBlip()
	case "aim_unlock_blip":
		return e.handleAimUnlockBlip()
	case "aim_stop":
		return e.handleAimStop()
	case "radar_start":
		return e.handleRadarStart()
	case "radar_beep":
		return e.handleRadarBeep(c.Args)
	case "radar_stop":
		return e.handleRadarStop()
	case "beacon_start":
		return e.handleBeaconStart()
	case "beacon_update":
		return e.handleBeaconUpdate(c.Args)
	case "beacon_stop":
		return e.handleBeaconStop()
	default:
		return StatusUnknownCommand
	}
}

// ExtensionArgs implements the argv-style entry point. The `speak`
// verb concatenates every argument with single spaces (the payload
// never arrives pre-joined over this entry point); every other verb
// delegates to ExtensionString with the bare verb, ignoring args - the
// exact behavior of the reference RVExtensionArgs, which falls back to
// calling RVExtension(output, outputSize, function) for anything that
// isn't `speak`.
func (e *Engine) ExtensionArgs(cmd string, args []string) string {
	if cmd == "speak" && len(args) > 0 {
		return e.handleSpeak(strings.Join(args, " "))
	}

	return e.ExtensionString(cmd)
}

// ProcessDetach implements the host's process-detach notification
// (spec §4.9): mark shutdown, deactivate every voice, stop the device.
// It deliberately never destroys the device (see device.go's Stop).
func (e *Engine) ProcessDetach() {
	e.params.Shutdown()
	e.device.Stop()
}

func (e *Engine) handleAimStart() string {
	if err := e.ensureDevice(); err != nil {
		return StatusAudioInitFailed
	}

	e.params.Aim.reset()

	return StatusOK
}

func (e *Engine) handleAimUpdate(args []string) string {
	pan := float32(floatField(args, 0, 0))
	pitch := float32(floatField(args, 1, 550))
	vertErr := float32(floatField(args, 2, 1))
	horizErr := float32(floatField(args, 3, 1))
	vertThreshold := float32(floatField(args, 4, 0.05))
	horizThreshold := float32(floatField(args, 5, 0.05))

	e.params.Aim.update(pan, pitch, vertErr, horizErr, vertThreshold, horizThreshold)

	return StatusOK
}

func (e *Engine) handleAimBlip() string {
	e.params.Aim.blipPending.Store(true)

	return StatusOK
}

func (e *Engine) handleAimUnlockBlip() string {
	e.params.Aim.unlockBlipPending.Store(true)

	return StatusOK
}

func (e *Engine) handleAimStop() string {
	e.params.Aim.stop()

	return StatusOK
}

func (e *Engine) handleRadarStart() string {
	if err := e.ensureDevice(); err != nil {
		return StatusAudioInitFailed
	}

	e.params.Radar.start()

	return StatusOK
}

// radarDistanceVolumeScale is the decision record for spec §9's open
// question on distance-to-volume mapping (not specified by the
// reference beyond "distance d drives volume"): linear falloff over
// 100m, floored so a beep from any distance stays perceptible.
const radarDistanceVolumeScale = 100.0

func (e *Engine) handleRadarBeep(args []string) string {
	material := MaterialCode(stringField(args, 2))
	if material == MaterialNone {
		return StatusOK
	}

	pan := clamp32(float32(floatField(args, 0, 0)), -1, 1)
	distance := floatField(args, 1, 0)
	volume := clamp32(float32(1-distance/radarDistanceVolumeScale), 0.05, 1)

	e.params.Radar.Queue.Push(RadarBeep{Pan: pan, Volume: volume, Material: material})

	return StatusOK
}

func (e *Engine) handleRadarStop() string {
	e.params.Radar.stop()

	return StatusOK
}

func (e *Engine) handleBeaconStart() string {
	if err := e.ensureDevice(); err != nil {
		return StatusAudioInitFailed
	}

	e.params.Beacon.pan.Store(0)
	e.params.Beacon.active.Store(true)

	return StatusOK
}

func (e *Engine) handleBeaconUpdate(args []string) string {
	pan := clamp32(float32(floatField(args, 0, 0)), -1, 1)
	e.params.Beacon.pan.Store(pan)

	return StatusOK
}

func (e *Engine) handleBeaconStop() string {
	e.params.Beacon.stop()

	return StatusOK
}
