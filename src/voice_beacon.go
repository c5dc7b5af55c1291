package access

/*------------------------------------------------------------------
 *
 * Purpose:	The navigation-beacon voice: a pulsed, LPF'd triangle
 *		wave whose frequency and pulse rate both track how
 *		centered `pan` is (spec §4.6).
 *
 *----------------------------------------------------------------*/

const (
	beaconVolume = 0.012

	beaconCenterBand  = 0.2
	beaconPulseActive = 0.05

	beaconFreqBase  = 400.0
	beaconFreqSpan  = 60.0
	beaconLPFCutoff = 4000.0
)

// beaconVoiceState is the audio-thread-private oscillator/envelope
// state for the beacon. resetOnActivate handles beacon_start's "reset
// beacon phases" and beacon_stop's "reset envelope" the same
// self-detecting-edge way aimVoiceState does, preserving I1.
type beaconVoiceState struct {
	wasActive bool

	phase      float64
	pulsePhase float64
	env        float32
	lpf        onePoleLPF
}

func newBeaconVoiceState() beaconVoiceState {
	return beaconVoiceState{lpf: newOnePoleLPF(beaconLPFCutoff)}
}

func (s *beaconVoiceState) resetOnActivate(active bool) {
	if active && !s.wasActive {
		s.phase = 0
		s.pulsePhase = 0
		s.env = 0
		s.lpf.Reset()
	}

	if !active && s.wasActive {
		s.env = 0
		s.lpf.Reset()
	}

	s.wasActive = active
}

// render produces one sample of the beacon voice, panned per the
// "widened" 2x rule (spec §4.6).
func (s *beaconVoiceState) render(pan float32) (left, right float32) {
	panMag := float64(absF32(pan))

	centeredness := clampF(1-panMag/beaconCenterBand, 0, 1)
	freq := beaconFreqBase + centeredness*beaconFreqSpan

	rate := pulseRate(panMag, beaconPulseActive, beaconCenterBand, minPulseRate, maxPulseRate)

	target := float32(1)
	if rate > 0 {
		target = squareGate(s.pulsePhase)
	}

	s.env = stepEnvelope(s.env, target, smoothCoeff)

	raw := float32(triangleWave(s.phase)) * s.env * beaconVolume
	sample := s.lpf.Step(raw)

	widened := clamp32(pan*2, -1, 1)
	l, r := panGains(widened)
	left = sample * l
	right = sample * r

	s.phase = advancePhase(s.phase, freq, SampleRate)

	if rate > 0 {
		s.pulsePhase = advancePhase(s.pulsePhase, rate, SampleRate)
	} else {
		s.pulsePhase = 0
	}

	return left, right
}
