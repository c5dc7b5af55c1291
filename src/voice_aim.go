package access

/*------------------------------------------------------------------
 *
 * Purpose:	The aim voice: a panned primary sine pulsed by vertical
 *		error, and a mono-ish filtered triangle "click" sub-voice
 *		pulsed by horizontal error (spec §4.2, §4.3).
 *
 * Description:	All state here is audio-thread-private (invariant I1):
 *		phase accumulators, pulse phases, envelopes, and the
 *		secondary voice's one-pole LPF. Nothing here is touched
 *		by the command thread; it only ever reads a fresh
 *		aimSnapshot once per buffer, the way gen_tone.go's
 *		tone generators are driven by values passed in rather
 *		than shared mutable globals.
 *
 *----------------------------------------------------------------*/

const (
	vertActivateThreshold  = 0.4
	horizActivateThreshold = 0.2

	primaryBaseVolume = 0.01
	clickVolume       = 0.008

	clickFreqMin = 500.0
	clickFreqMax = 560.0

	clickLPFCutoffHz = 4100.0
)

// aimVoiceState holds the audio-thread-private oscillator state for
// both the primary and secondary aim sub-voices.
type aimVoiceState struct {
	wasActive bool

	primaryPhase      float64
	primaryPulsePhase float64
	primaryEnv        float32

	secondaryPhase      float64
	secondaryPulsePhase float64
	secondaryEnv        float32
	secondaryLPF        onePoleLPF
}

func newAimVoiceState() aimVoiceState {
	return aimVoiceState{secondaryLPF: newOnePoleLPF(clickLPFCutoffHz)}
}

// resetOnActivate clears all private state on the rising edge of
// aim.active, implementing aim_start's "reset aim parameters" without
// the command thread ever touching audio-private fields (preserving
// I1): the audio thread notices the edge itself.
func (s *aimVoiceState) resetOnActivate(active bool) {
	if active && !s.wasActive {
		s.primaryPhase = 0
		s.primaryPulsePhase = 0
		s.primaryEnv = 0
		s.secondaryPhase = 0
		s.secondaryPulsePhase = 0
		s.secondaryEnv = 0
		s.secondaryLPF.Reset()
	}

	s.wasActive = active
}

// renderPrimary produces one sample of the vertical-error voice,
// panned, and advances its phase/envelope state (spec §4.2).
func (s *aimVoiceState) renderPrimary(snap aimSnapshot) (left, right float32) {
	rate := pulseRate(float64(snap.vertError), float64(snap.vertThreshold), vertActivateThreshold, minPulseRate, maxPulseRate)

	target := float32(1)
	if rate > 0 {
		target = squareGate(s.primaryPulsePhase)
	}

	if snap.muted {
		target = 0
	}

	s.primaryEnv = stepEnvelope(s.primaryEnv, target, smoothCoeff)

	sample := float32(sineWave(s.primaryPhase)) * s.primaryEnv * primaryBaseVolume

	l, r := panGains(snap.pan)
	left = sample * l
	right = sample * r

	s.primaryPhase = advancePhase(s.primaryPhase, float64(snap.pitch), SampleRate)

	if rate > 0 {
		s.primaryPulsePhase = advancePhase(s.primaryPulsePhase, rate, SampleRate)
	} else {
		s.primaryPulsePhase = 0
	}

	return left, right
}

// renderSecondary produces one sample of the horizontal-click voice.
// It contributes nothing once |pan| reaches horizActivateThreshold
// (spec §4.3, and the quantified invariant in spec §8).
func (s *aimVoiceState) renderSecondary(snap aimSnapshot) (left, right float32) {
	panMag := absF32(snap.pan)
	if panMag >= horizActivateThreshold {
		return 0, 0
	}

	t := clampF(float64(panMag)/horizActivateThreshold, 0, 1)
	freq := clickFreqMax + t*(clickFreqMin-clickFreqMax)

	rate := pulseRate(float64(panMag), float64(snap.horizThreshold), horizActivateThreshold, minPulseRate, maxPulseRate)

	target := float32(1)
	if rate > 0 {
		target = squareGate(s.secondaryPulsePhase)
	}

	if snap.muted {
		target = 0
	}

	s.secondaryEnv = stepEnvelope(s.secondaryEnv, target, smoothCoeff)

	raw := float32(triangleWave(s.secondaryPhase)) * s.secondaryEnv * clickVolume
	sample := s.secondaryLPF.Step(raw)

	switch {
	case panMag < snap.horizThreshold:
		left, right = sample, sample
	case snap.pan < 0:
		left, right = sample, 0
	default:
		left, right = 0, sample
	}

	s.secondaryPhase = advancePhase(s.secondaryPhase, freq, SampleRate)

	if rate > 0 {
		s.secondaryPulsePhase = advancePhase(s.secondaryPulsePhase, rate, SampleRate)
	} else {
		s.secondaryPulsePhase = 0
	}

	return left, right
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}
