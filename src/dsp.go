package access

/*------------------------------------------------------------------
 *
 * Purpose:	Shared oscillator, envelope, filter, and panning math
 *		used by every voice synthesizer.
 *
 * Description:	The reference direct-digital-synthesis technique in
 *		gen_tone.go advances a fixed-point phase accumulator and
 *		lets unsigned overflow provide the 2*pi wraparound for
 *		free. Go has no clean analog for that trick over a
 *		float64 phase, so these oscillators instead keep phase
 *		as a [0,1) cycle fraction and explicitly wrap it every
 *		sample (spec §9 Open Question decision).
 *
 *----------------------------------------------------------------*/

import "math"

// Pulse-rate mapping constants shared by the primary aim voice, the
// secondary aim voice, and the beacon (spec §4.2, §4.3, §4.6).
const (
	minPulseRate = 2.0
	maxPulseRate = 15.0
)

// clampF clamps a float64 to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// pulseRate implements the rate = MAX + t*(MIN-MAX) mapping common to
// the primary voice (vertError/vertThreshold), the secondary voice
// (|pan|/horizThreshold), and the beacon (|pan|/0.05): below
// threshold the tone is continuous (rate 0); above it, rate falls
// linearly from maxRate at the threshold to minRate at
// activateThreshold and beyond.
func pulseRate(value, threshold, activateThreshold, minRate, maxRate float64) float64 {
	if value < threshold {
		return 0
	}

	denom := activateThreshold - threshold
	if denom <= 0 {
		return minRate
	}

	t := clampF((value-threshold)/denom, 0, 1)

	return maxRate + t*(minRate-maxRate)
}

// advancePhase moves a [0,1) cycle-fraction phase forward by
// freq/sampleRate and wraps it back into range.
func advancePhase(phase, freq, sampleRate float64) float64 {
	phase += freq / sampleRate
	if phase >= 1 {
		phase = math.Mod(phase, 1)
	} else if phase < 0 {
		phase = math.Mod(phase, 1) + 1
	}

	return phase
}

// squareGate is the 50%-duty pulse envelope target used to
// amplitude-gate the primary, secondary, and beacon voices. A rate of
// zero means "continuous" (spec invariant I3): the caller is expected
// to reset pulsePhase to 0 itself in that case so the next pulse epoch
// starts clean.
func squareGate(pulsePhase float64) float32 {
	if pulsePhase < 0.5 {
		return 1
	}

	return 0
}

// stepEnvelope moves env linearly toward target by at most coeff per
// call, used for the 5ms/5ms attack/release smoothing on the
// continuous voices (spec §4.2-§4.6).
func stepEnvelope(env, target, coeff float32) float32 {
	if env < target {
		env += coeff
		if env > target {
			env = target
		}
	} else if env > target {
		env -= coeff
		if env < target {
			env = target
		}
	}

	return env
}

// envelopeCoeff is the per-sample step size for an attack/release ramp
// of the given duration, e.g. envelopeCoeff(5) for the 5ms ramps used
// throughout.
func envelopeCoeff(ms float64) float32 {
	samplesPerMs := SampleRate / 1000.0

	return float32(1.0 / (ms * samplesPerMs))
}

var smoothCoeff = envelopeCoeff(5)

// panGains implements the linear panning law (spec glossary "Pan"):
// leftGain = pan<=0 ? 1 : 1-pan, rightGain = pan>=0 ? 1 : 1+pan.
func panGains(pan float32) (left, right float32) {
	if pan <= 0 {
		left = 1
	} else {
		left = 1 - pan
	}

	if pan >= 0 {
		right = 1
	} else {
		right = 1 + pan
	}

	return left, right
}

// onePoleLPF is a one-pole low-pass filter with its coefficient
// derived once from a cutoff frequency (spec §4.3, §4.6):
// alpha = 1 - exp(-2*pi*cutoff/sampleRate).
type onePoleLPF struct {
	alpha float32
	y     float32
}

func newOnePoleLPF(cutoffHz float64) onePoleLPF {
	alpha := 1 - math.Exp(-2*math.Pi*cutoffHz/SampleRate)

	return onePoleLPF{alpha: float32(alpha)}
}

func (f *onePoleLPF) Step(x float32) float32 {
	f.y += f.alpha * (x - f.y)

	return f.y
}

func (f *onePoleLPF) Reset() {
	f.y = 0
}

// Waveform generators, phase in cycle-fraction [0,1).

func sineWave(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func triangleWave(phase float64) float64 {
	if phase < 0.5 {
		return -1 + 4*phase
	}

	return 3 - 4*phase
}

func squareWave(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}

	return -1
}

func sawtoothWave(phase float64) float64 {
	return 2*phase - 1
}

// dutyPulseWave is a pulse wave at the given duty cycle with distinct
// high/low levels, used by the radar "man" material (+1/-0.3 at 25%
// duty, spec §4.5).
func dutyPulseWave(phase, duty, high, low float64) float64 {
	if phase < duty {
		return high
	}

	return low
}
