package access

/*------------------------------------------------------------------
 *
 * Purpose:	The terrain-radar voice: a queue of material-tagged
 *		beeps, dequeued edge-triggered and rendered as a short
 *		Attack/Sustain/Release envelope over a material-selected
 *		waveform (spec §4.5).
 *
 * Description:	The waveform/frequency table is a direct transliteration
 *		of spec §4.5's table; harmonic mixes (water, glass) sum
 *		two sineWave calls at different frequency multiples, the
 *		same additive-synthesis idiom the teacher's dsp.go uses
 *		when building composite filter kernels from primitives.
 *
 *----------------------------------------------------------------*/

const (
	radarBaseVolume = 0.015

	radarAttackSamples  = 88
	radarSustainSamples = 882
	radarReleaseSamples = 132
)

type radarStage int

const (
	radarIdle radarStage = iota
	radarAttack
	radarSustain
	radarRelease
)

// radarVoiceState is the audio-thread-private state for the currently
// playing beep, if any.
type radarVoiceState struct {
	stage   radarStage
	counter int
	phase   float64
	env     float32

	current RadarBeep
}

// maybeDequeue pulls the next beep off the queue when Idle, per the
// edge-triggered consumption rule in spec §4.5.
func (s *radarVoiceState) maybeDequeue(q *RadarRing) {
	if s.stage != radarIdle {
		return
	}

	beep, ok := q.Pop()
	if !ok {
		return
	}

	s.current = beep
	s.stage = radarAttack
	s.counter = 0
	s.phase = 0
	s.env = 0
}

// render advances the envelope/oscillator by one sample and returns
// the panned stereo contribution.
func (s *radarVoiceState) render() (left, right float32) {
	if s.stage == radarIdle {
		return 0, 0
	}

	switch s.stage {
	case radarAttack:
		s.env = float32(s.counter+1) / radarAttackSamples
		s.counter++

		if s.counter >= radarAttackSamples {
			s.env = 1
			s.stage = radarSustain
			s.counter = 0
		}
	case radarSustain:
		s.env = 1
		s.counter++

		if s.counter >= radarSustainSamples {
			s.stage = radarRelease
			s.counter = 0
		}
	case radarRelease:
		s.env = 1 - float32(s.counter+1)/radarReleaseSamples
		s.counter++

		if s.counter >= radarReleaseSamples {
			s.env = 0
			s.stage = radarIdle
			s.counter = 0
		}
	}

	freq, wave := radarWaveform(s.current.Material, s.phase)

	sample := float32(wave) * s.env * s.current.Volume * radarBaseVolume

	l, r := panGains(s.current.Pan)
	left = sample * l
	right = sample * r

	s.phase = advancePhase(s.phase, freq, SampleRate)

	return left, right
}

// radarWaveform returns the base frequency and the current sample of
// the waveform selected by material code (spec §4.5's table).
func radarWaveform(material int8, phase float64) (freq float64, sample float64) {
	switch material {
	case MaterialGrass:
		return 200, sineWave(phase)
	case MaterialConcrete:
		return 400, squareWave(phase)
	case MaterialWood:
		return 300, triangleWave(phase)
	case MaterialMetal:
		return 600, sawtoothWave(phase)
	case MaterialWater:
		return 150, 0.7*sineWave(phase) + 0.3*sineWave(math2Mod1(phase*2.3))
	case MaterialMan:
		return 800, dutyPulseWave(phase, 0.25, 1, -0.3)
	case MaterialGlass:
		return 700, 0.8*sineWave(phase) + 0.2*sineWave(math2Mod1(phase*2))
	default:
		return 350, sineWave(phase)
	}
}

// math2Mod1 wraps a harmonic's scaled phase back into [0,1) so the
// higher-frequency sineWave term stays numerically well-behaved over
// long runs, the same renormalization rationale as advancePhase.
func math2Mod1(phase float64) float64 {
	_, frac := splitFrac(phase)

	return frac
}

func splitFrac(v float64) (whole, frac float64) {
	whole = float64(int64(v))
	frac = v - whole

	if frac < 0 {
		frac++
	}

	return whole, frac
}
