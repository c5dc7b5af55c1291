package access

/*------------------------------------------------------------------
 *
 * Purpose:	The two one-shot aim blips: a lock tone (800 Hz) and an
 *		unlock tone (500 Hz), each a trapezoidal Attack/Sustain/
 *		Release envelope over a sine (spec §4.4).
 *
 * Description:	Mirrors the Idle/Attack/Sustain/Release shape the
 *		teacher's ptt.go state machine uses for key-up/key-down
 *		timing, applied here to an amplitude envelope instead of
 *		a GPIO line.
 *
 *----------------------------------------------------------------*/

import "sync/atomic"

const (
	blipVolume = 0.30

	blipAttackSamples  = 44
	blipSustainSamples = 882
	blipReleaseSamples = 88

	lockBlipFreq   = 800.0
	unlockBlipFreq = 500.0
)

type blipStage int

const (
	blipIdle blipStage = iota
	blipAttack
	blipSustain
	blipRelease
)

// BlipVoice is one Idle->Attack->Sustain->Release one-shot generator.
// pending is set by a command handler and cleared by the audio thread
// the moment it starts a new envelope (spec §5 "Blip pending flags");
// a set that arrives while already running is coalesced - it has no
// effect until the machine returns to Idle.
type BlipVoice struct {
	freq    float64
	stage   blipStage
	counter int
	phase   float64
	env     float32
}

func newBlipVoice(freq float64) BlipVoice {
	return BlipVoice{freq: freq}
}

// maybeStart begins a new envelope if pending is true and the voice is
// currently Idle, clearing pending either way (spec §4.4, §5).
func (b *BlipVoice) maybeStart(pending *atomic.Bool) {
	if !pending.CompareAndSwap(true, false) {
		return
	}

	if b.stage == blipIdle {
		b.phase = 0
		b.env = 0
		b.stage = blipAttack
		b.counter = 0
	}
}

// render advances the envelope by one sample and returns the mono
// output, which the caller mixes into both channels.
func (b *BlipVoice) render() float32 {
	if b.stage == blipIdle {
		return 0
	}

	switch b.stage {
	case blipAttack:
		b.env = float32(b.counter+1) / blipAttackSamples
		b.counter++

		if b.counter >= blipAttackSamples {
			b.env = 1
			b.stage = blipSustain
			b.counter = 0
		}
	case blipSustain:
		b.env = 1
		b.counter++

		if b.counter >= blipSustainSamples {
			b.stage = blipRelease
			b.counter = 0
		}
	case blipRelease:
		b.env = 1 - float32(b.counter+1)/blipReleaseSamples
		b.counter++

		if b.counter >= blipReleaseSamples {
			b.env = 0
			b.stage = blipIdle
			b.counter = 0
		}
	}

	sample := float32(sineWave(b.phase)) * b.env * blipVolume
	b.phase = advancePhase(b.phase, b.freq, SampleRate)

	return sample
}
