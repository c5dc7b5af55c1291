package access

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlipVoice_ArmWhileIdleStarts(t *testing.T) {
	b := newBlipVoice(lockBlipFreq)

	var pending atomic.Bool
	pending.Store(true)

	b.maybeStart(&pending)

	assert.Equal(t, blipAttack, b.stage)
	assert.False(t, pending.Load())
}

func TestBlipVoice_ArmWhileRunningCoalesces(t *testing.T) {
	b := newBlipVoice(lockBlipFreq)

	var first atomic.Bool
	first.Store(true)
	b.maybeStart(&first)

	stageBefore := b.stage
	counterBefore := b.counter

	var second atomic.Bool
	second.Store(true)
	b.maybeStart(&second) // arrives mid-envelope: must not retrigger

	assert.Equal(t, stageBefore, b.stage)
	assert.Equal(t, counterBefore, b.counter)
	assert.False(t, second.Load(), "pending flag is still cleared even though coalesced")
}

func TestBlipVoice_FullEnvelopeReturnsToIdleExactlyOnce(t *testing.T) {
	b := newBlipVoice(lockBlipFreq)

	var pending atomic.Bool
	pending.Store(true)
	b.maybeStart(&pending)

	total := blipAttackSamples + blipSustainSamples + blipReleaseSamples
	for i := 0; i < total; i++ {
		b.render()
	}

	assert.Equal(t, blipIdle, b.stage)
	assert.Equal(t, float32(0), b.render(), "idle voice contributes silence")
}

func TestBlipVoice_SustainPeaksAtFullVolume(t *testing.T) {
	b := newBlipVoice(lockBlipFreq)

	var pending atomic.Bool
	pending.Store(true)
	b.maybeStart(&pending)

	for i := 0; i < blipAttackSamples; i++ {
		b.render()
	}

	assert.Equal(t, blipSustain, b.stage)
	assert.Equal(t, float32(1), b.env)
}
