package access

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func snapshotFor(pan, pitch, vertErr, horizErr, vertThreshold, horizThreshold float32) aimSnapshot {
	return aimSnapshot{
		pan:            pan,
		pitch:          pitch,
		vertError:      vertErr,
		horizError:     horizErr,
		vertThreshold:  vertThreshold,
		horizThreshold: horizThreshold,
		active:         true,
		muted:          false,
	}
}

func TestPrimary_ContinuousBelowThreshold(t *testing.T) {
	s := newAimVoiceState()
	snap := snapshotFor(0, 550, 0.01, 1, 0.05, 0.05)

	var last float32
	for i := 0; i < 5000; i++ {
		l, _ := s.renderPrimary(snap)
		last = l
	}

	// after the attack ramp settles, the envelope should be at 1 (no
	// gating), so the sample should stay within the voice's amplitude
	// budget and the pulse phase should stay pinned at 0.
	assert.Equal(t, float32(1), s.primaryEnv, "continuous tone: envelope settles fully open")
	assert.LessOrEqual(t, math.Abs(float64(last)), primaryBaseVolume*1.0001)
	assert.Equal(t, float64(0), s.primaryPulsePhase, "rate 0 keeps the pulse phase pinned at 0")
}

func TestSecondary_GatedOffOutsideActivation(t *testing.T) {
	s := newAimVoiceState()
	snap := snapshotFor(0.5, 550, 0, 0, 0.05, 0.05) // |pan|=0.5 >= 0.2

	l, r := s.renderSecondary(snap)

	assert.Equal(t, float32(0), l)
	assert.Equal(t, float32(0), r)
}

func TestSecondary_CenteredPlaysBothChannels(t *testing.T) {
	s := newAimVoiceState()
	snap := snapshotFor(0, 550, 0, 0, 0.05, 0.05)

	for i := 0; i < 200; i++ {
		l, r := s.renderSecondary(snap)
		if i == 199 {
			assert.Equal(t, l, r)
		}
	}
}

func TestSecondary_PannedLeftOnlyPlaysLeft(t *testing.T) {
	s := newAimVoiceState()
	snap := snapshotFor(-0.15, 550, 0, 0, 0.01, 0.01) // |pan| >= horizThreshold, pan<0

	_, r := s.renderSecondary(snap)

	assert.Equal(t, float32(0), r)
}

func TestAimVoiceState_ResetOnActivateEdge(t *testing.T) {
	s := newAimVoiceState()
	s.primaryPhase = 0.5
	s.primaryEnv = 0.8

	s.resetOnActivate(true) // rising edge from zero-value wasActive=false

	assert.Equal(t, float64(0), s.primaryPhase)
	assert.Equal(t, float32(0), s.primaryEnv)
}

func TestAimVoiceState_NoResetWhileAlreadyActive(t *testing.T) {
	s := newAimVoiceState()
	s.resetOnActivate(true)
	s.primaryPhase = 0.33

	s.resetOnActivate(true) // still active: no reset

	assert.Equal(t, float64(0.33), s.primaryPhase)
}
