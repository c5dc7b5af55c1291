package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAimParams_Reset(t *testing.T) {
	var a AimParams
	a.reset()

	assert.Equal(t, float32(0), a.pan.Load())
	assert.Equal(t, float32(550), a.pitch.Load())
	assert.Equal(t, float32(1), a.vertError.Load())
	assert.Equal(t, float32(1), a.horizError.Load())
	assert.True(t, a.muted.Load())
	assert.True(t, a.active.Load())
}

func TestAimParams_UpdateNegativePitchOnlyMutes(t *testing.T) {
	var a AimParams
	a.reset()
	a.pan.Store(0.7)

	a.update(0.1, -1, 0.2, 0.3, 0.05, 0.05)

	assert.True(t, a.muted.Load())
	assert.Equal(t, float32(0.7), a.pan.Load(), "fields other than mute are untouched")
}

func TestAimParams_UpdateClampsAndUnmutes(t *testing.T) {
	var a AimParams
	a.reset()

	a.update(5, 3000, 2, -1, 0.9, -1)

	assert.Equal(t, float32(1), a.pan.Load())
	assert.Equal(t, float32(2000), a.pitch.Load())
	assert.Equal(t, float32(1), a.vertError.Load())
	assert.Equal(t, float32(0), a.horizError.Load())
	assert.Equal(t, float32(0.5), a.vertThreshold.Load())
	assert.Equal(t, float32(0.001), a.horizThreshold.Load())
	assert.False(t, a.muted.Load())
}

func TestAimParams_Stop(t *testing.T) {
	var a AimParams
	a.reset()

	a.stop()

	assert.False(t, a.active.Load())
	assert.True(t, a.muted.Load())
}

func TestRadarRing_FIFO(t *testing.T) {
	var r RadarRing

	r.Push(RadarBeep{Pan: 0.1, Volume: 1, Material: MaterialGrass})
	r.Push(RadarBeep{Pan: 0.2, Volume: 1, Material: MaterialMetal})

	b1, ok := r.Pop()
	assert.True(t, ok)
	assert.Equal(t, MaterialGrass, b1.Material)

	b2, ok := r.Pop()
	assert.True(t, ok)
	assert.Equal(t, MaterialMetal, b2.Material)

	_, ok = r.Pop()
	assert.False(t, ok)
}

func TestRadarRing_DropsNewestWhenFull(t *testing.T) {
	var r RadarRing

	for i := 0; i < radarRingCapacity; i++ {
		r.Push(RadarBeep{Material: MaterialGrass})
	}

	r.Push(RadarBeep{Material: MaterialMetal}) // dropped: ring is full

	count := 0
	for {
		b, ok := r.Pop()
		if !ok {
			break
		}

		assert.Equal(t, MaterialGrass, b.Material)
		count++
	}

	assert.Equal(t, radarRingCapacity, count)
}

func TestRadarRing_Reset(t *testing.T) {
	var r RadarRing
	r.Push(RadarBeep{Material: MaterialGrass})

	r.Reset()

	_, ok := r.Pop()
	assert.False(t, ok)
}

func TestParamStore_Shutdown(t *testing.T) {
	p := &ParamStore{}
	p.Aim.reset()
	p.Radar.start()
	p.Beacon.active.Store(true)

	p.Shutdown()

	assert.True(t, p.isShutdown())
	assert.False(t, p.Aim.active.Load())
	assert.False(t, p.Radar.active.Load())
	assert.False(t, p.Beacon.active.Load())
}
