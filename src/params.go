package access

/*------------------------------------------------------------------
 *
 * Purpose:	Shared parameter store: the scalar slots and the radar
 *		beep queue that sit between the command thread and the
 *		audio callback thread.
 *
 * Description:	Every field here is written by a command handler and
 *		read by the audio callback, or vice versa for the radar
 *		ring buffer. Nothing here ever blocks or allocates, so
 *		it is safe to touch from the real-time audio thread.
 *
 *		Scalar fields tolerate relaxed ordering: a caller may
 *		observe an aim_update's pan and pitch split across two
 *		callback invocations (I2). The radar ring and the blip
 *		pending flags get the extra handshake described in
 *		spec section 5.
 *
 *----------------------------------------------------------------*/

import (
	"math"
	"sync/atomic"
)

// atomicFloat32 is a float32 slot with atomic load/store, built on
// the stdlib's atomic.Uint32 over the IEEE-754 bit pattern. No example
// repo in the corpus ships a lock-free atomic-float primitive more
// suited to a hard-real-time audio callback than this; see DESIGN.md.
type atomicFloat32 struct {
	bits atomic.Uint32
}

func (f *atomicFloat32) Store(v float32) {
	f.bits.Store(math.Float32bits(v))
}

func (f *atomicFloat32) Load() float32 {
	return math.Float32frombits(f.bits.Load())
}

// clamp32 restricts v to [lo, hi].
func clamp32(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// AimParams holds the aim voice's shared scalar state (spec §3 "Aim").
type AimParams struct {
	pan               atomicFloat32
	pitch             atomicFloat32
	vertError         atomicFloat32
	horizError        atomicFloat32
	vertThreshold     atomicFloat32
	horizThreshold    atomicFloat32
	active            atomic.Bool
	muted             atomic.Bool
	blipPending       atomic.Bool
	unlockBlipPending atomic.Bool
}

// reset applies the aim_start defaults (spec §4.1): pan=0, pitch=550,
// vertError=horizError=1, muted=true, active=true. Thresholds are left
// as-is; they only arrive via aim_update.
func (a *AimParams) reset() {
	a.pan.Store(0)
	a.pitch.Store(550)
	a.vertError.Store(1)
	a.horizError.Store(1)
	a.muted.Store(true)
	a.active.Store(true)
}

// update applies an aim_update command. A negative pitch means "mute
// without altering the rest" (spec §4.1); otherwise every field is
// clamped to its documented range and committed, and the voice is
// unmuted.
func (a *AimParams) update(pan, pitch, vertErr, horizErr, vertThreshold, horizThreshold float32) {
	if pitch < 0 {
		a.muted.Store(true)

		return
	}

	a.pan.Store(clamp32(pan, -1, 1))
	a.pitch.Store(clamp32(pitch, 100, 2000))
	a.vertError.Store(clamp32(vertErr, 0, 1))
	a.horizError.Store(clamp32(horizErr, 0, 1))
	a.vertThreshold.Store(clamp32(vertThreshold, 0.001, 0.5))
	a.horizThreshold.Store(clamp32(horizThreshold, 0.001, 0.5))
	a.muted.Store(false)
}

func (a *AimParams) stop() {
	a.active.Store(false)
	a.muted.Store(true)
}

// aimSnapshot is the set of aim values read once at the top of an
// audio buffer (spec §4.7 step 2), so one callback invocation always
// renders against an internally-consistent-per-field, but not
// tuple-atomic, view.
type aimSnapshot struct {
	pan            float32
	pitch          float32
	vertError      float32
	horizError     float32
	vertThreshold  float32
	horizThreshold float32
	active         bool
	muted          bool
}

func (a *AimParams) snapshot() aimSnapshot {
	return aimSnapshot{
		pan:            a.pan.Load(),
		pitch:          a.pitch.Load(),
		vertError:      a.vertError.Load(),
		horizError:     a.horizError.Load(),
		vertThreshold:  a.vertThreshold.Load(),
		horizThreshold: a.horizThreshold.Load(),
		active:         a.active.Load(),
		muted:          a.muted.Load(),
	}
}

// RadarBeep is one queued radar event (spec §3 "Radar").
type RadarBeep struct {
	Pan      float32
	Volume   float32
	Material int8
}

// radarRingCapacity must be a power of two (spec §9 "Ring buffer").
const radarRingCapacity = 64

// RadarRing is a fixed-capacity, single-producer/single-consumer,
// wait-free ring buffer of radar beeps. The producer (command thread)
// owns head, the consumer (audio thread) owns tail; each side only
// ever writes its own index, matching the handshake in spec §5.
//
// Overflow policy: drop-newest-on-full (spec §9 Open Question). The
// producer checks occupancy before writing, so a full ring silently
// discards the newest beep rather than overwriting one the consumer
// might still be about to read.
type RadarRing struct {
	buf  [radarRingCapacity]RadarBeep
	head atomic.Uint32 // producer-owned; release-stored after the slot write.
	tail atomic.Uint32 // consumer-owned; release-stored after the slot read.
}

// Push enqueues a beep. Called only from the command thread.
func (r *RadarRing) Push(b RadarBeep) {
	head := r.head.Load()
	tail := r.tail.Load()

	if head-tail >= radarRingCapacity {
		return // full: drop newest.
	}

	r.buf[head&(radarRingCapacity-1)] = b
	r.head.Store(head + 1) // release: publishes the slot write above.
}

// Pop dequeues the oldest beep, if any. Called only from the audio
// thread.
func (r *RadarRing) Pop() (RadarBeep, bool) {
	tail := r.tail.Load()
	head := r.head.Load() // acquire: pairs with the producer's release store.

	if tail == head {
		return RadarBeep{}, false
	}

	b := r.buf[tail&(radarRingCapacity-1)]
	r.tail.Store(tail + 1)

	return b, true
}

// Reset drops every currently-queued beep. It only ever touches head,
// which is the producer's own field, so it is safe to call from the
// command thread without racing the consumer's tail.
func (r *RadarRing) Reset() {
	r.head.Store(r.tail.Load())
}

// RadarParams holds the radar voice's shared state.
type RadarParams struct {
	active atomic.Bool
	Queue  RadarRing
}

func (r *RadarParams) start() {
	r.Queue.Reset()
	r.active.Store(true)
}

func (r *RadarParams) stop() {
	r.active.Store(false)
	r.Queue.Reset()
}

// BeaconParams holds the navigation-beacon voice's shared state.
type BeaconParams struct {
	active atomic.Bool
	pan    atomicFloat32
}

func (b *BeaconParams) stop() {
	b.active.Store(false)
}

// ParamStore bundles every shared slot the audio callback reads.
type ParamStore struct {
	Aim      AimParams
	Radar    RadarParams
	Beacon   BeaconParams
	shutdown atomic.Bool
}

func (p *ParamStore) Shutdown() {
	p.shutdown.Store(true)
	p.Aim.stop()
	p.Radar.active.Store(false)
	p.Beacon.stop()
}

func (p *ParamStore) isShutdown() bool {
	return p.shutdown.Load()
}
