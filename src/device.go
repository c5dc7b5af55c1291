package access

/*------------------------------------------------------------------
 *
 * Purpose:	Wrap the OS playback device, calling back at device
 *		cadence with a frame count (spec §4.9).
 *
 * Description:	This is the idiomatic-Go counterpart of the teacher's
 *		audio.go: audio_open/audio_close became Ensure/Stop on
 *		a Device, and the ALSA snd_pcm_* calls became
 *		gordonklaus/portaudio's OpenDefaultStream. The lifecycle
 *		state machine (Uninitialized -> Initializing -> Running
 *		-> Stopping) and the deliberate refusal to release the
 *		device object on detach both carry over unchanged.
 *
 *----------------------------------------------------------------*/

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// SampleRate is the engine's fixed output sample rate (spec §3).
const SampleRate = 44100

type deviceState int

const (
	deviceUninitialized deviceState = iota
	deviceInitializing
	deviceRunning
	deviceStopping
)

// audioStream is the slice of *portaudio.Stream that Device needs,
// kept narrow so tests can supply a fake and exercise the lifecycle
// state machine without a real sound card.
type audioStream interface {
	Start() error
	Stop() error
}

// streamOpener opens a new stereo-output stream at SampleRate driving
// callback. Swappable in tests; portaudioOpener in production.
type streamOpener func(callback func([]float32)) (audioStream, error)

func portaudioOpener(callback func([]float32)) (audioStream, error) {
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, 0, callback)
	if err != nil {
		return nil, fmt.Errorf("open default stream: %w", err)
	}

	return stream, nil
}

// Device owns the lazily-created OS audio device. Its public methods
// (Ensure, Stop) are called only from the command thread; the
// callback it starts runs on the audio thread and never touches
// Device's own state.
type Device struct {
	mu     sync.Mutex
	state  deviceState
	stream audioStream
	open   streamOpener
	log    logger
}

// logger is the narrow slice of *charmbracelet/log.Logger the engine
// needs, so device.go doesn't have to import it just to take one.
type logger interface {
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Debug(msg interface{}, keyvals ...interface{})
}

func newDevice(log logger) *Device {
	return &Device{state: deviceUninitialized, open: portaudioOpener, log: log}
}

// Ensure lazily opens and starts the device on the first call, per
// spec §4.9's "Uninitialized -> Initializing -> Running" transition.
// A later call when already Running is a no-op. portaudio.Initialize
// is idempotent-by-package-level-ref-count, matching the "init on
// first use" requirement without a process-wide sync.Once leaking
// across engine instances in tests.
func (d *Device) Ensure(callback func([]float32)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == deviceRunning {
		return nil
	}

	d.state = deviceInitializing

	if err := portaudio.Initialize(); err != nil {
		d.log.Error("portaudio initialize failed", "err", err)

		return fmt.Errorf("portaudio initialize: %w", err)
	}

	stream, err := d.open(callback)
	if err != nil {
		d.log.Error("audio device open failed", "err", err)

		return err
	}

	if err := stream.Start(); err != nil {
		d.log.Error("audio device start failed", "err", err)

		return fmt.Errorf("start stream: %w", err)
	}

	d.stream = stream
	d.state = deviceRunning
	d.log.Info("audio device started")

	return nil
}

// Stop halts playback but deliberately does not close the stream or
// call portaudio.Terminate: the reference implementation found the
// underlying driver could deadlock on unload paths if the device is
// destroyed during process detach, and chose to leak the handle
// rather than risk it (spec §4.9, §9 "Device teardown hazard").
func (d *Device) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != deviceRunning {
		return
	}

	d.state = deviceStopping

	if d.stream != nil {
		if err := d.stream.Stop(); err != nil {
			d.log.Error("audio device stop failed", "err", err)
		}
	}

	d.log.Info("audio device stopped")
}
