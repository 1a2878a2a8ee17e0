// Package capture defines the audio/video device boundary for consultation
// calls. The default implementation simulates a device; a real media
// backend substitutes behind the same two interfaces.
package capture

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrPermissionDenied = errors.New("camera access denied: check device permissions")
	ErrNoDevice         = errors.New("no camera or microphone found")
)

// Stream is an acquired audio+video stream. Tracks can be enabled and
// disabled independently without tearing the stream down. Stop releases
// the underlying device; callers own the exactly-once discipline.
type Stream interface {
	SetAudioEnabled(enabled bool)
	SetVideoEnabled(enabled bool)
	Stop()
}

// Device hands out capture streams. Acquire blocks until the device answers
// or ctx is done.
type Device interface {
	Acquire(ctx context.Context) (Stream, error)
}

// SimulatedDevice stands in for real hardware. AcquireErr, when set, makes
// every Acquire fail with that error; this is how permission-denied paths
// are exercised.
type SimulatedDevice struct {
	AcquireErr error

	mu       sync.Mutex
	acquired int
	stopped  int
}

func (d *SimulatedDevice) Acquire(ctx context.Context) (Stream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.AcquireErr != nil {
		return nil, d.AcquireErr
	}
	d.mu.Lock()
	d.acquired++
	d.mu.Unlock()
	return &simulatedStream{device: d, audio: true, video: true}, nil
}

// AcquiredCount reports how many streams have been handed out.
func (d *SimulatedDevice) AcquiredCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.acquired
}

// StoppedCount reports how many Stop calls have reached the device.
func (d *SimulatedDevice) StoppedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

type simulatedStream struct {
	device *SimulatedDevice

	mu      sync.Mutex
	audio   bool
	video   bool
	stopped bool
}

func (s *simulatedStream) SetAudioEnabled(enabled bool) {
	s.mu.Lock()
	s.audio = enabled
	s.mu.Unlock()
}

func (s *simulatedStream) SetVideoEnabled(enabled bool) {
	s.mu.Lock()
	s.video = enabled
	s.mu.Unlock()
}

// Stop releases the stream. Repeated calls count once; StoppedCount is the
// number of streams released, not the number of Stop calls.
func (s *simulatedStream) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.device.mu.Lock()
	s.device.stopped++
	s.device.mu.Unlock()
}
