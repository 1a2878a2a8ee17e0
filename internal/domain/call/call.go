// Package call models a consultation call session: a small state machine
// around device capture, an elapsed-time counter, and free-text notes that
// live only as long as the session.
package call

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrMKsharma/BHC-Health-Connect/pkg/capture"
)

type State string

const (
	StateIdle          State = "idle"
	StateConnecting    State = "connecting"
	StateConnectFailed State = "connect_failed"
	StateConnected     State = "connected"
	StateEnded         State = "ended"
)

// Notes are the physician's free-text diagnosis and prescription for this
// call. They are session-local and discarded with the session.
type Notes struct {
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
}

// Session is one consultation call. All methods are safe for concurrent
// use. The capture stream is released exactly once per acquired stream on
// every path into StateEnded, including teardown before the session ever
// connected.
type Session struct {
	ID          uuid.UUID `json:"id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`

	device capture.Device

	mu        sync.Mutex
	state     State
	lastError string
	stream    capture.Stream
	released  bool
	audioOn   bool
	videoOn   bool
	elapsed   int
	notes     Notes
	stopTimer chan struct{}
}

func NewSession(patientName, doctorName string, device capture.Device) *Session {
	return &Session{
		ID:          uuid.New(),
		PatientName: patientName,
		DoctorName:  doctorName,
		device:      device,
		state:       StateIdle,
		audioOn:     true,
		videoOn:     true,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the most recent connect failure, empty when none.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Connect attempts to acquire the capture device and bring the session up.
// A failed attempt leaves the session in StateConnectFailed; the caller may
// retry by calling Connect again. Connecting an ended session is an error;
// connecting a connected session is a no-op.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateEnded:
		s.mu.Unlock()
		return ErrSessionEnded
	case StateConnected, StateConnecting:
		s.mu.Unlock()
		return nil
	}
	s.state = StateConnecting
	device := s.device
	s.mu.Unlock()

	stream, err := device.Acquire(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateEnded {
		// Session was torn down while the device was answering. The stream
		// must not leak.
		if stream != nil {
			stream.Stop()
		}
		return ErrSessionEnded
	}

	if err != nil {
		s.state = StateConnectFailed
		s.lastError = err.Error()
		return fmt.Errorf("acquiring capture device: %w", err)
	}

	s.stream = stream
	s.released = false
	s.lastError = ""
	s.state = StateConnected
	stream.SetAudioEnabled(s.audioOn)
	stream.SetVideoEnabled(s.videoOn)

	s.stopTimer = make(chan struct{})
	go s.runTimer(s.stopTimer)

	return nil
}

// runTimer increments the elapsed counter once per second until stopped.
func (s *Session) runTimer(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.elapsed++
			s.mu.Unlock()
		case <-stop:
			return
		}
	}
}

// ToggleAudio flips the local mute state. The underlying stream stays up.
func (s *Session) ToggleAudio() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audioOn = !s.audioOn
	if s.stream != nil && !s.released {
		s.stream.SetAudioEnabled(s.audioOn)
	}
	return s.audioOn
}

// ToggleVideo flips the local video state. The underlying stream stays up.
func (s *Session) ToggleVideo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoOn = !s.videoOn
	if s.stream != nil && !s.released {
		s.stream.SetVideoEnabled(s.videoOn)
	}
	return s.videoOn
}

func (s *Session) AudioOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audioOn
}

func (s *Session) VideoOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videoOn
}

// SetNotes records the diagnosis/prescription text for the session.
func (s *Session) SetNotes(n Notes) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateEnded {
		return ErrSessionEnded
	}
	s.notes = n
	return nil
}

func (s *Session) GetNotes() Notes {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes
}

// Elapsed returns the connected time in whole seconds.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// End terminates the session from any state: stops the timer and releases
// the capture stream if one was acquired. Safe to call repeatedly; the
// stream is stopped at most once.
func (s *Session) End() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateEnded {
		s.state = StateEnded
		if s.stopTimer != nil {
			close(s.stopTimer)
			s.stopTimer = nil
		}
	}

	if s.stream != nil && !s.released {
		s.stream.Stop()
		s.released = true
		s.stream = nil
	}

	return Summary{
		SessionID:   s.ID,
		PatientName: s.PatientName,
		DoctorName:  s.DoctorName,
		Duration:    FormatDuration(s.elapsed),
		Notes:       s.notes,
	}
}

// Summary is what remains of a call after it ends.
type Summary struct {
	SessionID   uuid.UUID `json:"session_id"`
	PatientName string    `json:"patient_name"`
	DoctorName  string    `json:"doctor_name"`
	Duration    string    `json:"duration"`
	Notes       Notes     `json:"notes"`
}

// FormatDuration renders whole seconds as MM:SS.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
