package call

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MrMKsharma/BHC-Health-Connect/pkg/capture"
)

func TestConnectAndEndReleasesStreamOnce(t *testing.T) {
	device := &capture.SimulatedDevice{}
	sess := NewSession("Rajesh Kumar", "Dr. Mehta", device)

	if sess.State() != StateIdle {
		t.Fatalf("fresh session state = %q, want idle", sess.State())
	}

	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if sess.State() != StateConnected {
		t.Fatalf("state = %q, want connected", sess.State())
	}
	if device.AcquiredCount() != 1 {
		t.Fatalf("AcquiredCount = %d, want 1", device.AcquiredCount())
	}

	// Connect on a connected session is a no-op, not a re-acquire.
	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("repeat Connect: %v", err)
	}
	if device.AcquiredCount() != 1 {
		t.Errorf("repeat Connect re-acquired: count = %d", device.AcquiredCount())
	}

	summary := sess.End()
	if sess.State() != StateEnded {
		t.Errorf("state after End = %q", sess.State())
	}
	if device.StoppedCount() != 1 {
		t.Errorf("StoppedCount = %d, want 1", device.StoppedCount())
	}
	if summary.PatientName != "Rajesh Kumar" || summary.DoctorName != "Dr. Mehta" {
		t.Errorf("summary names: %+v", summary)
	}

	// End is idempotent; the stream is never stopped twice.
	sess.End()
	if device.StoppedCount() != 1 {
		t.Errorf("double End stopped the stream again: %d", device.StoppedCount())
	}
}

func TestConnectFailureIsRetryable(t *testing.T) {
	device := &capture.SimulatedDevice{AcquireErr: capture.ErrPermissionDenied}
	sess := NewSession("Sunita Devi", "Dr. Rao", device)

	err := sess.Connect(context.Background())
	if !errors.Is(err, capture.ErrPermissionDenied) {
		t.Fatalf("Connect err = %v, want permission denied", err)
	}
	if sess.State() != StateConnectFailed {
		t.Fatalf("state = %q, want connect_failed", sess.State())
	}
	if sess.LastError() == "" {
		t.Error("LastError empty after failed connect")
	}

	device.AcquireErr = nil
	if err := sess.Connect(context.Background()); err != nil {
		t.Fatalf("retry Connect: %v", err)
	}
	if sess.State() != StateConnected {
		t.Errorf("state after retry = %q", sess.State())
	}
	if sess.LastError() != "" {
		t.Errorf("LastError = %q after successful retry, want empty", sess.LastError())
	}

	sess.End()
	if device.StoppedCount() != 1 {
		t.Errorf("StoppedCount = %d, want 1", device.StoppedCount())
	}
}

func TestConnectOnEndedSession(t *testing.T) {
	device := &capture.SimulatedDevice{}
	sess := NewSession("Amit Patel", "Dr. Singh", device)
	sess.End()

	if err := sess.Connect(context.Background()); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Connect after End: err = %v, want ErrSessionEnded", err)
	}
	if device.AcquiredCount() != 0 {
		t.Errorf("ended session acquired a stream: %d", device.AcquiredCount())
	}
}

// blockingDevice parks Acquire until released so a teardown can race the
// connect attempt deterministically.
type blockingDevice struct {
	proceed chan struct{}
	stream  *recordingStream
}

func (d *blockingDevice) Acquire(ctx context.Context) (capture.Stream, error) {
	<-d.proceed
	return d.stream, nil
}

type recordingStream struct {
	mu    sync.Mutex
	stops int
}

func (s *recordingStream) SetAudioEnabled(bool) {}
func (s *recordingStream) SetVideoEnabled(bool) {}
func (s *recordingStream) Stop() {
	s.mu.Lock()
	s.stops++
	s.mu.Unlock()
}

func (s *recordingStream) stopCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

func TestEndDuringConnectStopsLateStream(t *testing.T) {
	device := &blockingDevice{
		proceed: make(chan struct{}),
		stream:  &recordingStream{},
	}
	sess := NewSession("Rajesh Kumar", "Dr. Mehta", device)

	connectErr := make(chan error, 1)
	go func() {
		connectErr <- sess.Connect(context.Background())
	}()

	waitForState(t, sess, StateConnecting)
	sess.End()
	close(device.proceed)

	if err := <-connectErr; !errors.Is(err, ErrSessionEnded) {
		t.Errorf("Connect err = %v, want ErrSessionEnded", err)
	}
	if got := device.stream.stopCount(); got != 1 {
		t.Errorf("late stream stopped %d times, want 1", got)
	}
	if sess.State() != StateEnded {
		t.Errorf("state = %q, want ended", sess.State())
	}
}

func waitForState(t *testing.T, sess *Session, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sess.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("session never reached state %q (at %q)", want, sess.State())
}

func TestTogglesKeepStreamAlive(t *testing.T) {
	device := &capture.SimulatedDevice{}
	sess := NewSession("Sunita Devi", "Dr. Rao", device)

	if err := sess.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}

	if on := sess.ToggleAudio(); on {
		t.Error("first ToggleAudio should mute")
	}
	if on := sess.ToggleVideo(); on {
		t.Error("first ToggleVideo should disable video")
	}
	if on := sess.ToggleAudio(); !on {
		t.Error("second ToggleAudio should unmute")
	}

	if device.StoppedCount() != 0 {
		t.Errorf("toggling tore down the stream: stops = %d", device.StoppedCount())
	}

	sess.End()
	if device.StoppedCount() != 1 {
		t.Errorf("StoppedCount after End = %d, want 1", device.StoppedCount())
	}
}

func TestNotesLifecycle(t *testing.T) {
	sess := NewSession("Amit Patel", "Dr. Singh", &capture.SimulatedDevice{})

	notes := Notes{Diagnosis: "Viral fever", Prescription: "Paracetamol 500mg"}
	if err := sess.SetNotes(notes); err != nil {
		t.Fatalf("SetNotes: %v", err)
	}
	if got := sess.GetNotes(); got != notes {
		t.Errorf("GetNotes = %+v, want %+v", got, notes)
	}

	summary := sess.End()
	if summary.Notes != notes {
		t.Errorf("summary notes = %+v, want %+v", summary.Notes, notes)
	}
	if err := sess.SetNotes(Notes{Diagnosis: "late"}); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("SetNotes after End: err = %v, want ErrSessionEnded", err)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{125, "02:05"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
