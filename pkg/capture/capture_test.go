package capture

import (
	"context"
	"errors"
	"testing"
)

func TestSimulatedDeviceCounts(t *testing.T) {
	d := &SimulatedDevice{}

	s1, err := d.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	s2, err := d.Acquire(context.Background())
	if err != nil {
		t.Fatalf("second Acquire: %v", err)
	}
	if d.AcquiredCount() != 2 {
		t.Errorf("AcquiredCount = %d, want 2", d.AcquiredCount())
	}

	s1.Stop()
	s1.Stop() // repeated stops on the same stream count once
	s2.Stop()
	if d.StoppedCount() != 2 {
		t.Errorf("StoppedCount = %d, want 2", d.StoppedCount())
	}
}

func TestSimulatedDeviceFailure(t *testing.T) {
	d := &SimulatedDevice{AcquireErr: ErrPermissionDenied}

	if _, err := d.Acquire(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("err = %v, want ErrPermissionDenied", err)
	}
	if d.AcquiredCount() != 0 {
		t.Errorf("failed acquire counted: %d", d.AcquiredCount())
	}
}

func TestAcquireHonorsContext(t *testing.T) {
	d := &SimulatedDevice{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := d.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
