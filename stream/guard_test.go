package stream

import (
	"errors"
	"testing"
)

func TestGuardExclusive(t *testing.T) {
	guard := &Guard{}

	release, err := guard.Acquire()
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if _, err := guard.Acquire(); !errors.Is(err, ErrCameraBusy) {
		t.Errorf("second Acquire err = %v, want ErrCameraBusy", err)
	}

	release()
	release2, err := guard.Acquire()
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	release2()
}
