package stream

import (
	"errors"
	"sync"
)

var ErrCameraBusy = errors.New("camera is in use by another stream")

// Guard serializes access to the physical camera device. Registration and
// recognition streams each open the device, so without this two concurrent
// requests would race over it.
type Guard struct {
	mutex sync.Mutex
}

// Acquire claims the device for one stream. Returns ErrCameraBusy if
// another stream holds it; otherwise the returned release function must be
// called on every exit path of the stream.
func (g *Guard) Acquire() (release func(), err error) {
	if !g.mutex.TryLock() {
		return nil, ErrCameraBusy
	}
	return g.mutex.Unlock, nil
}

var deviceGuard = &Guard{}

// Acquire claims the process-wide camera device.
func Acquire() (release func(), err error) {
	return deviceGuard.Acquire()
}
