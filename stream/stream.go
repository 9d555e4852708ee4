// Package stream contains the registration and recognition flows. Both are
// unbounded producers of annotated JPEG frames; they run until the frame
// source stops, the context is cancelled, or the consumer goes away.
package stream

import (
	"image"
	"time"
)

// FrameSource produces a sequence of frames from a live camera.
// Read blocks until the next frame is available.
type FrameSource interface {
	Read() (image.Image, error)
	Close() error
}

// FaceLocator finds face bounding boxes within a frame.
type FaceLocator interface {
	DetectFaces(img image.Image) []image.Rectangle
}

// Ledger records attendance. Record returns whether a new row was inserted
// - at most one per (name, day) no matter how many frames match.
type Ledger interface {
	Record(name string, at time.Time) (bool, error)
}

// LedgerFunc adapts a plain function to the Ledger interface.
type LedgerFunc func(name string, at time.Time) (bool, error)

func (f LedgerFunc) Record(name string, at time.Time) (bool, error) {
	return f(name, at)
}

// EmitFunc consumes one encoded JPEG frame. A non-nil error means the
// consumer is gone and the flow should stop.
type EmitFunc func(jpeg []byte) error
