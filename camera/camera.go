package camera

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

var ErrDeviceClosed = errors.New("camera device closed")

// Camera wraps a single video capture device. One Camera is opened per
// stream and must be closed when the stream ends - see Acquire.
type Camera struct {
	capture *gocv.VideoCapture
	frame   gocv.Mat
}

func Open(device string) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("opening camera %q: %w", device, err)
	}
	return &Camera{
		capture: capture,
		frame:   gocv.NewMat(),
	}, nil
}

// Read grabs the next frame. ErrDeviceClosed means the device stopped
// producing frames and the stream should end cleanly.
func (c *Camera) Read() (image.Image, error) {
	if ok := c.capture.Read(&c.frame); !ok {
		return nil, ErrDeviceClosed
	}
	if c.frame.Empty() {
		return nil, ErrDeviceClosed
	}
	img, err := c.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting frame: %w", err)
	}
	return img, nil
}

func (c *Camera) Close() error {
	c.frame.Close()
	return c.capture.Close()
}
