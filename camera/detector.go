package camera

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Detector locates faces in a frame using a Haar cascade. It is loaded once
// at startup and shared by all streams; the mutex serializes access since
// the underlying classifier is not safe for concurrent detection.
type Detector struct {
	classifier gocv.CascadeClassifier
	mutex      sync.Mutex
}

func NewDetector(cascadeFile string) (*Detector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadeFile) {
		classifier.Close()
		return nil, fmt.Errorf("loading cascade classifier from %s", cascadeFile)
	}
	return &Detector{classifier: classifier}, nil
}

// DetectFaces returns the bounding boxes of all faces found in the frame,
// in frame-pixel coordinates.
func (d *Detector) DetectFaces(img image.Image) []image.Rectangle {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorRGBToGray)

	d.mutex.Lock()
	defer d.mutex.Unlock()
	// Standard frontal-face tuning: scale 1.3, 5 neighbors
	return d.classifier.DetectMultiScaleWithParams(
		gray, 1.3, 5, 0, image.Point{}, image.Point{})
}

func (d *Detector) Close() {
	d.classifier.Close()
}
