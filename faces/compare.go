package faces

import "image"

// MeanAbsDiff computes the mean absolute per-channel difference between two
// equally sized images, on a 0-255 scale. 0 means identical, 255 means
// maximal difference (e.g. solid black vs solid white). Returns -1 when the
// sizes differ.
func MeanAbsDiff(a, b image.Image) float64 {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return -1
	}
	var sum uint64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			sum += absDiff(ar>>8, br>>8) + absDiff(ag>>8, bg>>8) + absDiff(abl>>8, bbl>>8)
		}
	}
	pixels := uint64(ab.Dx()) * uint64(ab.Dy())
	if pixels == 0 {
		return -1
	}
	return float64(sum) / float64(pixels*3)
}

func absDiff(a, b uint32) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// Matcher decides whether a probe face belongs to a registered person.
type Matcher struct {
	// Threshold is the mean pixel difference below which two faces are
	// treated as the same person.
	Threshold float64
}

// BestMatch compares the probe against every known face and returns the one
// with the lowest score under the threshold. The lowest-score policy keeps
// the result deterministic when several registrations are close.
func (m Matcher) BestMatch(probe image.Image, known []RegisteredFace) (name string, score float64, ok bool) {
	best := m.Threshold
	for _, face := range known {
		diff := MeanAbsDiff(probe, face.Image)
		if diff < 0 {
			continue
		}
		if diff < best {
			best = diff
			name = face.Name
			ok = true
		}
	}
	return name, best, ok
}
