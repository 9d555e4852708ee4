package stream

import (
	"context"
	"fmt"
	"log"
	"time"

	"attendance/config"
	"attendance/faces"
	"attendance/utils"
)

// Recognition captures frames, matches every detected face against the
// registered set and records attendance for matches - at most one ledger
// row per person per day. Unmatched faces are labeled "Unknown". The
// registered set is loaded once at flow start; faces registered while the
// stream runs are picked up on the next stream. The caller owns src and
// must close it.
func Recognition(ctx context.Context, src FrameSource, locator FaceLocator, store *faces.Store, matcher faces.Matcher, ledger Ledger, emit EmitFunc) error {
	known, err := store.List()
	if err != nil {
		return fmt.Errorf("loading registered faces: %w", err)
	}
	log.Printf("Recognition stream started with %d registered face(s)", len(known))
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		frame, err := src.Read()
		if err != nil {
			return nil
		}
		regions := locator.DetectFaces(frame)
		canvas := toRGBA(frame)
		for _, region := range regions {
			probe := utils.NormalizeFace(cropFace(frame, region), uint(store.Size()))
			label := "Unknown"
			if name, score, ok := matcher.BestMatch(probe, known); ok {
				label = name
				inserted, err := ledger.Record(name, time.Now())
				if err != nil {
					return fmt.Errorf("recording attendance for %q: %w", name, err)
				}
				if inserted {
					log.Printf("Attendance recorded for %q (score %.1f)", name, score)
				}
			}
			drawRect(canvas, region, recognitionColor)
			drawLabel(canvas, label, region.Min.X, region.Min.Y-10, recognitionColor)
		}
		data, err := utils.EncodeJPEG(canvas, config.JPEG_QUALITY)
		if err != nil {
			return err
		}
		if emit(data) != nil {
			return nil
		}
	}
}
