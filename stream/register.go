package stream

import (
	"context"
	"log"

	"attendance/config"
	"attendance/faces"
	"attendance/utils"
)

// Registration captures frames and saves the first detected face under the
// given name - exactly once per invocation. Every detected region is
// annotated with a rectangle and a "<name> Registered" label. The flow runs
// until the source stops, the context is cancelled or emit reports the
// consumer gone. The caller owns src and must close it.
func Registration(ctx context.Context, src FrameSource, locator FaceLocator, store *faces.Store, name string, emit EmitFunc) error {
	saved := false
	label := name + " Registered"
	if name == "" {
		// Registration page was skipped - keep streaming but never save
		label = "No name set"
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		frame, err := src.Read()
		if err != nil {
			// Device stopped producing frames - end the stream cleanly
			return nil
		}
		regions := locator.DetectFaces(frame)
		canvas := toRGBA(frame)
		for _, region := range regions {
			if !saved && name != "" {
				if err := store.Save(name, cropFace(frame, region)); err != nil {
					log.Printf("Error saving face for %q: %v", name, err)
				} else {
					saved = true
					log.Printf("Registered face for %q", name)
				}
			}
			drawRect(canvas, region, registrationColor)
			drawLabel(canvas, label, region.Min.X, region.Min.Y-10, registrationColor)
		}
		data, err := utils.EncodeJPEG(canvas, config.JPEG_QUALITY)
		if err != nil {
			return err
		}
		if emit(data) != nil {
			// Consumer disconnected
			return nil
		}
	}
}
