package handlers

import (
	"attendance/faces"
	"attendance/stream"
)

type Response struct {
	Error string `json:"error"`
}

var (
	// Predefined errors
	OKResponse         = Response{}
	CameraBusyResponse = Response{"camera busy"}
	DBErrorResponse    = Response{"DB Error"}
	NotFoundResponse   = Response{"not found"}
)

var (
	faceStore *faces.Store
	locator   stream.FaceLocator
	// acquireCamera claims the physical device for one stream; openCamera
	// opens it. Injected so the handlers stay free of the capture library.
	acquireCamera func() (release func(), err error)
	openCamera    func() (stream.FrameSource, error)
)

// Init injects the shared face store, the face locator (constructed once at
// startup and shared read-only across streams) and the camera hooks.
func Init(store *faces.Store, loc stream.FaceLocator,
	acquire func() (func(), error), open func() (stream.FrameSource, error)) {
	faceStore = store
	locator = loc
	acquireCamera = acquire
	openCamera = open
}
