package handlers

import (
	"log"
	"net/http"

	"attendance/config"
	"attendance/faces"
	"attendance/models"
	"attendance/stream"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterStream serves the registration MJPEG stream. The camera is held
// exclusively for the lifetime of the response and released on every exit
// path, including client disconnect.
func RegisterStream(c *gin.Context) {
	session := sessions.Default(c)
	name, _ := session.Get(pendingNameKey).(string)

	release, err := acquireCamera()
	if err != nil {
		c.JSON(http.StatusConflict, CameraBusyResponse)
		return
	}
	defer release()

	src, err := openCamera()
	if err != nil {
		log.Printf("Error opening camera: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Error: "cannot open camera"})
		return
	}
	defer src.Close()

	streamID := uuid.NewString()[:8]
	log.Printf("[%s] Registration stream started for %q", streamID, name)

	c.Header("Content-Type", stream.ContentType)
	writer := stream.NewMJPEGWriter(c.Writer)
	if err := stream.Registration(c.Request.Context(), src, locator, faceStore, name, writer.WriteFrame); err != nil {
		log.Printf("[%s] Registration stream error: %v", streamID, err)
	}
	log.Printf("[%s] Registration stream ended", streamID)
}

// RecognitionStream serves the attendance MJPEG stream.
func RecognitionStream(c *gin.Context) {
	release, err := acquireCamera()
	if err != nil {
		c.JSON(http.StatusConflict, CameraBusyResponse)
		return
	}
	defer release()

	src, err := openCamera()
	if err != nil {
		log.Printf("Error opening camera: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Error: "cannot open camera"})
		return
	}
	defer src.Close()

	streamID := uuid.NewString()[:8]
	log.Printf("[%s] Recognition stream started", streamID)

	matcher := faces.Matcher{Threshold: config.MATCH_THRESHOLD}
	ledger := stream.LedgerFunc(models.RecordAttendance)

	c.Header("Content-Type", stream.ContentType)
	writer := stream.NewMJPEGWriter(c.Writer)
	if err := stream.Recognition(c.Request.Context(), src, locator, faceStore, matcher, ledger, writer.WriteFrame); err != nil {
		log.Printf("[%s] Recognition stream error: %v", streamID, err)
	}
	log.Printf("[%s] Recognition stream ended", streamID)
}
