package stream

import (
	"io"
	"net/http"
)

// ContentType is the response content type for the live streams.
const ContentType = "multipart/x-mixed-replace; boundary=frame"

var (
	partHeader  = []byte("--frame\r\nContent-Type: image/jpeg\r\n\r\n")
	partTrailer = []byte("\r\n")
)

// MJPEGWriter emits boundary-delimited JPEG parts onto an HTTP response.
type MJPEGWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func NewMJPEGWriter(w io.Writer) *MJPEGWriter {
	m := &MJPEGWriter{w: w}
	if f, ok := w.(http.Flusher); ok {
		m.flusher = f
	}
	return m
}

// WriteFrame sends one JPEG part. Each frame is flushed immediately so the
// browser replaces the previous one.
func (m *MJPEGWriter) WriteFrame(jpeg []byte) error {
	if _, err := m.w.Write(partHeader); err != nil {
		return err
	}
	if _, err := m.w.Write(jpeg); err != nil {
		return err
	}
	if _, err := m.w.Write(partTrailer); err != nil {
		return err
	}
	if m.flusher != nil {
		m.flusher.Flush()
	}
	return nil
}
