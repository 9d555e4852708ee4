package handlers

import (
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"attendance/db"
	"attendance/faces"
	"attendance/models"
	"attendance/storage"
	"attendance/stream"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeSource struct {
	frames []image.Image
}

func (s *fakeSource) Read() (image.Image, error) {
	if len(s.frames) == 0 {
		return nil, io.EOF
	}
	frame := s.frames[0]
	s.frames = s.frames[1:]
	return frame, nil
}

func (s *fakeSource) Close() error { return nil }

type fakeLocator struct {
	regions []image.Rectangle
}

func (l fakeLocator) DetectFaces(image.Image) []image.Rectangle { return l.regions }

func testFrame() image.Image {
	frame := image.NewRGBA(image.Rect(0, 0, 200, 200))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.Gray{Y: 128}), image.Point{}, draw.Src)
	return frame
}

func setupRouter(t *testing.T, loc stream.FaceLocator, open func() (stream.FrameSource, error)) (*gin.Engine, *faces.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	instance, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("opening test DB: %v", err)
	}
	db.Instance = instance
	models.Init()

	store := faces.NewStore(storage.NewDiskStorage(t.TempDir()), 100, 90)
	guard := &stream.Guard{}
	if open == nil {
		open = func() (stream.FrameSource, error) {
			return &fakeSource{frames: []image.Image{testFrame()}}, nil
		}
	}
	Init(store, loc, guard.Acquire, open)

	router := gin.New()
	router.Use(sessions.Sessions("token", cookie.NewStore([]byte("test"))))
	router.GET("/register", RegisterForm)
	router.POST("/register", RegisterSubmit)
	router.GET("/register_camera", RegisterStream)
	router.GET("/video_feed", RecognitionStream)
	router.GET("/attendance_records", AttendanceRecords)
	router.GET("/faces/list", FacesList)
	router.POST("/faces/delete", FaceDelete)
	return router, store
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterSubmitRedirects(t *testing.T) {
	router, _ := setupRouter(t, fakeLocator{}, nil)

	w := postForm(router, "/register", url.Values{"name": {"alice"}})
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/register/camera" {
		t.Errorf("redirect = %q, want /register/camera", loc)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestAttendanceRecordsJSON(t *testing.T) {
	router, _ := setupRouter(t, fakeLocator{}, nil)

	if _, err := models.RecordAttendance("alice", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("RecordAttendance: %v", err)
	}

	req := httptest.NewRequest("GET", "/attendance_records?format=json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var records []models.Attendance
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(records) != 1 || records[0].Name != "alice" || records[0].Date != "2024-01-01" {
		t.Errorf("records = %+v, want one row for alice on 2024-01-01", records)
	}
}

func TestFacesListAndDelete(t *testing.T) {
	router, store := setupRouter(t, fakeLocator{}, nil)

	if err := store.Save("alice", testFrame()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	req := httptest.NewRequest("GET", "/faces/list", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}
	var list struct {
		Names []string `json:"names"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(list.Names) != 1 || list.Names[0] != "alice" {
		t.Errorf("names = %v, want [alice]", list.Names)
	}

	if w := postForm(router, "/faces/delete", url.Values{"name": {"alice"}}); w.Code != http.StatusOK {
		t.Errorf("delete status = %d, want 200", w.Code)
	}
	if w := postForm(router, "/faces/delete", url.Values{"name": {"alice"}}); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestRecognitionStreamOutput(t *testing.T) {
	region := image.Rect(50, 50, 150, 150)
	router, _ := setupRouter(t, fakeLocator{regions: []image.Rectangle{region}}, nil)

	req := httptest.NewRequest("GET", "/video_feed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != stream.ContentType {
		t.Errorf("content type = %q, want %q", ct, stream.ContentType)
	}
	if !strings.Contains(w.Body.String(), "--frame\r\nContent-Type: image/jpeg") {
		t.Error("body does not contain a multipart frame")
	}
}

func TestStreamCameraBusy(t *testing.T) {
	router, _ := setupRouter(t, fakeLocator{}, nil)

	// Hold the guard so the request finds the camera busy
	release, err := acquireCamera()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	req := httptest.NewRequest("GET", "/video_feed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}
