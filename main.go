package main

import (
	"log"
	"strings"
	"time"

	"attendance/camera"
	"attendance/config"
	"attendance/db"
	"attendance/faces"
	"attendance/handlers"
	"attendance/models"
	"attendance/storage"
	"attendance/stream"
	"attendance/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	sessionStoreKey   = "attendance session key" // TODO: convert to env variable
	sessionCookieName = "token"
	sessionExpiration = 86400 // 1 day
)

func main() {
	_ = godotenv.Load()

	db.Init()
	models.Init()
	storage.Init()

	detector, err := camera.NewDetector(config.CASCADE_FILE)
	if err != nil {
		log.Fatalf("Cannot initialize face detector: %v", err)
	}
	defer detector.Close()

	faceStore := faces.NewStore(storage.GetDefaultStorage(), config.FACE_SIZE, config.JPEG_QUALITY)
	handlers.Init(faceStore, detector, stream.Acquire, func() (stream.FrameSource, error) {
		return camera.Open(config.CAMERA_DEVICE)
	})

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(sessionStoreKey))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpiration})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	// The multipart streams must not go through gzip
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/register_camera", "/video_feed"})))
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler())

	// Pages
	router.GET("/", handlers.Home)
	router.GET("/register", handlers.RegisterForm)
	router.POST("/register", handlers.RegisterSubmit)
	router.GET("/register/camera", handlers.RegisterCameraPage)
	router.GET("/attendance", handlers.AttendancePage)
	router.GET("/attendance_records", handlers.AttendanceRecords)
	// Live streams
	router.GET("/register_camera", handlers.RegisterStream)
	router.GET("/video_feed", handlers.RecognitionStream)
	// Face roster
	router.GET("/faces/list", handlers.FacesList)
	router.POST("/faces/delete", handlers.FaceDelete)

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
