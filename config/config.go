package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS     = ""              // e.g. "example.com,example2.com"
	MYSQL_DSN       = ""              // MySQL will be used if this is set
	SQLITE_FILE     = "attendance.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS    = "0.0.0.0:8080"
	FACES_DIR       = "faces" // Local directory for registered face images
	FACES_S3_BUCKET = ""      // S3 will be used for face images if this is set
	FACES_S3_REGION = "us-east-1"
	CAMERA_DEVICE   = "0" // Camera index or device path
	CASCADE_FILE    = "haarcascade_frontalface_default.xml"
	FACE_SIZE       = 100  // Registered faces are normalized to FACE_SIZE x FACE_SIZE
	MATCH_THRESHOLD = 40.0 // Mean pixel difference below which two faces count as the same person
	JPEG_QUALITY    = 90
	DEBUG_MODE      = true
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("FACES_DIR", &FACES_DIR)
	readEnvString("FACES_S3_BUCKET", &FACES_S3_BUCKET)
	readEnvString("FACES_S3_REGION", &FACES_S3_REGION)
	readEnvString("CAMERA_DEVICE", &CAMERA_DEVICE)
	readEnvString("CASCADE_FILE", &CASCADE_FILE)
	readEnvInt("FACE_SIZE", &FACE_SIZE)
	readEnvFloat("MATCH_THRESHOLD", &MATCH_THRESHOLD)
	readEnvInt("JPEG_QUALITY", &JPEG_QUALITY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvFloat(name string, value *float64) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*value = f
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
