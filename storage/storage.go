package storage

import (
	"io"
	"log"

	"attendance/config"
)

// StorageAPI is the blob interface the face store works against.
// Paths are relative keys like "alice.jpg".
type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Delete(path string) error
	Exists(path string) bool
	List() ([]string, error)
}

var defaultStorage StorageAPI

func Init() {
	if config.FACES_S3_BUCKET != "" {
		defaultStorage = NewS3Storage(config.FACES_S3_BUCKET, config.FACES_S3_REGION)
		log.Printf("Face storage: S3 bucket %s (%s)", config.FACES_S3_BUCKET, config.FACES_S3_REGION)
	} else {
		defaultStorage = NewDiskStorage(config.FACES_DIR)
		log.Printf("Face storage: local directory %s", config.FACES_DIR)
	}
}

func GetDefaultStorage() StorageAPI {
	if defaultStorage == nil {
		panic("no storage available")
	}
	return defaultStorage
}
