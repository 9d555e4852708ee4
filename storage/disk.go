package storage

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

type DiskStorage struct {
	// BasePath is a directory that is writable by the current process
	BasePath  string
	dirMade   bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(basePath string) StorageAPI {
	return &DiskStorage{BasePath: basePath}
}

func (s *DiskStorage) createDir() error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if s.dirMade {
		return nil
	}
	if err := os.MkdirAll(s.BasePath, 0777); err != nil {
		return err
	}
	s.dirMade = true
	return nil
}

func (s *DiskStorage) GetFullPath(path string) string {
	return filepath.Join(s.BasePath, path)
}

func (s *DiskStorage) Save(path string, reader io.Reader) (int64, error) {
	if err := s.createDir(); err != nil {
		return 0, err
	}
	file, err := os.Create(s.GetFullPath(path))
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *DiskStorage) Load(path string, writer io.Writer) (int64, error) {
	file, err := os.Open(s.GetFullPath(path))
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(writer, file)
	file.Close()
	return result, err
}

func (s *DiskStorage) Delete(path string) error {
	return os.Remove(s.GetFullPath(path))
}

func (s *DiskStorage) Exists(path string) bool {
	fi, err := os.Stat(s.GetFullPath(path))
	return err == nil && !fi.IsDir()
}

func (s *DiskStorage) List() ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
