package faces

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"attendance/storage"
	"attendance/utils"
)

var (
	ErrNotFound  = errors.New("face not found")
	ErrEmptyName = errors.New("name is empty")
)

// RegisteredFace is one person's reference image, already normalized.
type RegisteredFace struct {
	Name  string
	Image image.Image
}

// Store keeps one reference face image per registered name.
// Last write wins when the same name registers again.
type Store struct {
	storage     storage.StorageAPI
	size        uint
	jpegQuality int
}

func NewStore(st storage.StorageAPI, size, jpegQuality int) *Store {
	return &Store{storage: st, size: uint(size), jpegQuality: jpegQuality}
}

// Size returns the side length faces are normalized to.
func (s *Store) Size() int {
	return int(s.size)
}

// Key returns the storage key for a name, or "" if the name is unusable.
func (s *Store) Key(name string) string {
	key := utils.SanitizeName(name)
	if key == "" {
		return ""
	}
	return key + ".jpg"
}

// Save normalizes the image to the configured size and writes it under the
// sanitized name, overwriting any previous registration.
func (s *Store) Save(name string, img image.Image) error {
	key := s.Key(name)
	if key == "" {
		return ErrEmptyName
	}
	normalized := utils.NormalizeFace(img, s.size)
	data, err := utils.EncodeJPEG(normalized, s.jpegQuality)
	if err != nil {
		return fmt.Errorf("encoding face for %q: %w", name, err)
	}
	if _, err := s.storage.Save(key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("saving face for %q: %w", name, err)
	}
	return nil
}

// Load returns the stored face for a name, normalized to the store size.
func (s *Store) Load(name string) (image.Image, error) {
	key := s.Key(name)
	if key == "" {
		return nil, ErrEmptyName
	}
	if !s.storage.Exists(key) {
		return nil, ErrNotFound
	}
	var buf bytes.Buffer
	if _, err := s.storage.Load(key, &buf); err != nil {
		return nil, err
	}
	img, err := utils.DecodeImage(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding face for %q: %w", name, err)
	}
	return utils.NormalizeFace(img, s.size), nil
}

// Delete removes a registration. Deleting an unknown name is ErrNotFound.
func (s *Store) Delete(name string) error {
	key := s.Key(name)
	if key == "" {
		return ErrEmptyName
	}
	if !s.storage.Exists(key) {
		return ErrNotFound
	}
	return s.storage.Delete(key)
}

// Names returns the registered names, sorted.
func (s *Store) Names() ([]string, error) {
	keys, err := s.storage.List()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, key := range keys {
		if !strings.HasSuffix(key, ".jpg") {
			continue
		}
		names = append(names, strings.TrimSuffix(key, ".jpg"))
	}
	sort.Strings(names)
	return names, nil
}

// List loads every registered face. Used by the recognition flow to snapshot
// the roster once per stream - faces registered later are not picked up
// until a new stream starts.
func (s *Store) List() ([]RegisteredFace, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}
	var result []RegisteredFace
	for _, name := range names {
		img, err := s.Load(name)
		if err != nil {
			return nil, err
		}
		result = append(result, RegisteredFace{Name: name, Image: img})
	}
	return result, nil
}
