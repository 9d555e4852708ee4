package faces

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"attendance/storage"
	"attendance/utils"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(storage.NewDiskStorage(t.TempDir()), 100, 90)
}

func TestStoreSaveLoad(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("alice", solidImage(240, color.RGBA{R: 200, G: 30, B: 30, A: 255})); err != nil {
		t.Fatalf("Save: %v", err)
	}
	img, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("stored face size = %dx%d, want 100x100", bounds.Dx(), bounds.Dy())
	}

	if _, err := store.Load("bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(bob) err = %v, want ErrNotFound", err)
	}
}

func TestStoreOverwrite(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save("alice", solidImage(240, color.RGBA{R: 250, G: 10, B: 10, A: 255})); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	if err := store.Save("alice", solidImage(240, color.RGBA{R: 10, G: 10, B: 250, A: 255})); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alice"}) {
		t.Fatalf("Names = %v, want [alice]", names)
	}

	img, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// The retained image must be the second one
	blue := utils.NormalizeFace(solidImage(240, color.RGBA{R: 10, G: 10, B: 250, A: 255}), 100)
	if diff := MeanAbsDiff(img, blue); diff > 5 {
		t.Errorf("stored image differs from last write, diff = %v", diff)
	}
	red := utils.NormalizeFace(solidImage(240, color.RGBA{R: 250, G: 10, B: 10, A: 255}), 100)
	if diff := MeanAbsDiff(img, red); diff < 40 {
		t.Errorf("stored image still matches first write, diff = %v", diff)
	}
}

func TestStoreSaveEmptyName(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"", "   ", "名前"} {
		if err := store.Save(name, solidImage(240, color.White)); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Save(%q) err = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save("alice", solidImage(240, color.White)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete("alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
	if _, err := store.Load("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Delete err = %v, want ErrNotFound", err)
	}
}

func TestStoreList(t *testing.T) {
	store := newTestStore(t)
	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names on empty store: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("Names on empty store = %v", names)
	}

	for _, name := range []string{"carol", "alice", "Bob"} {
		if err := store.Save(name, solidImage(240, color.White)); err != nil {
			t.Fatalf("Save(%q): %v", name, err)
		}
	}
	list, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var got []string
	for _, face := range list {
		got = append(got, face.Name)
		b := face.Image.Bounds()
		if b.Dx() != 100 || b.Dy() != 100 {
			t.Errorf("listed face %q size = %dx%d, want 100x100", face.Name, b.Dx(), b.Dy())
		}
	}
	if !reflect.DeepEqual(got, []string{"alice", "bob", "carol"}) {
		t.Errorf("List names = %v, want sorted sanitized names", got)
	}
}
