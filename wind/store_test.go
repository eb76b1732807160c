package wind

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/quantity"
)

func gridLoader(speed float64) Loader {
	return func(string) (Grid, error) {
		lat, err := linear.NewSpace(-1, 1, 2)
		if err != nil {
			return Grid{}, err
		}
		lon, err := linear.NewSpace(-1, 1, 2)
		if err != nil {
			return Grid{}, err
		}
		samples := make([]linear.BearingSample, 4)
		for i := range samples {
			samples[i] = linear.BearingSample{Bearing: 0, Speed: quantity.MetersPerSecond(speed)}
		}
		return NewGrid(lat, lon, samples)
	}
}

func TestStoreMergeLoadsFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.grb", "b.grb"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	s := NewStore(dir, 3600, gridLoader(5))
	if err := s.Merge(); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if s.Snapshot() == nil {
		t.Fatal("expected a non-nil field after merge")
	}
}

func TestStoreMergeIgnoresTmpFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.grb"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.grb.tmp"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	var seen []string
	var mu sync.Mutex
	loader := func(path string) (Grid, error) {
		mu.Lock()
		seen = append(seen, filepath.Base(path))
		mu.Unlock()
		lat, _ := linear.NewSpace(-1, 1, 2)
		lon, _ := linear.NewSpace(-1, 1, 2)
		return NewGrid(lat, lon, make([]linear.BearingSample, 4))
	}

	s := NewStore(dir, 3600, loader)
	if err := s.Merge(); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if len(seen) != 1 || seen[0] != "a.grb" {
		t.Errorf("loaded files = %v, want only a.grb", seen)
	}
}

// TestStoreSnapshotNeverPartial is S9: Snapshot always returns either nil
// or a fully-built field, never a half-constructed one, because Merge
// only swaps the pointer after Build succeeds.
func TestStoreSnapshotNeverPartial(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.grb"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(dir, 3600, gridLoader(5))
	if err := s.Merge(); err != nil {
		t.Fatal(err)
	}
	first := s.Snapshot()
	if first == nil {
		t.Fatal("expected a field after first merge")
	}

	if err := s.Merge(); err != nil {
		t.Fatal(err)
	}
	second := s.Snapshot()
	if second == nil {
		t.Fatal("expected a field after second merge")
	}
}

func TestStoreMergeKeepsPreviousFieldWhenDirEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.grb"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir, 3600, gridLoader(5))
	if err := s.Merge(); err != nil {
		t.Fatal(err)
	}
	first := s.Snapshot()

	emptyDir := t.TempDir()
	s2 := NewStore(emptyDir, 3600, gridLoader(5))
	if err := s2.Merge(); err != nil {
		t.Fatal(err)
	}
	if s2.Snapshot() != nil {
		t.Error("expected no field for a store that never saw a file")
	}

	if err := os.Remove(filepath.Join(dir, "a.grb")); err != nil {
		t.Fatal(err)
	}
	if err := s.Merge(); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot() != first {
		t.Error("expected the previous field to be kept once the directory is empty")
	}
}
