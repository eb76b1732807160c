package wind

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/jvaillant/tinysea-go/linear"
)

// Loader parses one forecast file on disk into a Grid. wind/grib.LoadFile
// satisfies this directly; tests use a trivial fake.
type Loader func(path string) (Grid, error)

// Store holds the most recently built TimeWindField and refreshes it on
// a schedule by rescanning a directory of forecast files, exactly as the
// rolling forecast window this is grounded on. Readers never see a
// partially rebuilt field: Merge builds a fresh TimeWindField off to the
// side and only then swaps the pointer under the lock.
type Store struct {
	dir       string
	deltaT    float64
	loader    Loader
	mu        sync.RWMutex
	field     *TimeWindField
	scheduler *gocron.Scheduler
}

// NewStore builds a Store that will load grib files from dir, each
// spaced deltaT seconds apart in the resulting TimeWindField's time axis.
func NewStore(dir string, deltaT float64, loader Loader) *Store {
	return &Store{dir: dir, deltaT: deltaT, loader: loader}
}

// Snapshot returns the currently loaded field. Safe to call concurrently
// with Merge; the returned pointer is never mutated after being handed
// out, so a caller can run a whole planner search against it without
// locking.
func (s *Store) Snapshot() *TimeWindField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.field
}

// Merge rescans the store's directory and rebuilds the field from
// whatever forecast files are present, sorted by name (which this
// system's file naming keeps in time order). A lone file yields a field
// that holds its grid constant over one deltaT.
func (s *Store) Merge() error {
	var files []string
	err := filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.WithError(err).Errorf("wind: walking '%s'", path)
			return nil
		}
		if info.Mode().IsRegular() && !strings.HasSuffix(info.Name(), ".tmp") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("wind: walking grib directory")
		return err
	}
	sort.Strings(files)

	if len(files) == 0 {
		log.Warn("wind: no forecast files found, keeping previous field")
		return nil
	}

	grids := make([]Grid, 0, len(files))
	for _, path := range files {
		g, err := s.loader(path)
		if err != nil {
			log.WithError(err).Errorf("wind: loading '%s'", path)
			continue
		}
		grids = append(grids, g)
		log.Debugf("wind: loaded '%s'", path)
	}
	if len(grids) == 0 {
		return nil
	}
	loaded := len(grids)
	if loaded == 1 {
		// A time axis needs two points: a single forecast is held for
		// one deltaT.
		grids = append(grids, grids[0])
	}

	timeSpace, err := linear.NewSpace(0, s.deltaT, len(grids))
	if err != nil {
		return err
	}
	b := NewBuilder(timeSpace)
	for _, g := range grids {
		if err := b.Add(g); err != nil {
			return err
		}
	}
	field, err := b.Build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.field = field
	s.mu.Unlock()

	log.Infof("wind: merged %d forecast grids from '%s'", loaded, s.dir)
	return nil
}

// StartScheduled loads the field once synchronously, then starts a
// background gocron job rescanning the directory every intervalSeconds.
func (s *Store) StartScheduled(intervalSeconds uint64) error {
	if err := s.Merge(); err != nil {
		return err
	}

	s.scheduler = gocron.NewScheduler()
	job := s.scheduler.Every(intervalSeconds).Seconds()
	job.Do(func() {
		if err := s.Merge(); err != nil {
			log.WithError(err).Error("wind: scheduled merge failed")
		}
	})
	go s.scheduler.Start()
	return nil
}

// Stop halts the background refresh schedule, if running.
func (s *Store) Stop() {
	if s.scheduler != nil {
		s.scheduler.Clear()
	}
}
