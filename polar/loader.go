package polar

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/quantity"
	log "github.com/sirupsen/logrus"
)

// file mirrors the on-disk polar table format: a shared wind-speed axis
// in knots and a list of curves, each a bearing in degrees plus one boat
// speed (knots) per wind speed sample.
type file struct {
	Speeds []float64   `json:"speeds"`
	Curves []fileCurve `json:"curves"`
}

type fileCurve struct {
	BearingDeg float64   `json:"bearing"`
	Speeds     []float64 `json:"speeds"`
	Symmetric  bool      `json:"symmetric"`
}

// Load reads a polar JSON file from path and builds a Table from it,
// converting degrees to radians and knots to m/s at this boundary so the
// rest of the system never touches either unit.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("polar: reading '%s': %w", path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("polar: parsing '%s': %w", path, err)
	}

	if len(f.Speeds) < 2 {
		return nil, fmt.Errorf("polar: '%s' needs at least 2 wind-speed samples", path)
	}

	ms := make([]float64, len(f.Speeds))
	for i, kt := range f.Speeds {
		ms[i] = float64(quantity.KnotsToMetersPerSecond(kt))
	}
	delta := ms[1] - ms[0]
	space, err := linear.NewSpace(ms[0], delta, len(ms))
	if err != nil {
		return nil, fmt.Errorf("polar: '%s': %w", path, err)
	}

	b, err := NewBuilder(space)
	if err != nil {
		return nil, fmt.Errorf("polar: '%s': %w", path, err)
	}

	for _, c := range f.Curves {
		boatSpeeds := make([]float64, len(c.Speeds))
		for i, kt := range c.Speeds {
			boatSpeeds[i] = float64(quantity.KnotsToMetersPerSecond(kt))
		}
		bearing := quantity.DegToRad(c.BearingDeg)
		var addErr error
		if c.Symmetric {
			addErr = b.AddSymmetric(bearing, boatSpeeds)
		} else {
			addErr = b.Add(bearing, boatSpeeds)
		}
		if addErr != nil {
			return nil, fmt.Errorf("polar: '%s' curve at %v°: %w", path, c.BearingDeg, addErr)
		}
	}

	t := b.Build()
	log.Debugf("polar: loaded '%s', %d curves, maxVelocity %.2f kt", path, len(t.Curves()), quantity.MetersPerSecondToKnots(t.MaxVelocity()))
	return t, nil
}
