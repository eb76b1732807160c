// Package grib parses GRIB2 wind-grid files into the core wind.Grid type.
package grib

import (
	"fmt"
	"math"
	"os"

	"github.com/nilsmagnus/grib/griblib"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/quantity"
	"github.com/jvaillant/tinysea-go/wind"
)

// LoadFile parses one GRIB2 file's 10-meter U/V wind components into a
// wind.Grid. Bearing is stored clockwise from north (direction the wind
// blows towards), matching the convention nvector.Destination expects.
func LoadFile(path string) (wind.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return wind.Grid{}, fmt.Errorf("grib: opening '%s': %w", path, err)
	}
	defer f.Close()

	messages, err := griblib.ReadMessages(f)
	if err != nil {
		return wind.Grid{}, fmt.Errorf("grib: reading '%s': %w", path, err)
	}

	var lat0, lon0, deltaLat, deltaLon float64
	var nLat, nLon uint32
	var u, v []float64

	for _, m := range messages {
		pdt := m.Section4.ProductDefinitionTemplate
		if m.Section0.Discipline != 0 || pdt.ParameterCategory != 2 {
			continue
		}
		if pdt.FirstSurface.Type != 103 || pdt.FirstSurface.Value != 10 {
			continue
		}
		grid0, ok := m.Section3.Definition.(*griblib.Grid0)
		if !ok {
			continue
		}
		lat0 = float64(grid0.La1) / 1e6
		lon0 = float64(grid0.Lo1) / 1e6
		deltaLat = float64(grid0.Di) / 1e6
		deltaLon = float64(grid0.Dj) / 1e6
		nLat = grid0.Nj
		nLon = grid0.Ni

		switch pdt.ParameterNumber {
		case 2:
			u = m.Section7.Data
		case 3:
			v = m.Section7.Data
		}
	}

	if u == nil || v == nil {
		return wind.Grid{}, fmt.Errorf("grib: '%s' missing U/V wind components at 10m", path)
	}
	if len(u) != len(v) || len(u) != int(nLat)*int(nLon) {
		return wind.Grid{}, fmt.Errorf("grib: '%s' U/V size mismatch with declared grid %dx%d", path, nLat, nLon)
	}

	// The grid's axes are stored in radians, like every other position in
	// this system; GRIB itself reports them in degrees.
	latSpace, err := linear.NewSpace(float64(quantity.DegToRad(lat0)), float64(quantity.DegToRad(deltaLat)), int(nLat))
	if err != nil {
		return wind.Grid{}, fmt.Errorf("grib: '%s' latitude axis: %w", path, err)
	}
	lonSpace, err := linear.NewSpace(float64(quantity.DegToRad(lon0)), float64(quantity.DegToRad(deltaLon)), int(nLon))
	if err != nil {
		return wind.Grid{}, fmt.Errorf("grib: '%s' longitude axis: %w", path, err)
	}

	samples := make([]linear.BearingSample, len(u))
	for i := range u {
		speed := math.Hypot(u[i], v[i])
		bearing := math.Atan2(u[i], v[i])
		samples[i] = linear.BearingSample{
			Bearing: quantity.Radian(bearing),
			Speed:   quantity.MetersPerSecond(speed),
		}
	}

	return wind.NewGrid(latSpace, lonSpace, samples)
}
