// Package polar implements the boat-velocity table: boat speed as a
// function of relative wind bearing and wind speed.
package polar

import (
	"fmt"

	"github.com/jvaillant/tinysea-go/linear"
	"github.com/jvaillant/tinysea-go/quantity"
)

// Curve is one polar curve: boat speed as a function of wind speed, at a
// fixed relative wind bearing (the angle between boat heading and wind).
type Curve struct {
	RelBearing quantity.Radian
	speeds     *linear.List[float64]
}

// SafeInterpolated returns the boat speed at windSpeed, clamping out-of-
// range wind speeds into the curve's defined range rather than failing.
func (c Curve) SafeInterpolated(windSpeed quantity.MetersPerSecond) quantity.MetersPerSecond {
	return quantity.MetersPerSecond(c.speeds.SafeInterpolated(float64(windSpeed)))
}

// Table is an ordered collection of polar curves plus the running maximum
// boat speed seen across all of them, the denominator of the planner's
// admissible heuristic.
type Table struct {
	curves      []Curve
	maxVelocity quantity.MetersPerSecond
}

// Curves returns the stored curves in insertion order. The neighbor
// expander iterates this directly; it does not interpolate across
// bearing.
func (t *Table) Curves() []Curve { return t.curves }

// MaxVelocity is the largest boat speed recorded across all curves.
func (t *Table) MaxVelocity() quantity.MetersPerSecond { return t.maxVelocity }

// Builder accumulates polar curves sharing one wind-speed axis and
// enforces the table's validation rules.
type Builder struct {
	windSpeedSpace *linear.Space
	curves         []Curve
	maxVelocity    quantity.MetersPerSecond
}

// NewBuilder starts a builder over the given wind-speed axis, which must
// start at a non-negative wind speed.
func NewBuilder(windSpeedSpace *linear.Space) (*Builder, error) {
	if windSpeedSpace.Start() < 0 {
		return nil, fmt.Errorf("polar: wind-speed space must start at >= 0, got %v", windSpeedSpace.Start())
	}
	return &Builder{windSpeedSpace: windSpeedSpace}, nil
}

// Add appends one curve at relBearing. Rejects any negative boat speed.
func (b *Builder) Add(relBearing quantity.Radian, boatSpeeds []float64) error {
	for _, v := range boatSpeeds {
		if v < 0 {
			return fmt.Errorf("polar: negative boat speed %v on curve at bearing %v", v, relBearing)
		}
		if v > float64(b.maxVelocity) {
			b.maxVelocity = quantity.MetersPerSecond(v)
		}
	}
	list, err := linear.NewList(b.windSpeedSpace, boatSpeeds, linear.NumericInterp)
	if err != nil {
		return err
	}
	b.curves = append(b.curves, Curve{RelBearing: relBearing, speeds: list})
	return nil
}

// AddSymmetric stores both relBearing and its mirror 2π-relBearing.
func (b *Builder) AddSymmetric(relBearing quantity.Radian, boatSpeeds []float64) error {
	if err := b.Add(relBearing, boatSpeeds); err != nil {
		return err
	}
	return b.Add(quantity.TwoPi-relBearing, boatSpeeds)
}

// Build finalizes the table.
func (b *Builder) Build() *Table {
	return &Table{curves: b.curves, maxVelocity: b.maxVelocity}
}
