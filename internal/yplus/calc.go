// Package yplus sizes the first mesh layer next to a wall for a target Y+,
// using the turbulent flat-plate skin-friction correlation.
package yplus

import (
	"fmt"
	"math"
	"strings"
)

// Default field texts shown when the form opens.
const (
	DefaultVelocity  = "1.0"
	DefaultDensity   = "1.205"
	DefaultViscosity = "1.82e-5"
	DefaultLength    = "1.0"
	DefaultYPlus     = "1.0"
)

// Field names, in form order.
const (
	FieldVelocity  = "velocity"
	FieldDensity   = "density"
	FieldViscosity = "viscosity"
	FieldLength    = "length"
	FieldYPlus     = "yplus"
)

// Domain predicates per field. Velocity must be strictly positive: at zero the
// wall shear vanishes and the first layer height is undefined.
var (
	VelocityDomain  Predicate = Positive
	DensityDomain   Predicate = Positive
	ViscosityDomain Predicate = Positive
	LengthDomain    Predicate = Positive
	YPlusDomain     Predicate = Positive
)

// Fields holds the raw text of the five inputs as typed by the user.
type Fields struct {
	Velocity  string
	Density   string
	Viscosity string
	Length    string
	YPlus     string
}

// DefaultFields returns the placeholder values the form starts with.
func DefaultFields() Fields {
	return Fields{
		Velocity:  DefaultVelocity,
		Density:   DefaultDensity,
		Viscosity: DefaultViscosity,
		Length:    DefaultLength,
		YPlus:     DefaultYPlus,
	}
}

// Parse converts the texts into an Input. Invalid fields become NaN.
func (f Fields) Parse() Input {
	return Input{
		Velocity:  ParseField(f.Velocity, VelocityDomain),
		Density:   ParseField(f.Density, DensityDomain),
		Viscosity: ParseField(f.Viscosity, ViscosityDomain),
		Length:    ParseField(f.Length, LengthDomain),
		YPlus:     ParseField(f.YPlus, YPlusDomain),
	}
}

// Input is one set of parsed calculation parameters (SI units).
type Input struct {
	Velocity  float64 // m/s
	Density   float64 // kg/m^3
	Viscosity float64 // Pa*s
	Length    float64 // m
	YPlus     float64 // dimensionless
}

// InvalidFields returns the names of fields holding NaN, in form order.
func (in Input) InvalidFields() []string {
	var bad []string
	for _, f := range []struct {
		name string
		v    float64
	}{
		{FieldVelocity, in.Velocity},
		{FieldDensity, in.Density},
		{FieldViscosity, in.Viscosity},
		{FieldLength, in.Length},
		{FieldYPlus, in.YPlus},
	} {
		if math.IsNaN(f.v) {
			bad = append(bad, f.name)
		}
	}
	return bad
}

// FieldError lists input fields that failed to parse or were out of domain.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

// Validate returns a *FieldError if any field is NaN.
func (in Input) Validate() error {
	if bad := in.InvalidFields(); len(bad) > 0 {
		return &FieldError{Fields: bad}
	}
	return nil
}

// Result holds the derived quantities of one calculation.
type Result struct {
	Reynolds         float64
	FirstLayerHeight float64 // m
}

// Compute evaluates the Reynolds number and the first layer height. NaN in any
// input propagates to every output that depends on it.
func Compute(in Input) Result {
	re := in.Density * in.Velocity * in.Length / in.Viscosity
	cf := 0.058 * math.Pow(re, -0.2)
	tw := 0.5 * cf * in.Density * in.Velocity * in.Velocity
	ut := math.Sqrt(tw / in.Density)

	return Result{
		Reynolds:         re,
		FirstLayerHeight: in.YPlus * in.Viscosity / (ut * in.Density),
	}
}

// Valid reports whether both outputs are finite numbers.
func (r Result) Valid() bool {
	return !math.IsNaN(r.Reynolds) && !math.IsInf(r.Reynolds, 0) &&
		!math.IsNaN(r.FirstLayerHeight) && !math.IsInf(r.FirstLayerHeight, 0)
}
