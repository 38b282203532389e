package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"yplus-tool/internal/format"
	"yplus-tool/internal/yplus"
)

// RunnerConfig holds all CLI options for a calculation.
type RunnerConfig struct {
	Fields yplus.Fields

	ConfigPath string
	GUI        bool
	Quiet      bool
	Verbose    bool

	explicit map[string]bool
}

// ApplyDefaults fills every input not given on the command line from d.
func (c *RunnerConfig) ApplyDefaults(d yplus.Fields) {
	if !c.explicit[yplus.FieldVelocity] {
		c.Fields.Velocity = d.Velocity
	}
	if !c.explicit[yplus.FieldDensity] {
		c.Fields.Density = d.Density
	}
	if !c.explicit[yplus.FieldViscosity] {
		c.Fields.Viscosity = d.Viscosity
	}
	if !c.explicit[yplus.FieldLength] {
		c.Fields.Length = d.Length
	}
	if !c.explicit[yplus.FieldYPlus] {
		c.Fields.YPlus = d.YPlus
	}
}

// Run evaluates one calculation and writes the report (or, with Quiet, only the
// two derived values) to out. The result is always returned; the error is
// non-nil if any input was invalid.
func Run(cfg RunnerConfig, out io.Writer, logger *log.Logger) (yplus.Result, error) {
	in := cfg.Fields.Parse()
	res := yplus.Compute(in)

	entry := logger.WithFields(log.Fields{
		"velocity":  in.Velocity,
		"density":   in.Density,
		"viscosity": in.Viscosity,
		"length":    in.Length,
		"yplus":     in.YPlus,
		"reynolds":  res.Reynolds,
		"y1":        res.FirstLayerHeight,
	})

	if cfg.Quiet {
		PrintResult(out, res)
	} else if _, err := fmt.Fprintln(out, format.FormatResult(in, res)); err != nil {
		return res, fmt.Errorf("write result: %w", err)
	}

	if err := in.Validate(); err != nil {
		entry.WithError(err).Warn("calculation produced NaN")
		return res, err
	}

	entry.Info("calculation done")
	return res, nil
}

// PrintResult writes the two derived values, one per line, in the form's
// display format.
func PrintResult(w io.Writer, r yplus.Result) {
	fmt.Fprintf(w, "Reynolds Number:    %s\n", format.FormatValue(r.Reynolds))
	fmt.Fprintf(w, "First Layer Height: %s\n", format.FormatValue(r.FirstLayerHeight))
}
